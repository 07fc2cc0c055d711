package main

import (
	"os"

	"github.com/ekremtas/lingopyr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
