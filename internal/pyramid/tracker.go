package pyramid

import (
	"strings"

	"github.com/ekremtas/lingopyr/internal/stepgen"
)

// ExcludedWords flattens the option words of all prior steps into the
// exclusion list for the next generation request. Deduplication is
// case-insensitive; first-occurrence order is preserved.
func ExcludedWords(steps []stepgen.Step) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, st := range steps {
		for _, w := range st.OptionWords {
			key := strings.ToLower(w)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}
