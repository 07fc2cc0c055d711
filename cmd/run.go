package cmd

import (
	"fmt"

	"github.com/ekremtas/lingopyr/internal/app"
	"github.com/ekremtas/lingopyr/internal/events"
	"github.com/ekremtas/lingopyr/internal/llm"
	"github.com/ekremtas/lingopyr/internal/pyramid"
	"github.com/ekremtas/lingopyr/internal/scheduler"
	"github.com/ekremtas/lingopyr/internal/stepgen"
	"github.com/ekremtas/lingopyr/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	user, err := st.UserRepo().GetOrCreate(ctx, resolveUsername(cmd))
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w\nSet GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, or OPENROUTER_API_KEY", err)
	}

	pyramidSvc := pyramid.NewService(
		st.PyramidRepo(),
		scheduler.New(),
		stepgen.New(provider, stepgen.DefaultConfig()),
		events.NewService(st.ActivityRepo()),
	)

	return app.Run(app.Options{
		User:     user,
		Pyramids: pyramidSvc,
	})
}
