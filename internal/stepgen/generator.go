package stepgen

import "context"

// Generator produces pyramid steps using an LLM provider.
type Generator interface {
	// Generate produces a single step for the given input context.
	// Returns a validated Step or an error.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*Step, error)

	// GenerateOpening produces the pyramid's first sentence in the
	// learning language.
	GenerateOpening(ctx context.Context, input OpeningInput) (string, error)
}
