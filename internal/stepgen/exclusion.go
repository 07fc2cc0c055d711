package stepgen

import (
	"fmt"
	"strings"
)

// ExclusionValidator checks that a step's options don't reuse words from
// previous steps. Comparison is case-insensitive. Paraphrase steps are
// exempt: their option words are whole sentences and incidental word
// overlap with earlier steps is expected.
type ExclusionValidator struct{}

func (v *ExclusionValidator) Name() string { return "exclusion" }

func (v *ExclusionValidator) Validate(s *Step, input GenerateInput) *ValidationError {
	if s.Kind == KindParaphrase || len(input.ExcludedWords) == 0 {
		return nil
	}

	excluded := make(map[string]struct{}, len(input.ExcludedWords))
	for _, w := range input.ExcludedWords {
		excluded[strings.ToLower(w)] = struct{}{}
	}

	for _, w := range collectOptionWords(s) {
		if _, ok := excluded[strings.ToLower(w)]; ok {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option word %q was already used in a previous step", w),
				Retryable: true,
			}
		}
	}

	return nil
}
