package stepgen

import "fmt"

// StructuralValidator checks that required fields are present and that the
// step carries exactly 3 options of the expected kind.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(s *Step, _ GenerateInput) *ValidationError {
	if s.InitialSentence == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "initial_sentence is empty",
			Retryable: true,
		}
	}
	if s.InitialSentenceMeaning == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "initial_sentence_meaning is empty",
			Retryable: true,
		}
	}
	if s.OptionCount() != 3 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected 3 options, got %d", s.OptionCount()),
			Retryable: true,
		}
	}

	switch s.Kind {
	case KindExpand:
		for i, o := range s.ExpandOptions {
			if o.Sentence == "" || o.ExpandWord == "" || o.Meaning == "" {
				return v.emptyOption(i)
			}
		}
	case KindShrink:
		for i, o := range s.ShrinkOptions {
			if o.Sentence == "" || o.RemovedWord == "" || o.Meaning == "" {
				return v.emptyOption(i)
			}
		}
	case KindReplace:
		for i, o := range s.ReplaceOptions {
			if o.Sentence == "" || o.ReplacedWord == "" || o.ChangedWord == "" || o.Meaning == "" {
				return v.emptyOption(i)
			}
		}
	case KindParaphrase:
		for i, o := range s.ParaphraseOptions {
			if o.ParaphrasedSentence == "" || o.Meaning == "" {
				return v.emptyOption(i)
			}
		}
	default:
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown step kind: %q", s.Kind),
			Retryable: false,
		}
	}

	return nil
}

func (v *StructuralValidator) emptyOption(i int) *ValidationError {
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("option %d has an empty field", i),
		Retryable: true,
	}
}
