package stepgen

import "fmt"

// StepKind identifies the transformation applied at a pyramid step.
type StepKind string

const (
	KindExpand     StepKind = "expand"
	KindShrink     StepKind = "shrink"
	KindReplace    StepKind = "replace"
	KindParaphrase StepKind = "paraphrase"
)

// Kinds lists all step kinds in canonical order.
var Kinds = []StepKind{KindExpand, KindParaphrase, KindReplace, KindShrink}

// ParseStepKind converts a string to a StepKind.
func ParseStepKind(s string) (StepKind, error) {
	switch StepKind(s) {
	case KindExpand, KindShrink, KindReplace, KindParaphrase:
		return StepKind(s), nil
	}
	return "", fmt.Errorf("unknown step kind: %q", s)
}

// ExpandOption is one alternative produced by adding a word or phrase.
type ExpandOption struct {
	Sentence   string `json:"sentence"`
	ExpandWord string `json:"expand_word"`
	Meaning    string `json:"meaning"`
}

// ShrinkOption is one alternative produced by removing a word or phrase.
type ShrinkOption struct {
	Sentence    string `json:"sentence"`
	RemovedWord string `json:"removed_word"`
	Meaning     string `json:"meaning"`
}

// ReplaceOption is one alternative produced by swapping a single word.
type ReplaceOption struct {
	Sentence     string `json:"sentence"`
	ReplacedWord string `json:"replaced_word"`
	ChangedWord  string `json:"changed_word"`
	Meaning      string `json:"meaning"`
}

// ParaphraseOption is one alternative expressing the same meaning.
type ParaphraseOption struct {
	ParaphrasedSentence string `json:"paraphrased_sentence"`
	Meaning             string `json:"meaning"`
}

// Step is a single generated pyramid step. Exactly one of the option
// slices is populated, matching Kind.
type Step struct {
	Kind                   StepKind `json:"step_type"`
	InitialSentence        string   `json:"initial_sentence"`
	InitialSentenceMeaning string   `json:"initial_sentence_meaning"`

	ExpandOptions     []ExpandOption     `json:"expand_options,omitempty"`
	ShrinkOptions     []ShrinkOption     `json:"shrink_options,omitempty"`
	ReplaceOptions    []ReplaceOption    `json:"replace_options,omitempty"`
	ParaphraseOptions []ParaphraseOption `json:"paraphrase_options,omitempty"`

	// SelectedOption is the 0-based index the learner chose, nil until then.
	SelectedOption   *int   `json:"selected_option,omitempty"`
	SelectedSentence string `json:"selected_sentence,omitempty"`

	// OptionWords holds the words or phrases this step's options touched.
	// Later steps exclude them to avoid repetitive generations.
	OptionWords []string `json:"option_words,omitempty"`
}

// OptionCount returns the number of options on this step.
func (s *Step) OptionCount() int {
	switch s.Kind {
	case KindExpand:
		return len(s.ExpandOptions)
	case KindShrink:
		return len(s.ShrinkOptions)
	case KindReplace:
		return len(s.ReplaceOptions)
	case KindParaphrase:
		return len(s.ParaphraseOptions)
	}
	return 0
}

// OptionSentence returns the sentence of the i-th option.
// ok is false when i is out of range.
func (s *Step) OptionSentence(i int) (string, bool) {
	if i < 0 || i >= s.OptionCount() {
		return "", false
	}
	switch s.Kind {
	case KindExpand:
		return s.ExpandOptions[i].Sentence, true
	case KindShrink:
		return s.ShrinkOptions[i].Sentence, true
	case KindReplace:
		return s.ReplaceOptions[i].Sentence, true
	case KindParaphrase:
		return s.ParaphraseOptions[i].ParaphrasedSentence, true
	}
	return "", false
}

// OptionMeaning returns the system-language meaning of the i-th option.
// ok is false when i is out of range.
func (s *Step) OptionMeaning(i int) (string, bool) {
	if i < 0 || i >= s.OptionCount() {
		return "", false
	}
	switch s.Kind {
	case KindExpand:
		return s.ExpandOptions[i].Meaning, true
	case KindShrink:
		return s.ShrinkOptions[i].Meaning, true
	case KindReplace:
		return s.ReplaceOptions[i].Meaning, true
	case KindParaphrase:
		return s.ParaphraseOptions[i].Meaning, true
	}
	return "", false
}

// OptionSentences returns all option sentences in order.
func (s *Step) OptionSentences() []string {
	out := make([]string, 0, s.OptionCount())
	for i := range s.OptionCount() {
		sentence, _ := s.OptionSentence(i)
		out = append(out, sentence)
	}
	return out
}

// collectOptionWords gathers the words each option touched.
// Replace options contribute both the replaced and the new word.
// Paraphrase options rewrite the whole sentence, so the sentence itself
// is the touched element.
func collectOptionWords(s *Step) []string {
	var words []string
	switch s.Kind {
	case KindExpand:
		for _, o := range s.ExpandOptions {
			words = append(words, o.ExpandWord)
		}
	case KindShrink:
		for _, o := range s.ShrinkOptions {
			words = append(words, o.RemovedWord)
		}
	case KindReplace:
		for _, o := range s.ReplaceOptions {
			words = append(words, o.ReplacedWord, o.ChangedWord)
		}
	case KindParaphrase:
		for _, o := range s.ParaphraseOptions {
			words = append(words, o.ParaphrasedSentence)
		}
	}
	return words
}

// GenerateInput holds all context needed to generate a step.
type GenerateInput struct {
	// Kind is the transformation to apply.
	Kind StepKind

	// Sentence is the base sentence the step transforms.
	Sentence string

	// LearningLanguage is the language being learned, e.g. "Turkish".
	LearningLanguage string

	// SystemLanguage is the learner's native language for translations.
	SystemLanguage string

	// Purpose is the learner's stated goal, e.g. "General Knowledge".
	Purpose string

	// Level is the proficiency label, e.g. "A1 - Beginner".
	Level string

	// ExcludedWords are words used in previous steps that the new
	// options must avoid.
	ExcludedWords []string
}

// OpeningInput holds context for generating the pyramid's first sentence.
type OpeningInput struct {
	LearningLanguage string
	SystemLanguage   string
	Purpose          string
	Level            string
}
