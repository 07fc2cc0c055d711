package events

import "time"

// ActivityKind identifies the exercise type an event tracks.
type ActivityKind string

const (
	KindPyramid    ActivityKind = "pyramid"
	KindVocabulary ActivityKind = "vocabulary"
	KindWriting    ActivityKind = "writing"
)

// Record is one activity event. Exactly one of the detail pointers is
// populated, matching Kind.
type Record struct {
	ID              string
	UserID          string
	Kind            ActivityKind
	ActivityRef     string // ID of the pyramid, vocabulary list, or writing question
	SessionStart    time.Time
	SessionEnd      *time.Time
	DurationSeconds int
	Completed       bool
	XPEarned        int
	Timestamp       time.Time

	Pyramid    *PyramidDetails
	Vocabulary *VocabularyDetails
	Writing    *WritingDetails
}

// StepSummary captures one completed pyramid step for the event detail.
type StepSummary struct {
	Kind             string `json:"step_type"`
	InitialSentence  string `json:"initial_sentence"`
	SelectedOption   *int   `json:"selected_option,omitempty"`
	SelectedSentence string `json:"selected_sentence,omitempty"`
}

// PyramidDetails holds pyramid-specific event statistics.
type PyramidDetails struct {
	PyramidID      string        `json:"pyramid_id"`
	TotalSteps     int           `json:"total_steps"`
	CompletedSteps int           `json:"completed_steps"`
	StepKinds      []string      `json:"step_types"`
	StepsDetail    []StepSummary `json:"steps_detail,omitempty"`
	AccuracyRate   float64       `json:"accuracy_rate"`
	AvgTimePerStep float64       `json:"avg_time_per_step"`
}

// VocabularyDetails holds vocabulary-drill event statistics.
// Hints split by kind; TotalHints is their sum.
type VocabularyDetails struct {
	ListID            string   `json:"vocabulary_list_id"`
	Words             []string `json:"words"`
	LetterHintsUsed   int      `json:"letter_hints_used"`
	RelevantWordHints int      `json:"relevant_word_hints_used"`
	EmojiHintsUsed    int      `json:"emoji_hints_used"`
	TotalHints        int      `json:"total_hints"`
	CorrectAnswers    int      `json:"correct_answers"`
	IncorrectAnswers  int      `json:"incorrect_answers"`
	AccuracyRate      float64  `json:"accuracy_rate"`
}

// WritingFeedback is the rubric scoring attached to a writing session.
type WritingFeedback struct {
	ContentScore      int    `json:"content_score"`
	OrganizationScore int    `json:"organization_score"`
	LanguageScore     int    `json:"language_score"`
	TotalScore        int    `json:"total_score"`
	Feedback          string `json:"feedback"`
}

// WritingDetails holds writing-session event statistics.
type WritingDetails struct {
	QuestionID     string           `json:"question_id"`
	QuestionText   string           `json:"question_text"`
	Level          string           `json:"level"`
	WordCount      int              `json:"word_count"`
	CharacterCount int              `json:"character_count"`
	RevisionCount  int              `json:"revision_count"`
	FinalAnswer    string           `json:"final_answer"`
	Feedback       *WritingFeedback `json:"ai_feedback,omitempty"`
}

// LogEntry is a compact activity summary row, one per completed session.
type LogEntry struct {
	UserID          string
	Kind            ActivityKind
	ActivityID      string
	XPEarned        int
	DurationSeconds int
	Completed       bool
	Timestamp       time.Time
}
