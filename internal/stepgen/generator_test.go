package stepgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ekremtas/lingopyr/internal/llm"
)

func testInput(kind StepKind) GenerateInput {
	return GenerateInput{
		Kind:             kind,
		Sentence:         "She reads books",
		LearningLanguage: "English",
		SystemLanguage:   "Turkish",
		Purpose:          "General Knowledge",
		Level:            "A1 - Beginner",
	}
}

func validExpandJSON() json.RawMessage {
	return json.RawMessage(`{
		"initial_sentence": "She reads books",
		"initial_sentence_meaning": "O kitap okur",
		"options": [
			{"sentence": "She often reads books", "expand_word": "often", "meaning": "O sık sık kitap okur"},
			{"sentence": "She reads interesting books", "expand_word": "interesting", "meaning": "O ilginç kitaplar okur"},
			{"sentence": "She reads books in the evening", "expand_word": "in the evening", "meaning": "O akşamları kitap okur"}
		]
	}`)
}

func validReplaceJSON() json.RawMessage {
	return json.RawMessage(`{
		"initial_sentence": "She reads books",
		"initial_sentence_meaning": "O kitap okur",
		"options": [
			{"sentence": "She reads magazines", "replaced_word": "books", "changed_word": "magazines", "meaning": "O dergi okur"},
			{"sentence": "He reads books", "replaced_word": "She", "changed_word": "He", "meaning": "O kitap okur"},
			{"sentence": "She writes books", "replaced_word": "reads", "changed_word": "writes", "meaning": "O kitap yazar"}
		]
	}`)
}

func validParaphraseJSON() json.RawMessage {
	return json.RawMessage(`{
		"initial_sentence": "She reads books",
		"initial_sentence_meaning": "O kitap okur",
		"options": [
			{"paraphrased_sentence": "Books are what she reads", "meaning": "Okuduğu şey kitaplardır"},
			{"paraphrased_sentence": "Reading books is her habit", "meaning": "Kitap okumak onun alışkanlığıdır"},
			{"paraphrased_sentence": "She is a reader of books", "meaning": "O bir kitap okurudur"}
		]
	}`)
}

func TestGenerate_Expand(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExpandJSON()})
	gen := New(mock, DefaultConfig())

	s, err := gen.Generate(context.Background(), testInput(KindExpand))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Kind != KindExpand {
		t.Errorf("expected expand kind, got %q", s.Kind)
	}
	if s.InitialSentence != "She reads books" {
		t.Errorf("unexpected initial sentence: %q", s.InitialSentence)
	}
	if len(s.ExpandOptions) != 3 {
		t.Fatalf("expected 3 options, got %d", len(s.ExpandOptions))
	}
	if s.ExpandOptions[0].ExpandWord != "often" {
		t.Errorf("unexpected expand word: %q", s.ExpandOptions[0].ExpandWord)
	}
}

func TestGenerate_ExpandOptionWords(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExpandJSON()})
	gen := New(mock, DefaultConfig())

	s, err := gen.Generate(context.Background(), testInput(KindExpand))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"often", "interesting", "in the evening"}
	if len(s.OptionWords) != len(want) {
		t.Fatalf("expected %d option words, got %d", len(want), len(s.OptionWords))
	}
	for i, w := range want {
		if s.OptionWords[i] != w {
			t.Errorf("option word %d: expected %q, got %q", i, w, s.OptionWords[i])
		}
	}
}

func TestGenerate_ReplaceOptionWords(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReplaceJSON()})
	gen := New(mock, DefaultConfig())

	s, err := gen.Generate(context.Background(), testInput(KindReplace))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Replace contributes both the replaced and the new word.
	want := []string{"books", "magazines", "She", "He", "reads", "writes"}
	if len(s.OptionWords) != len(want) {
		t.Fatalf("expected %d option words, got %d: %v", len(want), len(s.OptionWords), s.OptionWords)
	}
	for i, w := range want {
		if s.OptionWords[i] != w {
			t.Errorf("option word %d: expected %q, got %q", i, w, s.OptionWords[i])
		}
	}
}

func TestGenerate_ParaphraseOptionWords(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validParaphraseJSON()})
	gen := New(mock, DefaultConfig())

	s, err := gen.Generate(context.Background(), testInput(KindParaphrase))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Paraphrase contributes whole sentences.
	if len(s.OptionWords) != 3 {
		t.Fatalf("expected 3 option words, got %d", len(s.OptionWords))
	}
	if s.OptionWords[0] != "Books are what she reads" {
		t.Errorf("unexpected option word: %q", s.OptionWords[0])
	}
}

func TestGenerate_OptionSentences(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validParaphraseJSON()})
	gen := New(mock, DefaultConfig())

	s, err := gen.Generate(context.Background(), testInput(KindParaphrase))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sentences := s.OptionSentences()
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d", len(sentences))
	}
	if sentences[1] != "Reading books is her habit" {
		t.Errorf("unexpected sentence: %q", sentences[1])
	}
	if _, ok := s.OptionSentence(3); ok {
		t.Error("expected out-of-range lookup to fail")
	}
}

func TestGenerate_StructuralFailure(t *testing.T) {
	raw := json.RawMessage(`{
		"initial_sentence": "She reads books",
		"initial_sentence_meaning": "O kitap okur",
		"options": [
			{"sentence": "She often reads books", "expand_word": "often", "meaning": "O sık sık kitap okur"}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput(KindExpand))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "structural" {
		t.Errorf("expected structural validator, got %q", valErr.Validator)
	}
}

func TestGenerate_ExclusionFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExpandJSON()})
	gen := New(mock, DefaultConfig())

	input := testInput(KindExpand)
	input.ExcludedWords = []string{"OFTEN"} // Case-insensitive match.

	_, err := gen.Generate(context.Background(), input)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "exclusion" {
		t.Errorf("expected exclusion validator, got %q", valErr.Validator)
	}
}

func TestGenerate_ParaphraseExemptFromExclusion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validParaphraseJSON()})
	gen := New(mock, DefaultConfig())

	input := testInput(KindParaphrase)
	input.ExcludedWords = []string{"Books are what she reads"}

	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerate_ExcludedWordsInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExpandJSON()})
	gen := New(mock, DefaultConfig())

	input := testInput(KindExpand)
	input.ExcludedWords = []string{"yesterday", "quickly"}

	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	for _, w := range input.ExcludedWords {
		if !strings.Contains(userMsg, w) {
			t.Errorf("expected user message to contain %q", w)
		}
	}
	if !strings.Contains(userMsg, `"She reads books"`) {
		t.Error("expected user message to contain the original sentence")
	}
}

func TestGenerate_SchemaMatchesKind(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReplaceJSON()})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testInput(KindReplace)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "replace-step" {
		t.Errorf("expected replace-step schema on the request")
	}
}

func TestGenerate_UnknownKind(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Kind: "reverse"})
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no provider calls, got %d", mock.CallCount())
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("API error"),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput(KindExpand))
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if !strings.Contains(err.Error(), "LLM generation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestGenerateOpening(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"sentence": "Ali okula gitti çünkü sınavı vardı."}`),
	})
	gen := New(mock, DefaultConfig())

	sentence, err := gen.GenerateOpening(context.Background(), OpeningInput{
		LearningLanguage: "Turkish",
		SystemLanguage:   "English",
		Purpose:          "General Knowledge",
		Level:            "A1 - Beginner",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sentence != "Ali okula gitti çünkü sınavı vardı." {
		t.Errorf("unexpected sentence: %q", sentence)
	}
}

func TestGenerateOpening_Empty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"sentence": ""}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateOpening(context.Background(), OpeningInput{LearningLanguage: "Turkish"})
	if err == nil {
		t.Fatal("expected error for empty sentence")
	}
}

func TestFallbackOpening(t *testing.T) {
	cases := []struct {
		language string
		level    string
		want     string
	}{
		{"Turkish", "A1 - Beginner", "Ali dün okula gitmedi çünkü hastaydı."},
		{"Turkish", "B2 - Upper Intermediate", "Dün gece nerede olduğunu bilmemesine rağmen sıkıntıyla aramaya devam etti."},
		{"English", "A2 - Elementary", "My friend has a new car and it is red."},
		{"English", "C1 - Advanced", "Despite not knowing where he was last night, he continued to search in distress."},
		{"Spanish", "B1 - Intermediate", "This is a default sentence for Spanish (B1 - Intermediate)."},
	}
	for _, c := range cases {
		if got := FallbackOpening(c.language, c.level); got != c.want {
			t.Errorf("FallbackOpening(%q, %q) = %q, want %q", c.language, c.level, got, c.want)
		}
	}
}
