package stepgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ekremtas/lingopyr/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// stepEnvelope is the raw LLM response before validation. Options is
// decoded per kind once the envelope is parsed.
type stepEnvelope struct {
	InitialSentence        string          `json:"initial_sentence"`
	InitialSentenceMeaning string          `json:"initial_sentence_meaning"`
	Options                json.RawMessage `json:"options"`
}

// Generate produces a single step for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Step, error) {
	ctx = llm.WithPurpose(ctx, "step-gen")

	schema := schemaFor(input.Kind)
	if schema == nil {
		return nil, fmt.Errorf("unknown step kind: %q", input.Kind)
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      schema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var env stepEnvelope
	if err := json.Unmarshal(resp.Content, &env); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	s := &Step{
		Kind:                   input.Kind,
		InitialSentence:        env.InitialSentence,
		InitialSentenceMeaning: env.InitialSentenceMeaning,
	}

	switch input.Kind {
	case KindExpand:
		err = json.Unmarshal(env.Options, &s.ExpandOptions)
	case KindShrink:
		err = json.Unmarshal(env.Options, &s.ShrinkOptions)
	case KindReplace:
		err = json.Unmarshal(env.Options, &s.ReplaceOptions)
	case KindParaphrase:
		err = json.Unmarshal(env.Options, &s.ParaphraseOptions)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s options: %w", input.Kind, err)
	}

	s.OptionWords = collectOptionWords(s)

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(s, input); verr != nil {
			return nil, verr
		}
	}

	return s, nil
}

// openingOutput is the raw LLM response for an opening sentence.
type openingOutput struct {
	Sentence string `json:"sentence"`
}

// GenerateOpening produces the pyramid's first sentence.
func (g *LLMGenerator) GenerateOpening(ctx context.Context, input OpeningInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "opening-sentence")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildOpeningMessage(input)},
		},
		Schema:      OpeningSchema,
		MaxTokens:   256,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM generation failed: %w", err)
	}

	var out openingOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if out.Sentence == "" {
		return "", fmt.Errorf("LLM returned an empty opening sentence")
	}

	return out.Sentence, nil
}
