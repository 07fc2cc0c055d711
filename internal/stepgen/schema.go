package stepgen

import "github.com/ekremtas/lingopyr/internal/llm"

// stepSchema builds the common envelope shared by all step kinds.
// Each kind supplies its own option item properties.
func stepSchema(name, description string, optionProps map[string]any, optionRequired []any) *llm.Schema {
	return &llm.Schema{
		Name:        name,
		Description: description,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"initial_sentence": map[string]any{
					"type":        "string",
					"description": "The original sentence, in the learning language",
				},
				"initial_sentence_meaning": map[string]any{
					"type":        "string",
					"description": "Meaning of the original sentence, in the system language",
				},
				"options": map[string]any{
					"type":        "array",
					"minItems":    3,
					"maxItems":    3,
					"description": "Exactly 3 alternative sentences",
					"items": map[string]any{
						"type":                 "object",
						"properties":           optionProps,
						"required":             optionRequired,
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"initial_sentence", "initial_sentence_meaning", "options"},
			"additionalProperties": false,
		},
	}
}

// ExpandSchema defines the JSON schema for expand step responses.
var ExpandSchema = stepSchema(
	"expand-step",
	"Three alternatives created by adding exactly one word or phrase",
	map[string]any{
		"sentence": map[string]any{
			"type":        "string",
			"description": "The alternative sentence, in the learning language",
		},
		"expand_word": map[string]any{
			"type":        "string",
			"description": "The added word or phrase, in the learning language",
		},
		"meaning": map[string]any{
			"type":        "string",
			"description": "Meaning of the alternative sentence, in the system language",
		},
	},
	[]any{"sentence", "expand_word", "meaning"},
)

// ShrinkSchema defines the JSON schema for shrink step responses.
var ShrinkSchema = stepSchema(
	"shrink-step",
	"Three alternatives created by removing exactly one word or phrase",
	map[string]any{
		"sentence": map[string]any{
			"type":        "string",
			"description": "The alternative sentence, in the learning language",
		},
		"removed_word": map[string]any{
			"type":        "string",
			"description": "The removed word or phrase, in the learning language",
		},
		"meaning": map[string]any{
			"type":        "string",
			"description": "Meaning of the alternative sentence, in the system language",
		},
	},
	[]any{"sentence", "removed_word", "meaning"},
)

// ReplaceSchema defines the JSON schema for replace step responses.
var ReplaceSchema = stepSchema(
	"replace-step",
	"Three alternatives created by replacing exactly one word",
	map[string]any{
		"sentence": map[string]any{
			"type":        "string",
			"description": "The alternative sentence, in the learning language",
		},
		"replaced_word": map[string]any{
			"type":        "string",
			"description": "The original word that was replaced, in the learning language",
		},
		"changed_word": map[string]any{
			"type":        "string",
			"description": "The new word used for replacement, in the learning language",
		},
		"meaning": map[string]any{
			"type":        "string",
			"description": "Meaning of the alternative sentence, in the system language",
		},
	},
	[]any{"sentence", "replaced_word", "changed_word", "meaning"},
)

// ParaphraseSchema defines the JSON schema for paraphrase step responses.
var ParaphraseSchema = stepSchema(
	"paraphrase-step",
	"Three alternative paraphrases expressing the same meaning",
	map[string]any{
		"paraphrased_sentence": map[string]any{
			"type":        "string",
			"description": "The paraphrased sentence, in the learning language",
		},
		"meaning": map[string]any{
			"type":        "string",
			"description": "Meaning of the paraphrased sentence, in the system language",
		},
	},
	[]any{"paraphrased_sentence", "meaning"},
)

// OpeningSchema defines the JSON schema for opening sentence responses.
var OpeningSchema = &llm.Schema{
	Name:        "opening-sentence",
	Description: "A single opening sentence for a pyramid exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentence": map[string]any{
				"type":        "string",
				"description": "The opening sentence, in the learning language",
			},
		},
		"required":             []any{"sentence"},
		"additionalProperties": false,
	},
}

// schemaFor returns the schema for a step kind.
func schemaFor(kind StepKind) *llm.Schema {
	switch kind {
	case KindExpand:
		return ExpandSchema
	case KindShrink:
		return ShrinkSchema
	case KindReplace:
		return ReplaceSchema
	case KindParaphrase:
		return ParaphraseSchema
	}
	return nil
}
