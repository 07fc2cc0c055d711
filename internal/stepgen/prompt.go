package stepgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a language tutor generating sentence transformation exercises for a pyramid drill.

Rules:
- All generated sentences and all added, removed, or replaced words must be written exclusively in the learning language.
- All meanings and translations must be written exclusively in the system language.
- Never mix languages within a single field.
- Generated content must follow the spelling, grammar, and vocabulary conventions of its language.
- Sentence difficulty must be appropriate for the learner's stated proficiency level.
- Sentences should be relevant to the learner's stated purpose.
- Each alternative must be unique in terms of the word or phrase it touches.
- Translations must be correct and natural.
- Do not use any word from the excluded words list.`

// buildUserMessage constructs the user message for a step generation request.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Learning language: %s\n", input.LearningLanguage)
	fmt.Fprintf(&b, "System language: %s\n", input.SystemLanguage)
	fmt.Fprintf(&b, "Learner level: %s\n", input.Level)
	fmt.Fprintf(&b, "Purpose: %s\n", input.Purpose)

	b.WriteString("\nTask: ")
	b.WriteString(taskFor(input.Kind))
	b.WriteString("\n")

	b.WriteString("\nWords used in previous steps (do not reuse any of these):\n")
	b.WriteString(buildExcluded(input.ExcludedWords, cfg.MaxExcludedWords))

	fmt.Fprintf(&b, "\n\nOriginal sentence: %q\n", input.Sentence)

	return b.String()
}

// taskFor returns the kind-specific task instruction.
func taskFor(kind StepKind) string {
	switch kind {
	case KindExpand:
		return "Create three alternative sentences by adding exactly one word or short phrase to the original sentence. " +
			"The added element must not change the core meaning, only enhance or specify it. " +
			"State the added word or phrase for each alternative."
	case KindShrink:
		return "Create three alternative sentences by removing exactly one word or short phrase from the original sentence. " +
			"Each shortened sentence must keep correct grammar and stay semantically coherent. " +
			"State the removed word or phrase for each alternative."
	case KindReplace:
		return "Create three alternative sentences by replacing exactly one word in the original sentence with a new word. " +
			"Each alternative must have a different meaning than the original due to the replacement. " +
			"State both the replaced word and the new word for each alternative."
	case KindParaphrase:
		return "Create three alternative paraphrased sentences that keep the original meaning. " +
			"Use vocabulary and grammar at or slightly below the learner's level."
	}
	return ""
}

// buildOpeningMessage constructs the user message for an opening sentence request.
func buildOpeningMessage(input OpeningInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Learning language: %s\n", input.LearningLanguage)
	fmt.Fprintf(&b, "Learner level: %s\n", input.Level)
	fmt.Fprintf(&b, "Purpose: %s\n", input.Purpose)

	b.WriteString("\nTask: Create one simple, grammatically correct sentence in the learning language for a pyramid exercise.\n")
	b.WriteString("- The sentence should be 4-12 words: shorter for lower levels, longer for higher levels.\n")
	b.WriteString("- Use common vocabulary but include 1-2 less common words.\n")
	b.WriteString("- Include at least one conjunction or transition word.\n")
	b.WriteString("- Avoid idioms, slang, and common fixed phrases.\n")

	return b.String()
}

// buildExcluded formats the excluded words list, respecting the max limit.
// Returns "None" if there are no excluded words.
func buildExcluded(words []string, max int) string {
	if len(words) == 0 {
		return "None"
	}

	// Keep only the most recent N words.
	if max > 0 && len(words) > max {
		words = words[len(words)-max:]
	}

	return strings.Join(words, ", ")
}
