package stepgen

import (
	"fmt"
	"strings"
)

// FallbackOpening returns a canned opening sentence for when generation
// fails. The sentence matches the opening prompt's shape rules for the
// language and level.
func FallbackOpening(learningLanguage, level string) string {
	beginner := strings.HasPrefix(level, "A")

	switch learningLanguage {
	case "Turkish":
		if beginner {
			return "Ali dün okula gitmedi çünkü hastaydı."
		}
		return "Dün gece nerede olduğunu bilmemesine rağmen sıkıntıyla aramaya devam etti."
	case "English":
		if beginner {
			return "My friend has a new car and it is red."
		}
		return "Despite not knowing where he was last night, he continued to search in distress."
	}

	return fmt.Sprintf("This is a default sentence for %s (%s).", learningLanguage, level)
}
