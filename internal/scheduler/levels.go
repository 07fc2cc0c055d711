package scheduler

// Proficiency level labels, CEFR-style.
const (
	LevelA1 = "A1 - Beginner"
	LevelA2 = "A2 - Elementary"
	LevelB1 = "B1 - Intermediate"
	LevelB2 = "B2 - Upper Intermediate"
	LevelC1 = "C1 - Advanced"
	LevelC2 = "C2 - Proficient"
)

// Levels lists all known proficiency levels in ascending order.
var Levels = []string{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// DefaultTotalSteps is used when the level is not recognized.
const DefaultTotalSteps = 11

var levelSteps = map[string]int{
	LevelA1: 8,
	LevelA2: 9,
	LevelB1: 11,
	LevelB2: 12,
	LevelC1: 14,
	LevelC2: 15,
}

// Ratio vectors over the kind order [expand, paraphrase, replace, shrink].
// Lower levels lean on paraphrase and expand; higher levels get more
// shrink and paraphrase work.
var levelRatios = map[string][4]float64{
	LevelA1: {0.3, 0.4, 0.2, 0.1},
	LevelA2: {0.3, 0.3, 0.15, 0.25},
	LevelB1: {0.35, 0.2, 0.1, 0.35},
	LevelB2: {0.25, 0.3, 0.15, 0.3},
	LevelC1: {0.2, 0.35, 0.1, 0.35},
	LevelC2: {0.15, 0.35, 0.1, 0.4},
}

// KnownLevel reports whether the label is a recognized proficiency level.
func KnownLevel(level string) bool {
	_, ok := levelSteps[level]
	return ok
}

// TotalStepsFor returns the pyramid length for a level.
// Unknown levels fall back to DefaultTotalSteps.
func TotalStepsFor(level string) int {
	if n, ok := levelSteps[level]; ok {
		return n
	}
	return DefaultTotalSteps
}

// ratiosFor returns the kind ratio vector for a level.
// Unknown levels fall back to the B1 vector.
func ratiosFor(level string) [4]float64 {
	if r, ok := levelRatios[level]; ok {
		return r
	}
	return levelRatios[LevelB1]
}
