package events

// XP formulas. Bonuses truncate toward zero, matching how earned XP has
// always been displayed to users.

// PyramidAccuracy is the share of steps completed.
func PyramidAccuracy(totalSteps, completedSteps int) float64 {
	if totalSteps <= 0 {
		return 0
	}
	return float64(completedSteps) / float64(totalSteps)
}

// PyramidXP scores a completed pyramid session.
// Base is 25 plus 5 per completed step. Accuracy adds up to 50% of base.
// Steady pacing (30-120s per step) adds 25% of base, near-misses
// (15-30s or 120-180s) add 10%.
func PyramidXP(totalSteps, completedSteps, durationSeconds int) int {
	base := 25 + completedSteps*5

	accuracy := PyramidAccuracy(totalSteps, completedSteps)
	accuracyBonus := int(float64(base) * 0.5 * accuracy)

	speedBonus := 0
	if durationSeconds > 0 && completedSteps > 0 {
		avg := float64(durationSeconds) / float64(completedSteps)
		switch {
		case 30 <= avg && avg <= 120:
			speedBonus = int(float64(base) * 0.25)
		case (15 <= avg && avg < 30) || (120 < avg && avg <= 180):
			speedBonus = int(float64(base) * 0.1)
		}
	}

	return base + accuracyBonus + speedBonus
}

// VocabularyAccuracy is the share of correct answers among all attempts.
func VocabularyAccuracy(correct, incorrect int) float64 {
	attempts := correct + incorrect
	if attempts <= 0 {
		return 0
	}
	return float64(correct) / float64(attempts)
}

// VocabularyXP scores a completed vocabulary drill.
// Base is 5 per word. Accuracy adds up to 50% of base. Hint usage
// deducts up to 30% of base (3 hint types per word gives the hint
// budget). The result never drops below one XP per word.
func VocabularyXP(wordCount, correct, incorrect, totalHints int) int {
	base := wordCount * 5

	accuracyBonus := int(float64(base) * 0.5 * VocabularyAccuracy(correct, incorrect))

	possibleHints := wordCount * 3
	hintRatio := 1.0
	if possibleHints > 0 {
		hintRatio = float64(totalHints) / float64(possibleHints)
	}
	hintPenalty := int(float64(base) * 0.3 * hintRatio)

	xp := base + accuracyBonus - hintPenalty
	if xp < wordCount {
		xp = wordCount
	}
	return xp
}

// WritingXP scores a completed writing session.
// Base is 20 per rubric point (max rubric total is 15). Length adds
// 1 XP per 10 words capped at 50. Focused pacing (10-30 words per
// minute) adds 25, near-misses (5-10 or 30-50 wpm) add 10.
func WritingXP(totalScore, wordCount, durationSeconds int) int {
	base := totalScore * 20

	wordBonus := wordCount / 10
	if wordBonus > 50 {
		wordBonus = 50
	}

	efficiencyBonus := 0
	if durationSeconds > 0 && wordCount > 0 {
		wpm := float64(wordCount) / float64(durationSeconds) * 60
		switch {
		case 10 <= wpm && wpm <= 30:
			efficiencyBonus = 25
		case (5 <= wpm && wpm < 10) || (30 < wpm && wpm <= 50):
			efficiencyBonus = 10
		}
	}

	return base + wordBonus + efficiencyBonus
}
