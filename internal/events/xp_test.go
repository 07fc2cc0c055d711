package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPyramidXP(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		completed int
		duration  int
		want      int
	}{
		// base 75, accuracy bonus 37, avg 90s/step gives 25% speed bonus (18).
		{"full pyramid steady pace", 10, 10, 900, 130},
		// base 75, accuracy bonus 37, avg 20s/step gives 10% bonus (7).
		{"full pyramid rushed", 10, 10, 200, 119},
		// base 75, accuracy bonus 37, avg 10s/step gives no bonus.
		{"full pyramid too fast", 10, 10, 100, 112},
		// base 50, accuracy 0.5 so bonus 12, avg 60s/step gives 12.
		{"half completed", 10, 5, 300, 74},
		// No steps completed: base only, no bonuses.
		{"nothing completed", 10, 0, 0, 25},
		// Zero total steps: accuracy is 0.
		{"zero total", 0, 0, 0, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PyramidXP(tt.total, tt.completed, tt.duration))
		})
	}
}

func TestPyramidAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, PyramidAccuracy(0, 0))
	assert.Equal(t, 0.5, PyramidAccuracy(10, 5))
	assert.Equal(t, 1.0, PyramidAccuracy(8, 8))
}

func TestVocabularyXP(t *testing.T) {
	tests := []struct {
		name      string
		words     int
		correct   int
		incorrect int
		hints     int
		want      int
	}{
		// base 100, accuracy 0.9 so bonus 45, hint ratio 0.2 so penalty 6.
		{"strong run with few hints", 20, 18, 2, 12, 139},
		// base 50, perfect accuracy bonus 25, no hints.
		{"perfect no hints", 10, 10, 0, 0, 75},
		// base 50, no answers so no bonus, all hints so penalty 15.
		{"all hints no answers", 10, 0, 0, 30, 35},
		{"all wrong all hints", 10, 0, 10, 30, 35},
		{"zero words", 0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VocabularyXP(tt.words, tt.correct, tt.incorrect, tt.hints))
		})
	}
}

func TestVocabularyXP_ZeroWordsHintRatio(t *testing.T) {
	// With zero words the hint budget is zero and the ratio defaults to
	// full penalty, which is zero anyway on a zero base.
	assert.Equal(t, 0, VocabularyXP(0, 5, 0, 10))
}

func TestVocabularyAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, VocabularyAccuracy(0, 0))
	assert.Equal(t, 0.9, VocabularyAccuracy(18, 2))
	assert.Equal(t, 1.0, VocabularyAccuracy(5, 0))
}

func TestWritingXP(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		words    int
		duration int
		want     int
	}{
		// base 240, word bonus 15, 20 wpm gives 25.
		{"good essay optimal pace", 12, 150, 450, 280},
		// base 300, word bonus capped at 50, 8 wpm gives 10.
		{"perfect score long essay", 15, 600, 4500, 360},
		// base 100, word bonus 4, 60 wpm gives nothing.
		{"too fast", 5, 40, 40, 104},
		// Zero duration: no efficiency bonus.
		{"no duration", 10, 100, 0, 210},
		// base 0, word bonus 2, 12.5 wpm still earns the pace bonus.
		{"zero score", 0, 25, 120, 27},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WritingXP(tt.score, tt.words, tt.duration))
		})
	}
}
