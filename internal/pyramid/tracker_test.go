package pyramid

import (
	"reflect"
	"testing"

	"github.com/ekremtas/lingopyr/internal/stepgen"
)

func TestExcludedWordsDedupesCaseInsensitively(t *testing.T) {
	steps := []stepgen.Step{
		{OptionWords: []string{"quickly", "Often", "red"}},
		{OptionWords: []string{"OFTEN", "blue", "Quickly", "green"}},
		{OptionWords: []string{"red", "yellow"}},
	}

	got := ExcludedWords(steps)
	want := []string{"quickly", "Often", "red", "blue", "green", "yellow"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("excluded = %v, want %v", got, want)
	}
}

func TestExcludedWordsPreservesFirstOccurrenceOrder(t *testing.T) {
	steps := []stepgen.Step{
		{OptionWords: []string{"b", "a"}},
		{OptionWords: []string{"c", "B", "d"}},
	}

	got := ExcludedWords(steps)
	want := []string{"b", "a", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("excluded = %v, want %v", got, want)
	}
}

func TestExcludedWordsEmptyHistory(t *testing.T) {
	if got := ExcludedWords(nil); len(got) != 0 {
		t.Errorf("excluded = %v, want empty", got)
	}
}
