package scheduler

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekremtas/lingopyr/internal/stepgen"
)

func testScheduler(seed uint64) *Scheduler {
	return NewWithRand(rand.New(rand.NewPCG(seed, seed)))
}

func TestTotalStepsFor(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{LevelA1, 8},
		{LevelA2, 9},
		{LevelB1, 11},
		{LevelB2, 12},
		{LevelC1, 14},
		{LevelC2, 15},
		{"unknown", DefaultTotalSteps},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalStepsFor(tt.level), tt.level)
	}
}

func TestKnownLevel(t *testing.T) {
	for _, level := range Levels {
		assert.True(t, KnownLevel(level), level)
	}
	assert.False(t, KnownLevel("B3 - Imaginary"))
	assert.False(t, KnownLevel(""))
}

func TestBuildPlan_LengthMatchesLevel(t *testing.T) {
	s := testScheduler(1)
	for _, level := range Levels {
		plan := s.BuildPlan(level)
		require.Equal(t, TotalStepsFor(level), plan.TotalSteps, level)
		require.Len(t, plan.StepKinds, plan.TotalSteps, level)
	}
}

func TestBuildPlan_UnknownLevelDefaults(t *testing.T) {
	plan := testScheduler(2).BuildPlan("Z9 - Unknown")
	assert.Equal(t, DefaultTotalSteps, plan.TotalSteps)
	assert.Len(t, plan.StepKinds, DefaultTotalSteps)
}

func TestBuildPlan_NeverStartsWithShrink(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		s := testScheduler(seed)
		for _, level := range Levels {
			plan := s.BuildPlan(level)
			require.NotEmpty(t, plan.StepKinds)
			assert.NotEqual(t, stepgen.KindShrink, plan.StepKinds[0],
				"seed %d level %s", seed, level)
		}
	}
}

func TestBuildPlan_KindMixFollowsRatios(t *testing.T) {
	s := testScheduler(3)
	for _, level := range Levels {
		plan := s.BuildPlan(level)
		ratios := ratiosFor(level)

		counts := map[stepgen.StepKind]int{}
		for _, k := range plan.StepKinds {
			counts[k]++
		}

		// Each kind count should be within 1 of its rounded target.
		// Padding, truncation, and the no-shrink-first swap can each
		// move a single slot.
		for i, kind := range stepgen.Kinds {
			target := int(math.Round(float64(plan.TotalSteps) * ratios[i]))
			diff := counts[kind] - target
			if diff < 0 {
				diff = -diff
			}
			assert.LessOrEqual(t, diff, 1,
				"level %s kind %s: count %d, target %d", level, kind, counts[kind], target)
		}
	}
}

func TestBuildPlan_Deterministic(t *testing.T) {
	a := testScheduler(7).BuildPlan(LevelB2)
	b := testScheduler(7).BuildPlan(LevelB2)
	assert.Equal(t, a.StepKinds, b.StepKinds)
}

func TestEnsureLeadKind_SwapsFirstNonShrink(t *testing.T) {
	kinds := []stepgen.StepKind{stepgen.KindShrink, stepgen.KindShrink, stepgen.KindReplace, stepgen.KindShrink}
	ensureLeadKind(kinds)
	assert.Equal(t, stepgen.KindReplace, kinds[0])
	// The shrink moved into the replace's old slot.
	assert.Equal(t, stepgen.KindShrink, kinds[2])
}

func TestEnsureLeadKind_AllShrinkForcesExpand(t *testing.T) {
	kinds := []stepgen.StepKind{stepgen.KindShrink, stepgen.KindShrink, stepgen.KindShrink}
	ensureLeadKind(kinds)
	assert.Equal(t, stepgen.KindExpand, kinds[0])
}

func TestEnsureLeadKind_Empty(t *testing.T) {
	assert.NotPanics(t, func() { ensureLeadKind(nil) })
}

func TestEnsureLeadKind_NoShrinkFirstUntouched(t *testing.T) {
	kinds := []stepgen.StepKind{stepgen.KindExpand, stepgen.KindShrink}
	ensureLeadKind(kinds)
	assert.Equal(t, stepgen.KindExpand, kinds[0])
	assert.Equal(t, stepgen.KindShrink, kinds[1])
}
