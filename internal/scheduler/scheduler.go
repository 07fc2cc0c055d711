package scheduler

import (
	"math"
	"math/rand/v2"

	"github.com/ekremtas/lingopyr/internal/stepgen"
)

// Plan is the step schedule for one pyramid session.
type Plan struct {
	Level      string
	TotalSteps int
	StepKinds  []stepgen.StepKind
}

// Scheduler builds step plans from a learner's proficiency level.
type Scheduler struct {
	rng *rand.Rand
}

// New creates a Scheduler with a randomly seeded source.
func New() *Scheduler {
	return NewWithRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewWithRand creates a Scheduler with the given source. Tests use this
// for deterministic plans.
func NewWithRand(rng *rand.Rand) *Scheduler {
	return &Scheduler{rng: rng}
}

// BuildPlan creates the step schedule for a level. The plan length comes
// from the level's step budget and the kind mix from its ratio vector,
// shuffled, with the constraint that the first step is never a shrink.
func (s *Scheduler) BuildPlan(level string) Plan {
	total := TotalStepsFor(level)
	ratios := ratiosFor(level)

	kinds := make([]stepgen.StepKind, 0, total)
	for i, kind := range stepgen.Kinds {
		n := int(math.Round(float64(total) * ratios[i]))
		for range n {
			kinds = append(kinds, kind)
		}
	}

	// Rounding can land above or below the budget. Pad with random kinds
	// or truncate to hit it exactly.
	for len(kinds) < total {
		kinds = append(kinds, stepgen.Kinds[s.rng.IntN(len(stepgen.Kinds))])
	}
	if len(kinds) > total {
		kinds = kinds[:total]
	}

	s.rng.Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})

	ensureLeadKind(kinds)

	return Plan{
		Level:      level,
		TotalSteps: total,
		StepKinds:  kinds,
	}
}

// ensureLeadKind guarantees the first step isn't a shrink. A shrink on the
// opening sentence can collapse it below a usable length. Swaps in the
// first non-shrink kind, or forces an expand when every slot is shrink.
func ensureLeadKind(kinds []stepgen.StepKind) {
	if len(kinds) == 0 || kinds[0] != stepgen.KindShrink {
		return
	}
	for i := 1; i < len(kinds); i++ {
		if kinds[i] != stepgen.KindShrink {
			kinds[0], kinds[i] = kinds[i], kinds[0]
			return
		}
	}
	kinds[0] = stepgen.KindExpand
}
