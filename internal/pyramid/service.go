package pyramid

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/ekremtas/lingopyr/internal/events"
	"github.com/ekremtas/lingopyr/internal/scheduler"
	"github.com/ekremtas/lingopyr/internal/stepgen"
	"github.com/ekremtas/lingopyr/internal/store"
)

// previewConcurrency bounds the parallel generation fan-out in
// PreviewNext, one branch per current-step option.
const previewConcurrency = 3

// Service drives a pyramid session from creation to completion.
type Service struct {
	pyramids store.PyramidRepo
	sched    *scheduler.Scheduler
	gen      stepgen.Generator
	events   *events.Service
}

// NewService creates a pyramid Service.
func NewService(pyramids store.PyramidRepo, sched *scheduler.Scheduler, gen stepgen.Generator, ev *events.Service) *Service {
	return &Service{
		pyramids: pyramids,
		sched:    sched,
		gen:      gen,
		events:   ev,
	}
}

// CreateInput carries the learner context for a new session.
type CreateInput struct {
	UserID           string
	Level            string
	LearningLanguage string
	SystemLanguage   string
	Purpose          string

	// SeedSentence, when non-empty, is used verbatim as the opening
	// sentence instead of generating one.
	SeedSentence string
}

// Candidate is a pre-generated next step for one option of the current
// step.
type Candidate struct {
	OptionIndex int
	Step        *stepgen.Step
}

// Create starts a new session: builds the step plan, resolves the
// opening sentence, generates step 0, and opens the activity event.
func (s *Service) Create(ctx context.Context, in CreateInput) (*store.PyramidRecord, error) {
	if in.Level == "" {
		return nil, ErrInvalidLevel
	}

	plan := s.sched.BuildPlan(in.Level)
	opening := in.SeedSentence
	if opening == "" {
		var err error
		opening, err = s.gen.GenerateOpening(ctx, stepgen.OpeningInput{
			LearningLanguage: in.LearningLanguage,
			SystemLanguage:   in.SystemLanguage,
			Purpose:          in.Purpose,
			Level:            in.Level,
		})
		if err != nil {
			opening = stepgen.FallbackOpening(in.LearningLanguage, in.Level)
		}
	}

	// First step has no history to exclude.
	first, err := s.gen.Generate(ctx, stepgen.GenerateInput{
		Kind:             plan.StepKinds[0],
		Sentence:         opening,
		LearningLanguage: in.LearningLanguage,
		SystemLanguage:   in.SystemLanguage,
		Purpose:          in.Purpose,
		Level:            in.Level,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}

	rec := &store.PyramidRecord{
		UserID:           in.UserID,
		Level:            in.Level,
		LearningLanguage: in.LearningLanguage,
		SystemLanguage:   in.SystemLanguage,
		Purpose:          in.Purpose,
		TotalSteps:       plan.TotalSteps,
		StepKinds:        kindStrings(plan.StepKinds),
		Steps:            []stepgen.Step{*first},
	}
	if err := s.pyramids.Create(ctx, rec); err != nil {
		return nil, err
	}

	ev, err := s.events.StartPyramid(ctx, in.UserID, events.PyramidDetails{
		PyramidID:  rec.ID,
		TotalSteps: rec.TotalSteps,
		StepKinds:  rec.StepKinds,
	})
	if err != nil {
		return nil, fmt.Errorf("open activity event: %w", err)
	}
	if err := s.pyramids.SetEventID(ctx, rec.ID, ev.ID); err != nil {
		return nil, err
	}
	rec.EventID = ev.ID

	return rec, nil
}

// Get loads a session, enforcing ownership.
func (s *Service) Get(ctx context.Context, id, userID string) (*store.PyramidRecord, error) {
	rec, err := s.pyramids.Get(ctx, id)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if rec.UserID != userID {
		return nil, ErrNotFound
	}
	return rec, nil
}

// List returns the user's sessions newest first.
func (s *Service) List(ctx context.Context, userID string, completed *bool, limit, offset int) ([]*store.PyramidRecord, error) {
	return s.pyramids.List(ctx, userID, store.ListOpts{
		Completed: completed,
		Limit:     limit,
		Offset:    offset,
	})
}

// Delete removes a session owned by userID.
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	err := s.pyramids.Delete(ctx, id, userID)
	if err == store.ErrNotFound {
		return ErrNotFound
	}
	return err
}

// PreviewNext eagerly generates a candidate next step for every option
// of the current step, in parallel, so the client can show the next
// step instantly once the learner picks. Read-only on the session.
// Branches that exhaust their retries are omitted; an empty result is
// not an error.
func (s *Service) PreviewNext(ctx context.Context, id, userID string) ([]Candidate, error) {
	rec, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if rec.Completed || rec.LastStepIndex >= rec.TotalSteps-1 {
		return nil, nil
	}

	cur := rec.Steps[rec.LastStepIndex]
	sentences := cur.OptionSentences()
	if len(sentences) == 0 {
		// Corrupt or partial step data. Degrade to the step's own
		// sentence rather than failing the preview.
		fmt.Fprintf(os.Stderr, "warning: pyramid %s step %d has no options, previewing from initial sentence\n",
			rec.ID, rec.LastStepIndex)
		sentences = []string{cur.InitialSentence}
	}

	nextKind, err := stepgen.ParseStepKind(rec.StepKinds[rec.LastStepIndex+1])
	if err != nil {
		return nil, err
	}
	excluded := ExcludedWords(rec.Steps)

	results := make([]*stepgen.Step, len(sentences))
	var g errgroup.Group
	g.SetLimit(previewConcurrency)
	for i, sentence := range sentences {
		g.Go(func() error {
			step, err := s.gen.Generate(ctx, stepgen.GenerateInput{
				Kind:             nextKind,
				Sentence:         sentence,
				LearningLanguage: rec.LearningLanguage,
				SystemLanguage:   rec.SystemLanguage,
				Purpose:          rec.Purpose,
				Level:            rec.Level,
				ExcludedWords:    excluded,
			})
			if err != nil {
				// A failed branch is dropped, not fatal.
				return nil
			}
			results[i] = step
			return nil
		})
	}
	g.Wait()

	var out []Candidate
	for i, step := range results {
		if step != nil {
			out = append(out, Candidate{OptionIndex: i, Step: step})
		}
	}
	return out, nil
}

// Select commits the learner's option choice onto the current step.
// stepIndex must still be the current step; selections against a step
// superseded by a later append are rejected with ErrConflict.
func (s *Service) Select(ctx context.Context, id, userID string, stepIndex, optionIndex int) (*store.PyramidRecord, error) {
	rec, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if rec.Completed {
		return nil, ErrAlreadyCompleted
	}
	if stepIndex < 0 || stepIndex > rec.LastStepIndex {
		return nil, ErrInvalidSelection
	}
	if stepIndex < rec.LastStepIndex {
		return nil, ErrConflict
	}

	step := &rec.Steps[stepIndex]
	sentence, ok := step.OptionSentence(optionIndex)
	if !ok {
		return nil, ErrInvalidSelection
	}
	step.SelectedOption = &optionIndex
	step.SelectedSentence = sentence

	if err := s.pyramids.SaveSelection(ctx, id, rec.Steps); err != nil {
		if err == store.ErrConflict {
			return nil, ErrConflict
		}
		return nil, err
	}
	return rec, nil
}

// NextStep generates the next scheduled step from the current step's
// selected sentence. Used when no preview candidate is available.
func (s *Service) NextStep(ctx context.Context, id, userID string) (*stepgen.Step, error) {
	rec, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if rec.Completed {
		return nil, ErrAlreadyCompleted
	}
	if rec.LastStepIndex >= rec.TotalSteps-1 {
		return nil, ErrSequenceExhausted
	}

	cur := rec.Steps[rec.LastStepIndex]
	if cur.SelectedSentence == "" {
		return nil, fmt.Errorf("%w: no option selected on step %d", ErrInvalidSelection, rec.LastStepIndex)
	}

	nextKind, err := stepgen.ParseStepKind(rec.StepKinds[rec.LastStepIndex+1])
	if err != nil {
		return nil, err
	}

	step, err := s.gen.Generate(ctx, stepgen.GenerateInput{
		Kind:             nextKind,
		Sentence:         cur.SelectedSentence,
		LearningLanguage: rec.LearningLanguage,
		SystemLanguage:   rec.SystemLanguage,
		Purpose:          rec.Purpose,
		Level:            rec.Level,
		ExcludedWords:    ExcludedWords(rec.Steps),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}
	return step, nil
}

// Append adds an already-generated next step, re-validated against the
// session's authoritative schedule, and advances the cursor.
func (s *Service) Append(ctx context.Context, id, userID string, next *stepgen.Step) (*store.PyramidRecord, error) {
	rec, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if rec.Completed {
		return nil, ErrAlreadyCompleted
	}
	if rec.LastStepIndex >= rec.TotalSteps-1 {
		return nil, ErrSequenceExhausted
	}
	if string(next.Kind) != rec.StepKinds[rec.LastStepIndex+1] {
		return nil, fmt.Errorf("%w: got %s, scheduled %s",
			ErrTypeMismatch, next.Kind, rec.StepKinds[rec.LastStepIndex+1])
	}

	steps := append(append([]stepgen.Step(nil), rec.Steps...), *next)
	if err := s.pyramids.AppendStep(ctx, id, rec.LastStepIndex, steps); err != nil {
		if err == store.ErrConflict {
			return nil, ErrConflict
		}
		return nil, err
	}
	rec.Steps = steps
	rec.LastStepIndex++

	s.updateEvent(ctx, rec)
	return rec, nil
}

// Complete marks the session finished and closes its activity event,
// scoring XP unless awardXP is false. Completing an already-completed
// session is a no-op returning a nil event.
func (s *Service) Complete(ctx context.Context, id, userID string, awardXP bool) (*events.Record, error) {
	rec, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if rec.Completed {
		return nil, nil
	}

	if err := s.pyramids.MarkCompleted(ctx, id); err != nil {
		if err == store.ErrConflict {
			// A concurrent Complete won; nothing left to do.
			return nil, nil
		}
		return nil, err
	}
	rec.Completed = true

	if rec.EventID == "" {
		return nil, nil
	}

	// Push final counters into the event before scoring.
	if _, err := s.events.UpdatePyramid(ctx, rec.EventID, pyramidDetails(rec)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to update pyramid event: %v\n", err)
	}

	if !awardXP {
		return s.events.CompleteWithoutXP(ctx, rec.EventID)
	}
	return s.events.Complete(ctx, rec.EventID)
}

// updateEvent mirrors session progress into the activity event.
// Best-effort: event lag must not fail the append.
func (s *Service) updateEvent(ctx context.Context, rec *store.PyramidRecord) {
	if rec.EventID == "" {
		return
	}
	if _, err := s.events.UpdatePyramid(ctx, rec.EventID, pyramidDetails(rec)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to update pyramid event: %v\n", err)
	}
}

// pyramidDetails derives the event detail payload from session state.
// A step counts as completed once the learner has selected an option.
func pyramidDetails(rec *store.PyramidRecord) events.PyramidDetails {
	d := events.PyramidDetails{
		PyramidID:  rec.ID,
		TotalSteps: rec.TotalSteps,
		StepKinds:  rec.StepKinds,
	}
	for _, st := range rec.Steps {
		if st.SelectedOption == nil {
			continue
		}
		d.StepsDetail = append(d.StepsDetail, events.StepSummary{
			Kind:             string(st.Kind),
			InitialSentence:  st.InitialSentence,
			SelectedOption:   st.SelectedOption,
			SelectedSentence: st.SelectedSentence,
		})
	}
	d.CompletedSteps = len(d.StepsDetail)
	return d
}

func kindStrings(kinds []stepgen.StepKind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
