package pyramid

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ekremtas/lingopyr/internal/events"
	"github.com/ekremtas/lingopyr/internal/scheduler"
	"github.com/ekremtas/lingopyr/internal/stepgen"
	"github.com/ekremtas/lingopyr/internal/store"
)

// memRepo is an in-memory store.PyramidRepo honoring the repo's CAS
// semantics.
type memRepo struct {
	mu      sync.Mutex
	records map[string]*store.PyramidRecord
	nextID  int
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[string]*store.PyramidRecord)}
}

func (m *memRepo) Create(_ context.Context, rec *store.PyramidRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	rec.ID = fmt.Sprintf("pyr-%d", m.nextID)
	rec.CreatedAt = time.Now()
	cp := *rec
	m.records[rec.ID] = &cp
	return nil
}

func (m *memRepo) Get(_ context.Context, id string) (*store.PyramidRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	cp.Steps = append([]stepgen.Step(nil), rec.Steps...)
	return &cp, nil
}

func (m *memRepo) List(_ context.Context, userID string, opts store.ListOpts) ([]*store.PyramidRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*store.PyramidRecord
	for _, rec := range m.records {
		if rec.UserID != userID {
			continue
		}
		if opts.Completed != nil && rec.Completed != *opts.Completed {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memRepo) SaveSelection(_ context.Context, id string, steps []stepgen.Step) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok || rec.Completed {
		return store.ErrConflict
	}
	rec.Steps = append([]stepgen.Step(nil), steps...)
	return nil
}

func (m *memRepo) AppendStep(_ context.Context, id string, expectedLast int, steps []stepgen.Step) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok || rec.Completed || rec.LastStepIndex != expectedLast {
		return store.ErrConflict
	}
	rec.Steps = append([]stepgen.Step(nil), steps...)
	rec.LastStepIndex = expectedLast + 1
	return nil
}

func (m *memRepo) SetEventID(_ context.Context, id, eventID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return store.ErrNotFound
	}
	rec.EventID = eventID
	return nil
}

func (m *memRepo) MarkCompleted(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok || rec.Completed {
		return store.ErrConflict
	}
	rec.Completed = true
	return nil
}

func (m *memRepo) Delete(_ context.Context, id, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok || rec.UserID != userID {
		return store.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

// memEventStore is an in-memory events.Store.
type memEventStore struct {
	mu     sync.Mutex
	events map[string]*events.Record
	logs   []events.LogEntry
	xp     map[string]int
	nextID int
}

func newMemEventStore() *memEventStore {
	return &memEventStore{
		events: make(map[string]*events.Record),
		xp:     make(map[string]int),
	}
}

func (m *memEventStore) CreateActivityEvent(_ context.Context, rec *events.Record) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := fmt.Sprintf("evt-%d", m.nextID)
	cp := *rec
	cp.ID = id
	m.events[id] = &cp
	return id, nil
}

func (m *memEventStore) GetActivityEvent(_ context.Context, id string) (*events.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.events[id]
	if !ok {
		return nil, fmt.Errorf("event %s not found", id)
	}
	cp := *rec
	return &cp, nil
}

func (m *memEventStore) UpdateActivityEvent(_ context.Context, rec *events.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[rec.ID]; !ok {
		return fmt.Errorf("event %s not found", rec.ID)
	}
	cp := *rec
	m.events[rec.ID] = &cp
	return nil
}

func (m *memEventStore) CompleteActivityEvent(_ context.Context, rec *events.Record) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.events[rec.ID]
	if !ok {
		return false, fmt.Errorf("event %s not found", rec.ID)
	}
	if stored.Completed {
		return false, nil
	}
	cp := *rec
	m.events[rec.ID] = &cp
	return true, nil
}

func (m *memEventStore) AddUserXP(_ context.Context, userID string, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.xp[userID] += delta
	return nil
}

func (m *memEventStore) AppendActivityLog(_ context.Context, entry events.LogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, entry)
	return nil
}

func (m *memEventStore) RecentCompletedEvents(_ context.Context, userID string, kinds []events.ActivityKind, cutoff time.Time) ([]*events.Record, error) {
	return nil, nil
}

// fakeGen is a deterministic stepgen.Generator. Sentences listed in
// failFor make Generate fail; openingErr makes GenerateOpening fail.
type fakeGen struct {
	mu           sync.Mutex
	calls        []stepgen.GenerateInput
	openingCalls []stepgen.OpeningInput
	failFor      map[string]bool
	failAll      bool
	openingErr   error
	opening      string
}

func newFakeGen() *fakeGen {
	return &fakeGen{opening: "The cat sat on the mat.", failFor: make(map[string]bool)}
}

func (g *fakeGen) Generate(_ context.Context, in stepgen.GenerateInput) (*stepgen.Step, error) {
	g.mu.Lock()
	g.calls = append(g.calls, in)
	g.mu.Unlock()

	if g.failAll || g.failFor[in.Sentence] {
		return nil, errors.New("generation failed")
	}
	return makeStep(in.Kind, in.Sentence), nil
}

func (g *fakeGen) GenerateOpening(_ context.Context, in stepgen.OpeningInput) (string, error) {
	g.mu.Lock()
	g.openingCalls = append(g.openingCalls, in)
	g.mu.Unlock()

	if g.openingErr != nil {
		return "", g.openingErr
	}
	return g.opening, nil
}

// makeStep builds a step of the given kind with three options derived
// from the source sentence.
func makeStep(kind stepgen.StepKind, sentence string) *stepgen.Step {
	s := &stepgen.Step{
		Kind:                   kind,
		InitialSentence:        sentence,
		InitialSentenceMeaning: "meaning of: " + sentence,
	}
	for i := 0; i < 3; i++ {
		word := fmt.Sprintf("word%d", i)
		alt := fmt.Sprintf("%s (%s)", sentence, word)
		switch kind {
		case stepgen.KindExpand:
			s.ExpandOptions = append(s.ExpandOptions, stepgen.ExpandOption{
				Sentence: alt, ExpandWord: word, Meaning: "m",
			})
			s.OptionWords = append(s.OptionWords, word)
		case stepgen.KindShrink:
			s.ShrinkOptions = append(s.ShrinkOptions, stepgen.ShrinkOption{
				Sentence: alt, RemovedWord: word, Meaning: "m",
			})
			s.OptionWords = append(s.OptionWords, word)
		case stepgen.KindReplace:
			changed := word + "x"
			s.ReplaceOptions = append(s.ReplaceOptions, stepgen.ReplaceOption{
				Sentence: alt, ReplacedWord: word, ChangedWord: changed, Meaning: "m",
			})
			s.OptionWords = append(s.OptionWords, word, changed)
		case stepgen.KindParaphrase:
			s.ParaphraseOptions = append(s.ParaphraseOptions, stepgen.ParaphraseOption{
				ParaphrasedSentence: alt, Meaning: "m",
			})
			s.OptionWords = append(s.OptionWords, alt)
		}
	}
	return s
}

func testService(gen stepgen.Generator) (*Service, *memRepo, *memEventStore) {
	repo := newMemRepo()
	evStore := newMemEventStore()
	sched := scheduler.NewWithRand(rand.New(rand.NewPCG(7, 7)))
	svc := NewService(repo, sched, gen, events.NewService(evStore))
	return svc, repo, evStore
}

func createInput() CreateInput {
	return CreateInput{
		UserID:           "u1",
		Level:            scheduler.LevelA1,
		LearningLanguage: "English",
		SystemLanguage:   "Turkish",
		Purpose:          "General Knowledge",
	}
}

func TestCreateBuildsSession(t *testing.T) {
	gen := newFakeGen()
	svc, _, evStore := testService(gen)

	rec, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if rec.TotalSteps != 8 {
		t.Errorf("total steps = %d, want 8 for A1", rec.TotalSteps)
	}
	if len(rec.StepKinds) != 8 {
		t.Errorf("step kinds = %d, want 8", len(rec.StepKinds))
	}
	if rec.StepKinds[0] == string(stepgen.KindShrink) {
		t.Error("first step must not be a shrink")
	}
	if len(rec.Steps) != 1 {
		t.Fatalf("steps = %d, want 1", len(rec.Steps))
	}
	if string(rec.Steps[0].Kind) != rec.StepKinds[0] {
		t.Errorf("step 0 kind %s does not match schedule %s", rec.Steps[0].Kind, rec.StepKinds[0])
	}
	if rec.Steps[0].InitialSentence != gen.opening {
		t.Errorf("step 0 sentence = %q, want opening %q", rec.Steps[0].InitialSentence, gen.opening)
	}

	if rec.EventID == "" {
		t.Fatal("expected an activity event to be opened")
	}
	ev := evStore.events[rec.EventID]
	if ev == nil || ev.Kind != events.KindPyramid || ev.ActivityRef != rec.ID {
		t.Errorf("activity event not opened correctly: %+v", ev)
	}
}

func TestCreateRequiresLevel(t *testing.T) {
	svc, _, _ := testService(newFakeGen())

	in := createInput()
	in.Level = ""
	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("err = %v, want ErrInvalidLevel", err)
	}
}

func TestCreateUsesSeedSentence(t *testing.T) {
	gen := newFakeGen()
	svc, _, _ := testService(gen)

	in := createInput()
	in.SeedSentence = "Benim arabam kırmızı."
	rec, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(gen.openingCalls) != 0 {
		t.Error("opening generation must be skipped when a seed is supplied")
	}
	if rec.Steps[0].InitialSentence != in.SeedSentence {
		t.Errorf("step 0 sentence = %q, want seed", rec.Steps[0].InitialSentence)
	}
}

func TestCreateFallsBackWhenOpeningFails(t *testing.T) {
	gen := newFakeGen()
	gen.openingErr = errors.New("provider down")
	svc, _, _ := testService(gen)

	rec, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	want := stepgen.FallbackOpening("English", scheduler.LevelA1)
	if rec.Steps[0].InitialSentence != want {
		t.Errorf("step 0 sentence = %q, want fallback %q", rec.Steps[0].InitialSentence, want)
	}
}

func TestCreateContentUnavailable(t *testing.T) {
	gen := newFakeGen()
	gen.failAll = true
	svc, _, _ := testService(gen)

	_, err := svc.Create(context.Background(), createInput())
	if !errors.Is(err, ErrContentUnavailable) {
		t.Errorf("err = %v, want ErrContentUnavailable", err)
	}
}

func TestSelectCommitsChoice(t *testing.T) {
	svc, _, _ := testService(newFakeGen())
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Select(ctx, rec.ID, "u1", 0, 1)
	if err != nil {
		t.Fatalf("select: %v", err)
	}

	step := got.Steps[0]
	if step.SelectedOption == nil || *step.SelectedOption != 1 {
		t.Fatal("selected option not recorded")
	}
	want, _ := step.OptionSentence(1)
	if step.SelectedSentence != want {
		t.Errorf("selected sentence = %q, want %q", step.SelectedSentence, want)
	}

	// Re-selecting the same index yields the same data.
	again, err := svc.Select(ctx, rec.ID, "u1", 0, 1)
	if err != nil {
		t.Fatalf("re-select: %v", err)
	}
	if again.Steps[0].SelectedSentence != want {
		t.Error("re-selection changed the selected sentence")
	}
}

func TestSelectRejectsBadIndex(t *testing.T) {
	svc, _, _ := testService(newFakeGen())
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Select(ctx, rec.ID, "u1", 0, 3); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("option 3 of 3: err = %v, want ErrInvalidSelection", err)
	}
	if _, err := svc.Select(ctx, rec.ID, "u1", 0, -1); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("option -1: err = %v, want ErrInvalidSelection", err)
	}
	if _, err := svc.Select(ctx, rec.ID, "u1", 5, 0); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("future step: err = %v, want ErrInvalidSelection", err)
	}
}

func TestSelectSupersededStep(t *testing.T) {
	svc, _, _ := testService(newFakeGen())
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Select(ctx, rec.ID, "u1", 0, 0); err != nil {
		t.Fatalf("select: %v", err)
	}
	next, err := svc.NextStep(ctx, rec.ID, "u1")
	if err != nil {
		t.Fatalf("next step: %v", err)
	}
	if _, err := svc.Append(ctx, rec.ID, "u1", next); err != nil {
		t.Fatalf("append: %v", err)
	}

	// Step 0 is now immutable.
	if _, err := svc.Select(ctx, rec.ID, "u1", 0, 2); !errors.Is(err, ErrConflict) {
		t.Errorf("superseded select err = %v, want ErrConflict", err)
	}
}

func TestPreviewNextGeneratesPerOption(t *testing.T) {
	gen := newFakeGen()
	svc, _, _ := testService(gen)
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	candidates, err := svc.PreviewNext(ctx, rec.ID, "u1")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(candidates) != 3 {
		t.Fatalf("candidates = %d, want 3", len(candidates))
	}

	nextKind := rec.StepKinds[1]
	optionSentences := rec.Steps[0].OptionSentences()
	for _, c := range candidates {
		if string(c.Step.Kind) != nextKind {
			t.Errorf("candidate kind = %s, want %s", c.Step.Kind, nextKind)
		}
		if c.Step.InitialSentence != optionSentences[c.OptionIndex] {
			t.Errorf("candidate %d generated from %q, want option sentence %q",
				c.OptionIndex, c.Step.InitialSentence, optionSentences[c.OptionIndex])
		}
	}
}

func TestPreviewNextPartialFailure(t *testing.T) {
	gen := newFakeGen()
	svc, _, _ := testService(gen)
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Fail the branch for option 1 only.
	sentences := rec.Steps[0].OptionSentences()
	gen.failFor[sentences[1]] = true

	candidates, err := svc.PreviewNext(ctx, rec.ID, "u1")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("candidates = %d, want 2 after one branch failed", len(candidates))
	}
	for _, c := range candidates {
		if c.OptionIndex == 1 {
			t.Error("failed branch must be omitted")
		}
	}
}

func TestPreviewNextPassesExclusions(t *testing.T) {
	gen := newFakeGen()
	svc, _, _ := testService(gen)
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	before := len(gen.calls)
	if _, err := svc.PreviewNext(ctx, rec.ID, "u1"); err != nil {
		t.Fatalf("preview: %v", err)
	}

	want := ExcludedWords(rec.Steps)
	for _, call := range gen.calls[before:] {
		if strings.Join(call.ExcludedWords, ",") != strings.Join(want, ",") {
			t.Errorf("exclusions = %v, want %v", call.ExcludedWords, want)
		}
	}
}

func TestPreviewNextTerminalStates(t *testing.T) {
	gen := newFakeGen()
	svc, repo, _ := testService(gen)
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Completed session previews empty.
	repo.records[rec.ID].Completed = true
	candidates, err := svc.PreviewNext(ctx, rec.ID, "u1")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("completed session previewed %d candidates", len(candidates))
	}

	// Final step previews empty.
	repo.records[rec.ID].Completed = false
	repo.records[rec.ID].LastStepIndex = rec.TotalSteps - 1
	candidates, err = svc.PreviewNext(ctx, rec.ID, "u1")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("final step previewed %d candidates", len(candidates))
	}
}

func TestPreviewNextNoOptionsFallsBack(t *testing.T) {
	gen := newFakeGen()
	svc, repo, _ := testService(gen)
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Strip the current step's options to simulate partial data.
	stored := repo.records[rec.ID]
	stored.Steps[0].ExpandOptions = nil
	stored.Steps[0].ShrinkOptions = nil
	stored.Steps[0].ReplaceOptions = nil
	stored.Steps[0].ParaphraseOptions = nil

	before := len(gen.calls)
	candidates, err := svc.PreviewNext(ctx, rec.ID, "u1")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("candidates = %d, want 1 from the initial sentence", len(candidates))
	}
	if gen.calls[before].Sentence != rec.Steps[0].InitialSentence {
		t.Errorf("fallback generated from %q, want initial sentence", gen.calls[before].Sentence)
	}
}

func TestAppendValidatesKind(t *testing.T) {
	svc, _, _ := testService(newFakeGen())
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Pick a kind that disagrees with the schedule.
	scheduled := rec.StepKinds[1]
	var wrong stepgen.StepKind
	for _, k := range stepgen.Kinds {
		if string(k) != scheduled {
			wrong = k
			break
		}
	}

	_, err = svc.Append(ctx, rec.ID, "u1", makeStep(wrong, "x"))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("err = %v, want ErrTypeMismatch", err)
	}
}

func TestAppendAdvancesCursor(t *testing.T) {
	svc, _, _ := testService(newFakeGen())
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Select(ctx, rec.ID, "u1", 0, 0); err != nil {
		t.Fatalf("select: %v", err)
	}
	next, err := svc.NextStep(ctx, rec.ID, "u1")
	if err != nil {
		t.Fatalf("next step: %v", err)
	}

	got, err := svc.Append(ctx, rec.ID, "u1", next)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if got.LastStepIndex != 1 {
		t.Errorf("last step index = %d, want 1", got.LastStepIndex)
	}
	if len(got.Steps) != 2 {
		t.Errorf("steps = %d, want 2", len(got.Steps))
	}
}

func TestAppendSequenceExhausted(t *testing.T) {
	svc, repo, _ := testService(newFakeGen())
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	repo.records[rec.ID].LastStepIndex = rec.TotalSteps - 1

	_, err = svc.Append(ctx, rec.ID, "u1", makeStep(stepgen.KindExpand, "x"))
	if !errors.Is(err, ErrSequenceExhausted) {
		t.Errorf("err = %v, want ErrSequenceExhausted", err)
	}
}

func TestNextStepRequiresSelection(t *testing.T) {
	svc, _, _ := testService(newFakeGen())
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.NextStep(ctx, rec.ID, "u1")
	if !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("err = %v, want ErrInvalidSelection", err)
	}
}

func TestCompleteAwardsXPOnce(t *testing.T) {
	svc, _, evStore := testService(newFakeGen())
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Select(ctx, rec.ID, "u1", 0, 0); err != nil {
		t.Fatalf("select: %v", err)
	}

	ev, err := svc.Complete(ctx, rec.ID, "u1", true)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if ev == nil || !ev.Completed {
		t.Fatal("expected a completed event")
	}
	if ev.XPEarned <= 0 {
		t.Errorf("xp = %d, want > 0", ev.XPEarned)
	}
	if evStore.xp["u1"] != ev.XPEarned {
		t.Errorf("credited xp = %d, want %d", evStore.xp["u1"], ev.XPEarned)
	}
	if ev.Pyramid == nil || ev.Pyramid.CompletedSteps != 1 {
		t.Errorf("completed steps not mirrored into the event: %+v", ev.Pyramid)
	}

	// Second completion is a no-op.
	again, err := svc.Complete(ctx, rec.ID, "u1", true)
	if err != nil {
		t.Fatalf("complete again: %v", err)
	}
	if again != nil {
		t.Error("expected nil event on repeat completion")
	}
	if evStore.xp["u1"] != ev.XPEarned {
		t.Error("xp must not be credited twice")
	}
}

func TestCompleteSkipXP(t *testing.T) {
	svc, _, evStore := testService(newFakeGen())
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ev, err := svc.Complete(ctx, rec.ID, "u1", false)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if ev == nil || !ev.Completed {
		t.Fatal("expected a completed event")
	}
	if ev.XPEarned != 0 {
		t.Errorf("xp = %d, want 0", ev.XPEarned)
	}
	if evStore.xp["u1"] != 0 {
		t.Errorf("credited xp = %d, want 0", evStore.xp["u1"])
	}
}

func TestMutationsRejectCompletedSession(t *testing.T) {
	svc, _, _ := testService(newFakeGen())
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Complete(ctx, rec.ID, "u1", false); err != nil {
		t.Fatalf("complete: %v", err)
	}

	if _, err := svc.Select(ctx, rec.ID, "u1", 0, 0); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("select err = %v, want ErrAlreadyCompleted", err)
	}
	if _, err := svc.Append(ctx, rec.ID, "u1", makeStep(stepgen.KindExpand, "x")); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("append err = %v, want ErrAlreadyCompleted", err)
	}
}

func TestOwnershipEnforced(t *testing.T) {
	svc, _, _ := testService(newFakeGen())
	ctx := context.Background()

	rec, err := svc.Create(ctx, createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(ctx, rec.ID, "intruder"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, rec.ID, "intruder"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, rec.ID, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
