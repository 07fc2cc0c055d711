package store

import (
	"context"
	"testing"
	"time"

	"github.com/ekremtas/lingopyr/internal/events"
	"github.com/ekremtas/lingopyr/internal/llm"
	"github.com/ekremtas/lingopyr/internal/stepgen"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestUserGetOrCreate(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	u, err := repo.GetOrCreate(ctx, "ekrem")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected generated ID")
	}
	if u.Level == "" {
		t.Error("expected default level")
	}

	again, err := repo.GetOrCreate(ctx, "ekrem")
	if err != nil {
		t.Fatalf("get or create again: %v", err)
	}
	if again.ID != u.ID {
		t.Errorf("second call created a new user: %s vs %s", again.ID, u.ID)
	}
}

func TestUserAddXP(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	u, err := repo.GetOrCreate(ctx, "ekrem")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	if err := repo.AddXP(ctx, u.ID, 130); err != nil {
		t.Fatalf("add xp: %v", err)
	}
	if err := repo.AddXP(ctx, u.ID, 25); err != nil {
		t.Fatalf("add xp: %v", err)
	}

	got, err := repo.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.XP != 155 {
		t.Errorf("xp = %d, want 155", got.XP)
	}
}

func TestUserGetMissing(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.UserRepo().Get(ctx, "nope")
	if err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func newTestPyramid(userID string) *PyramidRecord {
	return &PyramidRecord{
		UserID:           userID,
		Level:            "A1 - Beginner",
		LearningLanguage: "English",
		SystemLanguage:   "Turkish",
		Purpose:          "General Knowledge",
		TotalSteps:       8,
		StepKinds:        []string{"expand", "paraphrase", "expand"},
		Steps: []stepgen.Step{{
			Kind:            stepgen.KindExpand,
			InitialSentence: "My friend has a new car and it is red.",
		}},
	}
}

func TestPyramidCreateGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.PyramidRepo()
	ctx := context.Background()

	rec := newTestPyramid("u1")
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected generated ID")
	}

	got, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalSteps != 8 {
		t.Errorf("total steps = %d, want 8", got.TotalSteps)
	}
	if len(got.Steps) != 1 {
		t.Fatalf("steps = %d, want 1", len(got.Steps))
	}
	if got.Steps[0].InitialSentence != "My friend has a new car and it is red." {
		t.Errorf("opening sentence not round-tripped: %q", got.Steps[0].InitialSentence)
	}
}

func TestPyramidListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.PyramidRepo()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		rec := newTestPyramid("u1")
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, rec.ID)
		// created_at has second precision in SQLite ordering terms.
		time.Sleep(5 * time.Millisecond)
	}

	got, err := repo.List(ctx, "u1", ListOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("listed %d, want 3", len(got))
	}
	if got[0].ID != ids[2] {
		t.Errorf("first listed = %s, want newest %s", got[0].ID, ids[2])
	}
}

func TestPyramidListCompletedFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.PyramidRepo()
	ctx := context.Background()

	open := newTestPyramid("u1")
	if err := repo.Create(ctx, open); err != nil {
		t.Fatalf("create: %v", err)
	}
	done := newTestPyramid("u1")
	if err := repo.Create(ctx, done); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.MarkCompleted(ctx, done.ID); err != nil {
		t.Fatalf("mark completed: %v", err)
	}

	completed := true
	got, err := repo.List(ctx, "u1", ListOpts{Completed: &completed})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != done.ID {
		t.Errorf("completed filter returned %d rows", len(got))
	}
}

func TestPyramidAppendStepCAS(t *testing.T) {
	s := openTestStore(t)
	repo := s.PyramidRepo()
	ctx := context.Background()

	rec := newTestPyramid("u1")
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	steps := append(rec.Steps, stepgen.Step{Kind: stepgen.KindParaphrase})
	if err := repo.AppendStep(ctx, rec.ID, 0, steps); err != nil {
		t.Fatalf("append: %v", err)
	}

	// Second append with the same expected index loses the race.
	err := repo.AppendStep(ctx, rec.ID, 0, steps)
	if err != ErrConflict {
		t.Errorf("stale append err = %v, want ErrConflict", err)
	}

	got, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.LastStepIndex != 1 {
		t.Errorf("last step index = %d, want 1", got.LastStepIndex)
	}
	if len(got.Steps) != 2 {
		t.Errorf("steps = %d, want 2", len(got.Steps))
	}
}

func TestPyramidMarkCompletedTwice(t *testing.T) {
	s := openTestStore(t)
	repo := s.PyramidRepo()
	ctx := context.Background()

	rec := newTestPyramid("u1")
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.MarkCompleted(ctx, rec.ID); err != nil {
		t.Fatalf("mark completed: %v", err)
	}
	if err := repo.MarkCompleted(ctx, rec.ID); err != ErrConflict {
		t.Errorf("second completion err = %v, want ErrConflict", err)
	}

	// Appends to a completed pyramid are rejected too.
	err := repo.AppendStep(ctx, rec.ID, 1, rec.Steps)
	if err != ErrConflict {
		t.Errorf("append after completion err = %v, want ErrConflict", err)
	}
}

func TestPyramidDeleteOwnerChecked(t *testing.T) {
	s := openTestStore(t)
	repo := s.PyramidRepo()
	ctx := context.Background()

	rec := newTestPyramid("u1")
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(ctx, rec.ID, "someone-else"); err != ErrNotFound {
		t.Errorf("foreign delete err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, rec.ID, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, rec.ID); err != ErrNotFound {
		t.Errorf("get after delete err = %v, want ErrNotFound", err)
	}
}

func TestActivityEventLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.ActivityRepo()
	ctx := context.Background()

	start := time.Now().UTC().Truncate(time.Second)
	rec := &events.Record{
		UserID:       "u1",
		Kind:         events.KindPyramid,
		ActivityRef:  "pyr-1",
		SessionStart: start,
		Timestamp:    start,
		Pyramid:      &events.PyramidDetails{PyramidID: "pyr-1", TotalSteps: 8},
	}

	id, err := repo.CreateActivityEvent(ctx, rec)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	rec.ID = id

	end := start.Add(10 * time.Minute)
	rec.SessionEnd = &end
	rec.DurationSeconds = 600
	rec.Completed = true
	rec.XPEarned = 130
	rec.Pyramid.CompletedSteps = 8

	applied, err := repo.CompleteActivityEvent(ctx, rec)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !applied {
		t.Fatal("expected completion to apply")
	}

	// A second completion must not apply.
	applied, err = repo.CompleteActivityEvent(ctx, rec)
	if err != nil {
		t.Fatalf("complete again: %v", err)
	}
	if applied {
		t.Error("expected second completion to be a no-op")
	}

	got, err := repo.GetActivityEvent(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.XPEarned != 130 {
		t.Errorf("xp = %d, want 130", got.XPEarned)
	}
	if got.Pyramid == nil || got.Pyramid.CompletedSteps != 8 {
		t.Error("pyramid details not round-tripped")
	}
}

func TestRecentCompletedEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.ActivityRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	mk := func(start time.Time, completed bool) {
		t.Helper()
		rec := &events.Record{
			UserID:       "u1",
			Kind:         events.KindPyramid,
			SessionStart: start,
			Timestamp:    start,
			Completed:    completed,
		}
		if _, err := repo.CreateActivityEvent(ctx, rec); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	mk(now.Add(-2*24*time.Hour), true)
	mk(now.Add(-10*24*time.Hour), true) // outside window
	mk(now.Add(-time.Hour), false)      // not completed

	got, err := repo.RecentCompletedEvents(ctx, "u1",
		[]events.ActivityKind{events.KindPyramid}, now.Add(-5*24*time.Hour))
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("recent returned %d, want 1", len(got))
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	logs := []llm.RequestLog{
		{Provider: "mock", Model: "mock-a", Purpose: "step-gen", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "mock", Model: "mock-a", Purpose: "step-gen", InputTokens: 120, OutputTokens: 60, Success: true},
		{Provider: "mock", Model: "mock-b", Purpose: "opening-sentence", InputTokens: 30, OutputTokens: 10, Success: false, ErrorMessage: "boom"},
	}
	for i, l := range logs {
		if err := repo.AppendLLMRequest(ctx, l); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("queried %d, want 3", len(got))
	}
	// Newest first.
	if got[0].Purpose != "opening-sentence" {
		t.Errorf("first event purpose = %q, want opening-sentence", got[0].Purpose)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	if byPurpose[0].Purpose != "step-gen" || byPurpose[0].Calls != 2 {
		t.Errorf("top purpose = %+v, want step-gen with 2 calls", byPurpose[0])
	}
	if byPurpose[0].InputTokens != 220 {
		t.Errorf("step-gen input tokens = %d, want 220", byPurpose[0].InputTokens)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
}

func TestGetLLMEventMissing(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	e, err := s.EventRepo().GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e != nil {
		t.Error("expected nil for missing event")
	}
}
