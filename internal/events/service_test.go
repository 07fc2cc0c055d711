package events

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for service tests.
type memStore struct {
	events   map[string]*Record
	logs     []LogEntry
	xp       map[string]int
	nextID   int
	failNext error
}

func newMemStore() *memStore {
	return &memStore{
		events: make(map[string]*Record),
		xp:     make(map[string]int),
	}
}

func (m *memStore) CreateActivityEvent(_ context.Context, rec *Record) (string, error) {
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return "", err
	}
	m.nextID++
	id := fmt.Sprintf("evt-%d", m.nextID)
	cp := *rec
	cp.ID = id
	m.events[id] = &cp
	return id, nil
}

func (m *memStore) GetActivityEvent(_ context.Context, id string) (*Record, error) {
	rec, ok := m.events[id]
	if !ok {
		return nil, fmt.Errorf("event %s not found", id)
	}
	cp := *rec
	return &cp, nil
}

func (m *memStore) UpdateActivityEvent(_ context.Context, rec *Record) error {
	if _, ok := m.events[rec.ID]; !ok {
		return fmt.Errorf("event %s not found", rec.ID)
	}
	cp := *rec
	m.events[rec.ID] = &cp
	return nil
}

func (m *memStore) CompleteActivityEvent(_ context.Context, rec *Record) (bool, error) {
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

func (m *memStore) AddUserXP(_ context.Context, userID string, delta int) error {
	m.xp[userID] += delta
	return nil
}

func (m *memStore) AppendActivityLog(_ context.Context, entry LogEntry) error {
	m.logs = append(m.logs, entry)
	return nil
}

func (m *memStore) RecentCompletedEvents(_ context.Context, userID string, kinds []ActivityKind, cutoff time.Time) ([]*Record, error) {
	kindSet := make(map[ActivityKind]bool)
	for _, k := range kinds {
		kindSet[k] = true
	}
	var out []*Record
	for _, rec := range m.events {
		if rec.UserID == userID && rec.Completed && kindSet[rec.Kind] && !rec.SessionStart.Before(cutoff) {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

// serviceAt returns a service whose clock replays the given times,
// sticking on the last one.
func serviceAt(store Store, times ...time.Time) *Service {
	s := NewService(store)
	i := 0
	s.now = func() time.Time {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
	return s
}

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestStartPyramid(t *testing.T) {
	store := newMemStore()
	svc := serviceAt(store, baseTime)

	rec, err := svc.StartPyramid(context.Background(), "user-1", PyramidDetails{
		PyramidID:  "pyr-1",
		TotalSteps: 8,
		StepKinds:  []string{"expand", "paraphrase"},
	})
	require.NoError(t, err)
	assert.Equal(t, "evt-1", rec.ID)
	assert.Equal(t, KindPyramid, rec.Kind)
	assert.Equal(t, "pyr-1", rec.ActivityRef)
	assert.False(t, rec.Completed)
	assert.Equal(t, baseTime, rec.SessionStart)
}

func TestCompletePyramid_ScoresAndCredits(t *testing.T) {
	store := newMemStore()
	end := baseTime.Add(900 * time.Second)
	svc := serviceAt(store, baseTime, baseTime, end)

	rec, err := svc.StartPyramid(context.Background(), "user-1", PyramidDetails{
		PyramidID:      "pyr-1",
		TotalSteps:     10,
		CompletedSteps: 10,
	})
	require.NoError(t, err)

	done, err := svc.Complete(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	assert.Equal(t, 900, done.DurationSeconds)
	assert.Equal(t, 130, done.XPEarned)
	assert.Equal(t, 1.0, done.Pyramid.AccuracyRate)
	assert.Equal(t, 90.0, done.Pyramid.AvgTimePerStep)

	assert.Equal(t, 130, store.xp["user-1"])
	require.Len(t, store.logs, 1)
	assert.Equal(t, KindPyramid, store.logs[0].Kind)
	assert.Equal(t, "pyr-1", store.logs[0].ActivityID)
	assert.Equal(t, 130, store.logs[0].XPEarned)
}

func TestComplete_Idempotent(t *testing.T) {
	store := newMemStore()
	end := baseTime.Add(300 * time.Second)
	svc := serviceAt(store, baseTime, baseTime, end, end.Add(time.Hour))

	rec, err := svc.StartPyramid(context.Background(), "user-1", PyramidDetails{
		PyramidID:      "pyr-1",
		TotalSteps:     8,
		CompletedSteps: 8,
	})
	require.NoError(t, err)

	first, err := svc.Complete(context.Background(), rec.ID)
	require.NoError(t, err)

	second, err := svc.Complete(context.Background(), rec.ID)
	require.NoError(t, err)

	assert.Equal(t, first.XPEarned, second.XPEarned)
	assert.Equal(t, first.XPEarned, store.xp["user-1"], "xp must be credited once")
	assert.Len(t, store.logs, 1, "log row must be appended once")
}

func TestCompleteWithoutXP(t *testing.T) {
	store := newMemStore()
	end := baseTime.Add(300 * time.Second)
	svc := serviceAt(store, baseTime, baseTime, end)

	rec, err := svc.StartPyramid(context.Background(), "user-1", PyramidDetails{
		PyramidID:      "pyr-1",
		TotalSteps:     8,
		CompletedSteps: 8,
	})
	require.NoError(t, err)

	done, err := svc.CompleteWithoutXP(context.Background(), rec.ID)
	require.NoError(t, err)

	assert.True(t, done.Completed)
	assert.Zero(t, done.XPEarned)
	assert.Zero(t, store.xp["user-1"], "no xp credited")
	assert.Len(t, store.logs, 1, "log row still appended")
}

func TestCompleteVocabulary(t *testing.T) {
	store := newMemStore()
	end := baseTime.Add(600 * time.Second)
	svc := serviceAt(store, baseTime, baseTime, end)

	words := make([]string, 20)
	for i := range words {
		words[i] = fmt.Sprintf("word-%d", i)
	}
	rec, err := svc.StartVocabulary(context.Background(), "user-2", VocabularyDetails{
		ListID:            "list-1",
		Words:             words,
		LetterHintsUsed:   5,
		RelevantWordHints: 4,
		EmojiHintsUsed:    3,
		CorrectAnswers:    18,
		IncorrectAnswers:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, rec.Vocabulary.TotalHints)

	done, err := svc.Complete(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 139, done.XPEarned)
	assert.Equal(t, 0.9, done.Vocabulary.AccuracyRate)
	assert.Equal(t, 139, store.xp["user-2"])
}

func TestCompleteWriting(t *testing.T) {
	store := newMemStore()
	end := baseTime.Add(450 * time.Second)
	svc := serviceAt(store, baseTime, baseTime, end)

	rec, err := svc.StartWriting(context.Background(), "user-3", WritingDetails{
		QuestionID: "q-1",
		Level:      "B1 - Intermediate",
	})
	require.NoError(t, err)

	_, err = svc.UpdateWriting(context.Background(), rec.ID, WritingDetails{
		QuestionID: "q-1",
		WordCount:  150,
		Feedback: &WritingFeedback{
			ContentScore:      4,
			OrganizationScore: 4,
			LanguageScore:     4,
			TotalScore:        12,
		},
	})
	require.NoError(t, err)

	done, err := svc.Complete(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 280, done.XPEarned)
}

func TestCompleteWriting_NoFeedbackNoXP(t *testing.T) {
	store := newMemStore()
	end := baseTime.Add(60 * time.Second)
	svc := serviceAt(store, baseTime, baseTime, end)

	rec, err := svc.StartWriting(context.Background(), "user-3", WritingDetails{QuestionID: "q-2"})
	require.NoError(t, err)

	done, err := svc.Complete(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, done.XPEarned)
	assert.Equal(t, 0, store.xp["user-3"])
	// The log row is still appended so the activity shows in history.
	assert.Len(t, store.logs, 1)
}

func TestUpdate_RejectsCompletedEvent(t *testing.T) {
	store := newMemStore()
	end := baseTime.Add(60 * time.Second)
	svc := serviceAt(store, baseTime, baseTime, end, end)

	rec, err := svc.StartPyramid(context.Background(), "user-1", PyramidDetails{PyramidID: "pyr-1", TotalSteps: 8})
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), rec.ID)
	require.NoError(t, err)

	_, err = svc.UpdatePyramid(context.Background(), rec.ID, PyramidDetails{PyramidID: "pyr-1"})
	assert.Error(t, err)
}

func TestUpdate_RejectsKindMismatch(t *testing.T) {
	store := newMemStore()
	svc := serviceAt(store, baseTime)

	rec, err := svc.StartPyramid(context.Background(), "user-1", PyramidDetails{PyramidID: "pyr-1"})
	require.NoError(t, err)

	_, err = svc.UpdateVocabulary(context.Background(), rec.ID, VocabularyDetails{ListID: "list-1"})
	assert.Error(t, err)
}

func TestRecentCompleted_WindowAnchorsAtMidnight(t *testing.T) {
	store := newMemStore()
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	mk := func(id string, start time.Time, completed bool) {
		store.events[id] = &Record{
			ID:           id,
			UserID:       "user-1",
			Kind:         KindPyramid,
			SessionStart: start,
			Completed:    completed,
		}
	}
	// Cutoff for 5 days is 2025-06-05 00:00 UTC.
	mk("in-window", time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), true)
	mk("too-old", time.Date(2025, 6, 4, 23, 59, 0, 0, time.UTC), true)
	mk("not-completed", time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC), false)

	svc := serviceAt(store, now)
	recs, err := svc.RecentCompleted(context.Background(), "user-1", 5)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "in-window", recs[0].ID)
}

func TestRecentCompleted_DefaultDays(t *testing.T) {
	store := newMemStore()
	svc := serviceAt(store, baseTime)
	_, err := svc.RecentCompleted(context.Background(), "user-1", 0)
	require.NoError(t, err)
}
