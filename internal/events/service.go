package events

import (
	"context"
	"fmt"
	"time"
)

// DefaultRecentDays is the lookback window for recent-activity queries.
const DefaultRecentDays = 5

// Store persists activity events. The store package implements this
// against the activity_events and activity_logs tables.
type Store interface {
	// CreateActivityEvent persists a new event and returns its ID.
	CreateActivityEvent(ctx context.Context, rec *Record) (string, error)

	// GetActivityEvent loads an event by ID.
	GetActivityEvent(ctx context.Context, id string) (*Record, error)

	// UpdateActivityEvent overwrites a not-yet-completed event's mutable
	// fields (details, duration).
	UpdateActivityEvent(ctx context.Context, rec *Record) error

	// CompleteActivityEvent marks the event completed with the given end
	// time, duration, and XP. The update applies only when the event is
	// still open; returns false when it was already completed.
	CompleteActivityEvent(ctx context.Context, rec *Record) (bool, error)

	// AddUserXP atomically increments a user's XP total.
	AddUserXP(ctx context.Context, userID string, delta int) error

	// AppendActivityLog appends a compact summary row.
	AppendActivityLog(ctx context.Context, entry LogEntry) error

	// RecentCompletedEvents lists completed events for the user with
	// session_start at or after the cutoff, newest first.
	RecentCompletedEvents(ctx context.Context, userID string, kinds []ActivityKind, cutoff time.Time) ([]*Record, error)
}

// Service records activity sessions and scores them on completion.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates an event Service.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// StartPyramid opens a pyramid activity event.
func (s *Service) StartPyramid(ctx context.Context, userID string, d PyramidDetails) (*Record, error) {
	rec := &Record{
		UserID:       userID,
		Kind:         KindPyramid,
		ActivityRef:  d.PyramidID,
		SessionStart: s.now(),
		Timestamp:    s.now(),
		Pyramid:      &d,
	}
	return s.create(ctx, rec)
}

// StartVocabulary opens a vocabulary activity event.
func (s *Service) StartVocabulary(ctx context.Context, userID string, d VocabularyDetails) (*Record, error) {
	d.TotalHints = d.LetterHintsUsed + d.RelevantWordHints + d.EmojiHintsUsed
	rec := &Record{
		UserID:       userID,
		Kind:         KindVocabulary,
		ActivityRef:  d.ListID,
		SessionStart: s.now(),
		Timestamp:    s.now(),
		Vocabulary:   &d,
	}
	return s.create(ctx, rec)
}

// StartWriting opens a writing activity event.
func (s *Service) StartWriting(ctx context.Context, userID string, d WritingDetails) (*Record, error) {
	rec := &Record{
		UserID:       userID,
		Kind:         KindWriting,
		ActivityRef:  d.QuestionID,
		SessionStart: s.now(),
		Timestamp:    s.now(),
		Writing:      &d,
	}
	return s.create(ctx, rec)
}

func (s *Service) create(ctx context.Context, rec *Record) (*Record, error) {
	id, err := s.store.CreateActivityEvent(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("create %s event: %w", rec.Kind, err)
	}
	rec.ID = id
	return rec, nil
}

// UpdatePyramid replaces an open pyramid event's details.
func (s *Service) UpdatePyramid(ctx context.Context, eventID string, d PyramidDetails) (*Record, error) {
	rec, err := s.openEvent(ctx, eventID, KindPyramid)
	if err != nil {
		return nil, err
	}
	rec.Pyramid = &d
	if err := s.store.UpdateActivityEvent(ctx, rec); err != nil {
		return nil, fmt.Errorf("update pyramid event: %w", err)
	}
	return rec, nil
}

// UpdateVocabulary replaces an open vocabulary event's details.
// TotalHints is recomputed from the per-kind hint counts.
func (s *Service) UpdateVocabulary(ctx context.Context, eventID string, d VocabularyDetails) (*Record, error) {
	rec, err := s.openEvent(ctx, eventID, KindVocabulary)
	if err != nil {
		return nil, err
	}
	d.TotalHints = d.LetterHintsUsed + d.RelevantWordHints + d.EmojiHintsUsed
	d.AccuracyRate = VocabularyAccuracy(d.CorrectAnswers, d.IncorrectAnswers)
	rec.Vocabulary = &d
	if err := s.store.UpdateActivityEvent(ctx, rec); err != nil {
		return nil, fmt.Errorf("update vocabulary event: %w", err)
	}
	return rec, nil
}

// UpdateWriting replaces an open writing event's details.
func (s *Service) UpdateWriting(ctx context.Context, eventID string, d WritingDetails) (*Record, error) {
	rec, err := s.openEvent(ctx, eventID, KindWriting)
	if err != nil {
		return nil, err
	}
	rec.Writing = &d
	if err := s.store.UpdateActivityEvent(ctx, rec); err != nil {
		return nil, fmt.Errorf("update writing event: %w", err)
	}
	return rec, nil
}

func (s *Service) openEvent(ctx context.Context, eventID string, kind ActivityKind) (*Record, error) {
	rec, err := s.store.GetActivityEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}
	if rec.Kind != kind {
		return nil, fmt.Errorf("event %s is a %s event, not %s", eventID, rec.Kind, kind)
	}
	if rec.Completed {
		return nil, fmt.Errorf("event %s is already completed", eventID)
	}
	return rec, nil
}

// Complete closes an event: computes duration and derived rates, scores
// XP, credits the user, and appends a summary log row. Calling Complete
// on an already-completed event is a no-op returning the stored record.
func (s *Service) Complete(ctx context.Context, eventID string) (*Record, error) {
	return s.complete(ctx, eventID, true)
}

// CompleteWithoutXP closes an event without scoring or crediting XP,
// for administrative completions.
func (s *Service) CompleteWithoutXP(ctx context.Context, eventID string) (*Record, error) {
	return s.complete(ctx, eventID, false)
}

func (s *Service) complete(ctx context.Context, eventID string, award bool) (*Record, error) {
	rec, err := s.store.GetActivityEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}
	if rec.Completed {
		return rec, nil
	}

	end := s.now()
	rec.SessionEnd = &end
	rec.DurationSeconds = int(end.Sub(rec.SessionStart).Seconds())
	rec.Completed = true
	rec.XPEarned = 0
	if award {
		rec.XPEarned = s.score(rec)
	}

	applied, err := s.store.CompleteActivityEvent(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("complete event: %w", err)
	}
	if !applied {
		// Lost the race to a concurrent Complete. The stored record has
		// the XP that was actually credited.
		return s.store.GetActivityEvent(ctx, eventID)
	}

	if rec.XPEarned > 0 {
		if err := s.store.AddUserXP(ctx, rec.UserID, rec.XPEarned); err != nil {
			return nil, fmt.Errorf("credit xp: %w", err)
		}
	}

	entry := LogEntry{
		UserID:          rec.UserID,
		Kind:            rec.Kind,
		ActivityID:      rec.ActivityRef,
		XPEarned:        rec.XPEarned,
		DurationSeconds: rec.DurationSeconds,
		Completed:       true,
		Timestamp:       end,
	}
	if err := s.store.AppendActivityLog(ctx, entry); err != nil {
		return nil, fmt.Errorf("append activity log: %w", err)
	}

	return rec, nil
}

// score computes the event's XP and fills derived detail fields.
func (s *Service) score(rec *Record) int {
	switch rec.Kind {
	case KindPyramid:
		d := rec.Pyramid
		if d == nil {
			return 0
		}
		d.AccuracyRate = PyramidAccuracy(d.TotalSteps, d.CompletedSteps)
		if d.CompletedSteps > 0 {
			d.AvgTimePerStep = float64(rec.DurationSeconds) / float64(d.CompletedSteps)
		}
		return PyramidXP(d.TotalSteps, d.CompletedSteps, rec.DurationSeconds)
	case KindVocabulary:
		d := rec.Vocabulary
		if d == nil {
			return 0
		}
		d.AccuracyRate = VocabularyAccuracy(d.CorrectAnswers, d.IncorrectAnswers)
		return VocabularyXP(len(d.Words), d.CorrectAnswers, d.IncorrectAnswers, d.TotalHints)
	case KindWriting:
		d := rec.Writing
		if d == nil || d.Feedback == nil {
			return 0
		}
		return WritingXP(d.Feedback.TotalScore, d.WordCount, rec.DurationSeconds)
	}
	return 0
}

// RecentCompleted lists the user's completed learning events within the
// last `days` days. The cutoff anchors at UTC midnight so a "5 day"
// window covers five whole calendar days plus today.
func (s *Service) RecentCompleted(ctx context.Context, userID string, days int) ([]*Record, error) {
	if days <= 0 {
		days = DefaultRecentDays
	}
	now := s.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	cutoff := midnight.AddDate(0, 0, -days)

	kinds := []ActivityKind{KindPyramid, KindVocabulary, KindWriting}
	recs, err := s.store.RecentCompletedEvents(ctx, userID, kinds, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list recent events: %w", err)
	}
	return recs, nil
}
