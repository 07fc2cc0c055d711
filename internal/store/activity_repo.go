package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ekremtas/lingopyr/ent"
	"github.com/ekremtas/lingopyr/ent/activityevent"
	"github.com/ekremtas/lingopyr/internal/events"
)

// activityRepo implements events.Store backed by ent and the global
// sequence counter.
type activityRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ events.Store = (*activityRepo)(nil)

func (r *activityRepo) CreateActivityEvent(ctx context.Context, rec *events.Record) (string, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ActivityEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(rec.Timestamp).
		SetUserID(rec.UserID).
		SetKind(string(rec.Kind)).
		SetActivityRef(rec.ActivityRef).
		SetSessionStart(rec.SessionStart).
		SetDurationSeconds(rec.DurationSeconds).
		SetCompleted(rec.Completed).
		SetXpEarned(rec.XPEarned)

	if rec.SessionEnd != nil {
		builder = builder.SetSessionEnd(*rec.SessionEnd)
	}
	if rec.Pyramid != nil {
		builder = builder.SetPyramid(rec.Pyramid)
	}
	if rec.Vocabulary != nil {
		builder = builder.SetVocabulary(rec.Vocabulary)
	}
	if rec.Writing != nil {
		builder = builder.SetWriting(rec.Writing)
	}

	e, err := builder.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("create activity event: %w", err)
	}
	return e.ID, nil
}

func (r *activityRepo) GetActivityEvent(ctx context.Context, id string) (*events.Record, error) {
	e, err := r.client.ActivityEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get activity event: %w", err)
	}
	return activityRecord(e), nil
}

func (r *activityRepo) UpdateActivityEvent(ctx context.Context, rec *events.Record) error {
	builder := r.client.ActivityEvent.UpdateOneID(rec.ID).
		SetDurationSeconds(rec.DurationSeconds)

	if rec.Pyramid != nil {
		builder = builder.SetPyramid(rec.Pyramid)
	}
	if rec.Vocabulary != nil {
		builder = builder.SetVocabulary(rec.Vocabulary)
	}
	if rec.Writing != nil {
		builder = builder.SetWriting(rec.Writing)
	}

	if err := builder.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update activity event: %w", err)
	}
	return nil
}

func (r *activityRepo) CompleteActivityEvent(ctx context.Context, rec *events.Record) (bool, error) {
	// Conditional on completed=false so a concurrent completion can't
	// double-credit XP. The caller re-reads the stored record when the
	// update doesn't apply.
	builder := r.client.ActivityEvent.Update().
		Where(
			activityevent.ID(rec.ID),
			activityevent.Completed(false),
		).
		SetCompleted(true).
		SetDurationSeconds(rec.DurationSeconds).
		SetXpEarned(rec.XPEarned)

	if rec.SessionEnd != nil {
		builder = builder.SetSessionEnd(*rec.SessionEnd)
	}
	if rec.Pyramid != nil {
		builder = builder.SetPyramid(rec.Pyramid)
	}
	if rec.Vocabulary != nil {
		builder = builder.SetVocabulary(rec.Vocabulary)
	}
	if rec.Writing != nil {
		builder = builder.SetWriting(rec.Writing)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("complete activity event: %w", err)
	}
	return n > 0, nil
}

func (r *activityRepo) AddUserXP(ctx context.Context, userID string, delta int) error {
	err := r.client.User.UpdateOneID(userID).
		AddXp(delta).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("add user xp: %w", err)
	}
	return nil
}

func (r *activityRepo) AppendActivityLog(ctx context.Context, entry events.LogEntry) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ActivityLog.Create().
		SetSequence(seqNum).
		SetTimestamp(entry.Timestamp).
		SetUserID(entry.UserID).
		SetKind(string(entry.Kind)).
		SetActivityID(entry.ActivityID).
		SetXpEarned(entry.XPEarned).
		SetDurationSeconds(entry.DurationSeconds).
		SetCompleted(entry.Completed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append activity log: %w", err)
	}
	return nil
}

func (r *activityRepo) RecentCompletedEvents(ctx context.Context, userID string, kinds []events.ActivityKind, cutoff time.Time) ([]*events.Record, error) {
	kindVals := make([]string, 0, len(kinds))
	for _, k := range kinds {
		kindVals = append(kindVals, string(k))
	}

	rows, err := r.client.ActivityEvent.Query().
		Where(
			activityevent.UserID(userID),
			activityevent.Completed(true),
			activityevent.KindIn(kindVals...),
			activityevent.SessionStartGTE(cutoff),
		).
		Order(ent.Desc(activityevent.FieldSessionStart)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent events: %w", err)
	}

	out := make([]*events.Record, 0, len(rows))
	for _, e := range rows {
		out = append(out, activityRecord(e))
	}
	return out, nil
}

func activityRecord(e *ent.ActivityEvent) *events.Record {
	return &events.Record{
		ID:              e.ID,
		UserID:          e.UserID,
		Kind:            events.ActivityKind(e.Kind),
		ActivityRef:     e.ActivityRef,
		SessionStart:    e.SessionStart,
		SessionEnd:      e.SessionEnd,
		DurationSeconds: e.DurationSeconds,
		Completed:       e.Completed,
		XPEarned:        e.XpEarned,
		Timestamp:       e.Timestamp,
		Pyramid:         e.Pyramid,
		Vocabulary:      e.Vocabulary,
		Writing:         e.Writing,
	}
}
