package store

import (
	"context"
	"fmt"

	"github.com/ekremtas/lingopyr/ent"
	"github.com/ekremtas/lingopyr/ent/pyramidsession"
	"github.com/ekremtas/lingopyr/internal/stepgen"
)

const defaultPageSize = 50

type pyramidRepo struct {
	client *ent.Client
}

func (r *pyramidRepo) Create(ctx context.Context, rec *PyramidRecord) error {
	builder := r.client.PyramidSession.Create().
		SetUserID(rec.UserID).
		SetLevel(rec.Level).
		SetLearningLanguage(rec.LearningLanguage).
		SetSystemLanguage(rec.SystemLanguage).
		SetPurpose(rec.Purpose).
		SetTotalSteps(rec.TotalSteps).
		SetStepKinds(rec.StepKinds).
		SetLastStepIndex(rec.LastStepIndex).
		SetEventID(rec.EventID)

	if len(rec.Steps) > 0 {
		builder = builder.SetSteps(rec.Steps)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("create pyramid: %w", err)
	}
	*rec = *pyramidRecord(p)
	return nil
}

func (r *pyramidRepo) Get(ctx context.Context, id string) (*PyramidRecord, error) {
	p, err := r.client.PyramidSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get pyramid: %w", err)
	}
	return pyramidRecord(p), nil
}

func (r *pyramidRepo) List(ctx context.Context, userID string, opts ListOpts) ([]*PyramidRecord, error) {
	q := r.client.PyramidSession.Query().
		Where(pyramidsession.UserID(userID)).
		Order(ent.Desc(pyramidsession.FieldCreatedAt))

	if opts.Completed != nil {
		q = q.Where(pyramidsession.Completed(*opts.Completed))
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	q = q.Limit(limit).Offset(opts.Offset)

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pyramids: %w", err)
	}

	out := make([]*PyramidRecord, 0, len(rows))
	for _, p := range rows {
		out = append(out, pyramidRecord(p))
	}
	return out, nil
}

func (r *pyramidRepo) SaveSelection(ctx context.Context, id string, steps []stepgen.Step) error {
	n, err := r.client.PyramidSession.Update().
		Where(
			pyramidsession.ID(id),
			pyramidsession.Completed(false),
		).
		SetSteps(steps).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save selection: %w", err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

func (r *pyramidRepo) AppendStep(ctx context.Context, id string, expectedLast int, steps []stepgen.Step) error {
	// Compare-and-swap on last_step_index so two concurrent appends
	// can't both extend the same pyramid.
	n, err := r.client.PyramidSession.Update().
		Where(
			pyramidsession.ID(id),
			pyramidsession.Completed(false),
			pyramidsession.LastStepIndex(expectedLast),
		).
		SetSteps(steps).
		SetLastStepIndex(expectedLast + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append step: %w", err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

func (r *pyramidRepo) SetEventID(ctx context.Context, id, eventID string) error {
	err := r.client.PyramidSession.UpdateOneID(id).
		SetEventID(eventID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("set event id: %w", err)
	}
	return nil
}

func (r *pyramidRepo) MarkCompleted(ctx context.Context, id string) error {
	n, err := r.client.PyramidSession.Update().
		Where(
			pyramidsession.ID(id),
			pyramidsession.Completed(false),
		).
		SetCompleted(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

func (r *pyramidRepo) Delete(ctx context.Context, id, userID string) error {
	n, err := r.client.PyramidSession.Delete().
		Where(
			pyramidsession.ID(id),
			pyramidsession.UserID(userID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete pyramid: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func pyramidRecord(p *ent.PyramidSession) *PyramidRecord {
	return &PyramidRecord{
		ID:               p.ID,
		UserID:           p.UserID,
		Level:            p.Level,
		LearningLanguage: p.LearningLanguage,
		SystemLanguage:   p.SystemLanguage,
		Purpose:          p.Purpose,
		TotalSteps:       p.TotalSteps,
		StepKinds:        p.StepKinds,
		Steps:            p.Steps,
		LastStepIndex:    p.LastStepIndex,
		Completed:        p.Completed,
		EventID:          p.EventID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
