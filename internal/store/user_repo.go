package store

import (
	"context"
	"fmt"

	"github.com/ekremtas/lingopyr/ent"
	"github.com/ekremtas/lingopyr/ent/user"
)

type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, rec *UserRecord) error {
	builder := r.client.User.Create().
		SetUsername(rec.Username)

	if rec.Level != "" {
		builder = builder.SetLevel(rec.Level)
	}
	if rec.LearningLanguage != "" {
		builder = builder.SetLearningLanguage(rec.LearningLanguage)
	}
	if rec.SystemLanguage != "" {
		builder = builder.SetSystemLanguage(rec.SystemLanguage)
	}
	if rec.Purpose != "" {
		builder = builder.SetPurpose(rec.Purpose)
	}

	u, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	*rec = *userRecord(u)
	return nil
}

func (r *userRepo) Get(ctx context.Context, id string) (*UserRecord, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return userRecord(u), nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*UserRecord, error) {
	u, err := r.client.User.Query().
		Where(user.Username(username)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return userRecord(u), nil
}

func (r *userRepo) GetOrCreate(ctx context.Context, username string) (*UserRecord, error) {
	rec, err := r.GetByUsername(ctx, username)
	if err == nil {
		return rec, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	rec = &UserRecord{Username: username}
	if err := r.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*UserRecord, error) {
	builder := r.client.User.UpdateOneID(id)

	if upd.Level != nil {
		builder = builder.SetLevel(*upd.Level)
	}
	if upd.LearningLanguage != nil {
		builder = builder.SetLearningLanguage(*upd.LearningLanguage)
	}
	if upd.SystemLanguage != nil {
		builder = builder.SetSystemLanguage(*upd.SystemLanguage)
	}
	if upd.Purpose != nil {
		builder = builder.SetPurpose(*upd.Purpose)
	}

	u, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return userRecord(u), nil
}

func (r *userRepo) AddXP(ctx context.Context, id string, delta int) error {
	err := r.client.User.UpdateOneID(id).
		AddXp(delta).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("add xp: %w", err)
	}
	return nil
}

func userRecord(u *ent.User) *UserRecord {
	return &UserRecord{
		ID:               u.ID,
		Username:         u.Username,
		Level:            u.Level,
		LearningLanguage: u.LearningLanguage,
		SystemLanguage:   u.SystemLanguage,
		Purpose:          u.Purpose,
		XP:               u.Xp,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
