package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityLog is a compact summary row appended once per session,
// cheap to scan for streaks and daily totals.
type ActivityLog struct {
	ent.Schema
}

func (ActivityLog) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("kind").
			NotEmpty(),
		field.String("activity_id").
			Default(""),
		field.Int("xp_earned").
			Default(0),
		field.Int("duration_seconds").
			Default(0),
		field.Bool("completed").
			Default(false),
	}
}

func (ActivityLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "kind"),
	}
}
