package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/ekremtas/lingopyr/internal/events"
)

// ActivityEvent records one exercise session from start to completion,
// with per-kind detail payloads and the XP awarded.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("pyramid, vocabulary, or writing"),
		field.String("activity_ref").
			Default("").
			Comment("ID of the pyramid, vocabulary list, or writing question"),
		field.Time("session_start"),
		field.Time("session_end").
			Optional().
			Nillable(),
		field.Int("duration_seconds").
			Default(0),
		field.Bool("completed").
			Default(false),
		field.Int("xp_earned").
			Default(0),
		field.JSON("pyramid", &events.PyramidDetails{}).
			Optional(),
		field.JSON("vocabulary", &events.VocabularyDetails{}).
			Optional(),
		field.JSON("writing", &events.WritingDetails{}).
			Optional(),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "kind"),
		index.Fields("user_id", "completed"),
		index.Fields("session_start"),
	}
}
