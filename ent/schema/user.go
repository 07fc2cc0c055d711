package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/ekremtas/lingopyr/internal/scheduler"
)

// User is a learner profile with language preferences and lifetime XP.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("username").
			NotEmpty().
			Unique(),
		field.String("level").
			Default(scheduler.LevelB1).
			Comment("Proficiency label, e.g. A1 - Beginner"),
		field.String("learning_language").
			Default("English"),
		field.String("system_language").
			Default("Turkish").
			Comment("Native language used for translations"),
		field.String("purpose").
			Default("General Knowledge").
			Comment("Learner's stated goal, folded into prompts"),
		field.Int("xp").
			Default(0).
			Comment("Lifetime XP total"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username").Unique(),
	}
}
