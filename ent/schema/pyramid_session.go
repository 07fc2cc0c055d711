package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/ekremtas/lingopyr/internal/stepgen"
)

// PyramidSession is one sentence-pyramid exercise: an opening sentence
// plus the fixed sequence of transformation steps the learner works
// through.
type PyramidSession struct {
	ent.Schema
}

func (PyramidSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("level").
			NotEmpty().
			Comment("Proficiency label the pyramid was built for"),
		field.String("learning_language").
			NotEmpty(),
		field.String("system_language").
			NotEmpty(),
		field.String("purpose").
			Default(""),
		field.Int("total_steps").
			Positive().
			Comment("Planned pyramid length, fixed at creation"),
		field.JSON("step_kinds", []string{}).
			Comment("Planned transformation for each step, in order"),
		field.JSON("steps", []stepgen.Step{}).
			Optional().
			Comment("Generated steps so far, index 0 is the opening sentence"),
		field.Int("last_step_index").
			Default(0).
			Comment("Highest generated step index, guards concurrent appends"),
		field.Bool("completed").
			Default(false),
		field.String("event_id").
			Default("").
			Comment("Activity event opened for this pyramid"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (PyramidSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "completed"),
		index.Fields("created_at"),
	}
}
