// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ekremtas/lingopyr/ent/pyramidsession"
	"github.com/ekremtas/lingopyr/internal/stepgen"
)

// PyramidSession is the model entity for the PyramidSession schema.
type PyramidSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Proficiency label the pyramid was built for
	Level string `json:"level,omitempty"`
	// LearningLanguage holds the value of the "learning_language" field.
	LearningLanguage string `json:"learning_language,omitempty"`
	// SystemLanguage holds the value of the "system_language" field.
	SystemLanguage string `json:"system_language,omitempty"`
	// Purpose holds the value of the "purpose" field.
	Purpose string `json:"purpose,omitempty"`
	// Planned pyramid length, fixed at creation
	TotalSteps int `json:"total_steps,omitempty"`
	// Planned transformation for each step, in order
	StepKinds []string `json:"step_kinds,omitempty"`
	// Generated steps so far, index 0 is the opening sentence
	Steps []stepgen.Step `json:"steps,omitempty"`
	// Highest generated step index, guards concurrent appends
	LastStepIndex int `json:"last_step_index,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// Activity event opened for this pyramid
	EventID string `json:"event_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PyramidSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pyramidsession.FieldStepKinds, pyramidsession.FieldSteps:
			values[i] = new([]byte)
		case pyramidsession.FieldCompleted:
			values[i] = new(sql.NullBool)
		case pyramidsession.FieldTotalSteps, pyramidsession.FieldLastStepIndex:
			values[i] = new(sql.NullInt64)
		case pyramidsession.FieldID, pyramidsession.FieldUserID, pyramidsession.FieldLevel, pyramidsession.FieldLearningLanguage, pyramidsession.FieldSystemLanguage, pyramidsession.FieldPurpose, pyramidsession.FieldEventID:
			values[i] = new(sql.NullString)
		case pyramidsession.FieldCreatedAt, pyramidsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PyramidSession fields.
func (_m *PyramidSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pyramidsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pyramidsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case pyramidsession.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case pyramidsession.FieldLearningLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning_language", values[i])
			} else if value.Valid {
				_m.LearningLanguage = value.String
			}
		case pyramidsession.FieldSystemLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_language", values[i])
			} else if value.Valid {
				_m.SystemLanguage = value.String
			}
		case pyramidsession.FieldPurpose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purpose", values[i])
			} else if value.Valid {
				_m.Purpose = value.String
			}
		case pyramidsession.FieldTotalSteps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_steps", values[i])
			} else if value.Valid {
				_m.TotalSteps = int(value.Int64)
			}
		case pyramidsession.FieldStepKinds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field step_kinds", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StepKinds); err != nil {
					return fmt.Errorf("unmarshal field step_kinds: %w", err)
				}
			}
		case pyramidsession.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		case pyramidsession.FieldLastStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_step_index", values[i])
			} else if value.Valid {
				_m.LastStepIndex = int(value.Int64)
			}
		case pyramidsession.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case pyramidsession.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case pyramidsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pyramidsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PyramidSession.
// This includes values selected through modifiers, order, etc.
func (_m *PyramidSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PyramidSession.
// Note that you need to call PyramidSession.Unwrap() before calling this method if this PyramidSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PyramidSession) Update() *PyramidSessionUpdateOne {
	return NewPyramidSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PyramidSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PyramidSession) Unwrap() *PyramidSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PyramidSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PyramidSession) String() string {
	var builder strings.Builder
	builder.WriteString("PyramidSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("learning_language=")
	builder.WriteString(_m.LearningLanguage)
	builder.WriteString(", ")
	builder.WriteString("system_language=")
	builder.WriteString(_m.SystemLanguage)
	builder.WriteString(", ")
	builder.WriteString("purpose=")
	builder.WriteString(_m.Purpose)
	builder.WriteString(", ")
	builder.WriteString("total_steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSteps))
	builder.WriteString(", ")
	builder.WriteString("step_kinds=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepKinds))
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteString(", ")
	builder.WriteString("last_step_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastStepIndex))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PyramidSessions is a parsable slice of PyramidSession.
type PyramidSessions []*PyramidSession
