// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ekremtas/lingopyr/ent/activityevent"
	"github.com/ekremtas/lingopyr/internal/events"
)

// ActivityEvent is the model entity for the ActivityEvent schema.
type ActivityEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// pyramid, vocabulary, or writing
	Kind string `json:"kind,omitempty"`
	// ID of the pyramid, vocabulary list, or writing question
	ActivityRef string `json:"activity_ref,omitempty"`
	// SessionStart holds the value of the "session_start" field.
	SessionStart time.Time `json:"session_start,omitempty"`
	// SessionEnd holds the value of the "session_end" field.
	SessionEnd *time.Time `json:"session_end,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds int `json:"duration_seconds,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// XpEarned holds the value of the "xp_earned" field.
	XpEarned int `json:"xp_earned,omitempty"`
	// Pyramid holds the value of the "pyramid" field.
	Pyramid *events.PyramidDetails `json:"pyramid,omitempty"`
	// Vocabulary holds the value of the "vocabulary" field.
	Vocabulary *events.VocabularyDetails `json:"vocabulary,omitempty"`
	// Writing holds the value of the "writing" field.
	Writing      *events.WritingDetails `json:"writing,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActivityEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case activityevent.FieldPyramid, activityevent.FieldVocabulary, activityevent.FieldWriting:
			values[i] = new([]byte)
		case activityevent.FieldCompleted:
			values[i] = new(sql.NullBool)
		case activityevent.FieldSequence, activityevent.FieldDurationSeconds, activityevent.FieldXpEarned:
			values[i] = new(sql.NullInt64)
		case activityevent.FieldID, activityevent.FieldUserID, activityevent.FieldKind, activityevent.FieldActivityRef:
			values[i] = new(sql.NullString)
		case activityevent.FieldTimestamp, activityevent.FieldSessionStart, activityevent.FieldSessionEnd:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActivityEvent fields.
func (_m *ActivityEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case activityevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case activityevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case activityevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case activityevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case activityevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case activityevent.FieldActivityRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity_ref", values[i])
			} else if value.Valid {
				_m.ActivityRef = value.String
			}
		case activityevent.FieldSessionStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field session_start", values[i])
			} else if value.Valid {
				_m.SessionStart = value.Time
			}
		case activityevent.FieldSessionEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field session_end", values[i])
			} else if value.Valid {
				_m.SessionEnd = new(time.Time)
				*_m.SessionEnd = value.Time
			}
		case activityevent.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = int(value.Int64)
			}
		case activityevent.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case activityevent.FieldXpEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_earned", values[i])
			} else if value.Valid {
				_m.XpEarned = int(value.Int64)
			}
		case activityevent.FieldPyramid:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pyramid", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Pyramid); err != nil {
					return fmt.Errorf("unmarshal field pyramid: %w", err)
				}
			}
		case activityevent.FieldVocabulary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field vocabulary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Vocabulary); err != nil {
					return fmt.Errorf("unmarshal field vocabulary: %w", err)
				}
			}
		case activityevent.FieldWriting:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field writing", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Writing); err != nil {
					return fmt.Errorf("unmarshal field writing: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActivityEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ActivityEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ActivityEvent.
// Note that you need to call ActivityEvent.Unwrap() before calling this method if this ActivityEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActivityEvent) Update() *ActivityEventUpdateOne {
	return NewActivityEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActivityEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActivityEvent) Unwrap() *ActivityEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActivityEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActivityEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ActivityEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("activity_ref=")
	builder.WriteString(_m.ActivityRef)
	builder.WriteString(", ")
	builder.WriteString("session_start=")
	builder.WriteString(_m.SessionStart.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.SessionEnd; v != nil {
		builder.WriteString("session_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("duration_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSeconds))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("xp_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpEarned))
	builder.WriteString(", ")
	builder.WriteString("pyramid=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pyramid))
	builder.WriteString(", ")
	builder.WriteString("vocabulary=")
	builder.WriteString(fmt.Sprintf("%v", _m.Vocabulary))
	builder.WriteString(", ")
	builder.WriteString("writing=")
	builder.WriteString(fmt.Sprintf("%v", _m.Writing))
	builder.WriteByte(')')
	return builder.String()
}

// ActivityEvents is a parsable slice of ActivityEvent.
type ActivityEvents []*ActivityEvent
