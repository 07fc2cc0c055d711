// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ekremtas/lingopyr/ent/activityevent"
	"github.com/ekremtas/lingopyr/internal/events"
)

// ActivityEventCreate is the builder for creating a ActivityEvent entity.
type ActivityEventCreate struct {
	config
	mutation *ActivityEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ActivityEventCreate) SetSequence(v int64) *ActivityEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ActivityEventCreate) SetTimestamp(v time.Time) *ActivityEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableTimestamp(v *time.Time) *ActivityEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ActivityEventCreate) SetUserID(v string) *ActivityEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ActivityEventCreate) SetKind(v string) *ActivityEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetActivityRef sets the "activity_ref" field.
func (_c *ActivityEventCreate) SetActivityRef(v string) *ActivityEventCreate {
	_c.mutation.SetActivityRef(v)
	return _c
}

// SetNillableActivityRef sets the "activity_ref" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableActivityRef(v *string) *ActivityEventCreate {
	if v != nil {
		_c.SetActivityRef(*v)
	}
	return _c
}

// SetSessionStart sets the "session_start" field.
func (_c *ActivityEventCreate) SetSessionStart(v time.Time) *ActivityEventCreate {
	_c.mutation.SetSessionStart(v)
	return _c
}

// SetSessionEnd sets the "session_end" field.
func (_c *ActivityEventCreate) SetSessionEnd(v time.Time) *ActivityEventCreate {
	_c.mutation.SetSessionEnd(v)
	return _c
}

// SetNillableSessionEnd sets the "session_end" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableSessionEnd(v *time.Time) *ActivityEventCreate {
	if v != nil {
		_c.SetSessionEnd(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *ActivityEventCreate) SetDurationSeconds(v int) *ActivityEventCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableDurationSeconds(v *int) *ActivityEventCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ActivityEventCreate) SetCompleted(v bool) *ActivityEventCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableCompleted(v *bool) *ActivityEventCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *ActivityEventCreate) SetXpEarned(v int) *ActivityEventCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableXpEarned(v *int) *ActivityEventCreate {
	if v != nil {
		_c.SetXpEarned(*v)
	}
	return _c
}

// SetPyramid sets the "pyramid" field.
func (_c *ActivityEventCreate) SetPyramid(v *events.PyramidDetails) *ActivityEventCreate {
	_c.mutation.SetPyramid(v)
	return _c
}

// SetVocabulary sets the "vocabulary" field.
func (_c *ActivityEventCreate) SetVocabulary(v *events.VocabularyDetails) *ActivityEventCreate {
	_c.mutation.SetVocabulary(v)
	return _c
}

// SetWriting sets the "writing" field.
func (_c *ActivityEventCreate) SetWriting(v *events.WritingDetails) *ActivityEventCreate {
	_c.mutation.SetWriting(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ActivityEventCreate) SetID(v string) *ActivityEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableID(v *string) *ActivityEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_c *ActivityEventCreate) Mutation() *ActivityEventMutation {
	return _c.mutation
}

// Save creates the ActivityEvent in the database.
func (_c *ActivityEventCreate) Save(ctx context.Context) (*ActivityEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityEventCreate) SaveX(ctx context.Context) *ActivityEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := activityevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ActivityRef(); !ok {
		v := activityevent.DefaultActivityRef
		_c.mutation.SetActivityRef(v)
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		v := activityevent.DefaultDurationSeconds
		_c.mutation.SetDurationSeconds(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := activityevent.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		v := activityevent.DefaultXpEarned
		_c.mutation.SetXpEarned(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := activityevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ActivityEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ActivityEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ActivityEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := activityevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ActivityEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := activityevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActivityRef(); !ok {
		return &ValidationError{Name: "activity_ref", err: errors.New(`ent: missing required field "ActivityEvent.activity_ref"`)}
	}
	if _, ok := _c.mutation.SessionStart(); !ok {
		return &ValidationError{Name: "session_start", err: errors.New(`ent: missing required field "ActivityEvent.session_start"`)}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "ActivityEvent.duration_seconds"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "ActivityEvent.completed"`)}
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "ActivityEvent.xp_earned"`)}
	}
	return nil
}

func (_c *ActivityEventCreate) sqlSave(ctx context.Context) (*ActivityEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ActivityEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActivityEventCreate) createSpec() (*ActivityEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activityevent.Table, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(activityevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(activityevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(activityevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(activityevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.ActivityRef(); ok {
		_spec.SetField(activityevent.FieldActivityRef, field.TypeString, value)
		_node.ActivityRef = value
	}
	if value, ok := _c.mutation.SessionStart(); ok {
		_spec.SetField(activityevent.FieldSessionStart, field.TypeTime, value)
		_node.SessionStart = value
	}
	if value, ok := _c.mutation.SessionEnd(); ok {
		_spec.SetField(activityevent.FieldSessionEnd, field.TypeTime, value)
		_node.SessionEnd = &value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(activityevent.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(activityevent.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(activityevent.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	if value, ok := _c.mutation.Pyramid(); ok {
		_spec.SetField(activityevent.FieldPyramid, field.TypeJSON, value)
		_node.Pyramid = value
	}
	if value, ok := _c.mutation.Vocabulary(); ok {
		_spec.SetField(activityevent.FieldVocabulary, field.TypeJSON, value)
		_node.Vocabulary = value
	}
	if value, ok := _c.mutation.Writing(); ok {
		_spec.SetField(activityevent.FieldWriting, field.TypeJSON, value)
		_node.Writing = value
	}
	return _node, _spec
}

// ActivityEventCreateBulk is the builder for creating many ActivityEvent entities in bulk.
type ActivityEventCreateBulk struct {
	config
	err      error
	builders []*ActivityEventCreate
}

// Save creates the ActivityEvent entities in the database.
func (_c *ActivityEventCreateBulk) Save(ctx context.Context) ([]*ActivityEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivityEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ActivityEventCreateBulk) SaveX(ctx context.Context) []*ActivityEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
