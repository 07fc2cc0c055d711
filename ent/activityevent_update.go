// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ekremtas/lingopyr/ent/activityevent"
	"github.com/ekremtas/lingopyr/ent/predicate"
	"github.com/ekremtas/lingopyr/internal/events"
)

// ActivityEventUpdate is the builder for updating ActivityEvent entities.
type ActivityEventUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityEventMutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdate) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ActivityEventUpdate) SetUserID(v string) *ActivityEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableUserID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ActivityEventUpdate) SetKind(v string) *ActivityEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableKind(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetActivityRef sets the "activity_ref" field.
func (_u *ActivityEventUpdate) SetActivityRef(v string) *ActivityEventUpdate {
	_u.mutation.SetActivityRef(v)
	return _u
}

// SetNillableActivityRef sets the "activity_ref" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableActivityRef(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetActivityRef(*v)
	}
	return _u
}

// SetSessionStart sets the "session_start" field.
func (_u *ActivityEventUpdate) SetSessionStart(v time.Time) *ActivityEventUpdate {
	_u.mutation.SetSessionStart(v)
	return _u
}

// SetNillableSessionStart sets the "session_start" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableSessionStart(v *time.Time) *ActivityEventUpdate {
	if v != nil {
		_u.SetSessionStart(*v)
	}
	return _u
}

// SetSessionEnd sets the "session_end" field.
func (_u *ActivityEventUpdate) SetSessionEnd(v time.Time) *ActivityEventUpdate {
	_u.mutation.SetSessionEnd(v)
	return _u
}

// SetNillableSessionEnd sets the "session_end" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableSessionEnd(v *time.Time) *ActivityEventUpdate {
	if v != nil {
		_u.SetSessionEnd(*v)
	}
	return _u
}

// ClearSessionEnd clears the value of the "session_end" field.
func (_u *ActivityEventUpdate) ClearSessionEnd() *ActivityEventUpdate {
	_u.mutation.ClearSessionEnd()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *ActivityEventUpdate) SetDurationSeconds(v int) *ActivityEventUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableDurationSeconds(v *int) *ActivityEventUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *ActivityEventUpdate) AddDurationSeconds(v int) *ActivityEventUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ActivityEventUpdate) SetCompleted(v bool) *ActivityEventUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableCompleted(v *bool) *ActivityEventUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *ActivityEventUpdate) SetXpEarned(v int) *ActivityEventUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableXpEarned(v *int) *ActivityEventUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *ActivityEventUpdate) AddXpEarned(v int) *ActivityEventUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetPyramid sets the "pyramid" field.
func (_u *ActivityEventUpdate) SetPyramid(v *events.PyramidDetails) *ActivityEventUpdate {
	_u.mutation.SetPyramid(v)
	return _u
}

// ClearPyramid clears the value of the "pyramid" field.
func (_u *ActivityEventUpdate) ClearPyramid() *ActivityEventUpdate {
	_u.mutation.ClearPyramid()
	return _u
}

// SetVocabulary sets the "vocabulary" field.
func (_u *ActivityEventUpdate) SetVocabulary(v *events.VocabularyDetails) *ActivityEventUpdate {
	_u.mutation.SetVocabulary(v)
	return _u
}

// ClearVocabulary clears the value of the "vocabulary" field.
func (_u *ActivityEventUpdate) ClearVocabulary() *ActivityEventUpdate {
	_u.mutation.ClearVocabulary()
	return _u
}

// SetWriting sets the "writing" field.
func (_u *ActivityEventUpdate) SetWriting(v *events.WritingDetails) *ActivityEventUpdate {
	_u.mutation.SetWriting(v)
	return _u
}

// ClearWriting clears the value of the "writing" field.
func (_u *ActivityEventUpdate) ClearWriting() *ActivityEventUpdate {
	_u.mutation.ClearWriting()
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdate) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := activityevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := activityevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(activityevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(activityevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityRef(); ok {
		_spec.SetField(activityevent.FieldActivityRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionStart(); ok {
		_spec.SetField(activityevent.FieldSessionStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionEnd(); ok {
		_spec.SetField(activityevent.FieldSessionEnd, field.TypeTime, value)
	}
	if _u.mutation.SessionEndCleared() {
		_spec.ClearField(activityevent.FieldSessionEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(activityevent.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(activityevent.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(activityevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(activityevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(activityevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Pyramid(); ok {
		_spec.SetField(activityevent.FieldPyramid, field.TypeJSON, value)
	}
	if _u.mutation.PyramidCleared() {
		_spec.ClearField(activityevent.FieldPyramid, field.TypeJSON)
	}
	if value, ok := _u.mutation.Vocabulary(); ok {
		_spec.SetField(activityevent.FieldVocabulary, field.TypeJSON, value)
	}
	if _u.mutation.VocabularyCleared() {
		_spec.ClearField(activityevent.FieldVocabulary, field.TypeJSON)
	}
	if value, ok := _u.mutation.Writing(); ok {
		_spec.SetField(activityevent.FieldWriting, field.TypeJSON, value)
	}
	if _u.mutation.WritingCleared() {
		_spec.ClearField(activityevent.FieldWriting, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityEventUpdateOne is the builder for updating a single ActivityEvent entity.
type ActivityEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *ActivityEventUpdateOne) SetUserID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableUserID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ActivityEventUpdateOne) SetKind(v string) *ActivityEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableKind(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetActivityRef sets the "activity_ref" field.
func (_u *ActivityEventUpdateOne) SetActivityRef(v string) *ActivityEventUpdateOne {
	_u.mutation.SetActivityRef(v)
	return _u
}

// SetNillableActivityRef sets the "activity_ref" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableActivityRef(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetActivityRef(*v)
	}
	return _u
}

// SetSessionStart sets the "session_start" field.
func (_u *ActivityEventUpdateOne) SetSessionStart(v time.Time) *ActivityEventUpdateOne {
	_u.mutation.SetSessionStart(v)
	return _u
}

// SetNillableSessionStart sets the "session_start" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableSessionStart(v *time.Time) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetSessionStart(*v)
	}
	return _u
}

// SetSessionEnd sets the "session_end" field.
func (_u *ActivityEventUpdateOne) SetSessionEnd(v time.Time) *ActivityEventUpdateOne {
	_u.mutation.SetSessionEnd(v)
	return _u
}

// SetNillableSessionEnd sets the "session_end" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableSessionEnd(v *time.Time) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetSessionEnd(*v)
	}
	return _u
}

// ClearSessionEnd clears the value of the "session_end" field.
func (_u *ActivityEventUpdateOne) ClearSessionEnd() *ActivityEventUpdateOne {
	_u.mutation.ClearSessionEnd()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *ActivityEventUpdateOne) SetDurationSeconds(v int) *ActivityEventUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableDurationSeconds(v *int) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *ActivityEventUpdateOne) AddDurationSeconds(v int) *ActivityEventUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ActivityEventUpdateOne) SetCompleted(v bool) *ActivityEventUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableCompleted(v *bool) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *ActivityEventUpdateOne) SetXpEarned(v int) *ActivityEventUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableXpEarned(v *int) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *ActivityEventUpdateOne) AddXpEarned(v int) *ActivityEventUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetPyramid sets the "pyramid" field.
func (_u *ActivityEventUpdateOne) SetPyramid(v *events.PyramidDetails) *ActivityEventUpdateOne {
	_u.mutation.SetPyramid(v)
	return _u
}

// ClearPyramid clears the value of the "pyramid" field.
func (_u *ActivityEventUpdateOne) ClearPyramid() *ActivityEventUpdateOne {
	_u.mutation.ClearPyramid()
	return _u
}

// SetVocabulary sets the "vocabulary" field.
func (_u *ActivityEventUpdateOne) SetVocabulary(v *events.VocabularyDetails) *ActivityEventUpdateOne {
	_u.mutation.SetVocabulary(v)
	return _u
}

// ClearVocabulary clears the value of the "vocabulary" field.
func (_u *ActivityEventUpdateOne) ClearVocabulary() *ActivityEventUpdateOne {
	_u.mutation.ClearVocabulary()
	return _u
}

// SetWriting sets the "writing" field.
func (_u *ActivityEventUpdateOne) SetWriting(v *events.WritingDetails) *ActivityEventUpdateOne {
	_u.mutation.SetWriting(v)
	return _u
}

// ClearWriting clears the value of the "writing" field.
func (_u *ActivityEventUpdateOne) ClearWriting() *ActivityEventUpdateOne {
	_u.mutation.ClearWriting()
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdateOne) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdateOne) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityEventUpdateOne) Select(field string, fields ...string) *ActivityEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityEvent entity.
func (_u *ActivityEventUpdateOne) Save(ctx context.Context) (*ActivityEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) SaveX(ctx context.Context) *ActivityEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := activityevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := activityevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdateOne) sqlSave(ctx context.Context) (_node *ActivityEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityevent.FieldID)
		for _, f := range fields {
			if !activityevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activityevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(activityevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(activityevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityRef(); ok {
		_spec.SetField(activityevent.FieldActivityRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionStart(); ok {
		_spec.SetField(activityevent.FieldSessionStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionEnd(); ok {
		_spec.SetField(activityevent.FieldSessionEnd, field.TypeTime, value)
	}
	if _u.mutation.SessionEndCleared() {
		_spec.ClearField(activityevent.FieldSessionEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(activityevent.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(activityevent.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(activityevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(activityevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(activityevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Pyramid(); ok {
		_spec.SetField(activityevent.FieldPyramid, field.TypeJSON, value)
	}
	if _u.mutation.PyramidCleared() {
		_spec.ClearField(activityevent.FieldPyramid, field.TypeJSON)
	}
	if value, ok := _u.mutation.Vocabulary(); ok {
		_spec.SetField(activityevent.FieldVocabulary, field.TypeJSON, value)
	}
	if _u.mutation.VocabularyCleared() {
		_spec.ClearField(activityevent.FieldVocabulary, field.TypeJSON)
	}
	if value, ok := _u.mutation.Writing(); ok {
		_spec.SetField(activityevent.FieldWriting, field.TypeJSON, value)
	}
	if _u.mutation.WritingCleared() {
		_spec.ClearField(activityevent.FieldWriting, field.TypeJSON)
	}
	_node = &ActivityEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
