// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ekremtas/lingopyr/ent/predicate"
	"github.com/ekremtas/lingopyr/ent/pyramidsession"
	"github.com/ekremtas/lingopyr/internal/stepgen"
)

// PyramidSessionUpdate is the builder for updating PyramidSession entities.
type PyramidSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PyramidSessionMutation
}

// Where appends a list predicates to the PyramidSessionUpdate builder.
func (_u *PyramidSessionUpdate) Where(ps ...predicate.PyramidSession) *PyramidSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PyramidSessionUpdate) SetUserID(v string) *PyramidSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PyramidSessionUpdate) SetNillableUserID(v *string) *PyramidSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *PyramidSessionUpdate) SetLevel(v string) *PyramidSessionUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *PyramidSessionUpdate) SetNillableLevel(v *string) *PyramidSessionUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetLearningLanguage sets the "learning_language" field.
func (_u *PyramidSessionUpdate) SetLearningLanguage(v string) *PyramidSessionUpdate {
	_u.mutation.SetLearningLanguage(v)
	return _u
}

// SetNillableLearningLanguage sets the "learning_language" field if the given value is not nil.
func (_u *PyramidSessionUpdate) SetNillableLearningLanguage(v *string) *PyramidSessionUpdate {
	if v != nil {
		_u.SetLearningLanguage(*v)
	}
	return _u
}

// SetSystemLanguage sets the "system_language" field.
func (_u *PyramidSessionUpdate) SetSystemLanguage(v string) *PyramidSessionUpdate {
	_u.mutation.SetSystemLanguage(v)
	return _u
}

// SetNillableSystemLanguage sets the "system_language" field if the given value is not nil.
func (_u *PyramidSessionUpdate) SetNillableSystemLanguage(v *string) *PyramidSessionUpdate {
	if v != nil {
		_u.SetSystemLanguage(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *PyramidSessionUpdate) SetPurpose(v string) *PyramidSessionUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *PyramidSessionUpdate) SetNillablePurpose(v *string) *PyramidSessionUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetTotalSteps sets the "total_steps" field.
func (_u *PyramidSessionUpdate) SetTotalSteps(v int) *PyramidSessionUpdate {
	_u.mutation.ResetTotalSteps()
	_u.mutation.SetTotalSteps(v)
	return _u
}

// SetNillableTotalSteps sets the "total_steps" field if the given value is not nil.
func (_u *PyramidSessionUpdate) SetNillableTotalSteps(v *int) *PyramidSessionUpdate {
	if v != nil {
		_u.SetTotalSteps(*v)
	}
	return _u
}

// AddTotalSteps adds value to the "total_steps" field.
func (_u *PyramidSessionUpdate) AddTotalSteps(v int) *PyramidSessionUpdate {
	_u.mutation.AddTotalSteps(v)
	return _u
}

// SetStepKinds sets the "step_kinds" field.
func (_u *PyramidSessionUpdate) SetStepKinds(v []string) *PyramidSessionUpdate {
	_u.mutation.SetStepKinds(v)
	return _u
}

// AppendStepKinds appends value to the "step_kinds" field.
func (_u *PyramidSessionUpdate) AppendStepKinds(v []string) *PyramidSessionUpdate {
	_u.mutation.AppendStepKinds(v)
	return _u
}

// SetSteps sets the "steps" field.
func (_u *PyramidSessionUpdate) SetSteps(v []stepgen.Step) *PyramidSessionUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *PyramidSessionUpdate) AppendSteps(v []stepgen.Step) *PyramidSessionUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// ClearSteps clears the value of the "steps" field.
func (_u *PyramidSessionUpdate) ClearSteps() *PyramidSessionUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// SetLastStepIndex sets the "last_step_index" field.
func (_u *PyramidSessionUpdate) SetLastStepIndex(v int) *PyramidSessionUpdate {
	_u.mutation.ResetLastStepIndex()
	_u.mutation.SetLastStepIndex(v)
	return _u
}

// SetNillableLastStepIndex sets the "last_step_index" field if the given value is not nil.
func (_u *PyramidSessionUpdate) SetNillableLastStepIndex(v *int) *PyramidSessionUpdate {
	if v != nil {
		_u.SetLastStepIndex(*v)
	}
	return _u
}

// AddLastStepIndex adds value to the "last_step_index" field.
func (_u *PyramidSessionUpdate) AddLastStepIndex(v int) *PyramidSessionUpdate {
	_u.mutation.AddLastStepIndex(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *PyramidSessionUpdate) SetCompleted(v bool) *PyramidSessionUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *PyramidSessionUpdate) SetNillableCompleted(v *bool) *PyramidSessionUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *PyramidSessionUpdate) SetEventID(v string) *PyramidSessionUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *PyramidSessionUpdate) SetNillableEventID(v *string) *PyramidSessionUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PyramidSessionUpdate) SetUpdatedAt(v time.Time) *PyramidSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PyramidSessionMutation object of the builder.
func (_u *PyramidSessionUpdate) Mutation() *PyramidSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PyramidSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PyramidSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PyramidSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PyramidSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PyramidSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pyramidsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PyramidSessionUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := pyramidsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PyramidSession.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := pyramidsession.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "PyramidSession.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearningLanguage(); ok {
		if err := pyramidsession.LearningLanguageValidator(v); err != nil {
			return &ValidationError{Name: "learning_language", err: fmt.Errorf(`ent: validator failed for field "PyramidSession.learning_language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SystemLanguage(); ok {
		if err := pyramidsession.SystemLanguageValidator(v); err != nil {
			return &ValidationError{Name: "system_language", err: fmt.Errorf(`ent: validator failed for field "PyramidSession.system_language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalSteps(); ok {
		if err := pyramidsession.TotalStepsValidator(v); err != nil {
			return &ValidationError{Name: "total_steps", err: fmt.Errorf(`ent: validator failed for field "PyramidSession.total_steps": %w`, err)}
		}
	}
	return nil
}

func (_u *PyramidSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pyramidsession.Table, pyramidsession.Columns, sqlgraph.NewFieldSpec(pyramidsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pyramidsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(pyramidsession.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningLanguage(); ok {
		_spec.SetField(pyramidsession.FieldLearningLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemLanguage(); ok {
		_spec.SetField(pyramidsession.FieldSystemLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(pyramidsession.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalSteps(); ok {
		_spec.SetField(pyramidsession.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSteps(); ok {
		_spec.AddField(pyramidsession.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepKinds(); ok {
		_spec.SetField(pyramidsession.FieldStepKinds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepKinds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pyramidsession.FieldStepKinds, value)
		})
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(pyramidsession.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pyramidsession.FieldSteps, value)
		})
	}
	if _u.mutation.StepsCleared() {
		_spec.ClearField(pyramidsession.FieldSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastStepIndex(); ok {
		_spec.SetField(pyramidsession.FieldLastStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStepIndex(); ok {
		_spec.AddField(pyramidsession.FieldLastStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(pyramidsession.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(pyramidsession.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pyramidsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pyramidsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PyramidSessionUpdateOne is the builder for updating a single PyramidSession entity.
type PyramidSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PyramidSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *PyramidSessionUpdateOne) SetUserID(v string) *PyramidSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PyramidSessionUpdateOne) SetNillableUserID(v *string) *PyramidSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *PyramidSessionUpdateOne) SetLevel(v string) *PyramidSessionUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *PyramidSessionUpdateOne) SetNillableLevel(v *string) *PyramidSessionUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetLearningLanguage sets the "learning_language" field.
func (_u *PyramidSessionUpdateOne) SetLearningLanguage(v string) *PyramidSessionUpdateOne {
	_u.mutation.SetLearningLanguage(v)
	return _u
}

// SetNillableLearningLanguage sets the "learning_language" field if the given value is not nil.
func (_u *PyramidSessionUpdateOne) SetNillableLearningLanguage(v *string) *PyramidSessionUpdateOne {
	if v != nil {
		_u.SetLearningLanguage(*v)
	}
	return _u
}

// SetSystemLanguage sets the "system_language" field.
func (_u *PyramidSessionUpdateOne) SetSystemLanguage(v string) *PyramidSessionUpdateOne {
	_u.mutation.SetSystemLanguage(v)
	return _u
}

// SetNillableSystemLanguage sets the "system_language" field if the given value is not nil.
func (_u *PyramidSessionUpdateOne) SetNillableSystemLanguage(v *string) *PyramidSessionUpdateOne {
	if v != nil {
		_u.SetSystemLanguage(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *PyramidSessionUpdateOne) SetPurpose(v string) *PyramidSessionUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *PyramidSessionUpdateOne) SetNillablePurpose(v *string) *PyramidSessionUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetTotalSteps sets the "total_steps" field.
func (_u *PyramidSessionUpdateOne) SetTotalSteps(v int) *PyramidSessionUpdateOne {
	_u.mutation.ResetTotalSteps()
	_u.mutation.SetTotalSteps(v)
	return _u
}

// SetNillableTotalSteps sets the "total_steps" field if the given value is not nil.
func (_u *PyramidSessionUpdateOne) SetNillableTotalSteps(v *int) *PyramidSessionUpdateOne {
	if v != nil {
		_u.SetTotalSteps(*v)
	}
	return _u
}

// AddTotalSteps adds value to the "total_steps" field.
func (_u *PyramidSessionUpdateOne) AddTotalSteps(v int) *PyramidSessionUpdateOne {
	_u.mutation.AddTotalSteps(v)
	return _u
}

// SetStepKinds sets the "step_kinds" field.
func (_u *PyramidSessionUpdateOne) SetStepKinds(v []string) *PyramidSessionUpdateOne {
	_u.mutation.SetStepKinds(v)
	return _u
}

// AppendStepKinds appends value to the "step_kinds" field.
func (_u *PyramidSessionUpdateOne) AppendStepKinds(v []string) *PyramidSessionUpdateOne {
	_u.mutation.AppendStepKinds(v)
	return _u
}

// SetSteps sets the "steps" field.
func (_u *PyramidSessionUpdateOne) SetSteps(v []stepgen.Step) *PyramidSessionUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *PyramidSessionUpdateOne) AppendSteps(v []stepgen.Step) *PyramidSessionUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// ClearSteps clears the value of the "steps" field.
func (_u *PyramidSessionUpdateOne) ClearSteps() *PyramidSessionUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// SetLastStepIndex sets the "last_step_index" field.
func (_u *PyramidSessionUpdateOne) SetLastStepIndex(v int) *PyramidSessionUpdateOne {
	_u.mutation.ResetLastStepIndex()
	_u.mutation.SetLastStepIndex(v)
	return _u
}

// SetNillableLastStepIndex sets the "last_step_index" field if the given value is not nil.
func (_u *PyramidSessionUpdateOne) SetNillableLastStepIndex(v *int) *PyramidSessionUpdateOne {
	if v != nil {
		_u.SetLastStepIndex(*v)
	}
	return _u
}

// AddLastStepIndex adds value to the "last_step_index" field.
func (_u *PyramidSessionUpdateOne) AddLastStepIndex(v int) *PyramidSessionUpdateOne {
	_u.mutation.AddLastStepIndex(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *PyramidSessionUpdateOne) SetCompleted(v bool) *PyramidSessionUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *PyramidSessionUpdateOne) SetNillableCompleted(v *bool) *PyramidSessionUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *PyramidSessionUpdateOne) SetEventID(v string) *PyramidSessionUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *PyramidSessionUpdateOne) SetNillableEventID(v *string) *PyramidSessionUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PyramidSessionUpdateOne) SetUpdatedAt(v time.Time) *PyramidSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PyramidSessionMutation object of the builder.
func (_u *PyramidSessionUpdateOne) Mutation() *PyramidSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PyramidSessionUpdate builder.
func (_u *PyramidSessionUpdateOne) Where(ps ...predicate.PyramidSession) *PyramidSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PyramidSessionUpdateOne) Select(field string, fields ...string) *PyramidSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PyramidSession entity.
func (_u *PyramidSessionUpdateOne) Save(ctx context.Context) (*PyramidSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PyramidSessionUpdateOne) SaveX(ctx context.Context) *PyramidSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PyramidSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PyramidSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PyramidSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pyramidsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PyramidSessionUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := pyramidsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PyramidSession.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := pyramidsession.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "PyramidSession.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearningLanguage(); ok {
		if err := pyramidsession.LearningLanguageValidator(v); err != nil {
			return &ValidationError{Name: "learning_language", err: fmt.Errorf(`ent: validator failed for field "PyramidSession.learning_language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SystemLanguage(); ok {
		if err := pyramidsession.SystemLanguageValidator(v); err != nil {
			return &ValidationError{Name: "system_language", err: fmt.Errorf(`ent: validator failed for field "PyramidSession.system_language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalSteps(); ok {
		if err := pyramidsession.TotalStepsValidator(v); err != nil {
			return &ValidationError{Name: "total_steps", err: fmt.Errorf(`ent: validator failed for field "PyramidSession.total_steps": %w`, err)}
		}
	}
	return nil
}

func (_u *PyramidSessionUpdateOne) sqlSave(ctx context.Context) (_node *PyramidSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pyramidsession.Table, pyramidsession.Columns, sqlgraph.NewFieldSpec(pyramidsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PyramidSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pyramidsession.FieldID)
		for _, f := range fields {
			if !pyramidsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pyramidsession.FieldID {
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
		_spec.SetField(pyramidsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(pyramidsession.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningLanguage(); ok {
		_spec.SetField(pyramidsession.FieldLearningLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemLanguage(); ok {
		_spec.SetField(pyramidsession.FieldSystemLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(pyramidsession.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalSteps(); ok {
		_spec.SetField(pyramidsession.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSteps(); ok {
		_spec.AddField(pyramidsession.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepKinds(); ok {
		_spec.SetField(pyramidsession.FieldStepKinds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepKinds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pyramidsession.FieldStepKinds, value)
		})
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(pyramidsession.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pyramidsession.FieldSteps, value)
		})
	}
	if _u.mutation.StepsCleared() {
		_spec.ClearField(pyramidsession.FieldSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastStepIndex(); ok {
		_spec.SetField(pyramidsession.FieldLastStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStepIndex(); ok {
		_spec.AddField(pyramidsession.FieldLastStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(pyramidsession.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(pyramidsession.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pyramidsession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PyramidSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pyramidsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
