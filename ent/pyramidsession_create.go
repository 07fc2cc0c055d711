// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ekremtas/lingopyr/ent/pyramidsession"
	"github.com/ekremtas/lingopyr/internal/stepgen"
)

// PyramidSessionCreate is the builder for creating a PyramidSession entity.
type PyramidSessionCreate struct {
	config
	mutation *PyramidSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PyramidSessionCreate) SetUserID(v string) *PyramidSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *PyramidSessionCreate) SetLevel(v string) *PyramidSessionCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetLearningLanguage sets the "learning_language" field.
func (_c *PyramidSessionCreate) SetLearningLanguage(v string) *PyramidSessionCreate {
	_c.mutation.SetLearningLanguage(v)
	return _c
}

// SetSystemLanguage sets the "system_language" field.
func (_c *PyramidSessionCreate) SetSystemLanguage(v string) *PyramidSessionCreate {
	_c.mutation.SetSystemLanguage(v)
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *PyramidSessionCreate) SetPurpose(v string) *PyramidSessionCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_c *PyramidSessionCreate) SetNillablePurpose(v *string) *PyramidSessionCreate {
	if v != nil {
		_c.SetPurpose(*v)
	}
	return _c
}

// SetTotalSteps sets the "total_steps" field.
func (_c *PyramidSessionCreate) SetTotalSteps(v int) *PyramidSessionCreate {
	_c.mutation.SetTotalSteps(v)
	return _c
}

// SetStepKinds sets the "step_kinds" field.
func (_c *PyramidSessionCreate) SetStepKinds(v []string) *PyramidSessionCreate {
	_c.mutation.SetStepKinds(v)
	return _c
}

// SetSteps sets the "steps" field.
func (_c *PyramidSessionCreate) SetSteps(v []stepgen.Step) *PyramidSessionCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetLastStepIndex sets the "last_step_index" field.
func (_c *PyramidSessionCreate) SetLastStepIndex(v int) *PyramidSessionCreate {
	_c.mutation.SetLastStepIndex(v)
	return _c
}

// SetNillableLastStepIndex sets the "last_step_index" field if the given value is not nil.
func (_c *PyramidSessionCreate) SetNillableLastStepIndex(v *int) *PyramidSessionCreate {
	if v != nil {
		_c.SetLastStepIndex(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *PyramidSessionCreate) SetCompleted(v bool) *PyramidSessionCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *PyramidSessionCreate) SetNillableCompleted(v *bool) *PyramidSessionCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *PyramidSessionCreate) SetEventID(v string) *PyramidSessionCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_c *PyramidSessionCreate) SetNillableEventID(v *string) *PyramidSessionCreate {
	if v != nil {
		_c.SetEventID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PyramidSessionCreate) SetCreatedAt(v time.Time) *PyramidSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PyramidSessionCreate) SetNillableCreatedAt(v *time.Time) *PyramidSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PyramidSessionCreate) SetUpdatedAt(v time.Time) *PyramidSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PyramidSessionCreate) SetNillableUpdatedAt(v *time.Time) *PyramidSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PyramidSessionCreate) SetID(v string) *PyramidSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PyramidSessionCreate) SetNillableID(v *string) *PyramidSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PyramidSessionMutation object of the builder.
func (_c *PyramidSessionCreate) Mutation() *PyramidSessionMutation {
	return _c.mutation
}

// Save creates the PyramidSession in the database.
func (_c *PyramidSessionCreate) Save(ctx context.Context) (*PyramidSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PyramidSessionCreate) SaveX(ctx context.Context) *PyramidSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PyramidSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PyramidSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PyramidSessionCreate) defaults() {
	if _, ok := _c.mutation.Purpose(); !ok {
		v := pyramidsession.DefaultPurpose
		_c.mutation.SetPurpose(v)
	}
	if _, ok := _c.mutation.LastStepIndex(); !ok {
		v := pyramidsession.DefaultLastStepIndex
		_c.mutation.SetLastStepIndex(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := pyramidsession.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.EventID(); !ok {
		v := pyramidsession.DefaultEventID
		_c.mutation.SetEventID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pyramidsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pyramidsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pyramidsession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PyramidSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PyramidSession.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := pyramidsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PyramidSession.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "PyramidSession.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := pyramidsession.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "PyramidSession.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearningLanguage(); !ok {
		return &ValidationError{Name: "learning_language", err: errors.New(`ent: missing required field "PyramidSession.learning_language"`)}
	}
	if v, ok := _c.mutation.LearningLanguage(); ok {
		if err := pyramidsession.LearningLanguageValidator(v); err != nil {
			return &ValidationError{Name: "learning_language", err: fmt.Errorf(`ent: validator failed for field "PyramidSession.learning_language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SystemLanguage(); !ok {
		return &ValidationError{Name: "system_language", err: errors.New(`ent: missing required field "PyramidSession.system_language"`)}
	}
	if v, ok := _c.mutation.SystemLanguage(); ok {
		if err := pyramidsession.SystemLanguageValidator(v); err != nil {
			return &ValidationError{Name: "system_language", err: fmt.Errorf(`ent: validator failed for field "PyramidSession.system_language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "PyramidSession.purpose"`)}
	}
	if _, ok := _c.mutation.TotalSteps(); !ok {
		return &ValidationError{Name: "total_steps", err: errors.New(`ent: missing required field "PyramidSession.total_steps"`)}
	}
	if v, ok := _c.mutation.TotalSteps(); ok {
		if err := pyramidsession.TotalStepsValidator(v); err != nil {
			return &ValidationError{Name: "total_steps", err: fmt.Errorf(`ent: validator failed for field "PyramidSession.total_steps": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepKinds(); !ok {
		return &ValidationError{Name: "step_kinds", err: errors.New(`ent: missing required field "PyramidSession.step_kinds"`)}
	}
	if _, ok := _c.mutation.LastStepIndex(); !ok {
		return &ValidationError{Name: "last_step_index", err: errors.New(`ent: missing required field "PyramidSession.last_step_index"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "PyramidSession.completed"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "PyramidSession.event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PyramidSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PyramidSession.updated_at"`)}
	}
	return nil
}

func (_c *PyramidSessionCreate) sqlSave(ctx context.Context) (*PyramidSession, error) {
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
			return nil, fmt.Errorf("unexpected PyramidSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PyramidSessionCreate) createSpec() (*PyramidSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PyramidSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pyramidsession.Table, sqlgraph.NewFieldSpec(pyramidsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(pyramidsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(pyramidsession.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.LearningLanguage(); ok {
		_spec.SetField(pyramidsession.FieldLearningLanguage, field.TypeString, value)
		_node.LearningLanguage = value
	}
	if value, ok := _c.mutation.SystemLanguage(); ok {
		_spec.SetField(pyramidsession.FieldSystemLanguage, field.TypeString, value)
		_node.SystemLanguage = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(pyramidsession.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.TotalSteps(); ok {
		_spec.SetField(pyramidsession.FieldTotalSteps, field.TypeInt, value)
		_node.TotalSteps = value
	}
	if value, ok := _c.mutation.StepKinds(); ok {
		_spec.SetField(pyramidsession.FieldStepKinds, field.TypeJSON, value)
		_node.StepKinds = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(pyramidsession.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.LastStepIndex(); ok {
		_spec.SetField(pyramidsession.FieldLastStepIndex, field.TypeInt, value)
		_node.LastStepIndex = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(pyramidsession.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(pyramidsession.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pyramidsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pyramidsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PyramidSessionCreateBulk is the builder for creating many PyramidSession entities in bulk.
type PyramidSessionCreateBulk struct {
	config
	err      error
	builders []*PyramidSessionCreate
}

// Save creates the PyramidSession entities in the database.
func (_c *PyramidSessionCreateBulk) Save(ctx context.Context) ([]*PyramidSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PyramidSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PyramidSessionMutation)
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
func (_c *PyramidSessionCreateBulk) SaveX(ctx context.Context) []*PyramidSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PyramidSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PyramidSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
