// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/geomiz/ent/remediationevent"
)

// RemediationEventCreate is the builder for creating a RemediationEvent entity.
type RemediationEventCreate struct {
	config
	mutation *RemediationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RemediationEventCreate) SetSequence(v int64) *RemediationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RemediationEventCreate) SetTimestamp(v time.Time) *RemediationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RemediationEventCreate) SetNillableTimestamp(v *time.Time) *RemediationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RemediationEventCreate) SetSessionID(v string) *RemediationEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *RemediationEventCreate) SetLessonID(v string) *RemediationEventCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetSectionIndex sets the "section_index" field.
func (_c *RemediationEventCreate) SetSectionIndex(v int) *RemediationEventCreate {
	_c.mutation.SetSectionIndex(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *RemediationEventCreate) SetAction(v string) *RemediationEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetOptionIndex sets the "option_index" field.
func (_c *RemediationEventCreate) SetOptionIndex(v int) *RemediationEventCreate {
	_c.mutation.SetOptionIndex(v)
	return _c
}

// SetNillableOptionIndex sets the "option_index" field if the given value is not nil.
func (_c *RemediationEventCreate) SetNillableOptionIndex(v *int) *RemediationEventCreate {
	if v != nil {
		_c.SetOptionIndex(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *RemediationEventCreate) SetCorrect(v bool) *RemediationEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *RemediationEventCreate) SetNillableCorrect(v *bool) *RemediationEventCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// Mutation returns the RemediationEventMutation object of the builder.
func (_c *RemediationEventCreate) Mutation() *RemediationEventMutation {
	return _c.mutation
}

// Save creates the RemediationEvent in the database.
func (_c *RemediationEventCreate) Save(ctx context.Context) (*RemediationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RemediationEventCreate) SaveX(ctx context.Context) *RemediationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RemediationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RemediationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RemediationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := remediationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.OptionIndex(); !ok {
		v := remediationevent.DefaultOptionIndex
		_c.mutation.SetOptionIndex(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := remediationevent.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RemediationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RemediationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RemediationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "RemediationEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := remediationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RemediationEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "RemediationEvent.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := remediationevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "RemediationEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SectionIndex(); !ok {
		return &ValidationError{Name: "section_index", err: errors.New(`ent: missing required field "RemediationEvent.section_index"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "RemediationEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := remediationevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RemediationEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionIndex(); !ok {
		return &ValidationError{Name: "option_index", err: errors.New(`ent: missing required field "RemediationEvent.option_index"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "RemediationEvent.correct"`)}
	}
	return nil
}

func (_c *RemediationEventCreate) sqlSave(ctx context.Context) (*RemediationEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RemediationEventCreate) createSpec() (*RemediationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RemediationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(remediationevent.Table, sqlgraph.NewFieldSpec(remediationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(remediationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(remediationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(remediationevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(remediationevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.SectionIndex(); ok {
		_spec.SetField(remediationevent.FieldSectionIndex, field.TypeInt, value)
		_node.SectionIndex = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(remediationevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.OptionIndex(); ok {
		_spec.SetField(remediationevent.FieldOptionIndex, field.TypeInt, value)
		_node.OptionIndex = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(remediationevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	return _node, _spec
}

// RemediationEventCreateBulk is the builder for creating many RemediationEvent entities in bulk.
type RemediationEventCreateBulk struct {
	config
	err      error
	builders []*RemediationEventCreate
}

// Save creates the RemediationEvent entities in the database.
func (_c *RemediationEventCreateBulk) Save(ctx context.Context) ([]*RemediationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RemediationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RemediationEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *RemediationEventCreateBulk) SaveX(ctx context.Context) []*RemediationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RemediationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RemediationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
