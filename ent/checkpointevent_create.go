// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/geomiz/ent/checkpointevent"
)

// CheckpointEventCreate is the builder for creating a CheckpointEvent entity.
type CheckpointEventCreate struct {
	config
	mutation *CheckpointEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CheckpointEventCreate) SetSequence(v int64) *CheckpointEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CheckpointEventCreate) SetTimestamp(v time.Time) *CheckpointEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CheckpointEventCreate) SetNillableTimestamp(v *time.Time) *CheckpointEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *CheckpointEventCreate) SetSessionID(v string) *CheckpointEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *CheckpointEventCreate) SetLessonID(v string) *CheckpointEventCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetSectionIndex sets the "section_index" field.
func (_c *CheckpointEventCreate) SetSectionIndex(v int) *CheckpointEventCreate {
	_c.mutation.SetSectionIndex(v)
	return _c
}

// SetIntent sets the "intent" field.
func (_c *CheckpointEventCreate) SetIntent(v string) *CheckpointEventCreate {
	_c.mutation.SetIntent(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *CheckpointEventCreate) SetSource(v string) *CheckpointEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *CheckpointEventCreate) SetReason(v string) *CheckpointEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *CheckpointEventCreate) SetNillableReason(v *string) *CheckpointEventCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetFromCache sets the "from_cache" field.
func (_c *CheckpointEventCreate) SetFromCache(v bool) *CheckpointEventCreate {
	_c.mutation.SetFromCache(v)
	return _c
}

// SetNillableFromCache sets the "from_cache" field if the given value is not nil.
func (_c *CheckpointEventCreate) SetNillableFromCache(v *bool) *CheckpointEventCreate {
	if v != nil {
		_c.SetFromCache(*v)
	}
	return _c
}

// Mutation returns the CheckpointEventMutation object of the builder.
func (_c *CheckpointEventCreate) Mutation() *CheckpointEventMutation {
	return _c.mutation
}

// Save creates the CheckpointEvent in the database.
func (_c *CheckpointEventCreate) Save(ctx context.Context) (*CheckpointEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckpointEventCreate) SaveX(ctx context.Context) *CheckpointEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckpointEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := checkpointevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Reason(); !ok {
		v := checkpointevent.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.FromCache(); !ok {
		v := checkpointevent.DefaultFromCache
		_c.mutation.SetFromCache(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckpointEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CheckpointEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CheckpointEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CheckpointEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := checkpointevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "CheckpointEvent.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := checkpointevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SectionIndex(); !ok {
		return &ValidationError{Name: "section_index", err: errors.New(`ent: missing required field "CheckpointEvent.section_index"`)}
	}
	if _, ok := _c.mutation.Intent(); !ok {
		return &ValidationError{Name: "intent", err: errors.New(`ent: missing required field "CheckpointEvent.intent"`)}
	}
	if v, ok := _c.mutation.Intent(); ok {
		if err := checkpointevent.IntentValidator(v); err != nil {
			return &ValidationError{Name: "intent", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.intent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "CheckpointEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := checkpointevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "CheckpointEvent.reason"`)}
	}
	if _, ok := _c.mutation.FromCache(); !ok {
		return &ValidationError{Name: "from_cache", err: errors.New(`ent: missing required field "CheckpointEvent.from_cache"`)}
	}
	return nil
}

func (_c *CheckpointEventCreate) sqlSave(ctx context.Context) (*CheckpointEvent, error) {
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

func (_c *CheckpointEventCreate) createSpec() (*CheckpointEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CheckpointEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkpointevent.Table, sqlgraph.NewFieldSpec(checkpointevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(checkpointevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(checkpointevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(checkpointevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(checkpointevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.SectionIndex(); ok {
		_spec.SetField(checkpointevent.FieldSectionIndex, field.TypeInt, value)
		_node.SectionIndex = value
	}
	if value, ok := _c.mutation.Intent(); ok {
		_spec.SetField(checkpointevent.FieldIntent, field.TypeString, value)
		_node.Intent = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(checkpointevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(checkpointevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.FromCache(); ok {
		_spec.SetField(checkpointevent.FieldFromCache, field.TypeBool, value)
		_node.FromCache = value
	}
	return _node, _spec
}

// CheckpointEventCreateBulk is the builder for creating many CheckpointEvent entities in bulk.
type CheckpointEventCreateBulk struct {
	config
	err      error
	builders []*CheckpointEventCreate
}

// Save creates the CheckpointEvent entities in the database.
func (_c *CheckpointEventCreateBulk) Save(ctx context.Context) ([]*CheckpointEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CheckpointEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckpointEventMutation)
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
func (_c *CheckpointEventCreateBulk) SaveX(ctx context.Context) []*CheckpointEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
