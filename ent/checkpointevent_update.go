// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/geomiz/ent/checkpointevent"
	"github.com/abhisek/geomiz/ent/predicate"
)

// CheckpointEventUpdate is the builder for updating CheckpointEvent entities.
type CheckpointEventUpdate struct {
	config
	hooks    []Hook
	mutation *CheckpointEventMutation
}

// Where appends a list predicates to the CheckpointEventUpdate builder.
func (_u *CheckpointEventUpdate) Where(ps ...predicate.CheckpointEvent) *CheckpointEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CheckpointEventUpdate) SetSessionID(v string) *CheckpointEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CheckpointEventUpdate) SetNillableSessionID(v *string) *CheckpointEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *CheckpointEventUpdate) SetLessonID(v string) *CheckpointEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *CheckpointEventUpdate) SetNillableLessonID(v *string) *CheckpointEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetSectionIndex sets the "section_index" field.
func (_u *CheckpointEventUpdate) SetSectionIndex(v int) *CheckpointEventUpdate {
	_u.mutation.ResetSectionIndex()
	_u.mutation.SetSectionIndex(v)
	return _u
}

// SetNillableSectionIndex sets the "section_index" field if the given value is not nil.
func (_u *CheckpointEventUpdate) SetNillableSectionIndex(v *int) *CheckpointEventUpdate {
	if v != nil {
		_u.SetSectionIndex(*v)
	}
	return _u
}

// AddSectionIndex adds value to the "section_index" field.
func (_u *CheckpointEventUpdate) AddSectionIndex(v int) *CheckpointEventUpdate {
	_u.mutation.AddSectionIndex(v)
	return _u
}

// SetIntent sets the "intent" field.
func (_u *CheckpointEventUpdate) SetIntent(v string) *CheckpointEventUpdate {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *CheckpointEventUpdate) SetNillableIntent(v *string) *CheckpointEventUpdate {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *CheckpointEventUpdate) SetSource(v string) *CheckpointEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CheckpointEventUpdate) SetNillableSource(v *string) *CheckpointEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *CheckpointEventUpdate) SetReason(v string) *CheckpointEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *CheckpointEventUpdate) SetNillableReason(v *string) *CheckpointEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetFromCache sets the "from_cache" field.
func (_u *CheckpointEventUpdate) SetFromCache(v bool) *CheckpointEventUpdate {
	_u.mutation.SetFromCache(v)
	return _u
}

// SetNillableFromCache sets the "from_cache" field if the given value is not nil.
func (_u *CheckpointEventUpdate) SetNillableFromCache(v *bool) *CheckpointEventUpdate {
	if v != nil {
		_u.SetFromCache(*v)
	}
	return _u
}

// Mutation returns the CheckpointEventMutation object of the builder.
func (_u *CheckpointEventUpdate) Mutation() *CheckpointEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckpointEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckpointEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := checkpointevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := checkpointevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Intent(); ok {
		if err := checkpointevent.IntentValidator(v); err != nil {
			return &ValidationError{Name: "intent", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.intent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := checkpointevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckpointEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpointevent.Table, checkpointevent.Columns, sqlgraph.NewFieldSpec(checkpointevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(checkpointevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(checkpointevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionIndex(); ok {
		_spec.SetField(checkpointevent.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionIndex(); ok {
		_spec.AddField(checkpointevent.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(checkpointevent.FieldIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(checkpointevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(checkpointevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromCache(); ok {
		_spec.SetField(checkpointevent.FieldFromCache, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpointevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckpointEventUpdateOne is the builder for updating a single CheckpointEvent entity.
type CheckpointEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckpointEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *CheckpointEventUpdateOne) SetSessionID(v string) *CheckpointEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CheckpointEventUpdateOne) SetNillableSessionID(v *string) *CheckpointEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *CheckpointEventUpdateOne) SetLessonID(v string) *CheckpointEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *CheckpointEventUpdateOne) SetNillableLessonID(v *string) *CheckpointEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetSectionIndex sets the "section_index" field.
func (_u *CheckpointEventUpdateOne) SetSectionIndex(v int) *CheckpointEventUpdateOne {
	_u.mutation.ResetSectionIndex()
	_u.mutation.SetSectionIndex(v)
	return _u
}

// SetNillableSectionIndex sets the "section_index" field if the given value is not nil.
func (_u *CheckpointEventUpdateOne) SetNillableSectionIndex(v *int) *CheckpointEventUpdateOne {
	if v != nil {
		_u.SetSectionIndex(*v)
	}
	return _u
}

// AddSectionIndex adds value to the "section_index" field.
func (_u *CheckpointEventUpdateOne) AddSectionIndex(v int) *CheckpointEventUpdateOne {
	_u.mutation.AddSectionIndex(v)
	return _u
}

// SetIntent sets the "intent" field.
func (_u *CheckpointEventUpdateOne) SetIntent(v string) *CheckpointEventUpdateOne {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *CheckpointEventUpdateOne) SetNillableIntent(v *string) *CheckpointEventUpdateOne {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *CheckpointEventUpdateOne) SetSource(v string) *CheckpointEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CheckpointEventUpdateOne) SetNillableSource(v *string) *CheckpointEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *CheckpointEventUpdateOne) SetReason(v string) *CheckpointEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *CheckpointEventUpdateOne) SetNillableReason(v *string) *CheckpointEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetFromCache sets the "from_cache" field.
func (_u *CheckpointEventUpdateOne) SetFromCache(v bool) *CheckpointEventUpdateOne {
	_u.mutation.SetFromCache(v)
	return _u
}

// SetNillableFromCache sets the "from_cache" field if the given value is not nil.
func (_u *CheckpointEventUpdateOne) SetNillableFromCache(v *bool) *CheckpointEventUpdateOne {
	if v != nil {
		_u.SetFromCache(*v)
	}
	return _u
}

// Mutation returns the CheckpointEventMutation object of the builder.
func (_u *CheckpointEventUpdateOne) Mutation() *CheckpointEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckpointEventUpdate builder.
func (_u *CheckpointEventUpdateOne) Where(ps ...predicate.CheckpointEvent) *CheckpointEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckpointEventUpdateOne) Select(field string, fields ...string) *CheckpointEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CheckpointEvent entity.
func (_u *CheckpointEventUpdateOne) Save(ctx context.Context) (*CheckpointEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointEventUpdateOne) SaveX(ctx context.Context) *CheckpointEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckpointEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := checkpointevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := checkpointevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Intent(); ok {
		if err := checkpointevent.IntentValidator(v); err != nil {
			return &ValidationError{Name: "intent", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.intent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := checkpointevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckpointEventUpdateOne) sqlSave(ctx context.Context) (_node *CheckpointEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpointevent.Table, checkpointevent.Columns, sqlgraph.NewFieldSpec(checkpointevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CheckpointEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpointevent.FieldID)
		for _, f := range fields {
			if !checkpointevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkpointevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(checkpointevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(checkpointevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionIndex(); ok {
		_spec.SetField(checkpointevent.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionIndex(); ok {
		_spec.AddField(checkpointevent.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(checkpointevent.FieldIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(checkpointevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(checkpointevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromCache(); ok {
		_spec.SetField(checkpointevent.FieldFromCache, field.TypeBool, value)
	}
	_node = &CheckpointEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpointevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
