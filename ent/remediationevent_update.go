// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/geomiz/ent/predicate"
	"github.com/abhisek/geomiz/ent/remediationevent"
)

// RemediationEventUpdate is the builder for updating RemediationEvent entities.
type RemediationEventUpdate struct {
	config
	hooks    []Hook
	mutation *RemediationEventMutation
}

// Where appends a list predicates to the RemediationEventUpdate builder.
func (_u *RemediationEventUpdate) Where(ps ...predicate.RemediationEvent) *RemediationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RemediationEventUpdate) SetSessionID(v string) *RemediationEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RemediationEventUpdate) SetNillableSessionID(v *string) *RemediationEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *RemediationEventUpdate) SetLessonID(v string) *RemediationEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *RemediationEventUpdate) SetNillableLessonID(v *string) *RemediationEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetSectionIndex sets the "section_index" field.
func (_u *RemediationEventUpdate) SetSectionIndex(v int) *RemediationEventUpdate {
	_u.mutation.ResetSectionIndex()
	_u.mutation.SetSectionIndex(v)
	return _u
}

// SetNillableSectionIndex sets the "section_index" field if the given value is not nil.
func (_u *RemediationEventUpdate) SetNillableSectionIndex(v *int) *RemediationEventUpdate {
	if v != nil {
		_u.SetSectionIndex(*v)
	}
	return _u
}

// AddSectionIndex adds value to the "section_index" field.
func (_u *RemediationEventUpdate) AddSectionIndex(v int) *RemediationEventUpdate {
	_u.mutation.AddSectionIndex(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *RemediationEventUpdate) SetAction(v string) *RemediationEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *RemediationEventUpdate) SetNillableAction(v *string) *RemediationEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetOptionIndex sets the "option_index" field.
func (_u *RemediationEventUpdate) SetOptionIndex(v int) *RemediationEventUpdate {
	_u.mutation.ResetOptionIndex()
	_u.mutation.SetOptionIndex(v)
	return _u
}

// SetNillableOptionIndex sets the "option_index" field if the given value is not nil.
func (_u *RemediationEventUpdate) SetNillableOptionIndex(v *int) *RemediationEventUpdate {
	if v != nil {
		_u.SetOptionIndex(*v)
	}
	return _u
}

// AddOptionIndex adds value to the "option_index" field.
func (_u *RemediationEventUpdate) AddOptionIndex(v int) *RemediationEventUpdate {
	_u.mutation.AddOptionIndex(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *RemediationEventUpdate) SetCorrect(v bool) *RemediationEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *RemediationEventUpdate) SetNillableCorrect(v *bool) *RemediationEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the RemediationEventMutation object of the builder.
func (_u *RemediationEventUpdate) Mutation() *RemediationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RemediationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RemediationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RemediationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RemediationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RemediationEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := remediationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RemediationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := remediationevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "RemediationEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := remediationevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RemediationEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *RemediationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(remediationevent.Table, remediationevent.Columns, sqlgraph.NewFieldSpec(remediationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(remediationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(remediationevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionIndex(); ok {
		_spec.SetField(remediationevent.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionIndex(); ok {
		_spec.AddField(remediationevent.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(remediationevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionIndex(); ok {
		_spec.SetField(remediationevent.FieldOptionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOptionIndex(); ok {
		_spec.AddField(remediationevent.FieldOptionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(remediationevent.FieldCorrect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{remediationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RemediationEventUpdateOne is the builder for updating a single RemediationEvent entity.
type RemediationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RemediationEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *RemediationEventUpdateOne) SetSessionID(v string) *RemediationEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RemediationEventUpdateOne) SetNillableSessionID(v *string) *RemediationEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *RemediationEventUpdateOne) SetLessonID(v string) *RemediationEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *RemediationEventUpdateOne) SetNillableLessonID(v *string) *RemediationEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetSectionIndex sets the "section_index" field.
func (_u *RemediationEventUpdateOne) SetSectionIndex(v int) *RemediationEventUpdateOne {
	_u.mutation.ResetSectionIndex()
	_u.mutation.SetSectionIndex(v)
	return _u
}

// SetNillableSectionIndex sets the "section_index" field if the given value is not nil.
func (_u *RemediationEventUpdateOne) SetNillableSectionIndex(v *int) *RemediationEventUpdateOne {
	if v != nil {
		_u.SetSectionIndex(*v)
	}
	return _u
}

// AddSectionIndex adds value to the "section_index" field.
func (_u *RemediationEventUpdateOne) AddSectionIndex(v int) *RemediationEventUpdateOne {
	_u.mutation.AddSectionIndex(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *RemediationEventUpdateOne) SetAction(v string) *RemediationEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *RemediationEventUpdateOne) SetNillableAction(v *string) *RemediationEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetOptionIndex sets the "option_index" field.
func (_u *RemediationEventUpdateOne) SetOptionIndex(v int) *RemediationEventUpdateOne {
	_u.mutation.ResetOptionIndex()
	_u.mutation.SetOptionIndex(v)
	return _u
}

// SetNillableOptionIndex sets the "option_index" field if the given value is not nil.
func (_u *RemediationEventUpdateOne) SetNillableOptionIndex(v *int) *RemediationEventUpdateOne {
	if v != nil {
		_u.SetOptionIndex(*v)
	}
	return _u
}

// AddOptionIndex adds value to the "option_index" field.
func (_u *RemediationEventUpdateOne) AddOptionIndex(v int) *RemediationEventUpdateOne {
	_u.mutation.AddOptionIndex(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *RemediationEventUpdateOne) SetCorrect(v bool) *RemediationEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *RemediationEventUpdateOne) SetNillableCorrect(v *bool) *RemediationEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the RemediationEventMutation object of the builder.
func (_u *RemediationEventUpdateOne) Mutation() *RemediationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RemediationEventUpdate builder.
func (_u *RemediationEventUpdateOne) Where(ps ...predicate.RemediationEvent) *RemediationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RemediationEventUpdateOne) Select(field string, fields ...string) *RemediationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RemediationEvent entity.
func (_u *RemediationEventUpdateOne) Save(ctx context.Context) (*RemediationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RemediationEventUpdateOne) SaveX(ctx context.Context) *RemediationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RemediationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RemediationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RemediationEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := remediationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RemediationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := remediationevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "RemediationEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := remediationevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RemediationEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *RemediationEventUpdateOne) sqlSave(ctx context.Context) (_node *RemediationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(remediationevent.Table, remediationevent.Columns, sqlgraph.NewFieldSpec(remediationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RemediationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, remediationevent.FieldID)
		for _, f := range fields {
			if !remediationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != remediationevent.FieldID {
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
		_spec.SetField(remediationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(remediationevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionIndex(); ok {
		_spec.SetField(remediationevent.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionIndex(); ok {
		_spec.AddField(remediationevent.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(remediationevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionIndex(); ok {
		_spec.SetField(remediationevent.FieldOptionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOptionIndex(); ok {
		_spec.AddField(remediationevent.FieldOptionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(remediationevent.FieldCorrect, field.TypeBool, value)
	}
	_node = &RemediationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{remediationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
