// Code generated by ent, DO NOT EDIT.

package remediationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/geomiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldSessionID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldLessonID, v))
}

// SectionIndex applies equality check predicate on the "section_index" field. It's identical to SectionIndexEQ.
func SectionIndex(v int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldSectionIndex, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldAction, v))
}

// OptionIndex applies equality check predicate on the "option_index" field. It's identical to OptionIndexEQ.
func OptionIndex(v int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldOptionIndex, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldCorrect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldContainsFold(FieldLessonID, v))
}

// SectionIndexEQ applies the EQ predicate on the "section_index" field.
func SectionIndexEQ(v int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldSectionIndex, v))
}

// SectionIndexNEQ applies the NEQ predicate on the "section_index" field.
func SectionIndexNEQ(v int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNEQ(FieldSectionIndex, v))
}

// SectionIndexIn applies the In predicate on the "section_index" field.
func SectionIndexIn(vs ...int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldIn(FieldSectionIndex, vs...))
}

// SectionIndexNotIn applies the NotIn predicate on the "section_index" field.
func SectionIndexNotIn(vs ...int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNotIn(FieldSectionIndex, vs...))
}

// SectionIndexGT applies the GT predicate on the "section_index" field.
func SectionIndexGT(v int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGT(FieldSectionIndex, v))
}

// SectionIndexGTE applies the GTE predicate on the "section_index" field.
func SectionIndexGTE(v int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGTE(FieldSectionIndex, v))
}

// SectionIndexLT applies the LT predicate on the "section_index" field.
func SectionIndexLT(v int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLT(FieldSectionIndex, v))
}

// SectionIndexLTE applies the LTE predicate on the "section_index" field.
func SectionIndexLTE(v int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLTE(FieldSectionIndex, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldContainsFold(FieldAction, v))
}

// OptionIndexEQ applies the EQ predicate on the "option_index" field.
func OptionIndexEQ(v int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldOptionIndex, v))
}

// OptionIndexNEQ applies the NEQ predicate on the "option_index" field.
func OptionIndexNEQ(v int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNEQ(FieldOptionIndex, v))
}

// OptionIndexIn applies the In predicate on the "option_index" field.
func OptionIndexIn(vs ...int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldIn(FieldOptionIndex, vs...))
}

// OptionIndexNotIn applies the NotIn predicate on the "option_index" field.
func OptionIndexNotIn(vs ...int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNotIn(FieldOptionIndex, vs...))
}

// OptionIndexGT applies the GT predicate on the "option_index" field.
func OptionIndexGT(v int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGT(FieldOptionIndex, v))
}

// OptionIndexGTE applies the GTE predicate on the "option_index" field.
func OptionIndexGTE(v int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldGTE(FieldOptionIndex, v))
}

// OptionIndexLT applies the LT predicate on the "option_index" field.
func OptionIndexLT(v int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLT(FieldOptionIndex, v))
}

// OptionIndexLTE applies the LTE predicate on the "option_index" field.
func OptionIndexLTE(v int) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldLTE(FieldOptionIndex, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.FieldNEQ(FieldCorrect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RemediationEvent) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RemediationEvent) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RemediationEvent) predicate.RemediationEvent {
	return predicate.RemediationEvent(sql.NotPredicates(p))
}
