// Code generated by ent, DO NOT EDIT.

package checkpointevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/geomiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldSessionID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldLessonID, v))
}

// SectionIndex applies equality check predicate on the "section_index" field. It's identical to SectionIndexEQ.
func SectionIndex(v int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldSectionIndex, v))
}

// Intent applies equality check predicate on the "intent" field. It's identical to IntentEQ.
func Intent(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldIntent, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldSource, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldReason, v))
}

// FromCache applies equality check predicate on the "from_cache" field. It's identical to FromCacheEQ.
func FromCache(v bool) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldFromCache, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContainsFold(FieldLessonID, v))
}

// SectionIndexEQ applies the EQ predicate on the "section_index" field.
func SectionIndexEQ(v int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldSectionIndex, v))
}

// SectionIndexNEQ applies the NEQ predicate on the "section_index" field.
func SectionIndexNEQ(v int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldSectionIndex, v))
}

// SectionIndexIn applies the In predicate on the "section_index" field.
func SectionIndexIn(vs ...int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldSectionIndex, vs...))
}

// SectionIndexNotIn applies the NotIn predicate on the "section_index" field.
func SectionIndexNotIn(vs ...int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldSectionIndex, vs...))
}

// SectionIndexGT applies the GT predicate on the "section_index" field.
func SectionIndexGT(v int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldSectionIndex, v))
}

// SectionIndexGTE applies the GTE predicate on the "section_index" field.
func SectionIndexGTE(v int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldSectionIndex, v))
}

// SectionIndexLT applies the LT predicate on the "section_index" field.
func SectionIndexLT(v int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldSectionIndex, v))
}

// SectionIndexLTE applies the LTE predicate on the "section_index" field.
func SectionIndexLTE(v int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldSectionIndex, v))
}

// IntentEQ applies the EQ predicate on the "intent" field.
func IntentEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldIntent, v))
}

// IntentNEQ applies the NEQ predicate on the "intent" field.
func IntentNEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldIntent, v))
}

// IntentIn applies the In predicate on the "intent" field.
func IntentIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldIntent, vs...))
}

// IntentNotIn applies the NotIn predicate on the "intent" field.
func IntentNotIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldIntent, vs...))
}

// IntentGT applies the GT predicate on the "intent" field.
func IntentGT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldIntent, v))
}

// IntentGTE applies the GTE predicate on the "intent" field.
func IntentGTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldIntent, v))
}

// IntentLT applies the LT predicate on the "intent" field.
func IntentLT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldIntent, v))
}

// IntentLTE applies the LTE predicate on the "intent" field.
func IntentLTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldIntent, v))
}

// IntentContains applies the Contains predicate on the "intent" field.
func IntentContains(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContains(FieldIntent, v))
}

// IntentHasPrefix applies the HasPrefix predicate on the "intent" field.
func IntentHasPrefix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasPrefix(FieldIntent, v))
}

// IntentHasSuffix applies the HasSuffix predicate on the "intent" field.
func IntentHasSuffix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasSuffix(FieldIntent, v))
}

// IntentEqualFold applies the EqualFold predicate on the "intent" field.
func IntentEqualFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEqualFold(FieldIntent, v))
}

// IntentContainsFold applies the ContainsFold predicate on the "intent" field.
func IntentContainsFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContainsFold(FieldIntent, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContainsFold(FieldSource, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContainsFold(FieldReason, v))
}

// FromCacheEQ applies the EQ predicate on the "from_cache" field.
func FromCacheEQ(v bool) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldFromCache, v))
}

// FromCacheNEQ applies the NEQ predicate on the "from_cache" field.
func FromCacheNEQ(v bool) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldFromCache, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CheckpointEvent) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CheckpointEvent) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CheckpointEvent) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.NotPredicates(p))
}
