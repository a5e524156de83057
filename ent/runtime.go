// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/geomiz/ent/answerevent"
	"github.com/abhisek/geomiz/ent/checkpointcache"
	"github.com/abhisek/geomiz/ent/checkpointevent"
	"github.com/abhisek/geomiz/ent/llmrequestevent"
	"github.com/abhisek/geomiz/ent/phaseevent"
	"github.com/abhisek/geomiz/ent/remediationevent"
	"github.com/abhisek/geomiz/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescLessonID is the schema descriptor for lesson_id field.
	answereventDescLessonID := answereventFields[1].Descriptor()
	// answerevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	answerevent.LessonIDValidator = answereventDescLessonID.Validators[0].(func(string) error)
	// answereventDescIntent is the schema descriptor for intent field.
	answereventDescIntent := answereventFields[3].Descriptor()
	// answerevent.IntentValidator is a validator for the "intent" field. It is called by the builders before save.
	answerevent.IntentValidator = answereventDescIntent.Validators[0].(func(string) error)
	checkpointcacheFields := schema.CheckpointCache{}.Fields()
	_ = checkpointcacheFields
	// checkpointcacheDescKey is the schema descriptor for key field.
	checkpointcacheDescKey := checkpointcacheFields[0].Descriptor()
	// checkpointcache.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	checkpointcache.KeyValidator = checkpointcacheDescKey.Validators[0].(func(string) error)
	// checkpointcacheDescUpdatedAt is the schema descriptor for updated_at field.
	checkpointcacheDescUpdatedAt := checkpointcacheFields[2].Descriptor()
	// checkpointcache.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checkpointcache.DefaultUpdatedAt = checkpointcacheDescUpdatedAt.Default.(func() time.Time)
	// checkpointcache.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	checkpointcache.UpdateDefaultUpdatedAt = checkpointcacheDescUpdatedAt.UpdateDefault.(func() time.Time)
	checkpointeventMixin := schema.CheckpointEvent{}.Mixin()
	checkpointeventMixinFields0 := checkpointeventMixin[0].Fields()
	_ = checkpointeventMixinFields0
	checkpointeventFields := schema.CheckpointEvent{}.Fields()
	_ = checkpointeventFields
	// checkpointeventDescTimestamp is the schema descriptor for timestamp field.
	checkpointeventDescTimestamp := checkpointeventMixinFields0[1].Descriptor()
	// checkpointevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	checkpointevent.DefaultTimestamp = checkpointeventDescTimestamp.Default.(func() time.Time)
	// checkpointeventDescSessionID is the schema descriptor for session_id field.
	checkpointeventDescSessionID := checkpointeventFields[0].Descriptor()
	// checkpointevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	checkpointevent.SessionIDValidator = checkpointeventDescSessionID.Validators[0].(func(string) error)
	// checkpointeventDescLessonID is the schema descriptor for lesson_id field.
	checkpointeventDescLessonID := checkpointeventFields[1].Descriptor()
	// checkpointevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	checkpointevent.LessonIDValidator = checkpointeventDescLessonID.Validators[0].(func(string) error)
	// checkpointeventDescIntent is the schema descriptor for intent field.
	checkpointeventDescIntent := checkpointeventFields[3].Descriptor()
	// checkpointevent.IntentValidator is a validator for the "intent" field. It is called by the builders before save.
	checkpointevent.IntentValidator = checkpointeventDescIntent.Validators[0].(func(string) error)
	// checkpointeventDescSource is the schema descriptor for source field.
	checkpointeventDescSource := checkpointeventFields[4].Descriptor()
	// checkpointevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	checkpointevent.SourceValidator = checkpointeventDescSource.Validators[0].(func(string) error)
	// checkpointeventDescReason is the schema descriptor for reason field.
	checkpointeventDescReason := checkpointeventFields[5].Descriptor()
	// checkpointevent.DefaultReason holds the default value on creation for the reason field.
	checkpointevent.DefaultReason = checkpointeventDescReason.Default.(string)
	// checkpointeventDescFromCache is the schema descriptor for from_cache field.
	checkpointeventDescFromCache := checkpointeventFields[6].Descriptor()
	// checkpointevent.DefaultFromCache holds the default value on creation for the from_cache field.
	checkpointevent.DefaultFromCache = checkpointeventDescFromCache.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	phaseeventMixin := schema.PhaseEvent{}.Mixin()
	phaseeventMixinFields0 := phaseeventMixin[0].Fields()
	_ = phaseeventMixinFields0
	phaseeventFields := schema.PhaseEvent{}.Fields()
	_ = phaseeventFields
	// phaseeventDescTimestamp is the schema descriptor for timestamp field.
	phaseeventDescTimestamp := phaseeventMixinFields0[1].Descriptor()
	// phaseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	phaseevent.DefaultTimestamp = phaseeventDescTimestamp.Default.(func() time.Time)
	// phaseeventDescSessionID is the schema descriptor for session_id field.
	phaseeventDescSessionID := phaseeventFields[0].Descriptor()
	// phaseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	phaseevent.SessionIDValidator = phaseeventDescSessionID.Validators[0].(func(string) error)
	// phaseeventDescLessonID is the schema descriptor for lesson_id field.
	phaseeventDescLessonID := phaseeventFields[1].Descriptor()
	// phaseevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	phaseevent.LessonIDValidator = phaseeventDescLessonID.Validators[0].(func(string) error)
	// phaseeventDescPhase is the schema descriptor for phase field.
	phaseeventDescPhase := phaseeventFields[2].Descriptor()
	// phaseevent.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	phaseevent.PhaseValidator = phaseeventDescPhase.Validators[0].(func(string) error)
	// phaseeventDescSectionIndex is the schema descriptor for section_index field.
	phaseeventDescSectionIndex := phaseeventFields[3].Descriptor()
	// phaseevent.DefaultSectionIndex holds the default value on creation for the section_index field.
	phaseevent.DefaultSectionIndex = phaseeventDescSectionIndex.Default.(int)
	remediationeventMixin := schema.RemediationEvent{}.Mixin()
	remediationeventMixinFields0 := remediationeventMixin[0].Fields()
	_ = remediationeventMixinFields0
	remediationeventFields := schema.RemediationEvent{}.Fields()
	_ = remediationeventFields
	// remediationeventDescTimestamp is the schema descriptor for timestamp field.
	remediationeventDescTimestamp := remediationeventMixinFields0[1].Descriptor()
	// remediationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	remediationevent.DefaultTimestamp = remediationeventDescTimestamp.Default.(func() time.Time)
	// remediationeventDescSessionID is the schema descriptor for session_id field.
	remediationeventDescSessionID := remediationeventFields[0].Descriptor()
	// remediationevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	remediationevent.SessionIDValidator = remediationeventDescSessionID.Validators[0].(func(string) error)
	// remediationeventDescLessonID is the schema descriptor for lesson_id field.
	remediationeventDescLessonID := remediationeventFields[1].Descriptor()
	// remediationevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	remediationevent.LessonIDValidator = remediationeventDescLessonID.Validators[0].(func(string) error)
	// remediationeventDescAction is the schema descriptor for action field.
	remediationeventDescAction := remediationeventFields[3].Descriptor()
	// remediationevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	remediationevent.ActionValidator = remediationeventDescAction.Validators[0].(func(string) error)
	// remediationeventDescOptionIndex is the schema descriptor for option_index field.
	remediationeventDescOptionIndex := remediationeventFields[4].Descriptor()
	// remediationevent.DefaultOptionIndex holds the default value on creation for the option_index field.
	remediationevent.DefaultOptionIndex = remediationeventDescOptionIndex.Default.(int)
	// remediationeventDescCorrect is the schema descriptor for correct field.
	remediationeventDescCorrect := remediationeventFields[5].Descriptor()
	// remediationevent.DefaultCorrect holds the default value on creation for the correct field.
	remediationevent.DefaultCorrect = remediationeventDescCorrect.Default.(bool)
}
