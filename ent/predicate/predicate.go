// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// CheckpointCache is the predicate function for checkpointcache builders.
type CheckpointCache func(*sql.Selector)

// CheckpointEvent is the predicate function for checkpointevent builders.
type CheckpointEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PhaseEvent is the predicate function for phaseevent builders.
type PhaseEvent func(*sql.Selector)

// RemediationEvent is the predicate function for remediationevent builders.
type RemediationEvent func(*sql.Selector)
