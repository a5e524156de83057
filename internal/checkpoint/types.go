// Package checkpoint orchestrates per-section comprehension checks: cache
// read-through, remote generation with fallback, answer handling, and the
// remediation flow. The stepper reads checkpoint outcomes through a gate;
// nothing here ever drives navigation.
package checkpoint

import (
	"context"

	"github.com/abhisek/geomiz/internal/questiongen"
)

// Status is the lifecycle state of one section's checkpoint.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Source records where a ready payload came from.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Reason tags why the fallback generator was used.
type Reason string

const (
	ReasonNone                 Reason = ""
	ReasonAssistantUnavailable Reason = "assistant_unavailable"
	ReasonGenerationError      Reason = "generation_error"
)

// State is one section's checkpoint. Copies are handed to callers; the
// service owns the originals.
type State struct {
	Status Status
	Intent questiongen.Intent

	// Populated when Status is StatusReady.
	Payload   *questiongen.Payload
	Source    Source
	Reason    Reason
	FromCache bool

	// Answer sub-state. SelectedIndex is -1 until the first selection;
	// Answered flips on the first selection; Passed latches on the first
	// correct one.
	SelectedIndex int
	Answered      bool
	IsCorrect     bool
	Passed        bool

	// WrongAttempts counts incorrect selections made before the first
	// correct one.
	WrongAttempts int

	// ErrMsg is set when Status is StatusError.
	ErrMsg string
}

// Remediation is the per-section quick-review state.
type Remediation struct {
	Visible bool
	Shown   bool // latched: the review has been surfaced at least once
	Payload *questiongen.Payload

	SelectedIndex int
	Answered      bool
	IsCorrect     bool
}

// GeneratedEvent reports a checkpoint becoming ready (or failing).
type GeneratedEvent struct {
	LessonID     string
	SessionID    string
	SectionIndex int
	Intent       questiongen.Intent
	Source       Source
	Reason       Reason
	FromCache    bool
}

// AnsweredEvent reports an answer selection on a checkpoint.
type AnsweredEvent struct {
	LessonID     string
	SessionID    string
	SectionIndex int
	Intent       questiongen.Intent
	OptionIndex  int
	Correct      bool
	Attempt      int
}

// RemediationEvent reports quick-review activity.
type RemediationEvent struct {
	LessonID     string
	SessionID    string
	SectionIndex int
	Action       string // "shown" or "answered"
	OptionIndex  int
	Correct      bool
}

// Recorder receives checkpoint telemetry. Calls are fire-and-forget: the
// service never inspects results, and implementations must swallow their
// own failures. A nil Recorder disables telemetry.
type Recorder interface {
	CheckpointGenerated(ctx context.Context, ev GeneratedEvent)
	CheckpointAnswered(ctx context.Context, ev AnsweredEvent)
	RemediationShown(ctx context.Context, ev RemediationEvent)
	RemediationAnswered(ctx context.Context, ev RemediationEvent)
}

// Cache is a best-effort string key-value store. Absence (nil) degrades to
// always-regenerate; Get misses and Put failures are invisible to callers.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Put(ctx context.Context, key, value string)
}
