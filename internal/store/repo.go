package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// CheckpointEventData captures a checkpoint question becoming ready.
type CheckpointEventData struct {
	SessionID    string
	LessonID     string
	SectionIndex int
	Intent       string
	Source       string // ai or fallback
	Reason       string // empty, assistant_unavailable, or generation_error
	FromCache    bool
}

// AnswerEventData captures one answer selection on a checkpoint.
type AnswerEventData struct {
	SessionID    string
	LessonID     string
	SectionIndex int
	Intent       string
	OptionIndex  int
	Correct      bool
	Attempt      int
}

// RemediationEventData captures quick-review activity.
type RemediationEventData struct {
	SessionID    string
	LessonID     string
	SectionIndex int
	Action       string // shown or answered
	OptionIndex  int
	Correct      bool
}

// PhaseEventData captures a lesson phase transition.
type PhaseEventData struct {
	SessionID    string
	LessonID     string
	Phase        string
	SectionIndex int
}

// PhaseState is the latest recorded position within a lesson.
type PhaseState struct {
	SessionID    string
	Phase        string
	SectionIndex int
	Timestamp    time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event, as returned by queries.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// LessonStats aggregates checkpoint outcomes for one lesson.
type LessonStats struct {
	LessonID       string
	Answers        int
	Correct        int
	FirstTryPasses int
	FallbackServed int
	AIServed       int
	Remediations   int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendCheckpointEvent(ctx context.Context, data CheckpointEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendRemediationEvent(ctx context.Context, data RemediationEventData) error
	AppendPhaseEvent(ctx context.Context, data PhaseEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LatestPhase returns the most recent phase position recorded for a
	// lesson, or nil if the lesson has never been opened.
	LatestPhase(ctx context.Context, lessonID string) (*PhaseState, error)

	// LessonStatsFor aggregates checkpoint outcomes per lesson. A lessonID
	// of "" aggregates across all lessons, one entry per lesson.
	LessonStatsFor(ctx context.Context, lessonID string) ([]LessonStats, error)

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// CacheRepo is the persistent key-value store for generated checkpoints.
type CacheRepo interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Purge(ctx context.Context) (int, error)
}
