package telemetry

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/geomiz/internal/checkpoint"
	"github.com/abhisek/geomiz/internal/store"
)

// Telemetry adapts the EventRepo to the checkpoint package's Recorder.
// Recording failures warn on stderr and never reach the caller; a broken
// database must not interrupt the lesson.
type Telemetry struct {
	repo store.EventRepo
}

// NewTelemetry returns a checkpoint Recorder backed by the event log.
func NewTelemetry(repo store.EventRepo) *Telemetry {
	return &Telemetry{repo: repo}
}

func (t *Telemetry) CheckpointGenerated(ctx context.Context, ev checkpoint.GeneratedEvent) {
	t.record(t.repo.AppendCheckpointEvent(ctx, store.CheckpointEventData{
		SessionID:    ev.SessionID,
		LessonID:     ev.LessonID,
		SectionIndex: ev.SectionIndex,
		Intent:       ev.Intent.String(),
		Source:       string(ev.Source),
		Reason:       string(ev.Reason),
		FromCache:    ev.FromCache,
	}))
}

func (t *Telemetry) CheckpointAnswered(ctx context.Context, ev checkpoint.AnsweredEvent) {
	t.record(t.repo.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:    ev.SessionID,
		LessonID:     ev.LessonID,
		SectionIndex: ev.SectionIndex,
		Intent:       ev.Intent.String(),
		OptionIndex:  ev.OptionIndex,
		Correct:      ev.Correct,
		Attempt:      ev.Attempt,
	}))
}

func (t *Telemetry) RemediationShown(ctx context.Context, ev checkpoint.RemediationEvent) {
	t.record(t.repo.AppendRemediationEvent(ctx, store.RemediationEventData{
		SessionID:    ev.SessionID,
		LessonID:     ev.LessonID,
		SectionIndex: ev.SectionIndex,
		Action:       ev.Action,
		OptionIndex:  -1,
	}))
}

func (t *Telemetry) RemediationAnswered(ctx context.Context, ev checkpoint.RemediationEvent) {
	t.record(t.repo.AppendRemediationEvent(ctx, store.RemediationEventData{
		SessionID:    ev.SessionID,
		LessonID:     ev.LessonID,
		SectionIndex: ev.SectionIndex,
		Action:       ev.Action,
		OptionIndex:  ev.OptionIndex,
		Correct:      ev.Correct,
	}))
}

func (t *Telemetry) record(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record event: %v\n", err)
	}
}

// CheckpointCacheAdapter adapts the CacheRepo to the checkpoint package's
// best-effort Cache: errors degrade to misses and dropped writes.
type CheckpointCacheAdapter struct {
	repo store.CacheRepo
}

// NewCheckpointCache returns a checkpoint Cache backed by the store.
func NewCheckpointCache(repo store.CacheRepo) *CheckpointCacheAdapter {
	return &CheckpointCacheAdapter{repo: repo}
}

func (a *CheckpointCacheAdapter) Get(ctx context.Context, key string) (string, bool) {
	v, ok, err := a.repo.Get(ctx, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: checkpoint cache read failed: %v\n", err)
		return "", false
	}
	return v, ok
}

func (a *CheckpointCacheAdapter) Put(ctx context.Context, key, value string) {
	if err := a.repo.Put(ctx, key, value); err != nil {
		fmt.Fprintf(os.Stderr, "warning: checkpoint cache write failed: %v\n", err)
	}
}
