package store

import (
	"context"
	"fmt"

	"github.com/abhisek/geomiz/ent"
	"github.com/abhisek/geomiz/ent/answerevent"
	"github.com/abhisek/geomiz/ent/checkpointevent"
	"github.com/abhisek/geomiz/ent/remediationevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendCheckpointEvent(ctx context.Context, data CheckpointEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CheckpointEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetSectionIndex(data.SectionIndex).
		SetIntent(data.Intent).
		SetSource(data.Source).
		SetReason(data.Reason).
		SetFromCache(data.FromCache).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save checkpoint event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetSectionIndex(data.SectionIndex).
		SetIntent(data.Intent).
		SetOptionIndex(data.OptionIndex).
		SetCorrect(data.Correct).
		SetAttempt(data.Attempt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendRemediationEvent(ctx context.Context, data RemediationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RemediationEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetSectionIndex(data.SectionIndex).
		SetAction(data.Action).
		SetOptionIndex(data.OptionIndex).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save remediation event: %w", err)
	}
	return nil
}

// LessonStatsFor aggregates checkpoint outcomes. Aggregation happens in Go;
// the event volume for a single learner stays small enough that pushing it
// into SQL buys nothing.
func (r *eventRepo) LessonStatsFor(ctx context.Context, lessonID string) ([]LessonStats, error) {
	answerQ := r.client.AnswerEvent.Query()
	checkpointQ := r.client.CheckpointEvent.Query()
	remQ := r.client.RemediationEvent.Query()
	if lessonID != "" {
		answerQ = answerQ.Where(answerevent.LessonID(lessonID))
		checkpointQ = checkpointQ.Where(checkpointevent.LessonID(lessonID))
		remQ = remQ.Where(remediationevent.LessonID(lessonID), remediationevent.Action("shown"))
	} else {
		remQ = remQ.Where(remediationevent.Action("shown"))
	}

	answers, err := answerQ.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	checkpoints, err := checkpointQ.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query checkpoint events: %w", err)
	}
	remediations, err := remQ.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query remediation events: %w", err)
	}

	byLesson := make(map[string]*LessonStats)
	stats := func(id string) *LessonStats {
		st, ok := byLesson[id]
		if !ok {
			st = &LessonStats{LessonID: id}
			byLesson[id] = st
		}
		return st
	}

	for _, a := range answers {
		st := stats(a.LessonID)
		st.Answers++
		if a.Correct {
			st.Correct++
			if a.Attempt == 1 {
				st.FirstTryPasses++
			}
		}
	}
	for _, c := range checkpoints {
		st := stats(c.LessonID)
		if c.Source == "fallback" {
			st.FallbackServed++
		} else {
			st.AIServed++
		}
	}
	for _, rm := range remediations {
		stats(rm.LessonID).Remediations++
	}

	out := make([]LessonStats, 0, len(byLesson))
	for _, st := range byLesson {
		out = append(out, *st)
	}
	return out, nil
}
