package store

import (
	"context"
	"fmt"

	"github.com/abhisek/geomiz/ent"
	"github.com/abhisek/geomiz/ent/phaseevent"
)

func (r *eventRepo) AppendPhaseEvent(ctx context.Context, data PhaseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PhaseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetPhase(data.Phase).
		SetSectionIndex(data.SectionIndex).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save phase event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestPhase(ctx context.Context, lessonID string) (*PhaseState, error) {
	pe, err := r.client.PhaseEvent.Query().
		Where(phaseevent.LessonID(lessonID)).
		Order(ent.Desc(phaseevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest phase: %w", err)
	}
	return &PhaseState{
		SessionID:    pe.SessionID,
		Phase:        pe.Phase,
		SectionIndex: pe.SectionIndex,
		Timestamp:    pe.Timestamp,
	}, nil
}
