package lesson

import (
	"github.com/abhisek/geomiz/internal/checkpoint"
	"github.com/abhisek/geomiz/internal/store"
)

// checkpointReadyMsg is sent when a section's checkpoint pipeline finishes,
// whatever the outcome. Idx identifies the section the result belongs to;
// stale results for sections the learner has left are applied harmlessly.
type checkpointReadyMsg struct {
	Idx   int
	State checkpoint.State
}

// resumeMsg carries the last recorded position for this lesson, or nil
// when the lesson has never been opened.
type resumeMsg struct {
	Position *store.PhaseState
}

// tutorDoneMsg is sent when the external tutor hand-off returns.
type tutorDoneMsg struct {
	Err error
}
