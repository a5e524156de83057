// Package stepper is the lesson's top-level navigation state machine: a
// linear walk through welcome → learn → practice → review → complete, with
// per-section movement inside learn gated by checkpoint results.
package stepper

// Phase is one of the five macro-stages of a lesson session.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhaseLearn
	PhasePractice
	PhaseReview
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseLearn:
		return "learn"
	case PhasePractice:
		return "practice"
	case PhaseReview:
		return "review"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// Gate is the checkpoint status the stepper reads before allowing forward
// movement past a learn section. The stepper never writes checkpoint state.
type Gate int

const (
	// GateLocked blocks forward navigation: the checkpoint exists and has
	// not been passed.
	GateLocked Gate = iota
	// GatePassed allows forward navigation.
	GatePassed
	// GateDegraded allows forward navigation even though the checkpoint
	// never became answerable (terminal generation failure). A learner is
	// never permanently stuck behind a broken question.
	GateDegraded
)

// CheckpointGate reports the gate for a section. A nil gate means
// checkpoints are disabled and every section is open.
type CheckpointGate func(sectionIndex int) Gate

// Command is an externally triggerable navigation intent.
type Command int

const (
	// CommandAdvance moves forward one step (section or phase).
	CommandAdvance Command = iota
	// CommandRetreat moves back one step.
	CommandRetreat
	// CommandConfirm advances, but only from welcome or review. It never
	// applies in practice, where an explicit answer selection is required.
	CommandConfirm
	// CommandCancel retreats.
	CommandCancel
)
