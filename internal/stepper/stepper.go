package stepper

// Stepper drives linear traversal of lesson phases and, within learn, of
// sections. It owns no checkpoint state; it only reads a gate.
type Stepper struct {
	phases        []Phase
	phase         Phase
	section       int
	totalSections int

	completed     map[Phase]bool
	practiceScore PracticeScore

	gate          CheckpointGate
	onPhaseChange func(from, to Phase)
	onComplete    func()
	completeFired bool
}

// PracticeScore tallies the practice phase.
type PracticeScore struct {
	Correct int
	Total   int
}

// Option configures a Stepper at construction.
type Option func(*Stepper)

// WithGate installs the checkpoint gate consulted before forward movement
// in learn.
func WithGate(g CheckpointGate) Option {
	return func(s *Stepper) { s.gate = g }
}

// WithPhaseChange registers an observer invoked on every phase change.
func WithPhaseChange(fn func(from, to Phase)) Option {
	return func(s *Stepper) { s.onPhaseChange = fn }
}

// WithCompletion registers an observer invoked exactly once on reaching
// the complete phase.
func WithCompletion(fn func()) Option {
	return func(s *Stepper) { s.onComplete = fn }
}

// New creates a Stepper over totalSections learn sections. When
// hasPractice is false, the practice phase is omitted from the sequence.
func New(totalSections int, hasPractice bool, opts ...Option) *Stepper {
	phases := []Phase{PhaseWelcome, PhaseLearn, PhasePractice, PhaseReview, PhaseComplete}
	if !hasPractice {
		phases = []Phase{PhaseWelcome, PhaseLearn, PhaseReview, PhaseComplete}
	}
	s := &Stepper{
		phases:        phases,
		phase:         PhaseWelcome,
		totalSections: totalSections,
		completed:     make(map[Phase]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Phase returns the current phase.
func (s *Stepper) Phase() Phase { return s.phase }

// Section returns the current section index. Meaningful only in learn.
func (s *Stepper) Section() int { return s.section }

// TotalSections returns the number of learn sections.
func (s *Stepper) TotalSections() int { return s.totalSections }

// Phases returns the available phase sequence.
func (s *Stepper) Phases() []Phase { return s.phases }

// Completed reports whether the given phase has been marked complete.
func (s *Stepper) Completed(p Phase) bool { return s.completed[p] }

// Score returns the practice score.
func (s *Stepper) Score() PracticeScore { return s.practiceScore }

// phaseIndex finds p in the available sequence, or -1.
func (s *Stepper) phaseIndex(p Phase) int {
	for i, ph := range s.phases {
		if ph == p {
			return i
		}
	}
	return -1
}

// sectionGate consults the checkpoint gate for the current section.
func (s *Stepper) sectionGate() Gate {
	if s.gate == nil {
		return GatePassed
	}
	return s.gate(s.section)
}

// setPhase transitions phases, firing observers.
func (s *Stepper) setPhase(to Phase) {
	from := s.phase
	if from == to {
		return
	}
	s.phase = to
	if s.onPhaseChange != nil {
		s.onPhaseChange(from, to)
	}
	if to == PhaseComplete && !s.completeFired {
		s.completeFired = true
		if s.onComplete != nil {
			s.onComplete()
		}
	}
}

// GoToPhase jumps directly to a phase. No-op if the phase is not in the
// available sequence. Resets the section index to 0.
func (s *Stepper) GoToPhase(p Phase) {
	if s.phaseIndex(p) < 0 {
		return
	}
	s.section = 0
	s.setPhase(p)
}

// NextPhase advances one step. Inside learn with unexhausted sections it
// advances the section (subject to the gate); otherwise it marks the
// current phase complete and moves to the next available phase.
func (s *Stepper) NextPhase() {
	if s.phase == PhaseLearn && s.sectionGate() == GateLocked {
		return
	}
	if s.phase == PhaseLearn && s.section < s.totalSections-1 {
		s.section++
		return
	}
	idx := s.phaseIndex(s.phase)
	if idx < 0 || idx >= len(s.phases)-1 {
		return
	}
	s.MarkPhaseComplete(s.phase)
	s.setPhase(s.phases[idx+1])
}

// PreviousPhase retreats one step. Inside learn with sections behind it
// retreats the section; re-entering learn from a later phase resumes at
// its last section.
func (s *Stepper) PreviousPhase() {
	if s.phase == PhaseLearn && s.section > 0 {
		s.section--
		return
	}
	idx := s.phaseIndex(s.phase)
	if idx <= 0 {
		return
	}
	prev := s.phases[idx-1]
	if prev == PhaseLearn {
		s.section = s.totalSections - 1
		if s.section < 0 {
			s.section = 0
		}
	}
	s.setPhase(prev)
}

// NextSection advances the section index, bounded and gated.
func (s *Stepper) NextSection() {
	if s.phase != PhaseLearn || s.section >= s.totalSections-1 {
		return
	}
	if s.sectionGate() == GateLocked {
		return
	}
	s.section++
}

// PreviousSection retreats the section index, bounded.
func (s *Stepper) PreviousSection() {
	if s.phase != PhaseLearn || s.section <= 0 {
		return
	}
	s.section--
}

// MarkPhaseComplete records a phase as complete. Idempotent; the completed
// set never shrinks except on Reset.
func (s *Stepper) MarkPhaseComplete(p Phase) {
	s.completed[p] = true
}

// UpdatePracticeScore records the practice tally.
func (s *Stepper) UpdatePracticeScore(correct, total int) {
	s.practiceScore = PracticeScore{Correct: correct, Total: total}
}

// Reset returns the stepper to its initial state.
func (s *Stepper) Reset() {
	s.section = 0
	s.completed = make(map[Phase]bool)
	s.practiceScore = PracticeScore{}
	s.completeFired = false
	s.setPhase(PhaseWelcome)
}

// CanGoNext reports whether forward navigation is currently possible.
func (s *Stepper) CanGoNext() bool {
	if s.phase == PhaseComplete {
		return false
	}
	if s.phase == PhaseLearn && s.sectionGate() == GateLocked {
		return false
	}
	return true
}

// CanGoBack reports whether backward navigation is currently possible.
func (s *Stepper) CanGoBack() bool {
	if s.phase == PhaseLearn && s.section > 0 {
		return true
	}
	return s.phaseIndex(s.phase) > 0
}

// Progress returns overall progress in [0, 1]: the phase-index fraction of
// (numPhases-1), linearly refined by the section fraction while in learn.
func (s *Stepper) Progress() float64 {
	idx := s.phaseIndex(s.phase)
	if idx < 0 {
		return 0
	}
	n := float64(len(s.phases) - 1)
	p := float64(idx)
	if s.phase == PhaseLearn && s.totalSections > 0 {
		p += float64(s.section) / float64(s.totalSections)
	}
	return p / n
}

// Apply maps an external command intent onto the state machine.
func (s *Stepper) Apply(cmd Command) {
	switch cmd {
	case CommandAdvance:
		s.NextPhase()
	case CommandRetreat, CommandCancel:
		s.PreviousPhase()
	case CommandConfirm:
		if s.phase == PhaseWelcome || s.phase == PhaseReview {
			s.NextPhase()
		}
	}
}
