package lesson

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/geomiz/internal/checkpoint"
	"github.com/abhisek/geomiz/internal/content"
	"github.com/abhisek/geomiz/internal/router"
	"github.com/abhisek/geomiz/internal/screen"
	"github.com/abhisek/geomiz/internal/stepper"
	"github.com/abhisek/geomiz/internal/store"
	"github.com/abhisek/geomiz/internal/store/telemetry"
	"github.com/abhisek/geomiz/internal/tutor"
	"github.com/abhisek/geomiz/internal/ui/components"
	"github.com/abhisek/geomiz/internal/ui/layout"
	"github.com/abhisek/geomiz/internal/ui/theme"

	"github.com/google/uuid"
)

// Deps carries the optional services a lesson runs with. Any field may be
// nil; the lesson degrades rather than failing.
type Deps struct {
	Generator checkpoint.Generator
	Events    store.EventRepo
	Cache     checkpoint.Cache
	Tutor     tutor.Handoff
}

// LessonScreen walks a learner through one lesson: welcome, the gated
// learn sections with their checkpoints, optional practice, review, and
// completion. Navigation lives in the stepper; question state lives in the
// checkpoint service. This screen only translates keys and renders.
type LessonScreen struct {
	lesson    content.Lesson
	sessionID string
	svc       *checkpoint.Service
	step      *stepper.Stepper
	events    store.EventRepo
	tutor     tutor.Handoff

	selected    int // cursor within checkpoint options
	remSelected int // cursor within the quick-review options

	practiceIdx     int
	practiceChoice  components.MultiChoice
	practiceCorrect int

	showHint  bool
	hintText  string
	tutorBusy bool
	spinner   spinner.Model
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a lesson screen for one lesson run.
func New(l content.Lesson, deps Deps) *LessonScreen {
	sessionID := uuid.New().String()

	var opts []checkpoint.ServiceOption
	if deps.Generator != nil {
		opts = append(opts, checkpoint.WithGenerator(deps.Generator))
	}
	if deps.Events != nil {
		opts = append(opts, checkpoint.WithRecorder(telemetry.NewTelemetry(deps.Events)))
	}
	if deps.Cache != nil {
		opts = append(opts, checkpoint.WithCache(deps.Cache))
	}
	svc := checkpoint.NewService(l, sessionID, opts...)

	s := &LessonScreen{
		lesson:    l,
		sessionID: sessionID,
		svc:       svc,
		events:    deps.Events,
		tutor:     deps.Tutor,
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hint
	s.spinner = sp

	s.step = stepper.New(len(l.Sections), l.HasPractice(),
		stepper.WithGate(func(idx int) stepper.Gate {
			passed, degraded := svc.Gate(idx)
			switch {
			case passed:
				return stepper.GatePassed
			case degraded:
				return stepper.GateDegraded
			default:
				return stepper.GateLocked
			}
		}),
		stepper.WithPhaseChange(func(from, to stepper.Phase) {
			s.recordPhase(to)
		}),
	)

	if len(l.Practice) > 0 {
		s.practiceChoice = newPracticeChoice(l.Practice[0])
	}

	return s
}

func newPracticeChoice(q content.PracticeQuestion) components.MultiChoice {
	return components.NewMultiChoice(q.Question, q.Options, q.CorrectIndex)
}

func (s *LessonScreen) Init() tea.Cmd {
	return tea.Batch(s.loadResume(), s.spinner.Tick)
}

func (s *LessonScreen) Title() string {
	return s.lesson.Title
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	switch s.step.Phase() {
	case stepper.PhaseWelcome:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	case stepper.PhaseLearn:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer / Continue"},
			{Key: "←", Description: "Back"},
			{Key: "H", Description: "Hint"},
		}
		if s.tutor != nil && s.tutor.Available() {
			hints = append(hints, layout.KeyHint{Key: "T", Description: "Ask a tutor"})
		}
		return hints
	case stepper.PhasePractice:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resumeMsg:
		return s.handleResume(msg)

	case checkpointReadyMsg:
		// The state map lives in the service; this message only tells us
		// to redraw and, on terminal outcomes, stop spinning.
		return s, nil

	case tutorDoneMsg:
		s.tutorBusy = false
		return s, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// loadResume fetches the last recorded position for this lesson.
func (s *LessonScreen) loadResume() tea.Cmd {
	events := s.events
	lessonID := s.lesson.ID
	return func() tea.Msg {
		if events == nil {
			return resumeMsg{}
		}
		ps, err := events.LatestPhase(context.Background(), lessonID)
		if err != nil {
			return resumeMsg{}
		}
		return resumeMsg{Position: ps}
	}
}

func (s *LessonScreen) handleResume(msg resumeMsg) (screen.Screen, tea.Cmd) {
	// Welcome is recorded as soon as the stepper exists, so a fresh run
	// writes its first phase event here too.
	s.recordPhase(s.step.Phase())

	ps := msg.Position
	if ps == nil || ps.Phase == stepper.PhaseComplete.String() {
		return s, nil
	}

	// Restore the phase. Learn restarts at the first section: checkpoint
	// passes are per-run, and the cache replays identical questions, so
	// re-walking is cheap and keeps the gate honest.
	for _, p := range s.step.Phases() {
		if p.String() == ps.Phase {
			s.step.GoToPhase(p)
			break
		}
	}
	if s.step.Phase() == stepper.PhaseLearn {
		return s, s.ensureCurrent()
	}
	return s, nil
}

// recordPhase appends a phase event. Best effort.
func (s *LessonScreen) recordPhase(p stepper.Phase) {
	if s.events == nil {
		return
	}
	_ = s.events.AppendPhaseEvent(context.Background(), store.PhaseEventData{
		SessionID:    s.sessionID,
		LessonID:     s.lesson.ID,
		Phase:        p.String(),
		SectionIndex: s.step.Section(),
	})
}

// ensureCurrent kicks off the checkpoint pipeline for the current section.
func (s *LessonScreen) ensureCurrent() tea.Cmd {
	svc := s.svc
	idx := s.step.Section()
	return func() tea.Msg {
		st := svc.Ensure(context.Background(), idx)
		return checkpointReadyMsg{Idx: idx, State: st}
	}
}

// afterNav resets per-section cursors and starts generation when the new
// position is a learn section.
func (s *LessonScreen) afterNav() tea.Cmd {
	s.selected = 0
	s.remSelected = 0
	s.showHint = false
	s.hintText = ""
	if s.step.Phase() == stepper.PhaseLearn {
		return s.ensureCurrent()
	}
	return nil
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.step.Phase() {
	case stepper.PhaseWelcome:
		if key == "enter" {
			s.step.Apply(stepper.CommandConfirm)
			return s, s.afterNav()
		}

	case stepper.PhaseLearn:
		return s.handleLearnKey(key)

	case stepper.PhasePractice:
		return s.handlePracticeKey(msg)

	case stepper.PhaseReview:
		if key == "enter" {
			s.step.Apply(stepper.CommandConfirm)
			return s, s.afterNav()
		}
		if key == "left" || key == "backspace" {
			s.step.Apply(stepper.CommandRetreat)
			return s, s.afterNav()
		}

	case stepper.PhaseComplete:
		if key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}

func (s *LessonScreen) handleLearnKey(key string) (screen.Screen, tea.Cmd) {
	idx := s.step.Section()
	st := s.svc.StateOf(idx)
	rem := s.svc.RemediationOf(idx)

	// Navigation back is always allowed.
	if key == "left" || key == "backspace" {
		s.step.Apply(stepper.CommandRetreat)
		return s, s.afterNav()
	}

	switch st.Status {
	case checkpoint.StatusError:
		switch key {
		case "r":
			s.svc.Retry(idx)
			return s, s.ensureCurrent()
		case "enter", "right":
			// Degraded gate: the stepper lets the learner continue past a
			// checkpoint that never became answerable.
			s.step.Apply(stepper.CommandAdvance)
			return s, s.afterNav()
		}
		return s, nil

	case checkpoint.StatusReady:
		if st.Passed {
			if key == "enter" || key == "right" {
				s.step.Apply(stepper.CommandAdvance)
				return s, s.afterNav()
			}
			return s, nil
		}
		if rem.Visible {
			return s.handleRemediationKey(key, idx, rem)
		}
		return s.handleCheckpointKey(key, idx, st)
	}

	// Idle or loading: nothing to act on yet.
	return s, nil
}

func (s *LessonScreen) handleCheckpointKey(key string, idx int, st checkpoint.State) (screen.Screen, tea.Cmd) {
	n := len(st.Payload.Options)

	switch key {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < n-1 {
			s.selected++
		}
	case "enter":
		s.svc.SelectOption(context.Background(), idx, s.selected)
	case "1", "2", "3", "4":
		choice := int(key[0] - '1')
		if choice < n {
			s.selected = choice
			s.svc.SelectOption(context.Background(), idx, choice)
		}
	case "h":
		s.showHint = !s.showHint
		if s.showHint && s.hintText == "" {
			s.hintText = s.svc.HintFor(idx)
		}
	case "t":
		return s, s.openTutor(idx)
	}

	return s, nil
}

func (s *LessonScreen) handleRemediationKey(key string, idx int, rem checkpoint.Remediation) (screen.Screen, tea.Cmd) {
	n := len(rem.Payload.Options)

	switch key {
	case "up", "k":
		if s.remSelected > 0 {
			s.remSelected--
		}
	case "down", "j":
		if s.remSelected < n-1 {
			s.remSelected++
		}
	case "enter":
		res := s.svc.SelectRemediationOption(context.Background(), idx, s.remSelected)
		if res.IsCorrect {
			// Back to the checkpoint for another attempt.
			s.remSelected = 0
		}
	case "t":
		return s, s.openTutor(idx)
	}

	return s, nil
}

func (s *LessonScreen) handlePracticeKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.practiceChoice.Submitted {
		// Any key moves on once the result is shown.
		if s.practiceChoice.IsCorrect() {
			s.practiceCorrect++
		}
		s.practiceIdx++
		if s.practiceIdx >= len(s.lesson.Practice) {
			s.step.UpdatePracticeScore(s.practiceCorrect, len(s.lesson.Practice))
			s.step.Apply(stepper.CommandAdvance)
			return s, s.afterNav()
		}
		s.practiceChoice = newPracticeChoice(s.lesson.Practice[s.practiceIdx])
		return s, nil
	}

	var cmd tea.Cmd
	s.practiceChoice, cmd = s.practiceChoice.Update(msg)
	return s, cmd
}

// openTutor hands the current question to the external tutor.
func (s *LessonScreen) openTutor(idx int) tea.Cmd {
	if s.tutor == nil || !s.tutor.Available() || s.tutorBusy {
		return nil
	}
	text := s.svc.TutorContext(idx)
	if text == "" {
		return nil
	}
	s.tutorBusy = true
	handoff := s.tutor
	return func() tea.Msg {
		err := handoff.Open(context.Background(), text)
		return tutorDoneMsg{Err: err}
	}
}
