package checkpoint

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/abhisek/geomiz/internal/content"
	"github.com/abhisek/geomiz/internal/fallback"
	"github.com/abhisek/geomiz/internal/questiongen"
	"github.com/abhisek/geomiz/internal/seed"
)

// remediationThreshold is the number of wrong attempts (without an
// intervening correct answer) that surfaces the quick review.
const remediationThreshold = 2

// Generator is the remote question source. *questiongen.Generator
// satisfies it; tests substitute their own.
type Generator interface {
	Generate(ctx context.Context, input questiongen.Input) (*questiongen.Payload, error)
}

// FallbackFunc is the deterministic generator signature. The service
// defaults to fallback.Generate; a nil func models the (otherwise
// unreachable) loss of the canned baseline.
type FallbackFunc func(sectionText string, intent questiongen.Intent, s uint32) questiongen.Payload

// Service owns checkpoint state for one lesson session. State lives in
// maps keyed by section index, so a slow generation finishing after the
// learner has navigated away lands on the right section and is simply
// inert rather than corrupting another section.
type Service struct {
	lesson    content.Lesson
	sessionID string

	gen      Generator // nil when no provider is configured
	fallback FallbackFunc
	events   Recorder
	cache    Cache

	mu     sync.Mutex
	states map[int]*State
	remeds map[int]*Remediation
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithGenerator installs the remote question source.
func WithGenerator(g Generator) ServiceOption {
	return func(s *Service) { s.gen = g }
}

// WithRecorder installs the telemetry recorder.
func WithRecorder(r Recorder) ServiceOption {
	return func(s *Service) { s.events = r }
}

// WithCache installs the best-effort payload cache.
func WithCache(c Cache) ServiceOption {
	return func(s *Service) { s.cache = c }
}

// WithFallback overrides the deterministic generator.
func WithFallback(f FallbackFunc) ServiceOption {
	return func(s *Service) { s.fallback = f }
}

// NewService creates a checkpoint service for one lesson session.
func NewService(lesson content.Lesson, sessionID string, opts ...ServiceOption) *Service {
	s := &Service{
		lesson:    lesson,
		sessionID: sessionID,
		fallback:  fallback.Generate,
		states:    make(map[int]*State),
		remeds:    make(map[int]*Remediation),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// state returns the section's state, creating it lazily.
func (s *Service) state(idx int) *State {
	st, ok := s.states[idx]
	if !ok {
		st = &State{
			Status:        StatusIdle,
			Intent:        questiongen.IntentForSection(idx),
			SelectedIndex: -1,
		}
		s.states[idx] = st
	}
	return st
}

func (s *Service) remediation(idx int) *Remediation {
	r, ok := s.remeds[idx]
	if !ok {
		r = &Remediation{SelectedIndex: -1}
		s.remeds[idx] = r
	}
	return r
}

// StateOf returns a snapshot of a section's checkpoint state.
func (s *Service) StateOf(idx int) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state(idx)
}

// RemediationOf returns a snapshot of a section's remediation state.
func (s *Service) RemediationOf(idx int) Remediation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.remediation(idx)
}

// SectionPassed reports whether the section's checkpoint has been answered
// correctly.
func (s *Service) SectionPassed(idx int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(idx).Passed
}

// cacheKey builds the cache key for a section.
func (s *Service) cacheKey(idx int, intent questiongen.Intent) string {
	return fmt.Sprintf("checkpoint/%s/%d/%s", s.lesson.ID, idx, intent)
}

// cacheEntry is the serialized cache record.
type cacheEntry struct {
	Payload struct {
		Visual       string   `json:"visual,omitempty"`
		Question     string   `json:"question"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correct_index"`
		Explanation  string   `json:"explanation"`
	} `json:"payload"`
	Intent string `json:"intent"`
	Source string `json:"source"`
}

// Ensure makes a section's checkpoint usable, running the full generation
// pipeline if needed. Safe to call repeatedly: a section that is loading or
// already ready is left alone, which also guarantees at most one in-flight
// generation per section. Blocking; intended to run off the UI loop.
func (s *Service) Ensure(ctx context.Context, idx int) State {
	s.mu.Lock()
	st := s.state(idx)
	if st.Status == StatusLoading || st.Status == StatusReady {
		snapshot := *st
		s.mu.Unlock()
		return snapshot
	}
	st.Status = StatusLoading
	st.ErrMsg = ""
	intent := st.Intent
	s.mu.Unlock()

	sectionText := s.sectionText(idx)
	sd := seed.Derive(s.lesson.ID, idx, intent.Offset())

	// Cache read-through: a stored, still-valid payload wins outright, so a
	// reload lands on the same question with no remote call.
	if p, src, ok := s.readCache(ctx, idx, intent); ok {
		return s.finish(ctx, idx, p, src, ReasonNone, true)
	}

	// Remote generation. The provider underneath carries the retry policy,
	// so one call here is the whole attempt budget.
	if s.gen != nil {
		p, err := s.gen.Generate(ctx, questiongen.Input{
			LessonID:     s.lesson.ID,
			LessonTitle:  s.lesson.Title,
			SectionIndex: idx,
			SectionTitle: s.sectionTitle(idx),
			SectionText:  sectionText,
			Intent:       intent,
		})
		if err == nil {
			if verr := questiongen.Check(p, intent); verr == nil {
				s.shuffle(p, sd)
				return s.finish(ctx, idx, p, SourceAI, ReasonNone, false)
			}
			// Invalid payloads are never retried remotely; the fallback
			// takes over with one shared quality bar.
			return s.runFallback(ctx, idx, sectionText, intent, sd, ReasonGenerationError)
		}
		return s.runFallback(ctx, idx, sectionText, intent, sd, ReasonAssistantUnavailable)
	}

	return s.runFallback(ctx, idx, sectionText, intent, sd, ReasonAssistantUnavailable)
}

func (s *Service) runFallback(ctx context.Context, idx int, sectionText string, intent questiongen.Intent, sd uint32, reason Reason) State {
	if s.fallback == nil {
		return s.fail(idx, "question generator unavailable")
	}
	p := s.fallback(sectionText, intent, sd)
	if verr := questiongen.Check(&p, intent); verr != nil {
		return s.fail(idx, verr.Error())
	}
	s.shuffle(&p, sd)
	return s.finish(ctx, idx, &p, SourceFallback, reason, false)
}

func (s *Service) shuffle(p *questiongen.Payload, sd uint32) {
	p.Options, p.CorrectIndex = seed.ShuffleOptions(p.Options, p.CorrectIndex, sd)
}

// finish installs a ready payload and handles cache + telemetry.
func (s *Service) finish(ctx context.Context, idx int, p *questiongen.Payload, src Source, reason Reason, fromCache bool) State {
	s.mu.Lock()
	st := s.state(idx)
	st.Status = StatusReady
	st.Payload = p
	st.Source = src
	st.Reason = reason
	st.FromCache = fromCache
	snapshot := *st
	s.mu.Unlock()

	if !fromCache {
		s.writeCache(ctx, idx, snapshot.Intent, p, src)
	}
	if s.events != nil {
		s.events.CheckpointGenerated(ctx, GeneratedEvent{
			LessonID:     s.lesson.ID,
			SessionID:    s.sessionID,
			SectionIndex: idx,
			Intent:       snapshot.Intent,
			Source:       src,
			Reason:       reason,
			FromCache:    fromCache,
		})
	}
	return snapshot
}

func (s *Service) fail(idx int, msg string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(idx)
	st.Status = StatusError
	st.ErrMsg = msg
	return *st
}

// readCache attempts cache adoption. Any parse or validation problem falls
// through silently to regeneration.
func (s *Service) readCache(ctx context.Context, idx int, intent questiongen.Intent) (*questiongen.Payload, Source, bool) {
	if s.cache == nil {
		return nil, "", false
	}
	raw, ok := s.cache.Get(ctx, s.cacheKey(idx, intent))
	if !ok {
		return nil, "", false
	}
	var entry cacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, "", false
	}
	p := &questiongen.Payload{
		Visual:       entry.Payload.Visual,
		Question:     entry.Payload.Question,
		Options:      entry.Payload.Options,
		CorrectIndex: entry.Payload.CorrectIndex,
		Explanation:  entry.Payload.Explanation,
	}
	if questiongen.Check(p, intent) != nil {
		return nil, "", false
	}
	src := Source(entry.Source)
	if src != SourceAI && src != SourceFallback {
		src = SourceFallback
	}
	return p, src, true
}

func (s *Service) writeCache(ctx context.Context, idx int, intent questiongen.Intent, p *questiongen.Payload, src Source) {
	if s.cache == nil {
		return
	}
	var entry cacheEntry
	entry.Payload.Visual = p.Visual
	entry.Payload.Question = p.Question
	entry.Payload.Options = p.Options
	entry.Payload.CorrectIndex = p.CorrectIndex
	entry.Payload.Explanation = p.Explanation
	entry.Intent = intent.String()
	entry.Source = string(src)
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	s.cache.Put(ctx, s.cacheKey(idx, intent), string(data))
}

func (s *Service) sectionText(idx int) string {
	if idx < 0 || idx >= len(s.lesson.Sections) {
		return ""
	}
	return s.lesson.Sections[idx].Body
}

func (s *Service) sectionTitle(idx int) string {
	if idx < 0 || idx >= len(s.lesson.Sections) {
		return ""
	}
	return s.lesson.Sections[idx].Title
}

// SelectOption records an answer selection. Accepted only while the
// checkpoint is ready and not already passed; anything else, including an
// out-of-range index, is ignored. Never errors.
func (s *Service) SelectOption(ctx context.Context, idx, option int) State {
	s.mu.Lock()
	st := s.state(idx)
	if st.Status != StatusReady || st.Passed || option < 0 || option >= len(st.Payload.Options) {
		snapshot := *st
		s.mu.Unlock()
		return snapshot
	}

	correct := option == st.Payload.CorrectIndex
	st.SelectedIndex = option
	st.Answered = true
	st.IsCorrect = correct

	var showRemediation bool
	rem := s.remediation(idx)
	if correct {
		st.Passed = true
		rem.Visible = false
	} else {
		st.WrongAttempts++
		if st.WrongAttempts >= remediationThreshold && !rem.Shown {
			rem.Shown = true
			rem.Visible = true
			rem.Payload = s.buildReview(idx)
			showRemediation = true
		}
	}

	snapshot := *st
	attempt := st.WrongAttempts
	if correct {
		attempt++
	}
	intent := st.Intent
	s.mu.Unlock()

	if s.events != nil {
		s.events.CheckpointAnswered(ctx, AnsweredEvent{
			LessonID:     s.lesson.ID,
			SessionID:    s.sessionID,
			SectionIndex: idx,
			Intent:       intent,
			OptionIndex:  option,
			Correct:      correct,
			Attempt:      attempt,
		})
		if showRemediation {
			s.events.RemediationShown(ctx, RemediationEvent{
				LessonID:     s.lesson.ID,
				SessionID:    s.sessionID,
				SectionIndex: idx,
				Action:       "shown",
			})
		}
	}
	return snapshot
}

func (s *Service) buildReview(idx int) *questiongen.Payload {
	p := fallback.Review(s.sectionText(idx))
	return &p
}

// SelectRemediationOption records an answer on the quick review. A correct
// answer hides the review (inviting a retry of the checkpoint) without
// counting as section completion; an incorrect one leaves it visible.
func (s *Service) SelectRemediationOption(ctx context.Context, idx, option int) Remediation {
	s.mu.Lock()
	rem := s.remediation(idx)
	if !rem.Visible || rem.Payload == nil || option < 0 || option >= len(rem.Payload.Options) {
		snapshot := *rem
		s.mu.Unlock()
		return snapshot
	}

	correct := option == rem.Payload.CorrectIndex
	rem.SelectedIndex = option
	rem.Answered = true
	rem.IsCorrect = correct
	if correct {
		rem.Visible = false
	}
	snapshot := *rem
	s.mu.Unlock()

	if s.events != nil {
		s.events.RemediationAnswered(ctx, RemediationEvent{
			LessonID:     s.lesson.ID,
			SessionID:    s.sessionID,
			SectionIndex: idx,
			Action:       "answered",
			OptionIndex:  option,
			Correct:      correct,
		})
	}
	return snapshot
}

// Retry clears a terminal error so Ensure can run the pipeline again.
func (s *Service) Retry(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(idx)
	if st.Status == StatusError {
		st.Status = StatusIdle
		st.ErrMsg = ""
	}
}

// Reset discards all checkpoint and remediation state for the session.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = make(map[int]*State)
	s.remeds = make(map[int]*Remediation)
}

// HintFor returns the deterministic hint for a section. No network; always
// available once the checkpoint is ready.
func (s *Service) HintFor(idx int) string {
	s.mu.Lock()
	intent := s.state(idx).Intent
	s.mu.Unlock()
	return fallback.Hint(s.sectionText(idx), intent)
}

// TutorContext builds the plain-text hand-off for the external tutoring
// surface. Returns "" unless the section's checkpoint is ready.
func (s *Service) TutorContext(idx int) string {
	s.mu.Lock()
	st := s.state(idx)
	if st.Status != StatusReady || st.Payload == nil {
		s.mu.Unlock()
		return ""
	}
	p := st.Payload
	s.mu.Unlock()

	var b strings.Builder
	b.WriteString("I'm working on this question from my lesson:\n\n")
	b.WriteString(p.Question)
	b.WriteString("\n\nThe options are:\n")
	for i, opt := range p.Options {
		fmt.Fprintf(&b, "%c) %s\n", 'A'+i, opt)
	}
	b.WriteString("\nPlease help me think it through, but do not tell me which option is correct.")
	return b.String()
}

// Gate adapts checkpoint outcomes for the stepper: passed and terminal
// error both open the gate (the latter as degraded mode), everything else
// stays locked.
func (s *Service) Gate(idx int) (passed, degraded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(idx)
	return st.Passed, st.Status == StatusError
}
