package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/geomiz/internal/checkpoint"
	"github.com/abhisek/geomiz/internal/stepper"
	"github.com/abhisek/geomiz/internal/ui/components"
	"github.com/abhisek/geomiz/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	switch s.step.Phase() {
	case stepper.PhaseWelcome:
		return s.renderWelcome(width)
	case stepper.PhaseLearn:
		return s.renderLearn(width)
	case stepper.PhasePractice:
		return s.renderPractice(width)
	case stepper.PhaseReview:
		return s.renderReview(width)
	case stepper.PhaseComplete:
		return s.renderComplete(width)
	}
	return ""
}

func centered(width int, style lipgloss.Style, text string) string {
	return style.Width(width).Align(lipgloss.Center).Render(text)
}

func (s *LessonScreen) renderWelcome(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Title, s.lesson.Title))
	b.WriteString("\n")
	if s.lesson.Subtitle != "" {
		b.WriteString(centered(width, theme.Subtitle, s.lesson.Subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	info := fmt.Sprintf("%d sections", len(s.lesson.Sections))
	if s.lesson.HasPractice() {
		info += fmt.Sprintf("  ·  %d practice questions", len(s.lesson.Practice))
	}
	b.WriteString(centered(width, theme.Subtitle, info))
	b.WriteString("\n\n\n")
	begin := components.NewButton("Begin", true, nil)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, begin.View()))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Hint, "Press Enter to begin"))
	return b.String()
}

func (s *LessonScreen) renderLearn(width int) string {
	idx := s.step.Section()
	section := s.lesson.Sections[idx]

	var b strings.Builder

	// Position line plus progress.
	posLine := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Section %d/%d: %s", idx+1, len(s.lesson.Sections), section.Title))
	b.WriteString(posLine)
	b.WriteString("\n")
	bar := components.NewProgressBar("  ", s.step.Progress(), true, width-8)
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if section.Visual != "" {
		visual := lipgloss.NewStyle().Foreground(theme.Accent).Render(section.Visual)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, visual))
		b.WriteString("\n\n")
	}

	body := lipgloss.NewStyle().
		Width(min(width-8, 72)).
		Foreground(theme.Text).
		Render(section.Body)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n\n")

	b.WriteString(s.renderCheckpoint(width, idx))
	return b.String()
}

func (s *LessonScreen) renderCheckpoint(width, idx int) string {
	st := s.svc.StateOf(idx)

	switch st.Status {
	case checkpoint.StatusIdle, checkpoint.StatusLoading:
		return centered(width, theme.Hint, s.spinner.View()+" Preparing your quick check...")

	case checkpoint.StatusError:
		var b strings.Builder
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Error).Bold(true),
			"Couldn't prepare a quick check"))
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Subtitle, st.ErrMsg))
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Hint, "[R] Try again    [Enter] Continue anyway"))
		return b.String()

	case checkpoint.StatusReady:
		rem := s.svc.RemediationOf(idx)
		if rem.Visible {
			return s.renderRemediation(width, rem)
		}
		return s.renderQuestion(width, st)
	}
	return ""
}

func (s *LessonScreen) renderQuestion(width int, st checkpoint.State) string {
	p := st.Payload
	var b strings.Builder

	label := "Quick check"
	if st.Source == checkpoint.SourceFallback {
		label = "Quick check (offline)"
	}
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true), label))
	b.WriteString("\n\n")

	if p.Visual != "" {
		visual := lipgloss.NewStyle().Foreground(theme.Accent).Render(p.Visual)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, visual))
		b.WriteString("\n\n")
	}

	question := lipgloss.NewStyle().
		Width(min(width-8, 72)).
		Foreground(theme.Text).
		Bold(true).
		Render(p.Question)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n\n")

	b.WriteString(s.renderOptions(width, p.Options, p.CorrectIndex, s.selected, st))
	b.WriteString("\n")

	switch {
	case st.Passed:
		b.WriteString(centered(width, theme.Correct, "Correct!"))
		if p.Explanation != "" {
			b.WriteString("\n")
			b.WriteString(centered(width, theme.Subtitle, p.Explanation))
		}
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Hint, "Press Enter to continue"))
	case st.Answered && !st.IsCorrect:
		b.WriteString(centered(width, theme.Incorrect, "Not quite. Try again!"))
	}

	if s.showHint && s.hintText != "" {
		b.WriteString("\n\n")
		hint := theme.Hint.Width(min(width-8, 72)).Render("Hint: " + s.hintText)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
	}

	if s.tutorBusy {
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Hint, "Tutor session open..."))
	}

	return b.String()
}

// renderOptions draws the answer list. Wrong selections stay marked so the
// learner can see what they already tried.
func (s *LessonScreen) renderOptions(width int, options []string, correctIndex, cursor int, st checkpoint.State) string {
	labels := []string{"A", "B", "C", "D"}
	var b strings.Builder

	for i, opt := range options {
		prefix := "  "
		if i == cursor && !st.Passed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, labels[i], opt)

		var style lipgloss.Style
		switch {
		case st.Passed && i == correctIndex:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case st.Passed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case st.Answered && i == st.SelectedIndex && !st.IsCorrect:
			style = lipgloss.NewStyle().Foreground(theme.Error)
		case i == cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *LessonScreen) renderRemediation(width int, rem checkpoint.Remediation) string {
	p := rem.Payload
	var b strings.Builder

	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		"Let's take a step back"))
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Width(min(width-8, 72)).
		Foreground(theme.Text).
		Bold(true).
		Render(p.Question)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n\n")

	labels := []string{"A", "B"}
	var opts strings.Builder
	for i, opt := range p.Options {
		prefix := "  "
		if i == s.remSelected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, labels[i], opt)
		if i == s.remSelected {
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		opts.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.String()))

	if rem.Answered && !rem.IsCorrect {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Incorrect, "Look at the section text once more."))
	}

	return b.String()
}

func (s *LessonScreen) renderPractice(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true),
		fmt.Sprintf("Practice %d of %d", s.practiceIdx+1, len(s.lesson.Practice))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.practiceChoice.View()))

	if s.practiceChoice.Submitted {
		b.WriteString("\n")
		q := s.lesson.Practice[s.practiceIdx]
		if s.practiceChoice.IsCorrect() {
			b.WriteString(centered(width, theme.Correct, "Correct!"))
		} else {
			b.WriteString(centered(width, theme.Incorrect, "Not quite"))
		}
		if q.Explanation != "" {
			b.WriteString("\n")
			b.WriteString(centered(width, theme.Subtitle, q.Explanation))
		}
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Hint, "Press any key to continue"))
	}

	return b.String()
}

func (s *LessonScreen) renderReview(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Title, "Review"))
	b.WriteString("\n\n")

	var list strings.Builder
	for i, section := range s.lesson.Sections {
		mark := lipgloss.NewStyle().Foreground(theme.TextDim).Render("·")
		if s.svc.SectionPassed(i) {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		}
		list.WriteString(fmt.Sprintf("%s %s\n", mark, section.Title))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))

	if s.lesson.HasPractice() {
		score := s.step.Score()
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Subtitle,
			fmt.Sprintf("Practice: %d of %d correct", score.Correct, score.Total)))
	}

	b.WriteString("\n\n")
	finish := components.NewButton("Finish", true, nil)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, finish.View()))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Hint, "Press Enter to finish"))
	return b.String()
}

func (s *LessonScreen) renderComplete(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
		"Lesson complete!"))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Subtitle, s.lesson.Title))
	b.WriteString("\n\n\n")
	b.WriteString(centered(width, theme.Hint, "Press Enter to go back"))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
