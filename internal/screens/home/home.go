// Package home implements the lesson picker, the first screen of the app.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geomiz/internal/content"
	"github.com/abhisek/geomiz/internal/router"
	"github.com/abhisek/geomiz/internal/screen"
	lessonscreen "github.com/abhisek/geomiz/internal/screens/lesson"
	"github.com/abhisek/geomiz/internal/store"
	"github.com/abhisek/geomiz/internal/ui/components"
	"github.com/abhisek/geomiz/internal/ui/theme"
)

// HomeScreen lists the embedded lessons and launches one on selection.
type HomeScreen struct {
	menu    components.Menu
	lessons []content.Lesson
	stats   []*store.LessonStats // parallel to lessons; nil entry = no history
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the lesson picker. The deps are forwarded to whichever lesson
// the learner opens; any of them may be nil.
func New(lessons []content.Lesson, deps lessonscreen.Deps) *HomeScreen {
	stats := make([]*store.LessonStats, len(lessons))
	if deps.Events != nil {
		for i, l := range lessons {
			rows, err := deps.Events.LessonStatsFor(context.Background(), l.ID)
			if err == nil && len(rows) == 1 && rows[0].Answers > 0 {
				stats[i] = &rows[0]
			}
		}
	}

	items := make([]components.MenuItem, 0, len(lessons)+1)
	for _, l := range lessons {
		l := l
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(l.Title),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: lessonscreen.New(l, deps)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "QUIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{
		menu:    components.NewMenu(items),
		lessons: lessons,
		stats:   stats,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Guided geometry, one section at a time."))
	b.WriteString("\n\n")

	b.WriteString(h.menu.View())
	b.WriteString("\n")
	b.WriteString(h.detailLine())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render(b.String())
}

// detailLine describes the highlighted lesson: shape of the lesson plus any
// recorded history for it.
func (h *HomeScreen) detailLine() string {
	i := h.menu.Selected
	if i < 0 || i >= len(h.lessons) {
		return ""
	}
	l := h.lessons[i]

	parts := []string{fmt.Sprintf("%d sections", len(l.Sections))}
	if l.HasPractice() {
		parts = append(parts, fmt.Sprintf("%d practice questions", len(l.Practice)))
	}
	desc := strings.Join(parts, " · ")
	if l.Subtitle != "" {
		desc = l.Subtitle + "  ·  " + desc
	}

	line := lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + desc)

	if s := h.stats[i]; s != nil {
		pct := 100 * s.Correct / s.Answers
		line += "\n" + lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("  %d answered · %d%% correct", s.Answers, pct))
	}
	return line
}

func (h *HomeScreen) Title() string {
	return "Lessons"
}
