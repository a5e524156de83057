package content

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lessons/*.yaml
var lessonFS embed.FS

// Load parses and validates every embedded lesson, sorted by ID.
func Load() ([]Lesson, error) {
	entries, err := fs.ReadDir(lessonFS, "lessons")
	if err != nil {
		return nil, fmt.Errorf("read lesson dir: %w", err)
	}

	var lessons []Lesson
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := lessonFS.ReadFile("lessons/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		var l Lesson
		if err := yaml.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		if err := validate(&l); err != nil {
			return nil, fmt.Errorf("lesson %s: %w", e.Name(), err)
		}
		lessons = append(lessons, l)
	}

	sort.Slice(lessons, func(i, j int) bool { return lessons[i].ID < lessons[j].ID })
	return lessons, nil
}

// Get returns the lesson with the given ID.
func Get(id string) (Lesson, error) {
	lessons, err := Load()
	if err != nil {
		return Lesson{}, err
	}
	for _, l := range lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return Lesson{}, fmt.Errorf("unknown lesson %q", id)
}

// validate checks the structural rules a lesson must satisfy before it can
// be served: non-empty identity, at least one section, and well-formed
// practice questions.
func validate(l *Lesson) error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("missing id")
	}
	if strings.TrimSpace(l.Title) == "" {
		return fmt.Errorf("missing title")
	}
	if len(l.Sections) == 0 {
		return fmt.Errorf("no sections")
	}
	for i, s := range l.Sections {
		if strings.TrimSpace(s.Body) == "" {
			return fmt.Errorf("section %d: empty body", i)
		}
	}
	for i, p := range l.Practice {
		if strings.TrimSpace(p.Question) == "" {
			return fmt.Errorf("practice %d: empty question", i)
		}
		if len(p.Options) < 2 || len(p.Options) > 4 {
			return fmt.Errorf("practice %d: needs 2-4 options, has %d", i, len(p.Options))
		}
		if p.CorrectIndex < 0 || p.CorrectIndex >= len(p.Options) {
			return fmt.Errorf("practice %d: correct_index %d out of range", i, p.CorrectIndex)
		}
	}
	return nil
}
