// Package content holds the lesson library: the static lesson text a learner
// walks through, authored as YAML and embedded in the binary.
package content

// Lesson is one guided lesson: an ordered list of teaching sections plus an
// optional practice quiz.
type Lesson struct {
	ID       string             `yaml:"id"`
	Title    string             `yaml:"title"`
	Subtitle string             `yaml:"subtitle"`
	Sections []Section          `yaml:"sections"`
	Practice []PracticeQuestion `yaml:"practice"`
}

// Section is one chunk of teaching content within the learn phase.
// Body is plain text; Visual is an optional ASCII diagram rendered above it.
type Section struct {
	Title  string `yaml:"title"`
	Visual string `yaml:"visual"`
	Body   string `yaml:"body"`
}

// PracticeQuestion is a multiple-choice question for the practice phase.
type PracticeQuestion struct {
	Question     string   `yaml:"question"`
	Options      []string `yaml:"options"`
	CorrectIndex int      `yaml:"correct_index"`
	Explanation  string   `yaml:"explanation"`
}

// HasPractice reports whether the lesson carries any practice questions.
// Lessons without practice skip that phase entirely.
func (l *Lesson) HasPractice() bool {
	return len(l.Practice) > 0
}
