// Package tutor hands a stuck learner off to an external tutoring surface.
// The lesson flow only prepares the context text; whatever runs on the other
// side never learns which option is correct.
package tutor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Handoff launches an external tutor with prepared context.
type Handoff interface {
	// Available reports whether a tutor is configured.
	Available() bool

	// Open hands the context text to the tutor. Blocks until the tutor
	// exits; callers run it off the UI loop.
	Open(ctx context.Context, contextText string) error
}

// CommandHandoff runs the program named by GEOMIZ_TUTOR_CMD, passing the
// context text on stdin. The value is split on whitespace: the first token
// is the binary, the rest are arguments.
type CommandHandoff struct {
	command string
}

// NewCommandHandoff reads the tutor command from the environment.
func NewCommandHandoff() *CommandHandoff {
	return &CommandHandoff{command: os.Getenv("GEOMIZ_TUTOR_CMD")}
}

func (h *CommandHandoff) Available() bool {
	return strings.TrimSpace(h.command) != ""
}

func (h *CommandHandoff) Open(ctx context.Context, contextText string) error {
	fields := strings.Fields(h.command)
	if len(fields) == 0 {
		return fmt.Errorf("no tutor command configured")
	}

	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	cmd.Stdin = strings.NewReader(contextText)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run tutor command: %w", err)
	}
	return nil
}
