package tutor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAvailable(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		want bool
	}{
		{"unset", "", false},
		{"whitespace only", "   ", false},
		{"configured", "cat", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &CommandHandoff{command: tt.cmd}
			if got := h.Available(); got != tt.want {
				t.Errorf("Available() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewCommandHandoffReadsEnv(t *testing.T) {
	t.Setenv("GEOMIZ_TUTOR_CMD", "some-tutor --flag")
	h := NewCommandHandoff()
	if !h.Available() {
		t.Error("expected handoff to be available when GEOMIZ_TUTOR_CMD is set")
	}
}

func TestOpenPassesContextOnStdin(t *testing.T) {
	out := filepath.Join(t.TempDir(), "context.txt")

	// sh reads stdin and writes it to a file we can inspect.
	h := &CommandHandoff{command: "sh -c cat>" + out}
	if err := h.Open(context.Background(), "Section text here.\nQuestion here."); err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "Question here.") {
		t.Errorf("tutor did not receive context, got %q", data)
	}
}

func TestOpenNoCommand(t *testing.T) {
	h := &CommandHandoff{command: ""}
	if err := h.Open(context.Background(), "text"); err == nil {
		t.Error("expected error when no command is configured")
	}
}

func TestOpenCommandFails(t *testing.T) {
	h := &CommandHandoff{command: "false"}
	if err := h.Open(context.Background(), "text"); err == nil {
		t.Error("expected error when tutor command exits nonzero")
	}
}
