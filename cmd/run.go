package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/geomiz/internal/app"
	"github.com/abhisek/geomiz/internal/content"
	"github.com/abhisek/geomiz/internal/llm"
	"github.com/abhisek/geomiz/internal/questiongen"
	"github.com/abhisek/geomiz/internal/store"
	"github.com/abhisek/geomiz/internal/store/telemetry"
	"github.com/abhisek/geomiz/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	lessons, err := content.Load()
	if err != nil {
		return fmt.Errorf("load lessons: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Lessons: lessons,
		Events:  st.EventRepo(),
		Cache:   telemetry.NewCheckpointCache(st.CacheRepo()),
	}

	if handoff := tutor.NewCommandHandoff(); handoff.Available() {
		opts.Tutor = handoff
	}

	// The app works without a provider; checkpoints come from the
	// deterministic fallback instead.
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Checkpoint questions will be generated offline.")
	} else {
		opts.Generator = questiongen.New(provider, questiongen.DefaultConfig())
	}

	return app.Run(opts)
}
