package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/geomiz/internal/checkpoint"
	"github.com/abhisek/geomiz/internal/content"
	"github.com/abhisek/geomiz/internal/llm"
	"github.com/abhisek/geomiz/internal/questiongen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview checkpoint questions for a lesson (no database)",
	Long: `Generate and interactively answer the checkpoint question of each section.

This is a stateless developer tool — no database, no progress tracking, no events.
Without a configured LLM provider the deterministic offline generator is used,
which is also useful for checking fallback question quality.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("lesson", "", "Lesson ID (defaults to the first embedded lesson)")
	previewCmd.Flags().Int("section", -1, "Preview a single section index (default: all)")
	previewCmd.Flags().Bool("offline", false, "Skip the LLM provider and use the offline generator")
}

func runPreview(cmd *cobra.Command, args []string) error {
	lessonID, _ := cmd.Flags().GetString("lesson")
	section, _ := cmd.Flags().GetInt("section")
	offline, _ := cmd.Flags().GetBool("offline")

	var l content.Lesson
	var err error
	if lessonID == "" {
		lessons, err := content.Load()
		if err != nil {
			return err
		}
		l = lessons[0]
	} else {
		l, err = content.Get(lessonID)
		if err != nil {
			return err
		}
	}

	ctx := context.Background()

	// Provider is optional; the checkpoint service falls back on its own.
	var opts []checkpoint.ServiceOption
	if !offline {
		if provider, err := llm.NewProviderFromEnv(ctx, nil); err == nil {
			opts = append(opts, checkpoint.WithGenerator(questiongen.New(provider, questiongen.DefaultConfig())))
		} else {
			fmt.Fprintln(os.Stderr, "No LLM provider; using the offline generator.")
		}
	}
	svc := checkpoint.NewService(l, "preview", opts...)

	sections := make([]int, 0, len(l.Sections))
	if section >= 0 {
		if section >= len(l.Sections) {
			return fmt.Errorf("section %d out of range: lesson %s has %d sections", section, l.ID, len(l.Sections))
		}
		sections = append(sections, section)
	} else {
		for i := range l.Sections {
			sections = append(sections, i)
		}
	}

	fmt.Printf("Lesson: %s — %s\n\n", l.ID, l.Title)
	scanner := bufio.NewScanner(os.Stdin)

	var correct int
	var answered int

	for _, idx := range sections {
		st := svc.Ensure(ctx, idx)
		if st.Status == checkpoint.StatusError {
			fmt.Printf("Section %d: %s\n\n", idx, st.ErrMsg)
			continue
		}

		fmt.Printf("── Section %d: %s (%s, via %s) ──\n",
			idx, l.Sections[idx].Title, st.Intent, st.Source)
		fmt.Println(st.Payload.Question)
		for j, opt := range st.Payload.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}
		choice, err := strconv.Atoi(raw)
		if err != nil || choice < 1 || choice > len(st.Payload.Options) {
			fmt.Print("(not an option number, skipped)\n\n")
			continue
		}

		answered++
		st = svc.SelectOption(ctx, idx, choice-1)
		if st.Passed {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n",
				st.Payload.Options[st.Payload.CorrectIndex])
		}
		if st.Payload.Explanation != "" {
			fmt.Printf("Explanation: %s\n", st.Payload.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, answered)
	return nil
}
