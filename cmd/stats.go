package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/geomiz/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show checkpoint accuracy per lesson",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rows, err := st.EventRepo().LessonStatsFor(context.Background(), "")
		if err != nil {
			return fmt.Errorf("aggregate stats: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No checkpoint history yet. Run a lesson first.")
			return nil
		}

		fmt.Printf("%-24s  %7s  %8s  %9s  %6s  %8s  %6s\n",
			"Lesson", "Answers", "Accuracy", "First-try", "AI", "Offline", "Review")
		fmt.Println(strings.Repeat("─", 80))

		for _, r := range rows {
			accuracy := "-"
			if r.Answers > 0 {
				accuracy = fmt.Sprintf("%d/%d", r.Correct, r.Answers)
			}
			fmt.Printf("%-24s  %7d  %8s  %9d  %6d  %8d  %6d\n",
				r.LessonID, r.Answers, accuracy, r.FirstTryPasses,
				r.AIServed, r.FallbackServed, r.Remediations)
		}
		return nil
	},
}
