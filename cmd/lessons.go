package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/geomiz/internal/content"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the embedded lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		lessons, err := content.Load()
		if err != nil {
			return err
		}

		fmt.Printf("%-24s  %-40s  %8s  %8s\n", "ID", "Title", "Sections", "Practice")
		fmt.Println(strings.Repeat("─", 88))

		for _, l := range lessons {
			title := l.Title
			if len(title) > 40 {
				title = title[:37] + "..."
			}
			fmt.Printf("%-24s  %-40s  %8d  %8d\n",
				l.ID, title, len(l.Sections), len(l.Practice))
		}

		fmt.Printf("\n%d lessons\n", len(lessons))
		return nil
	},
}
