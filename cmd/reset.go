package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/geomiz/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	Long: `Delete the local database: lesson history, checkpoint events, and the
generated-question cache. With --cache only the question cache is cleared,
forcing fresh generation while keeping history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cacheOnly, _ := cmd.Flags().GetBool("cache")
		yes, _ := cmd.Flags().GetBool("yes")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if cacheOnly {
			st, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			n, err := st.CacheRepo().Purge(context.Background())
			if err != nil {
				return fmt.Errorf("purge cache: %w", err)
			}
			fmt.Printf("Cleared %d cached questions.\n", n)
			return nil
		}

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("Nothing to reset.")
			return nil
		}

		if !yes {
			fmt.Printf("This deletes all lesson history at %s. Continue? [y/N] ", dbPath)
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() {
				return nil
			}
			answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("remove database: %w", err)
		}
		fmt.Println("Learner data reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("cache", false, "Clear only the generated-question cache")
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
