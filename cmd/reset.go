package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local assessment data",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes every session, answer, and result on this machine.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("Nothing to delete.")
				return nil
			}
			return fmt.Errorf("delete database: %w", err)
		}
		// WAL sidecar files, if present.
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")

		fmt.Println("Deleted", dbPath)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
