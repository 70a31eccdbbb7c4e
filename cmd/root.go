package cmd

import (
	"github.com/dishalabs/disha/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "disha",
	Short: "Career interest assessment for students",
	Long:  "Disha — terminal assessment that maps a student's RIASEC interest profile to streams, career fields, and courses.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DISHA_DB env var)")
	rootCmd.Flags().String("student", "", "Student name (skips the welcome screen)")
	rootCmd.Flags().String("grade", "", "Class band: 9-10 or 11-12")

	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DISHA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
