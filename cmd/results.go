package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dishalabs/disha/internal/riasec"
	"github.com/dishalabs/disha/internal/store"
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect completed assessment results",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		results, err := s.Results().ListRecent(ctx, limit)
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No completed assessments yet.")
			return nil
		}

		fmt.Printf("%-36s  %-12s  %-8s  %-24s  %-10s  %s\n",
			"Session", "Taken", "Profile", "Stream", "Confidence", "Student")
		fmt.Println(strings.Repeat("─", 110))

		for _, r := range results {
			fmt.Printf("%-36s  %-12s  %-8s  %-24s  %-10s  %s\n",
				r.SessionID,
				r.CreatedAt.Local().Format("2006-01-02"),
				strings.Join(r.TopDomains, "+"),
				truncate(r.Stream, 24),
				r.ConfidenceLevel,
				r.StudentID,
			)
		}
		return nil
	},
}

var resultsViewCmd = &cobra.Command{
	Use:   "view <session-id>",
	Short: "Print one result in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		r, err := s.Results().BySession(ctx, args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no result for session %q", args[0])
			}
			return fmt.Errorf("load result: %w", err)
		}

		printResult(r)
		return nil
	},
}

func printResult(r *store.ResultRecord) {
	sep := strings.Repeat("─", 60)

	fmt.Printf("Session:     %s\n", r.SessionID)
	fmt.Printf("Student:     %s (class %s)\n", r.StudentID, r.Grade)
	fmt.Printf("Taken:       %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Versions:    test %s / bank %s / scoring %s / prompt %s\n",
		r.TestVersion, r.BankVersion, r.ScoringVersion, r.PromptVersion)
	fmt.Println()

	fmt.Println("Scores")
	fmt.Println(sep)
	for _, d := range riasec.Alphabet {
		ds, ok := r.DomainScores[string(d)]
		if !ok {
			fmt.Printf("  %-14s  (no evidence)\n", d.Name())
			continue
		}
		fmt.Printf("  %-14s  %5.1f\n", d.Name(), ds.Score)
	}
	fmt.Printf("\nTop: %s  Margin: %.1f  Confidence: %s (%.2f)  Scored answers: %d\n",
		strings.Join(r.TopDomains, "+"), r.TopMargin,
		r.ConfidenceLevel, r.ConfidenceScore, r.ScoredAnswers)
	fmt.Println()

	fmt.Println("Suggestion")
	fmt.Println(sep)
	fmt.Printf("  Stream:  %s\n", r.Stream)
	if len(r.CareerFields) > 0 {
		fmt.Printf("  Fields:  %s\n", strings.Join(r.CareerFields, ", "))
	}
	if r.Guidance != "" {
		fmt.Printf("  Note:    %s\n", r.Guidance)
	}
	for _, c := range r.Courses {
		fmt.Printf("  Course:  %s (%s, %s)\n", c.Name, c.Code, c.Stream)
	}

	if r.Narrative != "" {
		fmt.Println()
		fmt.Println("Report")
		fmt.Println(sep)
		fmt.Println(r.Narrative)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	resultsListCmd.Flags().IntP("limit", "n", 20, "Number of results to show")

	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsViewCmd)
	resultsCmd.AddCommand(regenCmd)
}
