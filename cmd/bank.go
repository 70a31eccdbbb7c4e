package cmd

import (
	"fmt"
	"strings"

	"github.com/dishalabs/disha/internal/bank"
	"github.com/dishalabs/disha/internal/riasec"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Browse the built-in question bank",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bank questions (optionally filtered by grade or domain)",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetString("grade")
		domain, _ := cmd.Flags().GetString("domain")

		var dom riasec.Domain
		if domain != "" {
			d, err := riasec.Parse(strings.ToUpper(domain))
			if err != nil {
				return fmt.Errorf("invalid domain %q: use one of R, I, A, S, E, C", domain)
			}
			dom = d
		}

		questions := bank.SeedQuestions()

		fmt.Printf("%-8s  %-10s  %-8s  %-7s  %-7s  %s\n",
			"ID", "Type", "Domains", "Weight", "Grades", "Prompt")
		fmt.Println(strings.Repeat("─", 110))

		var shown int
		for _, q := range questions {
			if grade != "" && !q.AppliesToGrade(grade) {
				continue
			}
			if dom != "" && !hasDomain(q, dom) {
				continue
			}

			grades := strings.Join(q.GradeBands, ",")
			if grades == "" {
				grades = "all"
			}
			prompt := q.Prompt
			if len(prompt) > 56 {
				prompt = prompt[:53] + "..."
			}
			reverse := ""
			if q.ReverseScored {
				reverse = " (rev)"
			}
			fmt.Printf("%-8s  %-10s  %-8s  %-7.1f  %-7s  %s%s\n",
				q.ID, q.Type, strings.Join(riasec.Strings(q.Domains), ""),
				q.Weight, grades, prompt, reverse)
			shown++
		}

		fmt.Printf("\n%d questions (bank %s)\n", shown, bank.DefaultVersion)
		return nil
	},
}

// hasDomain reports whether the question or any of its options carries
// the given domain tag.
func hasDomain(q bank.Question, dom riasec.Domain) bool {
	for _, d := range q.Domains {
		if d == dom {
			return true
		}
	}
	for _, o := range q.Options {
		for _, d := range o.Domains {
			if d == dom {
				return true
			}
		}
	}
	return false
}

func init() {
	bankListCmd.Flags().String("grade", "", "Filter by grade band (9-10 or 11-12)")
	bankListCmd.Flags().String("domain", "", "Filter by domain tag (R, I, A, S, E, or C)")

	bankCmd.AddCommand(bankListCmd)
}
