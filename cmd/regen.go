package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dishalabs/disha/internal/assist"
	"github.com/dishalabs/disha/internal/catalog"
	"github.com/dishalabs/disha/internal/engine"
	"github.com/dishalabs/disha/internal/llm"
	"github.com/dishalabs/disha/internal/store"
	"github.com/spf13/cobra"
)

// regenCmd rewrites the prose artifacts of a finalized result. Scores,
// top domains, and the stream suggestion never change.
var regenCmd = &cobra.Command{
	Use:   "regen <session-id>",
	Short: "Regenerate the narrative report for a completed session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		existing, err := st.Results().BySession(ctx, args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no result for session %q", args[0])
			}
			return fmt.Errorf("load result: %w", err)
		}

		var engineOpts []engine.Option
		provider, err := llm.NewProviderFromEnv(ctx, st.LLMEvents())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Falling back to the built-in report.")
		} else {
			engineOpts = append(engineOpts, engine.WithAssist(assist.New(provider, assist.DefaultConfig())))
		}

		svc := engine.New(engine.Deps{
			Sessions: st.Sessions(),
			Answers:  st.Answers(),
			Asked:    st.Asked(),
			Results:  st.Results(),
			Bank:     st.Bank(),
			Catalog:  catalog.NewStatic(),
		}, engineOpts...)

		updated, err := svc.RegenerateResultArtifacts(ctx, existing.SessionID, existing.StudentID)
		if err != nil {
			return fmt.Errorf("regenerate artifacts: %w", err)
		}

		printResult(updated)
		return nil
	},
}
