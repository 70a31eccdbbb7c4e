package cmd

import (
	"fmt"
	"os"

	"github.com/dishalabs/disha/internal/app"
	"github.com/dishalabs/disha/internal/assist"
	"github.com/dishalabs/disha/internal/bank"
	"github.com/dishalabs/disha/internal/catalog"
	"github.com/dishalabs/disha/internal/engine"
	"github.com/dishalabs/disha/internal/llm"
	"github.com/dishalabs/disha/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the engine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if _, err := st.Bank().SeedIfEmpty(ctx, bank.DefaultVersion, bank.SeedQuestions()); err != nil {
		return fmt.Errorf("seed question bank: %w", err)
	}

	deps := engine.Deps{
		Sessions: st.Sessions(),
		Answers:  st.Answers(),
		Asked:    st.Asked(),
		Results:  st.Results(),
		Bank:     st.Bank(),
		Catalog:  catalog.NewStatic(),
	}

	var engineOpts []engine.Option
	provider, err := llm.NewProviderFromEnv(ctx, st.LLMEvents())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		engineOpts = append(engineOpts, engine.WithAssist(assist.New(provider, assist.DefaultConfig())))
	}

	svc := engine.New(deps, engineOpts...)

	student, _ := cmd.Flags().GetString("student")
	grade, _ := cmd.Flags().GetString("grade")

	return app.Run(app.Options{
		Engine:  svc,
		Student: student,
		Grade:   grade,
		Locale:  os.Getenv("DISHA_LOCALE"),
	})
}
