package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ritika/selfmap/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show assessment attempts",
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

		ctx := context.Background()
		latest, err := st.RespondentRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}
		if latest == nil {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		prog, err := st.ProgressRepo().Load(ctx, latest.AttemptID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		answers, err := st.EventRepo().CountAnswers(ctx, latest.AttemptID)
		if err != nil {
			return fmt.Errorf("count answers: %w", err)
		}
		results, err := st.ResultRepo().LoadAll(ctx, latest.AttemptID)
		if err != nil {
			return fmt.Errorf("load results: %w", err)
		}

		state := "in progress"
		switch {
		case prog != nil && prog.IsComplete:
			state = fmt.Sprintf("complete (%s)", prog.CompletedAt.Local().Format("2006-01-02 15:04"))
		case prog != nil:
			state = fmt.Sprintf("in module %s", prog.CurrentModule)
		}

		name := latest.Name
		if name == "" {
			name = "(unnamed)"
		}

		fmt.Println("Latest attempt")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("Respondent:        %s\n", name)
		fmt.Printf("Started:           %s\n", latest.CreatedAt.Local().Format("2006-01-02 15:04"))
		fmt.Printf("State:             %s\n", state)
		fmt.Printf("Responses logged:  %d\n", answers)
		fmt.Printf("Modules scored:    %d of 4\n", len(results))
		return nil
	},
}
