package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ritika/selfmap/internal/llm"
	"github.com/ritika/selfmap/internal/narrative"
	"github.com/ritika/selfmap/internal/report"
	"github.com/ritika/selfmap/internal/store"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the report for the latest attempt",
	RunE: func(cmd *cobra.Command, args []string) error {
		audience, _ := cmd.Flags().GetString("narrative")
		attemptID, _ := cmd.Flags().GetString("attempt")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		respondent, err := resolveAttempt(ctx, st, attemptID)
		if err != nil {
			return err
		}

		results, err := st.ResultRepo().LoadAll(ctx, respondent.AttemptID)
		if err != nil {
			return fmt.Errorf("load results: %w", err)
		}
		if len(results) < 4 {
			fmt.Fprintf(os.Stderr, "warning: only %d of 4 modules scored; unmeasured dimensions default to zero\n", len(results))
		}

		rep := report.Generate(results, report.Respondent{
			Name:          respondent.Name,
			ParentContact: respondent.ParentContact,
		})

		out, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		fmt.Println(string(out))

		if audience == "" {
			return nil
		}
		return printNarratives(ctx, st, rep, audience)
	},
}

func init() {
	reportCmd.Flags().String("attempt", "", "Attempt ID (defaults to the latest attempt)")
	reportCmd.Flags().String("narrative", "", "Also generate narrative prose: teen, parent, or both")
}

// resolveAttempt returns the respondent record for the requested attempt,
// defaulting to the most recent one.
func resolveAttempt(ctx context.Context, st *store.Store, attemptID string) (*store.RespondentRecord, error) {
	if attemptID != "" {
		rec, err := st.RespondentRepo().Load(ctx, attemptID)
		if err != nil {
			return nil, fmt.Errorf("load attempt: %w", err)
		}
		if rec == nil {
			return nil, fmt.Errorf("attempt %q not found", attemptID)
		}
		return rec, nil
	}

	rec, err := st.RespondentRepo().Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("no attempts recorded yet; run 'selfmap run' first")
	}
	return rec, nil
}

func printNarratives(ctx context.Context, st *store.Store, rep report.Report, audience string) error {
	var audiences []narrative.Audience
	switch audience {
	case "teen":
		audiences = []narrative.Audience{narrative.AudienceTeen}
	case "parent":
		audiences = []narrative.Audience{narrative.AudienceParent}
	case "both":
		audiences = []narrative.Audience{narrative.AudienceTeen, narrative.AudienceParent}
	default:
		return fmt.Errorf("unknown narrative audience %q (use teen, parent, or both)", audience)
	}

	provider, ok, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "warning: no LLM provider configured; skipping narrative")
		return nil
	}

	svc := narrative.NewService(provider, narrative.DefaultConfig())
	for _, a := range audiences {
		n, err := svc.Generate(ctx, rep, a)
		if err != nil {
			return fmt.Errorf("generate %s narrative: %w", a, err)
		}
		printNarrative(n)
	}
	return nil
}

func printNarrative(n *narrative.Narrative) {
	fmt.Println()
	fmt.Printf("── %s narrative ", n.Audience)
	fmt.Println(strings.Repeat("─", 30))
	fmt.Println(n.Headline)
	fmt.Println()
	fmt.Println(n.Summary)
	if len(n.Highlights) > 0 {
		fmt.Println()
		for _, h := range n.Highlights {
			fmt.Printf("  • %s\n", h)
		}
	}
	if len(n.NextSteps) > 0 {
		fmt.Println()
		fmt.Println("Next steps:")
		for _, s := range n.NextSteps {
			fmt.Printf("  • %s\n", s)
		}
	}
}
