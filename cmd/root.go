package cmd

import (
	"fmt"

	"github.com/ritika/selfmap/internal/bank"
	"github.com/ritika/selfmap/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "selfmap",
	Short: "Self-discovery assessment for teens",
	Long:  "SelfMap is a terminal assessment that maps a teenager's interests, strengths, skills, and comfort across four domains.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A malformed instrument definition is a build defect; refuse
		// to run anything against it.
		if err := bank.Validate(); err != nil {
			return fmt.Errorf("question bank: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssessment(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SELFMAP_DB env var)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SELFMAP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
