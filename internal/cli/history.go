package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/apihelper/internal/ports/primary"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently generated files",
		Long:  "Show the activity log of generated and skipped files, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			runID, _ := cmd.Flags().GetString("run")

			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			return c.HistoryAdapter(cmd.OutOrStdout()).List(cmd.Context(), primary.HistoryRequest{
				RunID: runID,
				Limit: limit,
			})
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum number of entries")
	cmd.Flags().String("run", "", "Only show entries of this run")

	return cmd
}
