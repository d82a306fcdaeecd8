package cli

import (
	"github.com/spf13/cobra"

	"scopesync.dev/scopesync/internal/reconcile"
	"scopesync.dev/scopesync/internal/runtime"
)

// newPlanCmd creates the plan command, a read-only view of what sync would do
func newPlanCmd() *cobra.Command {
	var backlogPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what sync would close and create, without mutating anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}

			if backlogPath != "" {
				ctx.Config.BacklogPath = backlogPath
			}

			_, err = reconcile.Action(ctx, reconcile.Options{DryRun: true})
			return err
		},
	}

	cmd.Flags().StringVar(&backlogPath, "backlog", "", "Path to the backlog document (defaults to intentive_complete_backlog.json)")

	return cmd
}
