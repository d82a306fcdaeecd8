package cli

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"scopesync.dev/scopesync/internal/reconcile"
	"scopesync.dev/scopesync/internal/runtime"
)

// newSyncCmd creates the sync command
func newSyncCmd() *cobra.Command {
	var (
		backlogPath string
		deferLabel  string
		force       bool
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile open issues with the backlog",
		Long: `Reconcile the tracker's open issues with the backlog document.
Out-of-scope open issues are labeled and closed with a comment; backlog
entries without a matching open issue are created. Title matching is
exact and case-sensitive.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}

			if backlogPath != "" {
				ctx.Config.BacklogPath = backlogPath
			}
			if deferLabel != "" {
				ctx.Config.DeferLabel = deferLabel
			}

			_, err = reconcile.Action(ctx, reconcile.Options{
				DryRun:  dryRun,
				Force:   force,
				Confirm: confirmEmptySnapshot(),
			})
			return err
		},
	}

	cmd.Flags().StringVar(&backlogPath, "backlog", "", "Path to the backlog document (defaults to intentive_complete_backlog.json)")
	cmd.Flags().StringVar(&deferLabel, "label", "", "Label attached to issues being closed (defaults to post-v0.1)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Proceed with creation even if the open-issue listing failed")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the plan without mutating the tracker")

	return cmd
}

// confirmEmptySnapshot returns an interactive confirmation for
// proceeding after a failed listing, or nil when not on a terminal
func confirmEmptySnapshot() func() (bool, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return nil
	}

	return func() (bool, error) {
		var proceed bool
		prompt := &survey.Confirm{
			Message: "The open-issue listing failed. Create every desired issue against an empty snapshot anyway?",
			Default: false,
		}
		if err := survey.AskOne(prompt, &proceed); err != nil {
			return false, err
		}
		return proceed, nil
	}
}
