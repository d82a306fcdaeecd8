package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scopesync",
		Short: "Scopesync reconciles a repository's open issues with a committed backlog",
		Long: `Scopesync reconciles a repository's open issues with a committed backlog document.

Issues that are open but no longer in the backlog are labeled and closed;
backlog entries with no matching open issue are created.`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	}

	// Add subcommands
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newPlanCmd())

	return rootCmd
}
