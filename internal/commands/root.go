package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/buildinfo"
	"github.com/bilanco-dev/bilanco/internal/logging"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bilanco",
		Short:   "Balance-sheet entry, validation, and persistence",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup()
		},
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newEnterCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newDBCommand())

	return rootCmd
}
