package commands

import (
	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/balance"
	"github.com/bilanco-dev/bilanco/internal/model"
)

func newValidateCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate <file.json|file.xlsx>",
		Short: "Validate a saved balance sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			entries, err := entriesFromFile(args[0], cfg)
			if err != nil {
				return err
			}

			findings := balance.Validate(entries)
			printFindings(cmd.OutOrStdout(), findings)
			if model.HasCritical(findings) {
				return errCritical
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path")

	return cmd
}
