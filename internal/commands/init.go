package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/config"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default bilanco.yaml in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(config.DefaultFileName); err == nil {
				return fmt.Errorf("%s already exists", config.DefaultFileName)
			}
			cfg := config.Default(name)
			if err := config.Save(config.DefaultFileName, cfg); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s yazıldı\n", config.DefaultFileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name to pre-fill")

	return cmd
}
