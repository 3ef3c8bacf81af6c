package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/balance"
	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/store"
	"github.com/bilanco-dev/bilanco/internal/xlsx"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <in.json> <out.xlsx>",
		Short: "Export a saved balance sheet as a spreadsheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := store.LoadJSON(args[0])
			if err != nil {
				return err
			}
			entries := balance.EntriesFromDocument(doc)

			findings := balance.Validate(entries)
			if model.HasCritical(findings) {
				printFindings(cmd.OutOrStdout(), findings)
				return errCritical
			}

			if err := xlsx.WriteFile(args[1], entries); err != nil {
				return err
			}
			slog.Info("excel kaydedildi", "dosya", args[1])
			return nil
		},
	}

	return cmd
}
