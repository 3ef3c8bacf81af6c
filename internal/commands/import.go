package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/balance"
	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/store"
	"github.com/bilanco-dev/bilanco/internal/xlsx"
)

func newImportCommand() *cobra.Command {
	var outPath string
	var saveDB bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "import <in.xlsx>",
		Short: "Reconcile a spreadsheet back onto the schema and save it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			result, err := xlsx.NewReconciler(reconcilerOptions(cfg)).ReadFile(args[0])
			if err != nil {
				return err
			}
			reportUnmatched(result.Unmatched)
			slog.Info("excel yüklendi", "dosya", args[0], "alan", len(result.Entries))

			findings := balance.Validate(result.Entries)
			printFindings(cmd.OutOrStdout(), findings)
			if model.HasCritical(findings) {
				return errCritical
			}

			doc := balance.BuildDocument(result.Entries, findings)

			if outPath == "" {
				outPath = fmt.Sprintf("bilanco_tablolari_%d.json", time.Now().Unix())
			}
			if err := store.SaveJSON(outPath, doc); err != nil {
				return err
			}
			slog.Info("bilanço kaydedildi", "dosya", outPath)

			if saveDB {
				st, err := openStore(cfg)
				if err != nil {
					return err
				}
				defer st.Close()
				docID, err := st.Save(cmd.Context(), doc)
				if err != nil {
					return err
				}
				slog.Info("veritabanına kaydedildi", "id", docID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "output JSON path")
	cmd.Flags().BoolVar(&saveDB, "db", false, "also save to the document store")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")

	return cmd
}
