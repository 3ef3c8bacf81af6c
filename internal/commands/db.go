package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/balance"
	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/store"
)

func newDBCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "db",
		Short: "Work with the document store",
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")

	cmd.AddCommand(newDBSaveCommand(&configPath))
	cmd.AddCommand(newDBShowCommand(&configPath))
	cmd.AddCommand(newDBListCommand(&configPath))

	return cmd
}

func newDBSaveCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "save <in.json>",
		Short: "Save a balance-sheet document to the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := store.LoadJSON(args[0])
			if err != nil {
				return err
			}

			// Re-validate before persisting: kritik findings block the
			// store the same way they block every other adapter.
			findings := balance.Validate(balance.EntriesFromDocument(doc))
			if model.HasCritical(findings) {
				printFindings(cmd.OutOrStdout(), findings)
				return errCritical
			}

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			docID, err := st.Save(cmd.Context(), doc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Belge ID: %d\n", docID)
			return nil
		},
	}
}

func newDBShowCommand(configPath *string) *cobra.Command {
	var docID int64

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a stored document (latest by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			var doc *balance.Document
			if docID > 0 {
				doc, err = st.Get(cmd.Context(), docID)
			} else {
				doc, err = st.Latest(cmd.Context())
			}
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling document: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().Int64Var(&docID, "id", 0, "document identifier (0 = latest)")

	return cmd
}

func newDBListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored documents, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			summaries, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Kayıtlı bilanço yok.")
				return nil
			}
			for _, s := range summaries {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", s.ID, s.RecordedAt, s.EntityName)
			}
			return nil
		},
	}
}
