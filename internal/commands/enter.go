package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/balance"
	"github.com/bilanco-dev/bilanco/internal/format"
	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/schema"
	"github.com/bilanco-dev/bilanco/internal/store"
)

func newEnterCommand() *cobra.Command {
	var outPath string
	var saveDB bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "enter",
		Short: "Enter a balance sheet interactively, validate, and save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runEnter(cmd, outPath, saveDB, cfg.Business.Name, cfg.Database.Path)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "output JSON path (default bilanco_tablolari_<timestamp>.json)")
	cmd.Flags().BoolVar(&saveDB, "db", false, "also save to the document store")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")

	return cmd
}

func runEnter(cmd *cobra.Command, outPath string, saveDB bool, defaultName, dbPath string) error {
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, "BİLANÇO TABLOSU")
	fmt.Fprintln(out, "\nBilgi girişine başlayalım. Boş bırakılan alanlar varsayılan 0 kabul edilir.")

	entries := collectEntries(in, out, defaultName)

	fmt.Fprintln(out, "\nHesaplama ve doğrulama yapılıyor...")
	findings := balance.Validate(entries)
	printFindings(out, findings)

	if model.HasCritical(findings) {
		fmt.Fprintln(out, "\nKritik hatalar var! Lütfen düzeltip tekrar deneyin.")
		return errCritical
	}

	doc := balance.BuildDocument(entries, findings)

	if outPath == "" {
		outPath = fmt.Sprintf("bilanco_tablolari_%d.json", time.Now().Unix())
	}
	if err := store.SaveJSON(outPath, doc); err != nil {
		return err
	}
	slog.Info("bilanço kaydedildi", "dosya", outPath)

	if saveDB {
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()
		docID, err := st.Save(cmd.Context(), doc)
		if err != nil {
			return err
		}
		slog.Info("veritabanına kaydedildi", "id", docID, "veritabani", dbPath)
	}

	aktif := doc.Assets.Total
	pasif := doc.Liabilities.Total
	fmt.Fprintf(out, "\nAktif Toplamı: %s TL\n", format.TL(aktif))
	fmt.Fprintf(out, "Pasif Toplamı: %s TL\n", format.TL(pasif))
	return nil
}

// collectEntries prompts for the entity fields and every line item in
// schema order.
func collectEntries(in *bufio.Reader, out io.Writer, defaultName string) model.Entries {
	today := time.Now().Format("2006-01-02")
	entries := model.Entries{
		model.KeyEntityName:    model.Text(promptText(in, out, "İşletme Adı / Ünvanı", defaultName)),
		model.KeyStatementDate: model.Text(promptText(in, out, "Bilanço Tarihi (YYYY-MM-DD)", today)),
	}

	for _, sec := range schema.Sections() {
		for _, g := range sec.Groups {
			fmt.Fprintf(out, "\n%s\n", g.Name)
			for _, item := range g.Items {
				if schema.IsSubtotalKey(item.Key) {
					continue
				}
				label := fmt.Sprintf("%s - %s", item.Code, item.Label)
				entries[item.Key] = model.Amount(promptAmount(in, out, label))
			}
		}
	}
	return entries
}

func promptText(in *bufio.Reader, out io.Writer, prompt, def string) string {
	fmt.Fprintf(out, "%s [%s]: ", prompt, def)
	raw, _ := in.ReadString('\n')
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	return raw
}

func promptAmount(in *bufio.Reader, out io.Writer, prompt string) float64 {
	fmt.Fprintf(out, "%s [0]: ", prompt)
	raw, _ := in.ReadString('\n')
	if strings.TrimSpace(raw) == "" {
		return 0
	}
	return model.ParseAmountOrZero(raw)
}
