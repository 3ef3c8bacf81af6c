package commands

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bilanco-dev/bilanco/internal/balance"
	"github.com/bilanco-dev/bilanco/internal/config"
	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/store"
	"github.com/bilanco-dev/bilanco/internal/xlsx"
)

// errCritical is returned when kritik findings block persistence.
var errCritical = fmt.Errorf("kritik doğrulama hataları var")

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultFileName
	}
	return config.LoadOrDefault(path)
}

func reconcilerOptions(cfg *config.Config) xlsx.Options {
	return xlsx.Options{
		FuzzyMatching: cfg.Import.FuzzyMatching,
		Cutoff:        cfg.Import.Cutoff,
	}
}

// entriesFromFile loads the flat entry mapping from a saved JSON document
// or a spreadsheet.
func entriesFromFile(path string, cfg *config.Config) (model.Entries, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		doc, err := store.LoadJSON(path)
		if err != nil {
			return nil, err
		}
		return balance.EntriesFromDocument(doc), nil
	case ".xlsx":
		result, err := xlsx.NewReconciler(reconcilerOptions(cfg)).ReadFile(path)
		if err != nil {
			return nil, err
		}
		reportUnmatched(result.Unmatched)
		return result.Entries, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
}

func reportUnmatched(unmatched []xlsx.UnmatchedRow) {
	if len(unmatched) == 0 {
		return
	}
	slog.Warn("eşleşmeyen satırlar atlandı", "adet", len(unmatched))
	for _, u := range unmatched {
		slog.Debug("eşleşmeyen satır", "satir", u.Row, "etiket", u.Label)
	}
}

// severityWords holds the Turkish spellings behind the ASCII severity
// tokens; the display form is their Turkish uppercase (KRİTİK, UYARI).
var severityWords = map[model.Severity]string{
	model.SeverityCritical: "kritik",
	model.SeverityWarning:  "uyarı",
}

var upperTurkish = cases.Upper(language.Turkish)

func severityLabel(s model.Severity) string {
	word, ok := severityWords[s]
	if !ok {
		word = string(s)
	}
	return upperTurkish.String(word)
}

// printFindings writes every finding, severity first, in check order.
func printFindings(w io.Writer, findings []model.Finding) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "- Doğrulama başarılı, hata bulunamadı.")
		return
	}
	fmt.Fprintln(w, "Doğrulama Sonuçları:")
	for _, f := range findings {
		fmt.Fprintf(w, "- %s: %s\n", severityLabel(f.Severity), f.Message)
	}
}

func openStore(cfg *config.Config) (*store.SQLiteStore, error) {
	return store.Open(cfg.Database.Path)
}
