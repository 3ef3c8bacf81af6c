package xlsx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/schollz/closestmatch"
	"github.com/xuri/excelize/v2"

	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/schema"
)

// Options controls reconciliation behavior. Fuzzy matching is off by
// default: unmatched labels are skipped rather than guessed.
type Options struct {
	FuzzyMatching bool
	Cutoff        float64
}

// DefaultCutoff is the similarity threshold used when fuzzy matching is
// enabled without an explicit cutoff.
const DefaultCutoff = 0.82

// headerScanRows is how many leading rows are searched for a header row in
// the detailed format.
const headerScanRows = 10

// Fallback column positions (0-based) when no header row is found.
const (
	fallbackLabelCol = 2
	fallbackKeyCol   = 3
	fallbackValCol   = 4
)

// UnmatchedRow describes a spreadsheet row whose label could not be
// resolved to a schema key. Skipped rows never fail the import; this report
// exists for diagnostics only.
type UnmatchedRow struct {
	Row   int // 1-based row number in the sheet
	Label string
}

// Result is the outcome of reconciling one workbook.
type Result struct {
	Entries   model.Entries
	Unmatched []UnmatchedRow
}

// Reconciler maps loosely structured spreadsheet rows back onto canonical
// schema keys using normalized labels, group scoping, and an alias table.
type Reconciler struct {
	opts            Options
	labelToKey      map[string]string
	groupLabelToKey map[string]map[string]string
	groupNames      map[string]bool
	aliasToKey      map[string]string
	labels          []string
	cm              *closestmatch.ClosestMatch
}

// aliases maps alternate spellings seen in externally produced files to
// canonical keys. Accent differences are already covered by Normalize; these
// are genuinely different wordings (legacy chart labels, shorthand).
var aliases = map[string]string{
	"Diğer Çeşitli Borçlar":         "digerBorclar",
	"Diğer Alacaklar":               "digerAlacaklar",
	"Ticari Alacaklar":              "ticariAlacaklar",
	"Banka Kredileri (Uzun Vadeli)": "uzunVadeBankKredileri",
	"Tahviller":                     "tahviller",
	"Birikmiş Amortisman":           "birikmiAmort",
	"Ödenecek Vergiler":             "odenecekVergiler",
	"Geçmiş Yıllar Karları":         "gecmisYilKarlari",
	"Dönem Karı":                    "donemNetKari",
	"Makine ve Cihazlar":            "tesisatMakineler",
}

// NewReconciler builds the lookup tables from the schema registry.
func NewReconciler(opts Options) *Reconciler {
	if opts.Cutoff == 0 {
		opts.Cutoff = DefaultCutoff
	}
	r := &Reconciler{
		opts:            opts,
		labelToKey:      make(map[string]string),
		groupLabelToKey: make(map[string]map[string]string),
		groupNames:      make(map[string]bool),
		aliasToKey:      make(map[string]string, len(aliases)),
	}

	for _, sec := range schema.Sections() {
		for _, g := range sec.Groups {
			groupNorm := Normalize(g.Name)
			r.groupNames[groupNorm] = true
			scoped := r.groupLabelToKey[groupNorm]
			if scoped == nil {
				scoped = make(map[string]string)
				r.groupLabelToKey[groupNorm] = scoped
			}
			for _, item := range g.Items {
				if schema.IsSubtotalKey(item.Key) {
					continue
				}
				labelNorm := Normalize(item.Label)
				if _, seen := r.labelToKey[labelNorm]; !seen {
					r.labels = append(r.labels, labelNorm)
				}
				r.labelToKey[labelNorm] = item.Key
				scoped[labelNorm] = item.Key
			}
		}
	}

	for alias, key := range aliases {
		r.aliasToKey[Normalize(alias)] = key
	}

	if opts.FuzzyMatching {
		r.cm = closestmatch.New(r.labels, []int{2, 3, 4})
	}
	return r
}

// ReadFile reconciles the workbook at path.
func (r *Reconciler) ReadFile(path string) (Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return r.Read(f)
}

// Read reconciles an open workbook into the flat entry mapping. Rows with
// no resolvable key are skipped and reported in Result.Unmatched.
func (r *Reconciler) Read(f *excelize.File) (Result, error) {
	result := Result{Entries: model.Entries{}}

	r.readMeta(f, result.Entries)

	mainSheet := ""
	for _, name := range f.GetSheetList() {
		if name != SheetMeta {
			mainSheet = name
			break
		}
	}
	if mainSheet == "" {
		return result, nil
	}

	rows, err := f.GetRows(mainSheet)
	if err != nil {
		return Result{}, fmt.Errorf("reading sheet %s: %w", mainSheet, err)
	}

	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	if maxCols <= 2 {
		r.readSimple(rows, &result)
	} else {
		r.readDetailed(rows, &result)
	}
	return result, nil
}

func (r *Reconciler) readMeta(f *excelize.File, entries model.Entries) {
	idx, err := f.GetSheetIndex(SheetMeta)
	if err != nil || idx < 0 {
		return
	}
	name, _ := f.GetCellValue(SheetMeta, "B1")
	date, _ := f.GetCellValue(SheetMeta, "B2")
	entries[model.KeyEntityName] = model.Text(name)
	entries[model.KeyStatementDate] = model.Text(date)
}

// readSimple handles the two-column (label, amount) layout.
func (r *Reconciler) readSimple(rows [][]string, result *Result) {
	currentGroup := ""
	for i, row := range rows[min(1, len(rows)):] {
		rowNum := i + 2
		label := cellAt(row, 0)
		if label == "" {
			continue
		}
		val := cellAt(row, 1)

		labelNorm := Normalize(label)
		if r.groupNames[labelNorm] && val == "" {
			currentGroup = labelNorm
			continue
		}

		key := r.resolve(labelNorm, currentGroup)
		if key == "" {
			result.Unmatched = append(result.Unmatched, UnmatchedRow{Row: rowNum, Label: label})
			continue
		}
		result.Entries[key] = model.Amount(coerceAmount(val))
	}
}

// readDetailed handles the multi-column layout, locating the key and amount
// columns from a header row when one exists.
func (r *Reconciler) readDetailed(rows [][]string, result *Result) {
	headerRow := 0
	labelCol, keyCol, valCol := fallbackLabelCol, fallbackKeyCol, fallbackValCol

	limit := min(headerScanRows, len(rows))
	for i := 0; i < limit; i++ {
		lower := make([]string, len(rows[i]))
		empty := true
		for j, c := range rows[i] {
			lower[j] = strings.ToLower(strings.TrimSpace(c))
			if lower[j] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		ki, vi := indexOf(lower, "anahtar"), indexOf(lower, "tutar")
		if ki >= 0 && vi >= 0 {
			headerRow = i
			keyCol, valCol = ki, vi
			if li := indexOf(lower, "etiket"); li >= 0 {
				labelCol = li
			}
			break
		}
	}

	currentGroup := ""
	for i, row := range rows[min(headerRow+1, len(rows)):] {
		rowNum := headerRow + i + 2
		key := cellAt(row, keyCol)
		val := cellAt(row, valCol)
		label := cellAt(row, labelCol)

		if label != "" {
			labelNorm := Normalize(label)
			if r.groupNames[labelNorm] && val == "" && key == "" {
				currentGroup = labelNorm
				continue
			}
		}

		if key == "" && (label == "" || val == "") {
			label, val = pickLabelValue(row)
		}
		if key == "" && label != "" {
			key = r.resolve(Normalize(label), currentGroup)
		}
		if key == "" {
			if label != "" || val != "" {
				result.Unmatched = append(result.Unmatched, UnmatchedRow{Row: rowNum, Label: label})
			}
			continue
		}
		result.Entries[key] = model.Amount(coerceAmount(val))
	}
}

// resolve maps a normalized label to a key: group-scoped lookup first to
// disambiguate labels reused across groups, then the global table, then the
// alias table, then optional fuzzy matching.
func (r *Reconciler) resolve(labelNorm, currentGroup string) string {
	if currentGroup != "" {
		if key, ok := r.groupLabelToKey[currentGroup][labelNorm]; ok {
			return key
		}
	}
	if key, ok := r.labelToKey[labelNorm]; ok {
		return key
	}
	if key, ok := r.aliasToKey[labelNorm]; ok {
		return key
	}
	if r.cm != nil {
		if candidate := r.cm.Closest(labelNorm); candidate != "" {
			if similarity(labelNorm, candidate) >= r.opts.Cutoff {
				return r.labelToKey[candidate]
			}
		}
	}
	return ""
}

// pickLabelValue infers label and amount cells from an arbitrary row: the
// last numeric-looking cell is the amount, the first non-numeric cell the
// label.
func pickLabelValue(row []string) (label, val string) {
	for i := len(row) - 1; i >= 0; i-- {
		c := strings.TrimSpace(row[i])
		if c == "" {
			continue
		}
		if _, err := strconv.ParseFloat(c, 64); err == nil {
			val = c
			break
		}
	}
	for _, c := range row {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, err := strconv.ParseFloat(c, 64); err != nil {
			label = c
			break
		}
	}
	return label, val
}

// coerceAmount parses an amount cell; empty or unparseable becomes 0.
func coerceAmount(val string) float64 {
	if val == "" {
		return 0
	}
	return model.ParseAmountOrZero(val)
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func indexOf(cells []string, want string) int {
	for i, c := range cells {
		if c == want {
			return i
		}
	}
	return -1
}

// similarity is a difflib-style ratio: twice the longest common subsequence
// over the combined length.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra)+len(rb) == 0 {
		return 0
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}
	lcs := prev[len(rb)]
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}
