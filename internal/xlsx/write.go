package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/schema"
)

// Sheet names in the written workbook.
const (
	SheetMain = "Bilanço"
	SheetMeta = "Bilgi"
)

// header is the first row of the main sheet.
var header = []any{"Taraf", "Grup", "Etiket", "Anahtar", "Tutar"}

// Row is one exported line item.
type Row struct {
	Side   schema.Side
	Group  string
	Label  string
	Key    string
	Amount float64
}

// Rows flattens the entries into export rows in schema order, skipping
// subtotal markers.
func Rows(entries model.Entries) []Row {
	var rows []Row
	for _, sec := range schema.Sections() {
		for _, g := range sec.Groups {
			for _, item := range g.Items {
				if schema.IsSubtotalKey(item.Key) {
					continue
				}
				rows = append(rows, Row{
					Side:   sec.Side,
					Group:  g.Name,
					Label:  item.Label,
					Key:    item.Key,
					Amount: entries.AmountOrZero(item.Key),
				})
			}
		}
	}
	return rows
}

// Write builds a workbook: the main sheet with one row per line item and a
// meta sheet holding entity name and statement date.
func Write(entries model.Entries) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetMain); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetMain, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for i, row := range Rows(entries) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		values := []any{string(row.Side), row.Group, row.Label, row.Key, row.Amount}
		if err := f.SetSheetRow(SheetMain, cell, &values); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if _, err := f.NewSheet(SheetMeta); err != nil {
		return nil, fmt.Errorf("creating meta sheet: %w", err)
	}
	meta := map[string]any{
		"A1": "İşletme Adı",
		"B1": entries.TextOrEmpty(model.KeyEntityName),
		"A2": "Bilanço Tarihi",
		"B2": entries.TextOrEmpty(model.KeyStatementDate),
	}
	for cell, v := range meta {
		if err := f.SetCellValue(SheetMeta, cell, v); err != nil {
			return nil, fmt.Errorf("writing meta cell %s: %w", cell, err)
		}
	}
	return f, nil
}

// WriteFile writes the workbook to path.
func WriteFile(path string, entries model.Entries) error {
	f, err := Write(entries)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
