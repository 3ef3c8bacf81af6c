package balance

import (
	"time"

	"github.com/bilanco-dev/bilanco/internal/format"
	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/schema"
)

// Validation status labels. "uyarilarla" covers any non-empty findings list
// regardless of severity; callers must inspect the findings themselves to
// decide whether persistence is blocked.
const (
	StatusSuccess      = "basarili"
	StatusWithWarnings = "uyarilarla"
)

// GroupBreakdown holds one group's line items plus its "toplam" entry.
type GroupBreakdown map[string]float64

// EntityInfo identifies the business and the statement date.
type EntityInfo struct {
	Name string `json:"ad"`
	Date string `json:"tarih"`
}

// Assets is the aktif side of the document.
type Assets struct {
	Current GroupBreakdown `json:"donenVarliklar"`
	Fixed   GroupBreakdown `json:"duranVarliklar"`
	Total   float64        `json:"toplam"`
}

// Liabilities is the pasif side of the document.
type Liabilities struct {
	ShortTerm GroupBreakdown `json:"kisaVadeliYabanciKaynaklar"`
	LongTerm  GroupBreakdown `json:"uzunVadeliYabanciKaynaklar"`
	Equity    GroupBreakdown `json:"ozKaynaklar"`
	Total     float64        `json:"toplam"`
}

// Ratios holds the computed ratios as fixed two-decimal strings so the
// serialized form is stable.
type Ratios struct {
	Liquidity string `json:"likiditeOrani"`
	Equity    string `json:"ozkaynaklarOrani"`
	Debt      string `json:"borcOrani"`
}

// Validation is the embedded validation outcome.
type Validation struct {
	Status   string          `json:"durumu"`
	Findings []model.Finding `json:"hatalar"`
}

// Document is the persisted balance sheet. It is built once per save and
// immutable afterwards, except for the storage-assigned identifier.
type Document struct {
	ID          *int64      `json:"_id"`
	EntityInfo  EntityInfo  `json:"isletmeBilgileri"`
	Assets      Assets      `json:"aktif"`
	Liabilities Liabilities `json:"pasif"`
	Ratios      Ratios      `json:"rasyolar"`
	RecordedAt  string      `json:"kayitTarihi"`
	Validation  Validation  `json:"dogrulama"`
}

// BuildDocument assembles the document from the flat entries and the
// findings of a validation run. RecordedAt is the wall clock at build time.
func BuildDocument(entries model.Entries, findings []model.Finding) *Document {
	donen := SumCurrentAssets(entries)
	duran := SumFixedAssets(entries)
	aktif := donen + duran
	kv := SumShortTermLiabilities(entries)
	uv := SumLongTermLiabilities(entries)
	oz := SumEquity(entries)
	pasif := kv + uv + oz

	equityRatio, debtRatio := 0.0, 0.0
	if aktif != 0 {
		equityRatio = oz / aktif * 100
		debtRatio = (kv + uv) / aktif * 100
	}

	status := StatusSuccess
	if len(findings) > 0 {
		status = StatusWithWarnings
	}
	if findings == nil {
		findings = []model.Finding{}
	}

	fixedKeys := append(append([]string{}, schema.FixedAssetKeys()...), schema.KeyAccumulatedDepreciation)

	return &Document{
		EntityInfo: EntityInfo{
			Name: entries.TextOrEmpty(model.KeyEntityName),
			Date: entries.TextOrEmpty(model.KeyStatementDate),
		},
		Assets: Assets{
			Current: breakdown(entries, schema.CurrentAssetKeys(), donen),
			Fixed:   breakdown(entries, fixedKeys, duran),
			Total:   aktif,
		},
		Liabilities: Liabilities{
			ShortTerm: breakdown(entries, schema.ShortTermLiabilityKeys(), kv),
			LongTerm:  breakdown(entries, schema.LongTermLiabilityKeys(), uv),
			Equity:    breakdown(entries, schema.EquityKeys(), oz),
			Total:     pasif,
		},
		Ratios: Ratios{
			Liquidity: format.Ratio(LiquidityRatio(entries)),
			Equity:    format.Ratio(equityRatio),
			Debt:      format.Ratio(debtRatio),
		},
		RecordedAt: time.Now().Format(time.RFC3339),
		Validation: Validation{Status: status, Findings: findings},
	}
}

func breakdown(entries model.Entries, keys []string, total float64) GroupBreakdown {
	b := make(GroupBreakdown, len(keys)+1)
	for _, key := range keys {
		b[key] = entries.AmountOrZero(key)
	}
	b["toplam"] = total
	return b
}

// EntriesFromDocument projects a persisted document back onto the flat
// entry mapping so a saved sheet can be reloaded for editing. Unknown keys
// and the embedded "toplam" values are ignored.
func EntriesFromDocument(doc *Document) model.Entries {
	known := make(map[string]bool)
	for _, key := range schema.AllNumericKeys() {
		known[key] = true
	}

	entries := model.Entries{
		model.KeyEntityName:    model.Text(doc.EntityInfo.Name),
		model.KeyStatementDate: model.Text(doc.EntityInfo.Date),
	}
	groups := []GroupBreakdown{
		doc.Assets.Current, doc.Assets.Fixed,
		doc.Liabilities.ShortTerm, doc.Liabilities.LongTerm, doc.Liabilities.Equity,
	}
	for _, g := range groups {
		for key, v := range g {
			if known[key] {
				entries[key] = model.Amount(v)
			}
		}
	}
	return entries
}
