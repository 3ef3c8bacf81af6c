package balance

import (
	"fmt"
	"strings"

	"github.com/bilanco-dev/bilanco/internal/format"
	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/schema"
)

// balanceTolerance is the largest aktif/pasif difference treated as equal.
const balanceTolerance = 0.01

// Validate runs the fixed battery of consistency checks and returns the
// findings in check order. It only classifies; refusing to persist while a
// kritik finding exists is the calling adapter's responsibility.
func Validate(entries model.Entries) []model.Finding {
	var findings []model.Finding

	aktif := SumCurrentAssets(entries) + SumFixedAssets(entries)
	pasif := SumShortTermLiabilities(entries) + SumLongTermLiabilities(entries) + SumEquity(entries)

	// 1. Balance equality within tolerance. A sheet with zero assets and
	// nothing positive on the pasif side is reported by the empty-sheet
	// check instead, not as a mismatch.
	diff := aktif - pasif
	if (aktif != 0 || pasif > 0) && (diff > balanceTolerance || diff < -balanceTolerance) {
		findings = append(findings, model.Finding{
			Severity: model.SeverityCritical,
			Message: fmt.Sprintf("Bilanço dengesizliği: Aktif (%s TL) != Pasif (%s TL). Fark: %s TL",
				format.TL(aktif), format.TL(pasif), format.TL(diff)),
		})
	}

	// 2. Entity name present.
	if strings.TrimSpace(entries.TextOrEmpty(model.KeyEntityName)) == "" {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  "İşletme adı boş bırakılmamalıdır.",
		})
	}

	// 3. Negative line items, in schema order. Accumulated depreciation is
	// exempt: it is the one contra account.
	for _, key := range schema.AllNumericKeys() {
		if key == schema.KeyAccumulatedDepreciation {
			continue
		}
		if v := entries.AmountOrZero(key); v < 0 {
			findings = append(findings, model.Finding{
				Severity: model.SeverityWarning,
				Message:  fmt.Sprintf("%s negatif değer içeriyor: %s", key, format.TL(v)),
			})
		}
	}

	// 4. Liquidity ratio. The warning names short-term debt as the cause, so
	// it only fires when there is any. The ratio itself stays defined for a
	// zero short-term total by dividing by 1.
	liquidity := LiquidityRatio(entries)
	if SumShortTermLiabilities(entries) != 0 && liquidity < 1.0 {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message: fmt.Sprintf("Likidite oranı düşük (%s). Kısa vadeli borçlar dönen varlıklardan fazla.",
				format.Ratio(liquidity)),
		})
	}

	// 5. Negative equity.
	if SumEquity(entries) < 0 {
		findings = append(findings, model.Finding{
			Severity: model.SeverityCritical,
			Message:  "Öz kaynaklar negatif! İşletme mali sıkıntı içinde olabilir.",
		})
	}

	// 6. Empty sheet.
	if aktif == 0 {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  "Hiçbir varlık girilmemiş. Bilanço boş görünüyor.",
		})
	}

	return findings
}

// LiquidityRatio is current assets over short-term liabilities, with the
// divisor defaulting to 1 when the short-term total is zero.
func LiquidityRatio(entries model.Entries) float64 {
	kv := SumShortTermLiabilities(entries)
	if kv == 0 {
		kv = 1
	}
	return SumCurrentAssets(entries) / kv
}
