// Package schema holds the static chart of the balance sheet: both sides,
// their groups, and every line item in display order. It is loaded once at
// process start and never mutated.
package schema

import "strings"

// Side identifies a balance-sheet side.
type Side string

const (
	SideAsset     Side = "AKTIF"
	SideLiability Side = "PASIF"
)

// Group names, in display order.
const (
	GroupCurrentAssets        = "Dönen Varlıklar"
	GroupFixedAssets          = "Duran Varlıklar"
	GroupShortTermLiabilities = "Kısa Vadeli Yabancı Kaynaklar"
	GroupLongTermLiabilities  = "Uzun Vadeli Yabancı Kaynaklar"
	GroupEquity               = "Öz Kaynaklar"
)

// KeyAccumulatedDepreciation is the contra-asset key. It is entered as a
// positive amount and subtracted from the fixed-asset total, and it is
// exempt from the negative-value check.
const KeyAccumulatedDepreciation = "birikmiAmort"

// subtotalSuffix marks keys that exist only to label a group's total row in
// spreadsheet layouts. They are never summed and never matched on import.
const subtotalSuffix = "_toplam"

// LineItem is one row of the chart.
type LineItem struct {
	Key   string // unique identifier, e.g. "kasa"
	Label string // display label, e.g. "Kasa"
	Code  string // TMS account code for console display, e.g. "100"
}

// Group is an ordered run of line items under one heading.
type Group struct {
	Name  string
	Items []LineItem
}

// Section is one side of the balance sheet.
type Section struct {
	Side   Side
	Groups []Group
}

var sections = []Section{
	{
		Side: SideAsset,
		Groups: []Group{
			{
				Name: GroupCurrentAssets,
				Items: []LineItem{
					{Key: "kasa", Label: "Kasa", Code: "100"},
					{Key: "bankalar", Label: "Bankalar", Code: "102"},
					{Key: "alicilar", Label: "Alıcılar", Code: "120"},
					{Key: "alacakSenetleri", Label: "Alacak Senetleri", Code: "121"},
					{Key: "verilenDepozito", Label: "Verilen Depozito ve Teminatlar", Code: "126"},
					{Key: "digerAlacaklar", Label: "Diğer Çeşitli Alacaklar", Code: "136"},
					{Key: "ticariMallar", Label: "Ticari Mallar", Code: "153"},
					{Key: "yariMamul", Label: "Yarı Mamuller", Code: "154"},
					{Key: "mamul", Label: "Mamuller", Code: "155"},
					{Key: "digerDonenVarliklar", Label: "Diğer Dönen Varlıklar", Code: "199"},
					{Key: "donenVarliklar_toplam", Label: "Toplam Dönen Varlıklar"},
				},
			},
			{
				Name: GroupFixedAssets,
				Items: []LineItem{
					{Key: "ticariAlacaklar", Label: "Ticari Alacaklar (Uzun Vadeli)", Code: "220"},
					{Key: "istirakler", Label: "İştirakler", Code: "242"},
					{Key: "bagliOrtakliklar", Label: "Bağlı Ortaklıklar", Code: "245"},
					{Key: "arazi", Label: "Arazi ve Arsalar", Code: "250"},
					{Key: "binalar", Label: "Binalar", Code: "252"},
					{Key: "tesisatMakineler", Label: "Tesis, Makine ve Cihazlar", Code: "253"},
					{Key: "tasitlar", Label: "Taşıtlar", Code: "254"},
					{Key: "demirbaslar", Label: "Demirbaşlar", Code: "255"},
					{Key: KeyAccumulatedDepreciation, Label: "Birikmiş Amortismanlar (-)", Code: "257"},
					{Key: "digerDuranVarliklar", Label: "Diğer Duran Varlıklar", Code: "299"},
					{Key: "duranVarliklar_toplam", Label: "Toplam Duran Varlıklar"},
				},
			},
		},
	},
	{
		Side: SideLiability,
		Groups: []Group{
			{
				Name: GroupShortTermLiabilities,
				Items: []LineItem{
					{Key: "bankKredileri", Label: "Banka Kredileri", Code: "300"},
					{Key: "saticilar", Label: "Satıcılar", Code: "320"},
					{Key: "borcSenetleri", Label: "Borç Senetleri", Code: "321"},
					{Key: "digerBorclar", Label: "Diğer Borçlar", Code: "336"},
					{Key: "odenecekVergiler", Label: "Ödenecek Vergi ve Fonlar", Code: "360"},
					{Key: "kisaVadeli_toplam", Label: "Toplam Kısa Vadeli Yabancı Kaynaklar"},
				},
			},
			{
				Name: GroupLongTermLiabilities,
				Items: []LineItem{
					// "Banka Kredileri" and "Diğer Borçlar" repeat the
					// short-term labels; imports must scope them by group.
					{Key: "uzunVadeBankKredileri", Label: "Banka Kredileri", Code: "400"},
					{Key: "tahviller", Label: "Çıkarılmış Tahviller", Code: "420"},
					{Key: "uzunVadeBorclar", Label: "Diğer Borçlar", Code: "436"},
					{Key: "uzunVadeli_toplam", Label: "Toplam Uzun Vadeli Yabancı Kaynaklar"},
				},
			},
			{
				Name: GroupEquity,
				Items: []LineItem{
					{Key: "odenmisSermaye", Label: "Ödenmiş Sermaye", Code: "500"},
					{Key: "sermayeYedekleri", Label: "Sermaye Yedekleri", Code: "520"},
					{Key: "karYedekleri", Label: "Kar Yedekleri", Code: "540"},
					{Key: "gecmisYilKarlari", Label: "Geçmiş Yıl Karları", Code: "570"},
					{Key: "donemNetKari", Label: "Dönem Net Karı", Code: "590"},
					{Key: "ozKaynaklar_toplam", Label: "Toplam Öz Kaynaklar"},
				},
			},
		},
	},
}

// Derived key lists, built once at init. Subtotal markers are excluded
// everywhere; the accumulated-depreciation key is additionally excluded
// from fixedAssetKeys because it is subtracted, not summed.
var (
	currentAssetKeys       []string
	fixedAssetKeys         []string
	shortTermLiabilityKeys []string
	longTermLiabilityKeys  []string
	equityKeys             []string
)

func init() {
	currentAssetKeys = groupKeys(GroupCurrentAssets)
	fixedAssetKeys = exclude(groupKeys(GroupFixedAssets), KeyAccumulatedDepreciation)
	shortTermLiabilityKeys = groupKeys(GroupShortTermLiabilities)
	longTermLiabilityKeys = groupKeys(GroupLongTermLiabilities)
	equityKeys = groupKeys(GroupEquity)
}

func groupKeys(name string) []string {
	for _, sec := range sections {
		for _, g := range sec.Groups {
			if g.Name != name {
				continue
			}
			var keys []string
			for _, item := range g.Items {
				if IsSubtotalKey(item.Key) {
					continue
				}
				keys = append(keys, item.Key)
			}
			return keys
		}
	}
	return nil
}

func exclude(keys []string, drop string) []string {
	var out []string
	for _, k := range keys {
		if k != drop {
			out = append(out, k)
		}
	}
	return out
}

// Sections returns both sides in display order.
func Sections() []Section {
	return sections
}

// IsSubtotalKey reports whether key is a subtotal marker.
func IsSubtotalKey(key string) bool {
	return strings.HasSuffix(key, subtotalSuffix)
}

// CurrentAssetKeys returns the current-asset constituent keys.
func CurrentAssetKeys() []string { return currentAssetKeys }

// FixedAssetKeys returns the fixed-asset constituent keys, excluding
// accumulated depreciation.
func FixedAssetKeys() []string { return fixedAssetKeys }

// ShortTermLiabilityKeys returns the short-term liability keys.
func ShortTermLiabilityKeys() []string { return shortTermLiabilityKeys }

// LongTermLiabilityKeys returns the long-term liability keys.
func LongTermLiabilityKeys() []string { return longTermLiabilityKeys }

// EquityKeys returns the equity keys.
func EquityKeys() []string { return equityKeys }

// AllNumericKeys returns every non-subtotal line-item key in display order,
// including accumulated depreciation.
func AllNumericKeys() []string {
	var keys []string
	for _, sec := range sections {
		for _, g := range sec.Groups {
			for _, item := range g.Items {
				if IsSubtotalKey(item.Key) {
					continue
				}
				keys = append(keys, item.Key)
			}
		}
	}
	return keys
}
