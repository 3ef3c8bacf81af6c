package xlsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kasa", "kasa"},
		{"  Kasa  ", "kasa"},
		{"Öz Kaynaklar", "oz kaynaklar"},
		{"Dönen Varlıklar", "donen varliklar"},
		{"DİĞER BORÇLAR", "diger borclar"},
		{"Taşıtlar", "tasitlar"},
		{"Banka Kredileri (Uzun Vadeli)", "banka kredileri uzun vadeli"},
		{"Birikmiş Amortismanlar (-)", "birikmis amortismanlar"},
		{"Ödenecek   Vergi ve Fonlar", "odenecek vergi ve fonlar"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalize_AccentInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("Dönen Varlıklar"), Normalize("Donen Varliklar"))
	assert.Equal(t, Normalize("İştirakler"), Normalize("Istirakler"))
}
