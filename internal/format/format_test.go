package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTL(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0,00"},
		{5, "5,00"},
		{500, "500,00"},
		{1234.5, "1.234,50"},
		{12345.67, "12.345,67"},
		{1000000, "1.000.000,00"},
		{-500, "-500,00"},
		{-1234567.89, "-1.234.567,89"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TL(tt.in), "TL(%v)", tt.in)
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, "0.00", Ratio(0))
	assert.Equal(t, "0.50", Ratio(0.5))
	assert.Equal(t, "1000.00", Ratio(1000))
	assert.Equal(t, "62.50", Ratio(62.5))
}
