package money_test

import (
	"testing"

	"rainerio-service/internal/pkg/money"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain integer", "125000", 125000},
		{"grouped with symbol", "R$ 125.000,00", 125000},
		{"decimal comma", "1.234,56", 1234.56},
		{"no grouping", "980,90", 980.90},
		{"zero", "0", 0},
		{"empty", "", 0},
		{"garbage", "sob consulta", 0},
		{"stray text around digits", "preço 45.000 reais", 45000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, money.ParseCurrency(tt.input), 0.001)
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 0,00", money.FormatCurrency(0))
	assert.Equal(t, "R$ 980,90", money.FormatCurrency(980.90))
	assert.Equal(t, "R$ 125.000,00", money.FormatCurrency(125000))
	assert.Equal(t, "R$ 1.234.567,89", money.FormatCurrency(1234567.89))
}

func TestParseMileage(t *testing.T) {
	assert.Equal(t, 0, money.ParseMileage(""))
	assert.Equal(t, 0, money.ParseMileage("0km"))
	assert.Equal(t, 34500, money.ParseMileage("34.500 KM"))
	assert.Equal(t, 12000, money.ParseMileage("aprox. 12000"))
}

func TestFormatMileage(t *testing.T) {
	assert.Equal(t, "0 KM", money.FormatMileage(0))
	assert.Equal(t, "850 KM", money.FormatMileage(850))
	assert.Equal(t, "34.500 KM", money.FormatMileage(34500))
	assert.Equal(t, "1.234.567 KM", money.FormatMileage(1234567))
}

// Parsing a formatted amount must give the amount back, for any value
// representable at 2-decimal precision.
func TestCurrencyRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 0.01, 980.90, 1234.56, 125000, 9999999.99} {
		formatted := money.FormatCurrency(x)
		assert.InDelta(t, x, money.ParseCurrency(formatted), 0.001, "round-trip of %s", formatted)
	}
}

func TestMileageRoundTrip(t *testing.T) {
	for _, x := range []int{0, 7, 850, 34500, 1234567} {
		assert.Equal(t, x, money.ParseMileage(money.FormatMileage(x)))
	}
}

// Formatting is idempotent over already-canonical strings.
func TestReformatIsIdempotent(t *testing.T) {
	price := money.FormatCurrency(67890.50)
	assert.Equal(t, price, money.FormatCurrency(money.ParseCurrency(price)))

	km := money.FormatMileage(67890)
	assert.Equal(t, km, money.FormatMileage(money.ParseMileage(km)))
}
