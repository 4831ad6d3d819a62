package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kelechidev/invoicer-api/pkg/money"
)

// TestFormat_AgrupacionDeMiles verifica los separadores de miles y los dos decimales.
func TestFormat_AgrupacionDeMiles(t *testing.T) {
	assert.Equal(t, "100,000.00", money.Format(decimal.NewFromInt(100_000)))
	assert.Equal(t, "1,234,567.89", money.Format(decimal.RequireFromString("1234567.89")))
	assert.Equal(t, "0.00", money.Format(decimal.Zero))
}

// TestFormat_NegativoSePreserva un balance sobrepagado se muestra en negativo, nunca se recorta a cero.
func TestFormat_NegativoSePreserva(t *testing.T) {
	assert.Equal(t, "-40,000.00", money.Format(decimal.NewFromInt(-40_000)))
}

func TestFormatNaira(t *testing.T) {
	assert.Equal(t, "₦60,000.00", money.FormatNaira(decimal.NewFromInt(60_000)))
}
