// Package money formatea montos para presentación con agrupación de miles.
// Los cálculos aritméticos viven en internal/domain/billing; aquí solo formato.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer aplica la agrupación de miles del locale en-NG: 1,234,567.89.
var printer = message.NewPrinter(language.English)

// Format devuelve el monto con separadores de miles y dos decimales: "1,234,567.89".
// El valor se almacena siempre a precisión completa; el redondeo es solo visual.
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}

// FormatNaira antepone el símbolo de la moneda: "₦1,234,567.89".
func FormatNaira(d decimal.Decimal) string {
	return "₦" + Format(d)
}
