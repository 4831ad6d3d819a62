package entity

import "github.com/shopspring/decimal"

// InvoiceItem línea de servicio de una factura.
// Identidad inmutable (ID); campos mutables desde el editor.
// Quantity y Rate son no negativos: la entrada inválida se normaliza a 0.
type InvoiceItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// Total costo de la línea: quantity * rate.
func (it InvoiceItem) Total() decimal.Decimal {
	return it.Quantity.Mul(it.Rate)
}
