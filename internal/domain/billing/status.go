package billing

import (
	"github.com/shopspring/decimal"

	"github.com/kelechidev/invoicer-api/internal/domain/entity"
)

// DeriveStatus deriva el estado financiero a partir de los totales actuales.
//
// Reglas:
//   - paid > 0 y paid >= billed y billed > 0  -> paid
//   - paid > 0                                 -> partially_paid
//   - en otro caso                             -> pending
//
// Una factura sin ítems y sin pagos (billed == 0, paid == 0) deriva a pending:
// exigir paid > 0 evita que la comparación paid >= billed marque como pagada
// una factura vacía. StatusDraft nunca se deriva aquí; es solo el valor inicial.
func DeriveStatus(billed, paid decimal.Decimal) string {
	switch {
	case paid.GreaterThan(decimal.Zero) && billed.GreaterThan(decimal.Zero) && paid.GreaterThanOrEqual(billed):
		return entity.StatusPaid
	case paid.GreaterThan(decimal.Zero):
		return entity.StatusPartiallyPaid
	default:
		return entity.StatusPending
	}
}
