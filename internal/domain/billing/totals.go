// Package billing contiene el modelo financiero de la factura: aritmética de
// montos, ledger de pagos con el primer abono distinguido y el motor de
// derivación de estado. Todas las funciones son puras.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/kelechidev/invoicer-api/internal/domain/entity"
)

// BilledTotal suma los totales de línea (quantity * rate). Lista vacía -> 0.
func BilledTotal(items []entity.InvoiceItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Total())
	}
	return total
}

// PaidTotal suma los montos de todos los pagos registrados.
func PaidTotal(payments []entity.PaymentRecord) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Balance total facturado menos total pagado.
// Puede ser negativo si hay sobrepago; eso refleja un sobrepago real y se preserva.
func Balance(items []entity.InvoiceItem, payments []entity.PaymentRecord) decimal.Decimal {
	return BilledTotal(items).Sub(PaidTotal(payments))
}

// DepositAmount monto del primer abono, o cero si no hay depósito registrado.
func DepositAmount(payments []entity.PaymentRecord) decimal.Decimal {
	for _, p := range payments {
		if p.IsDeposit() {
			return p.Amount
		}
	}
	return decimal.Zero
}

// OtherPaymentsTotal suma de los pagos que no son el depósito.
func OtherPaymentsTotal(payments []entity.PaymentRecord) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if !p.IsDeposit() {
			total = total.Add(p.Amount)
		}
	}
	return total
}
