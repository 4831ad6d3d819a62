package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kelechidev/invoicer-api/internal/domain/entity"
)

// ApplyDeposit aplica el monto del primer abono sobre el agregado: actualiza
// el ledger con SetDeposit y rederiva el estado en el mismo paso. Devuelve una
// copia; el agregado de entrada no se modifica.
//
// Cualquier mutación del ledger abandona draft de forma permanente, incluso si
// amount es 0 y el resultado neto es "sin pagos": el camino de mutación
// siempre recalcula en lugar de tratar "sin tocar" como caso especial.
func ApplyDeposit(inv *entity.Invoice, amount decimal.Decimal, now time.Time) *entity.Invoice {
	out := inv.Clone()
	out.Payments = SetDeposit(inv.Payments, amount, now)
	out.Status = DeriveStatus(BilledTotal(out.Items), PaidTotal(out.Payments))
	return out
}

// Recalculate rederiva el estado a partir de los totales actuales (ítems Y
// pagos) y devuelve una copia. Se invoca en cada guardado para que editar
// líneas no deje un estado persistido obsoleto.
//
// Excepción: una factura todavía en draft conserva draft; solo la primera
// mutación del ledger (ApplyDeposit) la saca de ese estado.
func Recalculate(inv *entity.Invoice) *entity.Invoice {
	out := inv.Clone()
	if out.Status == entity.StatusDraft {
		return out
	}
	out.Status = DeriveStatus(BilledTotal(out.Items), PaidTotal(out.Payments))
	return out
}

// Summary totales derivados que consume la capa de presentación.
// Siempre se computan en vivo desde items/payments, nunca se persisten.
type Summary struct {
	Subtotal      decimal.Decimal
	DepositAmount decimal.Decimal
	OtherPayments decimal.Decimal
	TotalPaid     decimal.Decimal
	Balance       decimal.Decimal
	Status        string
}

// Summarize computa el resumen financiero de la factura.
func Summarize(inv *entity.Invoice) Summary {
	subtotal := BilledTotal(inv.Items)
	paid := PaidTotal(inv.Payments)
	return Summary{
		Subtotal:      subtotal,
		DepositAmount: DepositAmount(inv.Payments),
		OtherPayments: OtherPaymentsTotal(inv.Payments),
		TotalPaid:     paid,
		Balance:       subtotal.Sub(paid),
		Status:        inv.Status,
	}
}
