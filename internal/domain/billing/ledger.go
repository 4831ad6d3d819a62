package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kelechidev/invoicer-api/internal/domain/entity"
)

// SetDeposit fija o limpia el primer abono del ledger y devuelve el ledger resultante.
// El slice de entrada no se modifica.
//
// amount <= 0: se elimina el depósito solo si ocupa la posición 0. Un registro
// ordinario que ocupe la posición 0 jamás se elimina; la elegibilidad es
// estructural (IsDeposit), no posicional.
//
// amount > 0: si ya existe el depósito en la posición 0, se sobrescribe su
// monto conservando ID y Date (esto modela "editar" el abono, no agregar un
// segundo pago). Si no existe, se antepone un registro nuevo. Reaplicar el
// mismo monto es idempotente: mismo ID, misma fecha, mismo monto.
//
// El resto de los pagos pasa intacto y en orden. El resultado cumple siempre
// el invariante "a lo sumo un depósito, en la posición 0".
func SetDeposit(payments []entity.PaymentRecord, amount decimal.Decimal, now time.Time) []entity.PaymentRecord {
	hasDeposit := len(payments) > 0 && payments[0].IsDeposit()

	if !amount.GreaterThan(decimal.Zero) {
		if !hasDeposit {
			return append([]entity.PaymentRecord(nil), payments...)
		}
		return append([]entity.PaymentRecord(nil), payments[1:]...)
	}

	if hasDeposit {
		out := append([]entity.PaymentRecord(nil), payments...)
		out[0].Amount = amount
		out[0].Kind = entity.PaymentKindDeposit
		out[0].Note = entity.DepositNote
		return out
	}

	deposit := entity.PaymentRecord{
		ID:     uuid.New().String(),
		Kind:   entity.PaymentKindDeposit,
		Amount: amount,
		Date:   now.Format("2006-01-02"),
		Note:   entity.DepositNote,
	}
	out := make([]entity.PaymentRecord, 0, len(payments)+1)
	out = append(out, deposit)
	return append(out, payments...)
}
