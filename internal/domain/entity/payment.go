package entity

import "github.com/shopspring/decimal"

// Tipos de registro de pago. La identidad del depósito es estructural (Kind),
// no por comparación de strings; Note queda como texto de presentación.
const (
	PaymentKindDeposit = "deposit"
	PaymentKindOther   = "payment"
)

// DepositNote texto con el que las versiones anteriores marcaban el depósito.
// Se conserva para poder leer colecciones persistidas sin el campo Kind.
const DepositNote = "First Deposit"

// PaymentRecord un pago registrado contra una factura.
type PaymentRecord struct {
	ID     string          `json:"id"`
	Kind   string          `json:"kind,omitempty"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"` // YYYY-MM-DD
	Note   string          `json:"note,omitempty"`
}

// IsDeposit indica si el registro es el primer abono distinguido.
// Kind manda; si viene vacío (payload antiguo) se reconoce por el centinela Note.
func (p PaymentRecord) IsDeposit() bool {
	if p.Kind != "" {
		return p.Kind == PaymentKindDeposit
	}
	return p.Note == DepositNote
}
