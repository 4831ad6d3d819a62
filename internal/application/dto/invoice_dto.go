package dto

import (
	"github.com/shopspring/decimal"

	"github.com/kelechidev/invoicer-api/internal/domain/entity"
)

// SaveInvoiceRequest body para POST /api/invoices y PUT /api/invoices/:id.
// El editor envía el documento completo (reemplazo total, sin parches).
// Los campos vacíos al crear (id, número, fechas, términos, líneas) se
// completan con los valores por defecto del ciclo de vida.
type SaveInvoiceRequest struct {
	InvoiceNumber string               `json:"invoiceNumber,omitempty"`
	IssueDate     string               `json:"issueDate,omitempty"` // YYYY-MM-DD
	DueDate       string               `json:"dueDate,omitempty"`   // YYYY-MM-DD
	Client        entity.ClientDetails `json:"client"`
	Items         []InvoiceItemInput   `json:"items"`
	Terms         string               `json:"terms,omitempty"`
	Logo          string               `json:"logo,omitempty"`
}

// InvoiceItemInput línea de servicio en el request.
// Cantidades y tarifas negativas se normalizan a 0, nunca se rechazan.
type InvoiceItemInput struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// ApplyDepositRequest body para PUT /api/invoices/:id/deposit.
// Amount <= 0 limpia el depósito.
type ApplyDepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// InvoiceSummaryDTO totales derivados para la capa de presentación.
type InvoiceSummaryDTO struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	OtherPayments decimal.Decimal `json:"otherPayments"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status"`
}

// InvoiceResponse factura completa más su resumen financiero computado.
type InvoiceResponse struct {
	Invoice *entity.Invoice   `json:"invoice"`
	Summary InvoiceSummaryDTO `json:"summary"`
}
