package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kelechidev/invoicer-api/internal/domain/billing"
	"github.com/kelechidev/invoicer-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBilledTotal(t *testing.T) {
	assert.True(t, billing.BilledTotal(nil).IsZero(), "lista vacía suma cero")

	items := []entity.InvoiceItem{
		{Quantity: dec("2"), Rate: dec("25000")},
		{Quantity: dec("1.5"), Rate: dec("10000")},
		{Quantity: dec("0"), Rate: dec("99999")}, // línea sin cantidad no aporta
	}
	assert.Equal(t, "65000", billing.BilledTotal(items).String())
}

func TestPaidTotalYBalance(t *testing.T) {
	items := []entity.InvoiceItem{{Quantity: dec("1"), Rate: dec("100000")}}
	payments := []entity.PaymentRecord{
		{Kind: entity.PaymentKindDeposit, Amount: dec("40000")},
		{Kind: entity.PaymentKindOther, Amount: dec("25000")},
	}

	assert.Equal(t, "65000", billing.PaidTotal(payments).String())
	assert.Equal(t, "35000", billing.Balance(items, payments).String())

	// Sobrepago: el balance negativo se preserva, nunca se recorta a cero.
	payments = append(payments, entity.PaymentRecord{Amount: dec("50000")})
	assert.Equal(t, "-15000", billing.Balance(items, payments).String())
}

func TestDepositAmount_YOtrosPagos(t *testing.T) {
	payments := []entity.PaymentRecord{
		{Kind: entity.PaymentKindDeposit, Amount: dec("40000"), Note: entity.DepositNote},
		{Kind: entity.PaymentKindOther, Amount: dec("10000")},
		{Amount: dec("5000")}, // sin Kind ni nota centinela: pago común
	}

	assert.Equal(t, "40000", billing.DepositAmount(payments).String())
	assert.Equal(t, "15000", billing.OtherPaymentsTotal(payments).String())
	assert.True(t, billing.DepositAmount(nil).IsZero())
}

func TestDepositAmount_PayloadAntiguoSoloConNota(t *testing.T) {
	payments := []entity.PaymentRecord{
		{Amount: dec("30000"), Note: entity.DepositNote}, // persistido sin Kind
	}
	assert.Equal(t, "30000", billing.DepositAmount(payments).String())
}
