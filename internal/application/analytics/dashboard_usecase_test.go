package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelechidev/invoicer-api/internal/application/dto"
	"github.com/kelechidev/invoicer-api/internal/application/usecase"
	"github.com/kelechidev/invoicer-api/internal/domain"
	"github.com/kelechidev/invoicer-api/internal/domain/entity"
	"github.com/kelechidev/invoicer-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// listRepo implementa repository.InvoiceRepository sobre un slice fijo.
type listRepo struct {
	invoices []*entity.Invoice
	err      error
}

func (r *listRepo) Create(context.Context, *entity.Invoice) error { return nil }
func (r *listRepo) Update(context.Context, *entity.Invoice) error { return nil }
func (r *listRepo) Delete(context.Context, string) error          { return nil }
func (r *listRepo) GetByID(context.Context, string) (*entity.Invoice, error) {
	return nil, domain.ErrNotFound
}
func (r *listRepo) List(context.Context) ([]*entity.Invoice, error) {
	return r.invoices, r.err
}

// blockingTextGen deja la llamada en vuelo hasta que se cierre release.
type blockingTextGen struct {
	reply   string
	release chan struct{}
	called  chan []dto.MonthlyRevenuePoint
}

func (s *blockingTextGen) PolishDescription(context.Context, string) (string, error) {
	return s.reply, nil
}
func (s *blockingTextGen) GenerateTerms(context.Context, string) (string, error) {
	return s.reply, nil
}
func (s *blockingTextGen) AnalyzeIncome(_ context.Context, data []dto.MonthlyRevenuePoint) (string, error) {
	if s.called != nil {
		s.called <- data
	}
	if s.release != nil {
		<-s.release
	}
	return s.reply, nil
}

func facturaConPago(billed, paid int64, status, date string) *entity.Invoice {
	inv := &entity.Invoice{
		ID:     "inv-" + date,
		Status: status,
		Items: []entity.InvoiceItem{{
			ID:       "item-1",
			Quantity: decimal.NewFromInt(1),
			Rate:     decimal.NewFromInt(billed),
		}},
	}
	if paid > 0 {
		inv.Payments = []entity.PaymentRecord{{
			ID:     "pay-1",
			Kind:   entity.PaymentKindDeposit,
			Amount: decimal.NewFromInt(paid),
			Date:   date,
			Note:   entity.DepositNote,
		}}
	}
	return inv
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStats_AgregaTotalesYConteos(t *testing.T) {
	repo := &listRepo{invoices: []*entity.Invoice{
		facturaConPago(100000, 100000, entity.StatusPaid, "2025-03-05"),
		facturaConPago(50000, 20000, entity.StatusPartiallyPaid, "2025-03-20"),
		facturaConPago(80000, 0, entity.StatusPending, ""),
	}}
	uc := NewDashboardUseCase(repo, usecase.NewAIUseCase(&blockingTextGen{reply: "ok"}, logger.Nop()))

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "230000", stats.TotalBilled.String())
	assert.Equal(t, "120000", stats.TotalEarned.String())
	assert.Equal(t, "110000", stats.PendingAmount.String())
	assert.Equal(t, 1, stats.PaidCount)
	assert.Equal(t, 2, stats.PendingCount)
}

func TestGetStats_SerieMensualPorFechaDePago(t *testing.T) {
	repo := &listRepo{invoices: []*entity.Invoice{
		facturaConPago(100000, 40000, entity.StatusPartiallyPaid, "2025-03-05"),
		facturaConPago(50000, 10000, entity.StatusPartiallyPaid, "2024-03-15"), // otro año, mismo mes
		facturaConPago(80000, 5000, entity.StatusPartiallyPaid, "2025-07-01"),
	}}
	uc := NewDashboardUseCase(repo, usecase.NewAIUseCase(&blockingTextGen{reply: "ok"}, logger.Nop()))

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.MonthlyRevenue, 12)
	assert.Equal(t, "Mar", stats.MonthlyRevenue[2].Month)
	assert.Equal(t, "50000", stats.MonthlyRevenue[2].Amount.String(), "la serie ignora el año")
	assert.Equal(t, "5000", stats.MonthlyRevenue[6].Amount.String())
	assert.True(t, stats.MonthlyRevenue[0].Amount.IsZero())
}

func TestGetStats_FechaDePagoIlegibleNoAporta(t *testing.T) {
	repo := &listRepo{invoices: []*entity.Invoice{
		facturaConPago(10000, 10000, entity.StatusPaid, "no-es-fecha"),
	}}
	uc := NewDashboardUseCase(repo, usecase.NewAIUseCase(&blockingTextGen{reply: "ok"}, logger.Nop()))

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	for _, p := range stats.MonthlyRevenue {
		assert.True(t, p.Amount.IsZero())
	}
	// El total ganado sí cuenta el pago aunque su fecha no entre en la serie.
	assert.Equal(t, "10000", stats.TotalEarned.String())
}

func TestInsight_ColeccionVacia(t *testing.T) {
	uc := NewDashboardUseCase(&listRepo{}, usecase.NewAIUseCase(&blockingTextGen{reply: "ok"}, logger.Nop()))

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, insightEmptyCollection, stats.Insight)
	assert.Equal(t, insightEmptyCollection, uc.Insight())
}

func TestInsight_RefrescoAsincronoSoloMesesConIngresos(t *testing.T) {
	called := make(chan []dto.MonthlyRevenuePoint, 1)
	textgen := &blockingTextGen{reply: "March looks strong.", called: called}
	repo := &listRepo{invoices: []*entity.Invoice{
		facturaConPago(100000, 40000, entity.StatusPartiallyPaid, "2025-03-05"),
	}}
	uc := NewDashboardUseCase(repo, usecase.NewAIUseCase(textgen, logger.Nop()))

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	// La respuesta no espera al refresco: trae la frase vigente hasta ahora.
	assert.Equal(t, insightEmptyCollection, stats.Insight)

	select {
	case data := <-called:
		require.Len(t, data, 1, "solo los meses con ingresos llegan al colaborador")
		assert.Equal(t, "Mar", data[0].Month)
	case <-time.After(2 * time.Second):
		t.Fatal("el refresco asíncrono nunca llamó al colaborador")
	}

	// Tras el refresco la frase queda disponible para la siguiente lectura.
	assert.Eventually(t, func() bool {
		return uc.Insight() == "March looks strong."
	}, 2*time.Second, 10*time.Millisecond)
}

func TestInsight_RespuestaTardiaNoPisaLaNueva(t *testing.T) {
	uc := NewDashboardUseCase(&listRepo{}, usecase.NewAIUseCase(&blockingTextGen{reply: "ok"}, logger.Nop()))

	// Simular dos refrescos en vuelo: el primero termina después del segundo.
	oldToken := uc.seq.Add(1)
	newToken := uc.seq.Add(1)

	uc.setInsight(newToken, "fresh")
	assert.Equal(t, "fresh", uc.Insight())

	uc.setInsight(oldToken, "stale")
	assert.Equal(t, "fresh", uc.Insight(), "un token viejo jamás sobrescribe")
}
