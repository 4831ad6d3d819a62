// Package analytics construye el resumen financiero del panel: totales del
// negocio, serie de ingresos mensuales y la frase de análisis asistida por IA.
package analytics

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kelechidev/invoicer-api/internal/application/dto"
	"github.com/kelechidev/invoicer-api/internal/application/usecase"
	"github.com/kelechidev/invoicer-api/internal/domain/billing"
	"github.com/kelechidev/invoicer-api/internal/domain/entity"
	"github.com/kelechidev/invoicer-api/internal/domain/repository"
)

// insightEmptyCollection texto mostrado mientras no existan facturas.
const insightEmptyCollection = "Start creating invoices to see financial insights."

var monthLabels = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// DashboardUseCase agrega los totales del panel y mantiene la frase de
// análisis de la IA como campo de solo display.
//
// La frase se refresca con un goroutine fire-and-forget que NUNCA bloquea ni
// condiciona una mutación del core. Cada refresco lleva un token de secuencia:
// una respuesta tardía con token viejo se descarta, de modo que un resultado
// obsoleto no puede pisar uno más fresco.
type DashboardUseCase struct {
	repo repository.InvoiceRepository
	ai   *usecase.AIUseCase

	seq     atomic.Uint64
	mu      sync.RWMutex
	insight string
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.InvoiceRepository, ai *usecase.AIUseCase) *DashboardUseCase {
	return &DashboardUseCase{
		repo:    repo,
		ai:      ai,
		insight: insightEmptyCollection,
	}
}

// GetStats computa los totales del negocio y la serie mensual, devuelve la
// frase de análisis vigente y dispara su refresco en segundo plano.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	invoices, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	totalEarned := decimal.Zero
	totalBilled := decimal.Zero
	paidCount := 0
	for _, inv := range invoices {
		totalEarned = totalEarned.Add(billing.PaidTotal(inv.Payments))
		totalBilled = totalBilled.Add(billing.BilledTotal(inv.Items))
		if inv.Status == entity.StatusPaid {
			paidCount++
		}
	}

	series := monthlySeries(invoices)
	uc.refreshInsight(invoices, series)

	return &dto.DashboardStatsDTO{
		TotalEarned:    totalEarned,
		TotalBilled:    totalBilled,
		PendingAmount:  totalBilled.Sub(totalEarned),
		PaidCount:      paidCount,
		PendingCount:   len(invoices) - paidCount,
		MonthlyRevenue: series,
		Insight:        uc.Insight(),
	}, nil
}

// Insight devuelve la frase de análisis vigente.
func (uc *DashboardUseCase) Insight() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.insight
}

// refreshInsight lanza el refresco asíncrono guardado por token de secuencia.
func (uc *DashboardUseCase) refreshInsight(invoices []*entity.Invoice, series []dto.MonthlyRevenuePoint) {
	if len(invoices) == 0 {
		uc.setInsight(uc.seq.Add(1), insightEmptyCollection)
		return
	}

	// Solo los meses con ingresos son relevantes para el análisis.
	relevant := make([]dto.MonthlyRevenuePoint, 0, len(series))
	for _, p := range series {
		if p.Amount.GreaterThan(decimal.Zero) {
			relevant = append(relevant, p)
		}
	}

	token := uc.seq.Add(1)
	go func() {
		// Contexto propio: la petición HTTP que disparó el refresco ya terminó.
		text := uc.ai.AnalyzeIncome(context.Background(), relevant)
		uc.setInsight(token, text)
	}()
}

// setInsight aplica el texto solo si el token sigue siendo el vigente.
func (uc *DashboardUseCase) setInsight(token uint64, text string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.seq.Load() != token {
		return // llegó tarde; ya hay un refresco más nuevo en curso
	}
	uc.insight = text
}

// monthlySeries agrega los pagos por mes calendario (Ene..Dic), como lo
// grafica el panel: el mes se toma de la fecha del pago, sin distinguir año.
func monthlySeries(invoices []*entity.Invoice) []dto.MonthlyRevenuePoint {
	amounts := make([]decimal.Decimal, 12)
	for i := range amounts {
		amounts[i] = decimal.Zero
	}
	for _, inv := range invoices {
		for _, p := range inv.Payments {
			t, err := time.Parse("2006-01-02", p.Date)
			if err != nil {
				continue // fecha ilegible: el pago no aporta a la serie
			}
			amounts[t.Month()-1] = amounts[t.Month()-1].Add(p.Amount)
		}
	}
	out := make([]dto.MonthlyRevenuePoint, 12)
	for i, label := range monthLabels {
		out[i] = dto.MonthlyRevenuePoint{Month: label, Amount: amounts[i]}
	}
	return out
}
