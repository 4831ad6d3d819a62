package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kelechidev/invoicer-api/internal/application/analytics"
	"github.com/kelechidev/invoicer-api/internal/application/dto"
)

// DashboardHandler expone las métricas agregadas del negocio.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve totales, conteos y la serie mensual de ingresos.
// El campo insight refleja el último análisis disponible; el refresco
// ocurre en segundo plano y nunca retrasa esta respuesta.
// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}

// GetInsight devuelve solamente el análisis de ingresos vigente.
// GET /api/dashboard/insight
func (h *DashboardHandler) GetInsight(c *fiber.Ctx) error {
	return c.JSON(dto.TextResponse{Text: h.uc.Insight()})
}
