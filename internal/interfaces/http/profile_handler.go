package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kelechidev/invoicer-api/internal/application/billing"
)

// ProfileHandler expone el perfil del freelancer configurado.
type ProfileHandler struct {
	uc *billing.InvoiceUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *billing.InvoiceUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get devuelve el perfil usado como emisor en las facturas.
// GET /api/profile
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Profile())
}
