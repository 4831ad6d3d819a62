package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kelechidev/invoicer-api/internal/application/dto"
	"github.com/kelechidev/invoicer-api/internal/application/usecase"
)

// AIHandler expone los asistentes de texto. Estas rutas nunca fallan
// hacia el cliente: ante cualquier problema del colaborador se devuelve
// el texto de respaldo con estado 200.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// PolishDescription reescribe la descripción de un servicio en tono profesional.
// POST /api/ai/polish-description
func (h *AIHandler) PolishDescription(c *fiber.Ctx) error {
	var in dto.PolishDescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	text := h.uc.PolishDescription(c.Context(), in.Description)
	return c.JSON(dto.TextResponse{Text: text})
}

// GenerateTerms genera términos y condiciones para un tipo de servicio.
// POST /api/ai/generate-terms
func (h *AIHandler) GenerateTerms(c *fiber.Ctx) error {
	var in dto.GenerateTermsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	text := h.uc.GenerateTerms(c.Context(), in.ServiceType)
	return c.JSON(dto.TextResponse{Text: text})
}
