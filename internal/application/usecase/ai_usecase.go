package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/kelechidev/invoicer-api/internal/application/dto"
	"github.com/kelechidev/invoicer-api/internal/application/ports"
	"github.com/kelechidev/invoicer-api/pkg/logger"
)

// Textos de respaldo deterministas. El colaborador de texto es consultivo:
// ante cualquier fallo se sustituye el respaldo y la acción del usuario
// continúa; el error jamás llega al cliente.
const (
	fallbackTerms = "1. All payments in Naira (₦).\n" +
		"2. First deposit received.\n" +
		"3. Balance due after demo.\n" +
		"4. Deployment follows full payment."

	fallbackInsight      = "Keep track of your billing cycles for better cash flow."
	fallbackInsightEmpty = "Stay focused on regular client follow-ups."

	// aiTimeout las llamadas a LLMs pueden demorar varios segundos; el timeout
	// evita que las latencias externas bloqueen los goroutines del servidor.
	aiTimeout = 10 * time.Second
)

// AIUseCase orquesta la redacción asistida: pulir descripciones de línea,
// generar términos y condiciones y producir la frase de análisis del panel.
type AIUseCase struct {
	textgen ports.TextGenService
	log     *logger.Logger
}

// NewAIUseCase construye el caso de uso inyectando el puerto TextGenService.
func NewAIUseCase(textgen ports.TextGenService, log *logger.Logger) *AIUseCase {
	return &AIUseCase{textgen: textgen, log: log}
}

// PolishDescription reescribe la descripción de una línea. Si el colaborador
// falla o devuelve vacío, se conserva la descripción original.
func (uc *AIUseCase) PolishDescription(ctx context.Context, description string) string {
	if strings.TrimSpace(description) == "" {
		return description
	}
	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	text, err := uc.textgen.PolishDescription(ctx, description)
	if err != nil {
		uc.log.Warn().Err(err).Msg("ai: pulir descripción falló, se conserva el texto original")
		return description
	}
	if text = strings.TrimSpace(text); text == "" {
		return description
	}
	return text
}

// GenerateTerms redacta términos y condiciones para el servicio indicado.
// Ante fallo devuelve el texto de respaldo fijo.
func (uc *AIUseCase) GenerateTerms(ctx context.Context, serviceType string) string {
	if strings.TrimSpace(serviceType) == "" {
		serviceType = "Development services"
	}
	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	text, err := uc.textgen.GenerateTerms(ctx, serviceType)
	if err != nil {
		uc.log.Warn().Err(err).Msg("ai: generar términos falló, se usa el respaldo")
		return fallbackTerms
	}
	if text = strings.TrimSpace(text); text == "" {
		return fallbackTerms
	}
	return text
}

// AnalyzeIncome produce una frase corta de análisis sobre la serie mensual.
func (uc *AIUseCase) AnalyzeIncome(ctx context.Context, data []dto.MonthlyRevenuePoint) string {
	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	text, err := uc.textgen.AnalyzeIncome(ctx, data)
	if err != nil {
		uc.log.Warn().Err(err).Msg("ai: análisis de ingresos falló, se usa el respaldo")
		return fallbackInsight
	}
	if text = strings.TrimSpace(text); text == "" {
		return fallbackInsightEmpty
	}
	return text
}
