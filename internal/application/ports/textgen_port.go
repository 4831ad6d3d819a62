package ports

import (
	"context"

	"github.com/kelechidev/invoicer-api/internal/application/dto"
)

// TextGenService puerto de salida hacia el colaborador de generación de texto.
// Cualquier adaptador (Gemini, OpenAI, Ollama, mock) debe implementar esta
// interfaz; la aplicación solo conoce este contrato, no la implementación.
//
// El colaborador es consultivo: los casos de uso capturan cualquier error y
// sustituyen un texto de respaldo determinista. Ninguna acción del usuario se
// bloquea, reintenta ni falla por su causa. El contexto debe llevar timeout.
type TextGenService interface {
	// PolishDescription reescribe la descripción de una línea de factura en un
	// tono más profesional y claro.
	PolishDescription(ctx context.Context, description string) (string, error)

	// GenerateTerms redacta la sección de términos y condiciones para el
	// servicio indicado.
	GenerateTerms(ctx context.Context, serviceType string) (string, error)

	// AnalyzeIncome produce una frase corta de análisis a partir de la serie
	// mensual de ingresos.
	AnalyzeIncome(ctx context.Context, data []dto.MonthlyRevenuePoint) (string, error)
}
