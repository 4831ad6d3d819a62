// Package ai contiene los adaptadores del colaborador de generación de texto.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kelechidev/invoicer-api/internal/application/dto"
	"github.com/kelechidev/invoicer-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa TextGenService.
var _ ports.TextGenService = (*GeminiService)(nil)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// Prompts de cada forma de petición. El tono imita al de un desarrollador
// full stack freelance redactando sus propias facturas.
const (
	polishPrompt = `As a professional full stack developer, rewrite this invoice line item description to be more professional and clear: %q`

	termsPrompt = `Generate a concise, professional "Terms and Conditions" section for an invoice from a freelance Full Stack Developer for %s.
Use exactly these points but ensure they are professionally formatted:
1. All payments shall be made in Nigerian Naira (₦).
2. A first deposit has been recorded to initiate this invoice.
3. The final balance is due immediately after the website demo is presented and prior to final deployment.
4. Project delivery/deployment will commence only after the full balance has been cleared.`

	insightPrompt = `Analyze this monthly income data for a freelance developer and provide one concise insight or tip to improve revenue stability: %s`
)

// GeminiService adaptador que implementa TextGenService llamando a la API REST
// de Google Gemini. Usa únicamente net/http para no añadir dependencias.
// Se construye una sola vez en el arranque y se inyecta; sin estado global.
type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// WithBaseURL reemplaza el endpoint (tests contra httptest.Server).
func (s *GeminiService) WithBaseURL(url string) *GeminiService {
	s.baseURL = url
	return s
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// PolishDescription reescribe la descripción de una línea de factura.
func (s *GeminiService) PolishDescription(ctx context.Context, description string) (string, error) {
	return s.generate(ctx, fmt.Sprintf(polishPrompt, description))
}

// GenerateTerms redacta términos y condiciones para el servicio indicado.
func (s *GeminiService) GenerateTerms(ctx context.Context, serviceType string) (string, error) {
	return s.generate(ctx, fmt.Sprintf(termsPrompt, serviceType))
}

// AnalyzeIncome produce una frase de análisis sobre la serie mensual.
func (s *GeminiService) AnalyzeIncome(ctx context.Context, data []dto.MonthlyRevenuePoint) (string, error) {
	summary, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("AI: serializar serie mensual: %w", err)
	}
	return s.generate(ctx, fmt.Sprintf(insightPrompt, summary))
}

// generate envía el prompt y devuelve el texto plano de la primera candidata.
func (s *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: genConfig{
			Temperature:     0.4,
			MaxOutputTokens: 512,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", nil // respuesta vacía: el caller sustituye su respaldo
	}
	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
