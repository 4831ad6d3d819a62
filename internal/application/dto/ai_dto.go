package dto

// PolishDescriptionRequest body para POST /api/ai/polish-description.
type PolishDescriptionRequest struct {
	Description string `json:"description"`
}

// GenerateTermsRequest body para POST /api/ai/generate-terms.
// ServiceType describe el servicio principal facturado (primera línea del editor).
type GenerateTermsRequest struct {
	ServiceType string `json:"serviceType"`
}

// TextResponse respuesta de los endpoints de texto asistido.
type TextResponse struct {
	Text string `json:"text"`
}
