package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kelechidev/invoicer-api/internal/application/analytics"
	"github.com/kelechidev/invoicer-api/internal/application/billing"
	"github.com/kelechidev/invoicer-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC   *billing.InvoiceUseCase
	PDFUC       *billing.PDFUseCase
	AIUC        *usecase.AIUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Put("/:id/deposit", invoiceHandler.ApplyDeposit)
	invoices.Get("/:id/summary", invoiceHandler.Summary)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Asistentes de texto
	ai := api.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Post("/polish-description", aiHandler.PolishDescription)
	ai.Post("/generate-terms", aiHandler.GenerateTerms)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)
	dashboard.Get("/insight", dashboardHandler.GetInsight)

	// Perfil del emisor
	profileHandler := NewProfileHandler(deps.InvoiceUC)
	api.Get("/profile", profileHandler.Get)
}
