package billing

import (
	"context"
	"fmt"

	"github.com/kelechidev/invoicer-api/internal/domain/entity"
	"github.com/kelechidev/invoicer-api/internal/domain/repository"
)

// InvoicePDFGenerator puerto de salida para renderizar la factura como PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, profile entity.UserProfile) ([]byte, error)
}

// PDFUseCase genera la representación imprimible de una factura.
type PDFUseCase struct {
	repo      repository.InvoiceRepository
	profile   entity.UserProfile
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(repo repository.InvoiceRepository, profile entity.UserProfile, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{repo: repo, profile: profile, generator: generator}
}

// Generate carga la factura y devuelve los bytes del PDF.
func (uc *PDFUseCase) Generate(ctx context.Context, id string) ([]byte, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateInvoicePDF(ctx, inv, uc.profile)
	if err != nil {
		return nil, fmt.Errorf("generar PDF de la factura %s: %w", id, err)
	}
	return pdf, nil
}
