// Package billing contiene los casos de uso de facturación: CRUD del agregado,
// la mutación del primer abono y el resumen financiero para presentación.
package billing

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kelechidev/invoicer-api/internal/application/dto"
	domainbilling "github.com/kelechidev/invoicer-api/internal/domain/billing"
	"github.com/kelechidev/invoicer-api/internal/domain/entity"
	"github.com/kelechidev/invoicer-api/internal/domain/repository"
)

// dueDays plazo por defecto entre emisión y vencimiento.
const dueDays = 14

// InvoiceUseCase casos de uso del agregado factura.
type InvoiceUseCase struct {
	repo    repository.InvoiceRepository
	profile entity.UserProfile
	now     func() time.Time // inyectable en tests
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, profile entity.UserProfile) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, profile: profile, now: time.Now}
}

// Create crea una factura nueva a partir del documento del editor.
// Los campos ausentes se completan con el ciclo de vida por defecto: ID y
// número generados, emisión hoy, vencimiento hoy + 14 días, una línea vacía,
// ledger vacío, estado draft.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	now := uc.now()

	number := in.InvoiceNumber
	if number == "" {
		number = fmt.Sprintf("INV-%d-%04d", now.Year(), rand.Intn(10_000))
	}
	issue := in.IssueDate
	if issue == "" {
		issue = now.Format("2006-01-02")
	}
	due := in.DueDate
	if due == "" {
		due = now.AddDate(0, 0, dueDays).Format("2006-01-02")
	}
	terms := in.Terms
	if terms == "" {
		terms = entity.DefaultTerms
	}
	logo := in.Logo
	if logo == "" {
		logo = uc.profile.Logo
	}
	items := normalizeItems(in.Items)
	if len(items) == 0 {
		items = []entity.InvoiceItem{{
			ID:       uuid.New().String(),
			Quantity: decimal.NewFromInt(1),
			Rate:     decimal.Zero,
		}}
	}

	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: number,
		IssueDate:     issue,
		DueDate:       due,
		Client:        in.Client,
		Items:         items,
		Payments:      []entity.PaymentRecord{},
		Terms:         terms,
		Status:        entity.StatusDraft,
		Logo:          logo,
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("crear factura: %w", err)
	}
	return toResponse(inv), nil
}

// Update reemplaza los campos editables de la factura (reemplazo total del
// documento, sin parche parcial). El ledger de pagos NO se toca aquí: solo
// muta por el camino del depósito (ApplyDeposit). El estado se rederiva en el
// guardado para que editar líneas no deje un estado persistido obsoleto.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inv := existing.Clone()
	if in.InvoiceNumber != "" {
		inv.InvoiceNumber = in.InvoiceNumber
	}
	if in.IssueDate != "" {
		inv.IssueDate = in.IssueDate
	}
	if in.DueDate != "" {
		inv.DueDate = in.DueDate
	}
	inv.Client = in.Client
	inv.Terms = in.Terms
	inv.Logo = in.Logo
	if items := normalizeItems(in.Items); len(items) > 0 {
		inv.Items = items
	}

	inv = domainbilling.Recalculate(inv)
	if err := uc.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return toResponse(inv), nil
}

// ApplyDeposit fija o limpia el primer abono y rederiva el estado de forma
// atómica. Es el único camino por el que muta el ledger.
func (uc *InvoiceUseCase) ApplyDeposit(ctx context.Context, id string, amount decimal.Decimal) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := domainbilling.ApplyDeposit(inv, amount, uc.now())
	if err := uc.repo.Update(ctx, out); err != nil {
		return nil, err
	}
	return toResponse(out), nil
}

// Get obtiene la factura con su resumen financiero computado.
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(inv), nil
}

// List lista la colección completa, más-reciente-primero.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toResponse(inv))
	}
	return out, nil
}

// Delete elimina por ID. La eliminación es inmediata e irrecuperable.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Summary computa los totales derivados de la factura.
func (uc *InvoiceUseCase) Summary(ctx context.Context, id string) (*dto.InvoiceSummaryDTO, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s := toSummaryDTO(inv)
	return &s, nil
}

// Profile devuelve la identidad estática del freelancer (solo lectura).
func (uc *InvoiceUseCase) Profile() entity.UserProfile {
	return uc.profile
}

// normalizeItems convierte la entrada del editor a líneas del dominio.
// Cantidades y tarifas negativas se normalizan a 0 en lugar de rechazarse;
// las líneas sin ID reciben uno nuevo.
func normalizeItems(in []dto.InvoiceItemInput) []entity.InvoiceItem {
	out := make([]entity.InvoiceItem, 0, len(in))
	for _, it := range in {
		id := it.ID
		if id == "" {
			id = uuid.New().String()
		}
		qty := it.Quantity
		if qty.LessThan(decimal.Zero) {
			qty = decimal.Zero
		}
		rate := it.Rate
		if rate.LessThan(decimal.Zero) {
			rate = decimal.Zero
		}
		out = append(out, entity.InvoiceItem{
			ID:          id,
			Description: it.Description,
			Quantity:    qty,
			Rate:        rate,
		})
	}
	return out
}

func toSummaryDTO(inv *entity.Invoice) dto.InvoiceSummaryDTO {
	s := domainbilling.Summarize(inv)
	return dto.InvoiceSummaryDTO{
		Subtotal:      s.Subtotal,
		DepositAmount: s.DepositAmount,
		OtherPayments: s.OtherPayments,
		TotalPaid:     s.TotalPaid,
		Balance:       s.Balance,
		Status:        s.Status,
	}
}

func toResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		Invoice: inv,
		Summary: toSummaryDTO(inv),
	}
}
