package repository

import (
	"context"

	"github.com/kelechidev/invoicer-api/internal/domain/entity"
)

// InvoiceRepository colección de facturas, clave = ID.
// La implementación serializa la colección completa al almacén externo tras
// cada mutación (reemplazo total, sin parches parciales).
type InvoiceRepository interface {
	// Create antepone la factura a la colección (orden más-reciente-primero).
	Create(ctx context.Context, inv *entity.Invoice) error
	// Update reemplaza la factura cuyo ID coincide; ErrNotFound si no existe.
	Update(ctx context.Context, inv *entity.Invoice) error
	// Delete elimina por ID; ErrNotFound si no existe. Sin papelera ni undo.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// List devuelve la colección en orden más-reciente-primero.
	List(ctx context.Context) ([]*entity.Invoice, error)
}
