package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/kelechidev/invoicer-api/internal/domain"
	"github.com/kelechidev/invoicer-api/internal/domain/entity"
	"github.com/kelechidev/invoicer-api/internal/domain/repository"
	"github.com/kelechidev/invoicer-api/pkg/logger"
)

// Verificar en tiempo de compilación que InvoiceStore implementa el puerto.
var _ repository.InvoiceRepository = (*InvoiceStore)(nil)

// InvoiceStore colección de facturas en memoria con persistencia best-effort.
//
// El almacén externo se lee una sola vez al arrancar (Load) y se escribe
// completo tras cada mutación. La escritura es síncrona y best-effort: un
// fallo se registra como warning pero jamás hace fallar la acción del usuario
// (la copia en memoria ya quedó actualizada).
type InvoiceStore struct {
	rdb *redis.Client
	log *logger.Logger
	key string

	mu       sync.RWMutex
	invoices []*entity.Invoice
}

// New construye el almacén. key es la clave fija bajo la que vive la colección.
func New(rdb *redis.Client, log *logger.Logger, key string) *InvoiceStore {
	return &InvoiceStore{rdb: rdb, log: log, key: key}
}

// Load lee la colección persistida. Clave ausente o payload corrupto degradan
// a colección vacía: se registra el warning y el proceso arranca igual.
func (s *InvoiceStore) Load(ctx context.Context) error {
	raw, err := s.rdb.Get(ctx, s.key).Result()
	if err == redis.Nil {
		s.mu.Lock()
		s.invoices = nil
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("redisstore: leer %q: %w", s.key, err)
	}

	var invoices []*entity.Invoice
	if err := json.Unmarshal([]byte(raw), &invoices); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).
			Msg("redisstore: payload persistido ilegible, se arranca con colección vacía")
		invoices = nil
	}

	s.mu.Lock()
	s.invoices = invoices
	s.mu.Unlock()
	return nil
}

// Create antepone la factura (orden más-reciente-primero) y persiste.
func (s *InvoiceStore) Create(ctx context.Context, inv *entity.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.invoices {
		if existing.ID == inv.ID {
			return domain.ErrDuplicate
		}
	}
	s.invoices = append([]*entity.Invoice{inv.Clone()}, s.invoices...)
	s.persist(ctx)
	return nil
}

// Update reemplaza la factura cuyo ID coincide y persiste.
func (s *InvoiceStore) Update(ctx context.Context, inv *entity.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.invoices {
		if existing.ID == inv.ID {
			s.invoices[i] = inv.Clone()
			s.persist(ctx)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina por ID y persiste. Sin papelera: irrecuperable.
func (s *InvoiceStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.invoices {
		if existing.ID == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			s.persist(ctx)
			return nil
		}
	}
	return domain.ErrNotFound
}

// GetByID devuelve una copia de la factura.
func (s *InvoiceStore) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve copias, más-reciente-primero.
func (s *InvoiceStore) List(ctx context.Context) ([]*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		out = append(out, inv.Clone())
	}
	return out, nil
}

// persist serializa la colección completa y la escribe bajo la clave fija.
// Best-effort: el error solo se registra. Caller debe tener el lock tomado.
func (s *InvoiceStore) persist(ctx context.Context) {
	raw, err := json.Marshal(s.invoices)
	if err != nil {
		s.log.Error().Err(err).Msg("redisstore: serializar colección")
		return
	}
	if err := s.rdb.Set(ctx, s.key, raw, 0).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).
			Msg("redisstore: escritura al almacén falló; la copia en memoria queda al día")
	}
}
