package redisstore_test

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelechidev/invoicer-api/internal/domain"
	"github.com/kelechidev/invoicer-api/internal/domain/entity"
	"github.com/kelechidev/invoicer-api/internal/infrastructure/redisstore"
	"github.com/kelechidev/invoicer-api/pkg/logger"
)

const testKey = "invoicer:invoices"

func newTestStore(t *testing.T) (*redisstore.InvoiceStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisstore.New(client, logger.Nop(), testKey), mr
}

func invoice(id, number string) *entity.Invoice {
	return &entity.Invoice{
		ID:            id,
		InvoiceNumber: number,
		IssueDate:     "2026-08-31",
		DueDate:       "2026-09-14",
		Items: []entity.InvoiceItem{{
			ID:       "item-" + id,
			Quantity: decimal.NewFromInt(1),
			Rate:     decimal.NewFromInt(100_000),
		}},
		Payments: []entity.PaymentRecord{},
		Status:   entity.StatusDraft,
	}
}

// TestStore_RoundTrip crear, persistir y recargar desde el almacén produce la
// misma colección.
func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)
	require.NoError(t, store.Load(ctx))

	require.NoError(t, store.Create(ctx, invoice("a", "INV-2026-0001")))
	require.NoError(t, store.Create(ctx, invoice("b", "INV-2026-0002")))

	// Nuevo store sobre el mismo backend: simula reinicio del proceso.
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	reloaded := redisstore.New(client, logger.Nop(), testKey)
	require.NoError(t, reloaded.Load(ctx))

	list, err := reloaded.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID, "orden más-reciente-primero")
	assert.Equal(t, "a", list[1].ID)
	assert.True(t, list[1].Items[0].Rate.Equal(decimal.NewFromInt(100_000)))
}

// TestStore_PayloadCorrupto datos persistidos ilegibles degradan a colección
// vacía sin error fatal.
func TestStore_PayloadCorrupto(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)
	mr.Set(testKey, "{esto no es json[")

	require.NoError(t, store.Load(ctx))

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

// TestStore_ClaveAusente primera ejecución sin datos previos.
func TestStore_ClaveAusente(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Load(ctx))

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

// TestStore_UpdateInexistente actualizar un ID desconocido reporta not found y
// deja la colección intacta.
func TestStore_UpdateInexistente(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	require.NoError(t, store.Load(ctx))
	require.NoError(t, store.Create(ctx, invoice("a", "INV-2026-0001")))

	err := store.Update(ctx, invoice("fantasma", "INV-2026-9999"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	list, _ := store.List(ctx)
	assert.Len(t, list, 1)
}

// TestStore_DeleteLuegoUpdate borrar y luego intentar actualizar ese ID
// reporta not found; la colección no cambia.
func TestStore_DeleteLuegoUpdate(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	require.NoError(t, store.Load(ctx))
	require.NoError(t, store.Create(ctx, invoice("a", "INV-2026-0001")))

	require.NoError(t, store.Delete(ctx, "a"))
	err := store.Update(ctx, invoice("a", "INV-2026-0001"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	list, _ := store.List(ctx)
	assert.Empty(t, list)
}

// TestStore_DeleteInexistente borrar un ID desconocido reporta not found.
func TestStore_DeleteInexistente(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	require.NoError(t, store.Load(ctx))

	assert.ErrorIs(t, store.Delete(ctx, "nadie"), domain.ErrNotFound)
}

// TestStore_EscrituraCaidaNoFallaLaMutacion si Redis no responde, la mutación
// igual se aplica en memoria (persistencia best-effort).
func TestStore_EscrituraCaidaNoFallaLaMutacion(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)
	require.NoError(t, store.Load(ctx))

	mr.Close() // el backend se cae antes de la mutación

	require.NoError(t, store.Create(ctx, invoice("a", "INV-2026-0001")))
	got, err := store.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0001", got.InvoiceNumber)
}

// TestStore_GetDevuelveCopia mutar lo devuelto no toca la colección interna.
func TestStore_GetDevuelveCopia(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	require.NoError(t, store.Load(ctx))
	require.NoError(t, store.Create(ctx, invoice("a", "INV-2026-0001")))

	got, err := store.GetByID(ctx, "a")
	require.NoError(t, err)
	got.Items[0].Rate = decimal.Zero
	got.InvoiceNumber = "mutado"

	again, err := store.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0001", again.InvoiceNumber)
	assert.True(t, again.Items[0].Rate.Equal(decimal.NewFromInt(100_000)))
}
