package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epify/inventory-api/internal/application/dto"
	"github.com/epify/inventory-api/internal/application/inventory"
	"github.com/epify/inventory-api/internal/domain"
	"github.com/epify/inventory-api/internal/domain/entity"
	"github.com/epify/inventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional: el fakeTxRunner toma un snapshot
// del store antes de ejecutar fn y lo restaura si fn falla, de modo que los tests
// pueden verificar atomicidad real (producto y evento, o ninguno de los dos).
// El mutex del store serializa las transacciones igual que el bloqueo de fila
// en PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

var errInjected = errors.New("fallo inyectado")

type fakeStore struct {
	mu sync.Mutex

	nextProductID int64
	nextEventID   int64
	products      map[int64]entity.Product
	events        []entity.AuditEvent

	failProductCreate bool
	failAuditCreate   bool

	// últimos argumentos de paginación recibidos por ListByOwner
	lastLimit, lastOffset int
}

func newFakeStore() *fakeStore {
	return &fakeStore{products: map[int64]entity.Product{}}
}

func (s *fakeStore) seed(p entity.Product) int64 {
	s.nextProductID++
	p.ID = s.nextProductID
	s.products[p.ID] = p
	return p.ID
}

func (s *fakeStore) snapshot() (map[int64]entity.Product, []entity.AuditEvent, int64, int64) {
	products := make(map[int64]entity.Product, len(s.products))
	for id, p := range s.products {
		products[id] = p
	}
	events := append([]entity.AuditEvent(nil), s.events...)
	return products, events, s.nextProductID, s.nextEventID
}

// fakeProductRepo opera directo sobre el store; el locking lo hace quien lo usa
// (el runner dentro de una tx, o los métodos pool-bound abajo).
type fakeProductRepo struct {
	store *fakeStore
	inTx  bool
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	defer r.lock()()
	if r.store.failProductCreate {
		return errInjected
	}
	for _, p := range r.store.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	r.store.nextProductID++
	product.ID = r.store.nextProductID
	r.store.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	defer r.lock()()
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	defer r.lock()()
	for _, p := range r.store.products {
		if p.SKU == sku {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(_ context.Context, id, ownerID int64) (*entity.Product, error) {
	defer r.lock()()
	p, ok := r.store.products[id]
	if !ok || p.UserID != ownerID {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductRepo) UpdateQuantity(_ context.Context, id, ownerID, quantity int64) (bool, error) {
	defer r.lock()()
	p, ok := r.store.products[id]
	if !ok || p.UserID != ownerID {
		return false, nil
	}
	p.Quantity = quantity
	r.store.products[id] = p
	return true, nil
}

func (r *fakeProductRepo) ListByOwner(_ context.Context, ownerID int64, limit, offset int) ([]*entity.Product, error) {
	defer r.lock()()
	r.store.lastLimit, r.store.lastOffset = limit, offset
	var all []*entity.Product
	for id := r.store.nextProductID; id >= 1; id-- { // más recientes primero
		if p, ok := r.store.products[id]; ok && p.UserID == ownerID {
			cp := p
			all = append(all, &cp)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

type fakeAuditRepo struct {
	store *fakeStore
}

var _ repository.AuditEventRepository = (*fakeAuditRepo)(nil)

func (r *fakeAuditRepo) Create(_ context.Context, event *entity.AuditEvent) error {
	if r.store.failAuditCreate {
		return errInjected
	}
	r.store.nextEventID++
	event.ID = r.store.nextEventID
	r.store.events = append(r.store.events, *event)
	return nil
}

type fakeTxRunner struct {
	store *fakeStore
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	auditRepo repository.AuditEventRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	products, events, nextP, nextE := r.store.snapshot()
	err := fn(&fakeProductRepo{store: r.store, inTx: true}, &fakeAuditRepo{store: r.store})
	if err != nil {
		// rollback: restaurar el snapshot completo
		r.store.products, r.store.events = products, events
		r.store.nextProductID, r.store.nextEventID = nextP, nextE
		return err
	}
	return nil
}

func newUseCase(store *fakeStore) *inventory.UseCase {
	return inventory.NewUseCase(&fakeTxRunner{store: store}, &fakeProductRepo{store: store})
}

func validCreate(sku string, qty int64) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:     "Teclado mecánico",
		Type:     "electronics",
		SKU:      sku,
		Quantity: qty,
		Price:    decimal.NewFromFloat(59.90),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_ProductoYEventoEnLaMismaTransaccion(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	id, err := uc.CreateProduct(context.Background(), 1, validCreate("SKU-001", 50))
	require.NoError(t, err)
	assert.Positive(t, id)

	require.Len(t, store.products, 1, "debe existir exactamente un producto")
	require.Len(t, store.events, 1, "debe existir exactamente un evento de auditoría")

	event := store.events[0]
	assert.Equal(t, id, event.ProductID)
	assert.Equal(t, entity.ActionAdd, event.Action)
	assert.Equal(t, int64(50), event.Delta, "delta del evento 'add' = cantidad inicial")
	assert.Equal(t, int64(1), store.products[id].UserID, "el dueño es quien crea")
}

func TestCreateProduct_CantidadCeroTambienGeneraEvento(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	_, err := uc.CreateProduct(context.Background(), 1, validCreate("SKU-002", 0))
	require.NoError(t, err)

	require.Len(t, store.events, 1)
	assert.Equal(t, int64(0), store.events[0].Delta, "cantidad inicial cero se audita con delta 0")
}

func TestCreateProduct_SKUDuplicadoNoDejaFilasParciales(t *testing.T) {
	store := newFakeStore()
	store.seed(entity.Product{UserID: 2, Name: "Existente", SKU: "SKU-DUP", Price: decimal.Zero})
	uc := newUseCase(store)

	_, err := uc.CreateProduct(context.Background(), 1, validCreate("SKU-DUP", 10))
	require.ErrorIs(t, err, domain.ErrDuplicate)

	assert.Len(t, store.products, 1, "no debe persistir un producto nuevo")
	assert.Empty(t, store.events, "no debe persistir ningún evento")
}

func TestCreateProduct_EntradaInvalida(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	cases := map[string]dto.CreateProductRequest{
		"sin nombre": {SKU: "SKU-X", Quantity: 1, Price: decimal.NewFromInt(1)},
		"sin sku":    {Name: "Algo", Quantity: 1, Price: decimal.NewFromInt(1)},
		"cantidad negativa": {
			Name: "Algo", SKU: "SKU-X", Quantity: -5, Price: decimal.NewFromInt(1),
		},
		"precio negativo": {
			Name: "Algo", SKU: "SKU-X", Quantity: 1, Price: decimal.NewFromInt(-1),
		},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.CreateProduct(context.Background(), 1, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, store.products)
	assert.Empty(t, store.events)
}

func TestCreateProduct_FalloDeAuditoriaRevierteElProducto(t *testing.T) {
	store := newFakeStore()
	store.failAuditCreate = true
	uc := newUseCase(store)

	_, err := uc.CreateProduct(context.Background(), 1, validCreate("SKU-003", 7))
	require.ErrorIs(t, err, errInjected)

	assert.Empty(t, store.products, "rollback: la fila de producto no debe quedar sin su auditoría")
	assert.Empty(t, store.events)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateQuantity_RegistraDeltaConSigno(t *testing.T) {
	cases := []struct {
		name     string
		initial  int64
		newQty   int64
		expDelta int64
	}{
		{"incremento", 10, 25, 15},
		{"decremento", 25, 5, -20},
		{"sin cambio numérico", 10, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			id := store.seed(entity.Product{UserID: 1, Name: "P", SKU: "S-" + tc.name, Quantity: tc.initial, Price: decimal.Zero})
			uc := newUseCase(store)

			out, err := uc.UpdateQuantity(context.Background(), id, tc.newQty, 1)
			require.NoError(t, err)
			require.NotNil(t, out, "el dueño correcto siempre recibe el producto actualizado")
			assert.Equal(t, tc.newQty, out.Quantity)

			require.Len(t, store.events, 1, "un delta cero también se registra")
			event := store.events[0]
			assert.Equal(t, entity.ActionUpdate, event.Action)
			assert.Equal(t, tc.expDelta, event.Delta)
		})
	}
}

func TestUpdateQuantity_OtroDuenoDevuelveNotFoundSinEscribir(t *testing.T) {
	store := newFakeStore()
	id := store.seed(entity.Product{UserID: 2, Name: "Ajeno", SKU: "S-2", Quantity: 30, Price: decimal.Zero})
	uc := newUseCase(store)

	out, err := uc.UpdateQuantity(context.Background(), id, 99, 1)
	require.NoError(t, err, "not found es un resultado diseñado, no un error")
	assert.Nil(t, out)

	assert.Equal(t, int64(30), store.products[id].Quantity, "la cantidad no debe cambiar")
	assert.Empty(t, store.events, "no debe registrarse ningún evento")
}

func TestUpdateQuantity_ProductoInexistente(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	out, err := uc.UpdateQuantity(context.Background(), 999, 5, 1)
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Empty(t, store.events)
}

func TestUpdateQuantity_CantidadNegativaRechazada(t *testing.T) {
	store := newFakeStore()
	id := store.seed(entity.Product{UserID: 1, Name: "P", SKU: "S-neg", Quantity: 3, Price: decimal.Zero})
	uc := newUseCase(store)

	_, err := uc.UpdateQuantity(context.Background(), id, -1, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(3), store.products[id].Quantity)
}

func TestUpdateQuantity_FalloDeAuditoriaRevierteLaCantidad(t *testing.T) {
	store := newFakeStore()
	id := store.seed(entity.Product{UserID: 1, Name: "P", SKU: "S-fail", Quantity: 10, Price: decimal.Zero})
	store.failAuditCreate = true
	uc := newUseCase(store)

	_, err := uc.UpdateQuantity(context.Background(), id, 50, 1)
	require.ErrorIs(t, err, errInjected)

	assert.Equal(t, int64(10), store.products[id].Quantity,
		"rollback: cantidad y log de auditoría deben quedar consistentes entre sí")
	assert.Empty(t, store.events)
}

// Con N actualizaciones concurrentes serializadas en el storage, al final el log
// tiene exactamente N eventos y la suma de deltas es igual a final - inicial.
func TestUpdateQuantity_ConcurrenciaSerializadaPorElStorage(t *testing.T) {
	const n = 25
	store := newFakeStore()
	id := store.seed(entity.Product{UserID: 1, Name: "P", SKU: "S-conc", Quantity: 0, Price: decimal.Zero})
	uc := newUseCase(store)

	var wg sync.WaitGroup
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(qty int64) {
			defer wg.Done()
			_, err := uc.UpdateQuantity(context.Background(), id, qty, 1)
			assert.NoError(t, err)
		}(int64(i))
	}
	wg.Wait()

	require.Len(t, store.events, n, "cada actualización deja exactamente un evento")
	var sum int64
	for _, e := range store.events {
		sum += e.Delta
	}
	assert.Equal(t, store.products[id].Quantity, sum,
		"la suma de deltas debe telescopiar a final - inicial")
}

// ──────────────────────────────────────────────────────────────────────────────
// ListProducts
// ──────────────────────────────────────────────────────────────────────────────

func TestListProducts_CoercionDePaginacion(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	_, err := uc.ListProducts(context.Background(), 1, dto.PageRequest{Page: 0, PageSize: -3})
	require.NoError(t, err)
	assert.Equal(t, 10, store.lastLimit, "pageSize inválido → 10")
	assert.Equal(t, 0, store.lastOffset, "page inválida → 1")

	_, err = uc.ListProducts(context.Background(), 1, dto.PageRequest{Page: 3, PageSize: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, store.lastLimit)
	assert.Equal(t, 14, store.lastOffset)
}

func TestListProducts_PaginaFueraDeRangoDevuelveVacio(t *testing.T) {
	store := newFakeStore()
	for i := 0; i < 5; i++ {
		store.seed(entity.Product{UserID: 1, Name: "P", SKU: "S-" + string(rune('a'+i)), Price: decimal.Zero})
	}
	uc := newUseCase(store)

	items, err := uc.ListProducts(context.Background(), 1, dto.PageRequest{Page: 2, PageSize: 10})
	require.NoError(t, err, "una página fuera de rango nunca es error")
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListProducts_SoloDelDueno(t *testing.T) {
	store := newFakeStore()
	store.seed(entity.Product{UserID: 1, Name: "Mío", SKU: "S-1", Price: decimal.Zero})
	store.seed(entity.Product{UserID: 2, Name: "Ajeno", SKU: "S-2", Price: decimal.Zero})
	uc := newUseCase(store)

	items, err := uc.ListProducts(context.Background(), 1, dto.PageRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Mío", items[0].Name)
}
