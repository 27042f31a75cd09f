package repository

import (
	"context"

	"github.com/epify/inventory-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las implementaciones devuelven (nil, nil) cuando la fila no existe.
type ProductRepository interface {
	// Create persiste un producto nuevo y asigna su ID autoincremental.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID obtiene un producto por ID sin filtro de dueño (lectura administrativa).
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetBySKU obtiene un producto por SKU (único global).
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// GetForUpdate lee el producto filtrado por id Y dueño con bloqueo de fila
	// (SELECT FOR UPDATE). Solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, id, ownerID int64) (*entity.Product, error)
	// UpdateQuantity fija la cantidad filtrando por id y dueño. Devuelve false si
	// ninguna fila coincide.
	UpdateQuantity(ctx context.Context, id, ownerID, quantity int64) (bool, error)
	// ListByOwner lista los productos del dueño, más recientes primero, con paginación SQL.
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*entity.Product, error)
}
