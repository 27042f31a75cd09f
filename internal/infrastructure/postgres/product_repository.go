package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/epify/inventory-api/internal/domain"
	"github.com/epify/inventory-api/internal/domain/entity"
	"github.com/epify/inventory-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, user_id, name, type, sku, image_url, description, quantity, price, created_at`

// Create persiste un nuevo producto y asigna el ID generado por la base.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (user_id, name, type, sku, image_url, description, quantity, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.UserID, product.Name, product.Type, product.SKU, product.ImageURL,
		product.Description, product.Quantity, product.Price, product.CreatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (sin filtro de dueño).
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get product")
}

// GetBySKU obtiene un producto por SKU (único global).
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, sku), "get product by sku")
}

// GetForUpdate lee el producto filtrado por id Y dueño con bloqueo de fila.
// Dentro de una transacción, dos actualizaciones concurrentes del mismo producto
// serializan aquí. Devuelve (nil, nil) si el id no existe o el dueño no coincide.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id, ownerID int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND user_id = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id, ownerID), "get product for update")
}

// UpdateQuantity fija la cantidad filtrando por id y dueño.
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id, ownerID, quantity int64) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = $3 WHERE id = $1 AND user_id = $2`,
		id, ownerID, quantity,
	)
	if err != nil {
		return false, fmt.Errorf("update product quantity: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListByOwner lista los productos del dueño, más recientes primero, con paginación en SQL.
func (r *ProductRepo) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Type, &p.SKU, &p.ImageURL,
			&p.Description, &p.Quantity, &p.Price, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Type, &p.SKU, &p.ImageURL,
		&p.Description, &p.Quantity, &p.Price, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
