package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/epify/inventory-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre productos y log de auditoría.
// Abarca los productos de todos los usuarios (alcance administrativo); nunca escribe.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// MostAdded devuelve el ranking de productos por unidades añadidas.
// LEFT JOIN para que productos sin eventos reporten 0/0 en vez de desaparecer;
// orden por total_added DESC con desempate por add_frequency DESC.
func (r *AnalyticsRepo) MostAdded(ctx context.Context, limit int) ([]repository.ProductTotals, error) {
	const query = `
	SELECT
	    p.id,
	    p.user_id,
	    p.name,
	    COALESCE(p.type, '')                                         AS type,
	    COALESCE(p.sku, '')                                          AS sku,
	    p.quantity,
	    p.price,
	    p.created_at,
	    COALESCE(SUM(pa.quantity_changed) FILTER (WHERE pa.action_type = 'add'), 0) AS total_added,
	    COALESCE(COUNT(pa.id)             FILTER (WHERE pa.action_type = 'add'), 0) AS add_frequency
	FROM products p
	LEFT JOIN product_analytics pa ON pa.product_id = p.id
	GROUP BY p.id
	ORDER BY total_added DESC, add_frequency DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.MostAdded: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductTotals
	for rows.Next() {
		var row repository.ProductTotals
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.Name, &row.Type, &row.SKU,
			&row.Quantity, &row.Price, &row.CreatedAt,
			&row.TotalAdded, &row.AddFrequency,
		); err != nil {
			return nil, fmt.Errorf("analytics.MostAdded scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.MostAdded rows: %w", err)
	}
	return results, nil
}

// ProductHistory devuelve los eventos del producto, más recientes primero, anotados
// con el nombre actual del producto. Sin filas → slice vacío, nunca error.
func (r *AnalyticsRepo) ProductHistory(ctx context.Context, productID int64) ([]repository.HistoryEntry, error) {
	const query = `
	SELECT
	    pa.id,
	    pa.product_id,
	    p.name AS product_name,
	    pa.action_type,
	    pa.quantity_changed,
	    pa.timestamp
	FROM product_analytics pa
	JOIN products p ON p.id = pa.product_id
	WHERE pa.product_id = $1
	ORDER BY pa.timestamp DESC, pa.id DESC`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("analytics.ProductHistory: %w", err)
	}
	defer rows.Close()

	var results []repository.HistoryEntry
	for rows.Next() {
		var row repository.HistoryEntry
		if err := rows.Scan(
			&row.ID, &row.ProductID, &row.ProductName,
			&row.Action, &row.Delta, &row.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("analytics.ProductHistory scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.ProductHistory rows: %w", err)
	}
	return results, nil
}

// GlobalStats devuelve el agregado global de una sola fila.
// COALESCE en cada agregado: con cero productos todos los campos son cero, nunca null.
func (r *AnalyticsRepo) GlobalStats(ctx context.Context) (repository.StatsSnapshot, error) {
	const query = `
	SELECT
	    COUNT(*)                               AS total_products,
	    COALESCE(SUM(quantity), 0)             AS total_inventory,
	    COALESCE(AVG(price), 0)                AS average_price,
	    COALESCE(SUM(quantity * price), 0)     AS inventory_value
	FROM products`

	var snap repository.StatsSnapshot
	err := r.pool.QueryRow(ctx, query).Scan(
		&snap.TotalProducts, &snap.TotalInventory,
		&snap.AveragePrice, &snap.InventoryValue,
	)
	if err != nil {
		return repository.StatsSnapshot{}, fmt.Errorf("analytics.GlobalStats: %w", err)
	}
	return snap, nil
}
