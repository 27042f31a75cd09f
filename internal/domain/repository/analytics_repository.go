package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProductTotals resultado crudo del ranking de productos con más unidades añadidas.
// Lo produce la DB; el use case lo convierte en DTO.
type ProductTotals struct {
	ID           int64
	UserID       int64
	Name         string
	Type         string
	SKU          string
	Quantity     int64
	Price        decimal.Decimal
	CreatedAt    time.Time
	TotalAdded   int64 // SUM(delta) de eventos 'add'; 0 si el producto no tiene eventos
	AddFrequency int64 // COUNT de eventos 'add'; 0 si el producto no tiene eventos
}

// HistoryEntry evento de auditoría anotado con el nombre actual del producto.
type HistoryEntry struct {
	ID          int64
	ProductID   int64
	ProductName string
	Action      string
	Delta       int64
	Timestamp   time.Time
}

// StatsSnapshot agregado global sobre todos los productos del sistema.
// Con cero productos todos los campos son cero, nunca null.
type StatsSnapshot struct {
	TotalProducts  int64
	TotalInventory int64
	AveragePrice   decimal.Decimal
	InventoryValue decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para la analítica administrativa.
// Las implementaciones son read-only (no modifican datos) y abarcan los productos de
// todos los usuarios.
type AnalyticsRepository interface {
	// MostAdded devuelve productos ordenados por total_added DESC, desempatados por
	// add_frequency DESC. Incluye productos sin eventos (LEFT JOIN, totales en cero).
	MostAdded(ctx context.Context, limit int) ([]ProductTotals, error)

	// ProductHistory devuelve los eventos del producto, más recientes primero.
	// Producto inexistente o sin eventos → slice vacío, no error.
	ProductHistory(ctx context.Context, productID int64) ([]HistoryEntry, error)

	// GlobalStats devuelve el agregado global. Usa COALESCE para devolver ceros
	// cuando no hay productos.
	GlobalStats(ctx context.Context) (StatsSnapshot, error)
}
