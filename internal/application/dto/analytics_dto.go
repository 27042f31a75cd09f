package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MostAddedProductResponse producto con totales del log de auditoría.
// TotalAdded y AddFrequency son cero para productos sin eventos (no se excluyen).
type MostAddedProductResponse struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"user_id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	SKU          string          `json:"sku"`
	Quantity     int64           `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
	TotalAdded   int64           `json:"total_added"`
	AddFrequency int64           `json:"add_frequency"`
}

// HistoryEntryResponse evento de auditoría anotado con el nombre del producto.
type HistoryEntryResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	Action      string    `json:"action_type"`
	Delta       int64     `json:"quantity_changed"`
	Timestamp   time.Time `json:"timestamp"`
}

// StatsResponse agregado global; todos los campos son cero con catálogo vacío.
type StatsResponse struct {
	TotalProducts  int64           `json:"total_products"`
	TotalInventory int64           `json:"total_inventory"`
	AveragePrice   decimal.Decimal `json:"average_price"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}
