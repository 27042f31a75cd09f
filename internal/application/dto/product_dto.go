package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Se valida completa antes de abrir la transacción.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=255"`
	Type        string          `json:"type" validate:"max=255"`
	SKU         string          `json:"sku" validate:"required,min=1,max=255"`
	ImageURL    string          `json:"image_url" validate:"omitempty,max=2048"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity" validate:"min=0"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateQuantityRequest entrada para fijar la cantidad de un producto.
type UpdateQuantityRequest struct {
	Quantity int64 `json:"quantity" validate:"min=0"`
}

// CreateProductResponse respuesta de creación: solo el ID nuevo.
type CreateProductResponse struct {
	ProductID int64 `json:"product_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	SKU         string          `json:"sku"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
}
