package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un usuario.
// UserID es el dueño y es inmutable después de la creación; Quantity nunca es negativa
// y solo se modifica vía la operación de actualización de cantidad (misma transacción
// que su evento de auditoría).
type Product struct {
	ID          int64
	UserID      int64
	Name        string
	Type        string // texto libre (categoría informal)
	SKU         string // único a nivel global
	ImageURL    string
	Description string
	Quantity    int64           // siempre >= 0
	Price       decimal.Decimal // precio unitario, >= 0
	CreatedAt   time.Time
}
