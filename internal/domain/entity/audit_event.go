package entity

import "time"

// Acciones válidas para AuditEvent.
const (
	ActionAdd    = "add"
	ActionUpdate = "update"
)

// AuditEvent registro inmutable de un cambio de cantidad sobre un producto.
// Se crea exactamente una vez por creación o actualización exitosa, en la misma
// transacción que la mutación que describe. Delta es con signo: la suma de todos
// los deltas de un producto es igual a su cantidad actual.
type AuditEvent struct {
	ID        int64
	ProductID int64
	Action    string // add | update
	Delta     int64  // cambio de cantidad con signo (puede ser cero)
	Timestamp time.Time
}
