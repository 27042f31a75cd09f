package inventory

import (
	"context"

	"github.com/epify/inventory-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad entre la fila de producto y su evento de
// auditoría: Commit solo si fn devuelve nil, Rollback en cualquier otro caso
// (incluida la cancelación del contexto del caller).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		auditRepo repository.AuditEventRepository,
	) error) error
}
