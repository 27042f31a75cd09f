package postgres

import (
	"context"
	"fmt"

	"github.com/epify/inventory-api/internal/domain/entity"
	"github.com/epify/inventory-api/internal/domain/repository"
)

var _ repository.AuditEventRepository = (*AuditEventRepo)(nil)

// AuditEventRepo implementación append-only sobre la tabla product_analytics
// (usable con pool o tx; en la práctica siempre se usa dentro de la tx de la mutación).
type AuditEventRepo struct {
	q Querier
}

// NewAuditEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditEventRepository(q Querier) *AuditEventRepo {
	return &AuditEventRepo{q: q}
}

// Create persiste un evento de auditoría. No existen Update ni Delete: el log es inmutable.
func (r *AuditEventRepo) Create(ctx context.Context, event *entity.AuditEvent) error {
	query := `
		INSERT INTO product_analytics (product_id, action_type, quantity_changed, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		event.ProductID, event.Action, event.Delta, event.Timestamp,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
