package repository

import (
	"context"

	"github.com/epify/inventory-api/internal/domain/entity"
)

// AuditEventRepository define el puerto de escritura del log de auditoría.
// Los eventos son append-only: nunca se actualizan ni se borran.
type AuditEventRepository interface {
	// Create persiste un evento de auditoría y asigna su ID autoincremental.
	Create(ctx context.Context, event *entity.AuditEvent) error
}
