package repository

import (
	"context"

	"github.com/epify/inventory-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

// AdminGrantRepository consulta de solo lectura de roles elevados.
// Este núcleo nunca crea ni modifica grants.
type AdminGrantRepository interface {
	// GetByUserID devuelve el grant del usuario o (nil, nil) si no tiene.
	GetByUserID(ctx context.Context, userID int64) (*entity.AdminGrant, error)
}
