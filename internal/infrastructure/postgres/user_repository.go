package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/epify/inventory-api/internal/domain"
	"github.com/epify/inventory-api/internal/domain/entity"
	"github.com/epify/inventory-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario y asigna el ID generado.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`
	err := r.pool.QueryRow(ctx, query, user.Username, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT id, username, password FROM users WHERE id = $1`
	var u entity.User
	err := r.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetByUsername obtiene un usuario por username (único).
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT id, username, password FROM users WHERE username = $1`
	var u entity.User
	err := r.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

var _ repository.AdminGrantRepository = (*AdminGrantRepo)(nil)

// AdminGrantRepo consulta de solo lectura sobre admin_users.
type AdminGrantRepo struct {
	pool *pgxpool.Pool
}

// NewAdminGrantRepository construye el adaptador.
func NewAdminGrantRepository(pool *pgxpool.Pool) *AdminGrantRepo {
	return &AdminGrantRepo{pool: pool}
}

// GetByUserID devuelve el grant del usuario o (nil, nil) si no tiene rol elevado.
func (r *AdminGrantRepo) GetByUserID(ctx context.Context, userID int64) (*entity.AdminGrant, error) {
	query := `SELECT id, user_id, role FROM admin_users WHERE user_id = $1`
	var g entity.AdminGrant
	err := r.pool.QueryRow(ctx, query, userID).Scan(&g.ID, &g.UserID, &g.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin grant: %w", err)
	}
	return &g, nil
}
