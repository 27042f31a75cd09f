package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentencias idempotentes de arranque. El esquema de cuatro tablas es un contrato
// fijo: PKs autoincrementales, username y sku únicos, FKs por id entero.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		name VARCHAR(255) NOT NULL,
		type VARCHAR(255),
		sku VARCHAR(255) UNIQUE,
		image_url VARCHAR(2048),
		description TEXT,
		quantity BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS product_analytics (
		id BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL REFERENCES products(id),
		action_type VARCHAR(10) NOT NULL CHECK (action_type IN ('add', 'update')),
		quantity_changed BIGINT NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		role VARCHAR(20) NOT NULL DEFAULT 'admin' CHECK (role IN ('admin', 'superadmin'))
	)`,
}

// InitSchema crea las tablas si no existen. No es un sistema de migraciones: solo
// garantiza que una base vacía quede utilizable antes de aceptar tráfico.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
