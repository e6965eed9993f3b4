package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/storemax-web/pkg/config"
)

// Querier lo cumplen *pgxpool.Pool y pgx.Tx; los repos funcionan con ambos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPool crea el pool a partir de DATABASE_URL o de los campos DB_*.
// Registra el codec NUMERIC -> shopspring/decimal en cada conexión.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// schemaStatements tablas propias del gateway: sesiones y diario de recibos.
// No hay datos de negocio aquí; el catálogo y las ventas viven en el backend.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS web_sessions (
		id                     TEXT PRIMARY KEY,
		access_token           TEXT NOT NULL DEFAULT '',
		refresh_token          TEXT NOT NULL DEFAULT '',
		role                   TEXT NOT NULL DEFAULT '',
		pending_role_selection TEXT NOT NULL DEFAULT '',
		display_name           TEXT NOT NULL DEFAULT '',
		username               TEXT NOT NULL DEFAULT '',
		updated_at             TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS receipts (
		sale_id         TEXT PRIMARY KEY,
		employee        TEXT NOT NULL,
		total_amount    NUMERIC NOT NULL,
		transaction_ids TEXT[] NOT NULL DEFAULT '{}',
		created_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS receipts_employee_created_idx ON receipts (employee, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS receipt_lines (
		sale_id         TEXT NOT NULL REFERENCES receipts (sale_id) ON DELETE CASCADE,
		line_no         INT NOT NULL,
		product_name    TEXT NOT NULL,
		sold_quantity   INT NOT NULL,
		price_per_unit  NUMERIC NOT NULL,
		item_total      NUMERIC NOT NULL,
		remaining_stock INT NOT NULL,
		PRIMARY KEY (sale_id, line_no)
	)`,
}

// EnsureSchema crea las tablas si no existen (idempotente).
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
