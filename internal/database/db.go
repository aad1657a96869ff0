package database

import (
	"context"
	"fmt"

	"github.com/camilaferreira/ledger-api/internal/config"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// ConnectDB opens the ledger pool for the environment-configured database.
// A .env file is loaded first when present, so tests and local runs pick up
// the same setup. Resolution of the connection string lives in config.
func ConnectDB() (*pgxpool.Pool, error) {
	_ = godotenv.Load()
	return Connect(config.DatabaseURL())
}

// Connect opens a pool for the given connection string. The shopspring
// decimal codec is registered on every connection so NUMERIC columns scan
// straight into decimal.Decimal, keeping money out of float64.
func Connect(connStr string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("could not open connection pool: %w", err)
	}
	return pool, nil
}
