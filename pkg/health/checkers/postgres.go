package checkers

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type PostgresChecker struct {
	pool *pgxpool.Pool
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "postgres" }

// Check passes once the database answers and the conversations table exists.
func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	var table *string
	if err := c.pool.QueryRow(ctx, "SELECT to_regclass('conversations')::text").Scan(&table); err != nil {
		return errors.Wrap(err, "query catalog")
	}
	if table == nil {
		return errors.New("conversations table is missing")
	}
	return nil
}
