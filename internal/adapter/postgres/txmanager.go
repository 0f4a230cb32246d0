package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/heartmarshall/casedesk-backend/internal/telemetry"
)

// TxManager runs units of work in one transaction carried in the context.
// Case transitions and their ledger records go through it so that the two
// writes commit or roll back together.
type TxManager struct {
	pool      *pgxpool.Pool
	rollbacks metric.Int64Counter
}

// NewTxManager creates a TxManager on pool.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	rollbacks, _ := telemetry.Meter("postgres").Int64Counter("casedesk.db.tx_rollbacks",
		metric.WithDescription("Transactions rolled back, by cause"))
	return &TxManager{pool: pool, rollbacks: rollbacks}
}

// RunInTx executes fn within a Read Committed transaction. A call made with
// a context that already carries a transaction joins it. An error or panic
// from fn rolls back; the rollback runs even when ctx is already cancelled.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			m.rollback(ctx, tx, "panic")
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := m.rollback(ctx, tx, "error"); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		m.rollbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("cause", "commit")))
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (m *TxManager) rollback(ctx context.Context, tx pgx.Tx, cause string) error {
	m.rollbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("cause", cause)))
	return tx.Rollback(context.WithoutCancel(ctx))
}
