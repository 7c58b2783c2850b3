// Package history persists execution outcomes to SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS executions (
	id             TEXT PRIMARY KEY,
	opportunity_id TEXT NOT NULL,
	pair           TEXT NOT NULL,
	direction      TEXT NOT NULL,
	status         TEXT NOT NULL,
	trade_size     TEXT NOT NULL,
	net_profit     TEXT NOT NULL,
	dex_tx_id      TEXT NOT NULL DEFAULT '',
	cex_order_id   TEXT NOT NULL DEFAULT '',
	error          TEXT NOT NULL DEFAULT '',
	executed_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_executions_executed_at ON executions (executed_at DESC);
`

// Store records executions in a SQLite database. Quantities are stored
// as decimal strings; SQLite floats would silently lose precision.
type Store struct {
	db *sql.DB
}

// NewStore creates the store and its schema.
func NewStore(ctx context.Context, db *sql.DB) (*Store, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("history: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record inserts one execution record.
func (s *Store) Record(ctx context.Context, rec domain.ExecutionRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO executions
			(id, opportunity_id, pair, direction, status, trade_size, net_profit, dex_tx_id, cex_order_id, error, executed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.OpportunityID,
		rec.Pair,
		string(rec.Direction),
		string(rec.Status),
		rec.TradeSize.String(),
		rec.NetProfit.String(),
		rec.DexTxID,
		rec.CexOrderID,
		rec.Error,
		rec.ExecutedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("history: insert execution: %w", err)
	}
	return nil
}

// Recent returns the most recent executions, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.ExecutionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, opportunity_id, pair, direction, status, trade_size, net_profit, dex_tx_id, cex_order_id, error, executed_at
		 FROM executions ORDER BY executed_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query executions: %w", err)
	}
	defer rows.Close()

	var out []domain.ExecutionRecord
	for rows.Next() {
		var (
			rec                              domain.ExecutionRecord
			direction, status                string
			tradeSize, netProfit, executedAt string
		)
		if err := rows.Scan(
			&rec.ID, &rec.OpportunityID, &rec.Pair, &direction, &status,
			&tradeSize, &netProfit, &rec.DexTxID, &rec.CexOrderID, &rec.Error, &executedAt,
		); err != nil {
			return nil, fmt.Errorf("history: scan execution: %w", err)
		}

		rec.Direction = domain.Direction(direction)
		rec.Status = domain.ExecutionStatus(status)
		if rec.TradeSize, err = decimal.NewFromString(tradeSize); err != nil {
			return nil, fmt.Errorf("history: bad trade_size %q: %w", tradeSize, err)
		}
		if rec.NetProfit, err = decimal.NewFromString(netProfit); err != nil {
			return nil, fmt.Errorf("history: bad net_profit %q: %w", netProfit, err)
		}
		if rec.ExecutedAt, err = time.Parse(time.RFC3339Nano, executedAt); err != nil {
			return nil, fmt.Errorf("history: bad executed_at %q: %w", executedAt, err)
		}

		out = append(out, rec)
	}
	return out, rows.Err()
}
