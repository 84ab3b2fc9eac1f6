package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// LastTransactions returns up to limit transactions inserted at or after
// since, newest first. A non-empty txType restricts results to that type.
func (r *Repository) LastTransactions(ctx context.Context, since time.Time, txType string, limit uint64) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("last_transactions", err, start)
	}()

	query := `
SELECT` + transactionColumns + `
FROM transactions
WHERE inserted_at >= ?`
	args := []any{since}

	if txType != "" {
		query += `
  AND type = ?`
		args = append(args, txType)
	}

	query += `
ORDER BY inserted_at DESC
LIMIT ?`
	args = append(args, limit)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query last transactions: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var txs []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		if tx, err = scanTransaction(rows); err != nil {
			return nil, fmt.Errorf("scan last transactions: %w", err)
		}
		txs = append(txs, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate last transactions: %w", err)
	}

	return txs, nil
}
