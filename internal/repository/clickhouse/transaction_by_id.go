package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// TransactionByID returns the transaction with the given txid, or nil when
// none exists.
func (r *Repository) TransactionByID(ctx context.Context, txid string) (*model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_by_id", err, start)
	}()

	const query = `
SELECT` + transactionColumns + `
FROM transactions
WHERE txid = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, txid)
	if err != nil {
		return nil, fmt.Errorf("query transaction by id: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return nil, nil
	}

	tx, err := scanTransaction(rows)
	if err != nil {
		return nil, fmt.Errorf("scan transaction by id: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction by id: %w", err)
	}

	return &tx, nil
}
