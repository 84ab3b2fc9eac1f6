package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// AddressHistories returns the balance snapshots of an address in one query,
// newest first.
func (r *Repository) AddressHistories(ctx context.Context, hash string) ([]model.AddressHistory, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("address_histories", err, start)
	}()

	const query = `
SELECT
	txid,
	block_height,
	time,
	balance
FROM address_histories
WHERE address = ?
ORDER BY time DESC`

	rows, err := r.conn.Query(ctx, query, hash)
	if err != nil {
		return nil, fmt.Errorf("query address histories: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var histories []model.AddressHistory
	for rows.Next() {
		var history model.AddressHistory
		if err = rows.Scan(
			&history.TxID,
			&history.BlockHeight,
			&history.Time,
			&history.Balance,
		); err != nil {
			return nil, fmt.Errorf("scan address history: %w", err)
		}
		histories = append(histories, history)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address histories: %w", err)
	}

	return histories, nil
}
