package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// AddressBalances returns every balance slot of an address in one query.
func (r *Repository) AddressBalances(ctx context.Context, hash string) ([]model.BalanceEntry, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("address_balances", err, start)
	}()

	const query = `
SELECT
	slot,
	asset,
	amount
FROM address_balances
WHERE address = ?
ORDER BY slot ASC`

	rows, err := r.conn.Query(ctx, query, hash)
	if err != nil {
		return nil, fmt.Errorf("query address balances: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var entries []model.BalanceEntry
	for rows.Next() {
		var entry model.BalanceEntry
		if err = rows.Scan(&entry.Slot, &entry.Asset, &entry.Amount); err != nil {
			return nil, fmt.Errorf("scan balance entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address balances: %w", err)
	}

	return entries, nil
}
