package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// AddressByHash returns the address row for the given hash, or nil when the
// address has never been seen on chain.
func (r *Repository) AddressByHash(ctx context.Context, hash string) (*model.Address, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("address_by_hash", err, start)
	}()

	const query = `
SELECT
	address,
	inserted_at
FROM addresses
WHERE address = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, hash)
	if err != nil {
		return nil, fmt.Errorf("query address by hash: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return nil, nil
	}

	var address model.Address
	if err = rows.Scan(&address.Address, &address.InsertedAt); err != nil {
		return nil, fmt.Errorf("scan address by hash: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address by hash: %w", err)
	}

	return &address, nil
}
