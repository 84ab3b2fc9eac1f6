package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// HighestBlock returns the highest block above the height floor, or nil when
// the store holds none.
func (r *Repository) HighestBlock(ctx context.Context, floor uint64) (*model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("highest_block", err, start)
	}()

	const query = `
SELECT` + blockColumns + `
FROM blocks
WHERE height > ?
ORDER BY height DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, floor)
	if err != nil {
		return nil, fmt.Errorf("query highest block: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return nil, nil
	}

	block, err := scanBlock(rows)
	if err != nil {
		return nil, fmt.Errorf("scan highest block: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate highest block: %w", err)
	}

	return &block, nil
}
