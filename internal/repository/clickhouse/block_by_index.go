package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// BlockByIndex returns the block at the given height, or nil when none exists.
func (r *Repository) BlockByIndex(ctx context.Context, index uint64) (*model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_by_index", err, start)
	}()

	const query = `
SELECT` + blockColumns + `
FROM blocks
WHERE height = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, index)
	if err != nil {
		return nil, fmt.Errorf("query block by index: %w", err)
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
		return nil, fmt.Errorf("scan block by index: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block by index: %w", err)
	}

	return &block, nil
}
