package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// BlockByHash returns the block with the given hash, or nil when none exists.
func (r *Repository) BlockByHash(ctx context.Context, hash string) (*model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_by_hash", err, start)
	}()

	const query = `
SELECT` + blockColumns + `
FROM blocks
WHERE hash = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, hash)
	if err != nil {
		return nil, fmt.Errorf("query block by hash: %w", err)
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
		return nil, fmt.Errorf("scan block by hash: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block by hash: %w", err)
	}

	return &block, nil
}
