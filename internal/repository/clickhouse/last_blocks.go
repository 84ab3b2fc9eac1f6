package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// LastBlocks returns up to limit blocks above the height floor, newest first.
func (r *Repository) LastBlocks(ctx context.Context, floor, limit uint64) ([]model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("last_blocks", err, start)
	}()

	const query = `
SELECT` + blockColumns + `
FROM blocks
WHERE height > ?
ORDER BY height DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, floor, limit)
	if err != nil {
		return nil, fmt.Errorf("query last blocks: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var blocks []model.Block
	for rows.Next() {
		var block model.Block
		if block, err = scanBlock(rows); err != nil {
			return nil, fmt.Errorf("scan last blocks: %w", err)
		}
		blocks = append(blocks, block)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate last blocks: %w", err)
	}

	return blocks, nil
}
