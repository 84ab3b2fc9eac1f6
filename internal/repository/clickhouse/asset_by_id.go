package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// AssetByID returns the asset registered under the given txid, or nil when
// none exists.
func (r *Repository) AssetByID(ctx context.Context, txid string) (*model.Asset, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("asset_by_id", err, start)
	}()

	const query = `
SELECT` + assetColumns + `
FROM assets
WHERE txid = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, txid)
	if err != nil {
		return nil, fmt.Errorf("query asset by id: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return nil, nil
	}

	asset, err := scanAsset(rows)
	if err != nil {
		return nil, fmt.Errorf("scan asset by id: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate asset by id: %w", err)
	}

	return &asset, nil
}
