package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// Assets returns every registered asset, oldest registration first.
func (r *Repository) Assets(ctx context.Context) ([]model.Asset, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("assets", err, start)
	}()

	const query = `
SELECT` + assetColumns + `
FROM assets
ORDER BY inserted_at ASC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var assets []model.Asset
	for rows.Next() {
		var asset model.Asset
		if asset, err = scanAsset(rows); err != nil {
			return nil, fmt.Errorf("scan assets: %w", err)
		}
		assets = append(assets, asset)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assets: %w", err)
	}

	return assets, nil
}
