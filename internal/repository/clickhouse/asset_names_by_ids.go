package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// AssetNamesByIDs returns the localized names of multiple assets in one
// query, keyed by asset txid. Unknown ids are simply absent from the result.
func (r *Repository) AssetNamesByIDs(ctx context.Context, ids []string) (map[string][]model.AssetName, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("asset_names_by_ids", err, start)
	}()

	result := make(map[string][]model.AssetName, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	const query = `
SELECT
	txid,
	names.name,
	names.lang
FROM assets
WHERE txid IN ?`

	rows, err := r.conn.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("query asset names by ids: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			txid      string
			nameTexts []string
			nameLangs []string
		)
		if err = rows.Scan(&txid, &nameTexts, &nameLangs); err != nil {
			return nil, fmt.Errorf("scan asset names: %w", err)
		}
		if len(nameTexts) != len(nameLangs) {
			err = fmt.Errorf("asset %s: name column length mismatch", txid)
			return nil, err
		}

		names := make([]model.AssetName, 0, len(nameTexts))
		for i := range nameTexts {
			names = append(names, model.AssetName{
				Name: nameTexts[i],
				Lang: nameLangs[i],
			})
		}
		result[txid] = names
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate asset names: %w", err)
	}

	return result, nil
}
