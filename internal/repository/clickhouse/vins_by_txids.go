package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// VinsByTxIDs returns the resolved inputs of multiple transactions in one
// query, keyed by the spending txid.
func (r *Repository) VinsByTxIDs(ctx context.Context, txids []string) (map[string][]model.Vin, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("vins_by_txids", err, start)
	}()

	result := make(map[string][]model.Vin, len(txids))
	if len(txids) == 0 {
		return result, nil
	}

	const query = `
SELECT
	spending_txid,
	txid,
	n,
	value,
	asset,
	address_hash
FROM vins
WHERE spending_txid IN ?
ORDER BY spending_txid ASC, n ASC`

	rows, err := r.conn.Query(ctx, query, txids)
	if err != nil {
		return nil, fmt.Errorf("query vins by txids: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var vin model.Vin
		if err = rows.Scan(
			&vin.SpendingTxID,
			&vin.TxID,
			&vin.N,
			&vin.Value,
			&vin.Asset,
			&vin.AddressHash,
		); err != nil {
			return nil, fmt.Errorf("scan vin: %w", err)
		}

		result[vin.SpendingTxID] = append(result[vin.SpendingTxID], vin)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vins: %w", err)
	}

	return result, nil
}
