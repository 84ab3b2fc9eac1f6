package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// VoutsByTxIDs returns the outputs of multiple transactions in one query,
// keyed by txid and ordered by output index.
func (r *Repository) VoutsByTxIDs(ctx context.Context, txids []string) (map[string][]model.Vout, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("vouts_by_txids", err, start)
	}()

	result := make(map[string][]model.Vout, len(txids))
	if len(txids) == 0 {
		return result, nil
	}

	const query = `
SELECT
	txid,
	n,
	value,
	asset,
	address_hash
FROM vouts
WHERE txid IN ?
ORDER BY txid ASC, n ASC`

	rows, err := r.conn.Query(ctx, query, txids)
	if err != nil {
		return nil, fmt.Errorf("query vouts by txids: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var vout model.Vout
		if err = rows.Scan(
			&vout.TxID,
			&vout.N,
			&vout.Value,
			&vout.Asset,
			&vout.AddressHash,
		); err != nil {
			return nil, fmt.Errorf("scan vout: %w", err)
		}

		result[vout.TxID] = append(result[vout.TxID], vout)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vouts: %w", err)
	}

	return result, nil
}
