package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// AddressClaims returns every claim recorded for an address in one query.
func (r *Repository) AddressClaims(ctx context.Context, hash string) ([]model.Claim, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("address_claims", err, start)
	}()

	const query = `
SELECT
	txids,
	asset,
	amount
FROM address_claims
WHERE address = ?`

	rows, err := r.conn.Query(ctx, query, hash)
	if err != nil {
		return nil, fmt.Errorf("query address claims: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var claims []model.Claim
	for rows.Next() {
		var claim model.Claim
		if err = rows.Scan(&claim.TxIDs, &claim.Asset, &claim.Amount); err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		claims = append(claims, claim)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address claims: %w", err)
	}

	return claims, nil
}
