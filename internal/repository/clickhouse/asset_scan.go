package clickhouse

import (
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// assetColumns is the select list shared by every asset query. Order must
// match scanAsset.
const assetColumns = `
	txid,
	type,
	precision,
	owner,
	admin,
	issued,
	amount,
	inserted_at,
	names.name,
	names.lang`

func scanAsset(rows driver.Rows) (model.Asset, error) {
	var (
		asset     model.Asset
		nameTexts []string
		nameLangs []string
	)

	if err := rows.Scan(
		&asset.TxID,
		&asset.Type,
		&asset.Precision,
		&asset.Owner,
		&asset.Admin,
		&asset.Issued,
		&asset.Amount,
		&asset.InsertedAt,
		&nameTexts,
		&nameLangs,
	); err != nil {
		return model.Asset{}, err
	}

	if len(nameTexts) != len(nameLangs) {
		return model.Asset{}, fmt.Errorf("asset %s: name column length mismatch", asset.TxID)
	}
	for i := range nameTexts {
		asset.Names = append(asset.Names, model.AssetName{
			Name: nameTexts[i],
			Lang: nameLangs[i],
		})
	}

	return asset, nil
}
