package explorer

import (
	"context"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// GetAsset returns the asset registered under the given txid, or the asset
// sentinel when none exists.
func (e *Explorer) GetAsset(ctx context.Context, hash string) (AssetView, error) {
	asset, err := e.repo.AssetByID(ctx, hash)
	if err != nil {
		return AssetView{}, err
	}
	if asset == nil {
		return SentinelAsset(), nil
	}
	return projectAsset(*asset), nil
}

// GetAssets returns every registered asset; an empty store yields an empty
// list, never null.
func (e *Explorer) GetAssets(ctx context.Context) ([]AssetView, error) {
	assets, err := e.repo.Assets(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]AssetView, 0, len(assets))
	for _, asset := range assets {
		views = append(views, projectAsset(asset))
	}
	return views, nil
}

func projectAsset(asset model.Asset) AssetView {
	names := make([]AssetNameView, 0, len(asset.Names))
	for _, name := range asset.Names {
		names = append(names, AssetNameView{
			Name: name.Name,
			Lang: name.Lang,
		})
	}

	return AssetView{
		TxID:      asset.TxID,
		Type:      ptr(asset.Type),
		Precision: ptr(asset.Precision),
		Owner:     ptr(asset.Owner),
		Admin:     ptr(asset.Admin),
		Issued:    ptr(asset.Issued),
		Amount:    ptr(asset.Amount),
		Name:      names,
	}
}
