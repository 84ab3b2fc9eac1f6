package explorer

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// nameLang is the preferred localization for asset display names.
const nameLang = "en"

// NameResolver maps asset ids to display names, caching results for the
// lifetime of the resolver. Unknown assets resolve to their raw id so that
// projection never loses a monetary entry.
type NameResolver struct {
	repo  LedgerRepository
	local map[string]string
}

// NewNameResolver constructs a resolver backed by the ledger store.
func NewNameResolver(repo LedgerRepository) *NameResolver {
	return &NameResolver{
		repo:  repo,
		local: make(map[string]string),
	}
}

// Resolve returns the display name for one asset id.
func (r *NameResolver) Resolve(ctx context.Context, assetID string) (string, error) {
	names, err := r.ResolveBatch(ctx, []string{assetID})
	if err != nil {
		return "", err
	}
	return names[assetID], nil
}

// ResolveBatch returns display names for many asset ids, consulting the cache
// first and fetching the rest in a single repository call.
func (r *NameResolver) ResolveBatch(ctx context.Context, ids []string) (map[string]string, error) {
	result := make(map[string]string, len(ids))

	var missing []string
	for _, id := range ids {
		if name, ok := r.local[id]; ok {
			result[id] = name
			continue
		}
		if _, dup := result[id]; dup {
			continue
		}
		result[id] = id
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return result, nil
	}

	fromRepo, err := r.repo.AssetNamesByIDs(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("query asset names: %w", err)
	}

	for _, id := range missing {
		name := displayName(id, fromRepo[id])
		r.local[id] = name
		result[id] = name
	}

	return result, nil
}

// displayName picks the preferred localization, falling back to the first
// entry and finally to the raw asset id.
func displayName(assetID string, names []model.AssetName) string {
	for _, name := range names {
		if name.Lang == nameLang && name.Name != "" {
			return name.Name
		}
	}
	for _, name := range names {
		if name.Name != "" {
			return name.Name
		}
	}
	return assetID
}
