package explorer

import (
	"context"
	"sort"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// GetBalance returns the current balance of an address, or the balance
// sentinel when the address has never been seen.
func (e *Explorer) GetBalance(ctx context.Context, hash string) (AddressBalanceView, error) {
	address, err := e.repo.AddressByHash(ctx, hash)
	if err != nil {
		return AddressBalanceView{}, err
	}
	if address == nil {
		return SentinelBalance(), nil
	}

	entries, err := e.repo.AddressBalances(ctx, hash)
	if err != nil {
		return AddressBalanceView{}, err
	}

	balance, err := e.projectBalances(ctx, NewNameResolver(e.repo), entries)
	if err != nil {
		return AddressBalanceView{}, err
	}

	return AddressBalanceView{
		Address: address.Address,
		Balance: balance,
	}, nil
}

// GetClaimed returns the claims recorded for an address, or the claimed
// sentinel when the address has never been seen.
func (e *Explorer) GetClaimed(ctx context.Context, hash string) (AddressClaimedView, error) {
	address, err := e.repo.AddressByHash(ctx, hash)
	if err != nil {
		return AddressClaimedView{}, err
	}
	if address == nil {
		return SentinelClaimed(), nil
	}

	claims, err := e.repo.AddressClaims(ctx, hash)
	if err != nil {
		return AddressClaimedView{}, err
	}

	claimed, err := e.projectClaims(ctx, NewNameResolver(e.repo), claims)
	if err != nil {
		return AddressClaimedView{}, err
	}

	return AddressClaimedView{
		Address: address.Address,
		Claimed: claimed,
	}, nil
}

// GetAddress returns the full address view with balance, claims and balance
// history, or the address sentinel when the address has never been seen.
func (e *Explorer) GetAddress(ctx context.Context, hash string) (AddressView, error) {
	address, err := e.repo.AddressByHash(ctx, hash)
	if err != nil {
		return AddressView{}, err
	}
	if address == nil {
		return SentinelAddress(), nil
	}

	entries, err := e.repo.AddressBalances(ctx, hash)
	if err != nil {
		return AddressView{}, err
	}
	claims, err := e.repo.AddressClaims(ctx, hash)
	if err != nil {
		return AddressView{}, err
	}
	histories, err := e.repo.AddressHistories(ctx, hash)
	if err != nil {
		return AddressView{}, err
	}

	resolver := NewNameResolver(e.repo)

	balance, err := e.projectBalances(ctx, resolver, entries)
	if err != nil {
		return AddressView{}, err
	}
	claimed, err := e.projectClaims(ctx, resolver, claims)
	if err != nil {
		return AddressView{}, err
	}
	txids, err := e.projectHistories(ctx, resolver, histories)
	if err != nil {
		return AddressView{}, err
	}

	return AddressView{
		Address: address.Address,
		Balance: balance,
		Claimed: claimed,
		TxIDs:   txids,
	}, nil
}

// projectBalances converts balance slots to the public list shape, replacing
// asset ids with display names. The internal slot key is dropped here.
func (e *Explorer) projectBalances(ctx context.Context, resolver *NameResolver, entries []model.BalanceEntry) ([]BalanceView, error) {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.Asset)
	}

	names, err := resolver.ResolveBatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	balance := make([]BalanceView, 0, len(entries))
	for _, entry := range entries {
		balance = append(balance, BalanceView{
			Asset:  names[entry.Asset],
			Amount: entry.Amount,
		})
	}
	return balance, nil
}

func (e *Explorer) projectClaims(ctx context.Context, resolver *NameResolver, claims []model.Claim) ([]ClaimedView, error) {
	ids := make([]string, 0, len(claims))
	for _, claim := range claims {
		ids = append(ids, claim.Asset)
	}

	names, err := resolver.ResolveBatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	claimed := make([]ClaimedView, 0, len(claims))
	for _, claim := range claims {
		claimed = append(claimed, ClaimedView{
			TxIDs:  claim.TxIDs,
			Asset:  names[claim.Asset],
			Amount: claim.Amount,
		})
	}
	return claimed, nil
}

func (e *Explorer) projectHistories(ctx context.Context, resolver *NameResolver, histories []model.AddressHistory) ([]HistoryView, error) {
	ids := make([]string, 0, len(histories))
	for _, history := range histories {
		for id := range history.Balance {
			ids = append(ids, id)
		}
	}

	names, err := resolver.ResolveBatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]HistoryView, 0, len(histories))
	for _, history := range histories {
		balance := make([]BalanceView, 0, len(history.Balance))
		for _, id := range sortedKeys(history.Balance) {
			balance = append(balance, BalanceView{
				Asset:  names[id],
				Amount: history.Balance[id],
			})
		}
		views = append(views, HistoryView{
			TxID:        history.TxID,
			Balance:     balance,
			BlockHeight: history.BlockHeight,
		})
	}
	return views, nil
}

// sortedKeys keeps history balance output deterministic; storage hands the
// per-snapshot balances over as an unordered map.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
