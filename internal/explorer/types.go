// Package explorer turns normalized ledger records into the denormalized
// shapes the public API serves, and answers network liveness queries.
package explorer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=explorer

type (
	// LedgerRepository describes the read operations the projection layer
	// needs from the ledger store. Lookups return nil when no record matches.
	LedgerRepository interface {
		BlockByHash(ctx context.Context, hash string) (*model.Block, error)
		BlockByIndex(ctx context.Context, index uint64) (*model.Block, error)
		LastBlocks(ctx context.Context, floor, limit uint64) ([]model.Block, error)
		HighestBlock(ctx context.Context, floor uint64) (*model.Block, error)
		TransactionByID(ctx context.Context, txid string) (*model.Transaction, error)
		LastTransactions(ctx context.Context, since time.Time, txType string, limit uint64) ([]model.Transaction, error)
		VoutsByTxIDs(ctx context.Context, txids []string) (map[string][]model.Vout, error)
		VinsByTxIDs(ctx context.Context, txids []string) (map[string][]model.Vin, error)
		AddressByHash(ctx context.Context, hash string) (*model.Address, error)
		AddressBalances(ctx context.Context, hash string) ([]model.BalanceEntry, error)
		AddressClaims(ctx context.Context, hash string) ([]model.Claim, error)
		AddressHistories(ctx context.Context, hash string) ([]model.AddressHistory, error)
		AssetByID(ctx context.Context, txid string) (*model.Asset, error)
		Assets(ctx context.Context) ([]model.Asset, error)
		AssetNamesByIDs(ctx context.Context, ids []string) (map[string][]model.AssetName, error)
	}

	// NetworkMonitor exposes the latest view computed by the peer monitor.
	// Reads never block; the view may be up to one refresh interval stale.
	NetworkMonitor interface {
		Nodes() []model.NetworkNode
		ConsensusNodes() []string
		ConsensusHeight() (uint64, bool)
	}
)

// Explorer is the read façade over the ledger store and the node monitor.
type Explorer struct {
	repo    LedgerRepository
	monitor NetworkMonitor
	cfg     Config
	now     func() time.Time
}

// New constructs an Explorer. Zero config fields fall back to defaults.
func New(repo LedgerRepository, monitor NetworkMonitor, cfg Config) *Explorer {
	return &Explorer{
		repo:    repo,
		monitor: monitor,
		cfg:     cfg.withDefaults(),
		now:     time.Now,
	}
}
