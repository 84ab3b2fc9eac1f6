// Package monitor tracks peer node heights and derives the consensus view of
// the network.
package monitor

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeClient fetches chain state from a single peer node.
	NodeClient interface {
		BlockCount(ctx context.Context, url string) (uint64, error)
	}
	// RPCMetrics records outcomes of peer node RPC calls.
	RPCMetrics interface {
		Observe(operation, node string, err error, started time.Time)
	}
)
