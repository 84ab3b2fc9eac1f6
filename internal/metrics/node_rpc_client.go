package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "neoinsight7000",
		Subsystem: "node_rpc_client",
		Name:      "operations_total",
		Help:      "Count of peer node RPC operations.",
	}, []string{"operation", "node", "status"})
	nodeRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "neoinsight7000",
		Subsystem: "node_rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of peer node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "node", "status"})
)

// NodeRPCClient tracks metrics for JSON-RPC calls to peer nodes.
type NodeRPCClient struct{}

// NewNodeRPCClient constructs a metrics collector for peer node RPC calls.
func NewNodeRPCClient() *NodeRPCClient {
	return &NodeRPCClient{}
}

// Observe records a single RPC call outcome and duration.
func (m NodeRPCClient) Observe(operation, node string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if node == "" {
		node = "unknown"
	}

	nodeRPCRequestsTotal.WithLabelValues(operation, node, status).Inc()
	nodeRPCRequestDuration.WithLabelValues(operation, node, status).Observe(time.Since(started).Seconds())
}
