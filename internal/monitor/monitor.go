package monitor

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/clock"
	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
	"github.com/goodnatureofminers/neoinsight7000-backend/pkg/workerpool"
)

// Config holds tuning knobs for the network monitor.
type Config struct {
	Seeds             []string
	RefreshInterval   time.Duration
	Workers           int
	RequestsPerSecond int
}

// DefaultConfig returns sane monitor defaults.
func DefaultConfig(seeds []string) Config {
	return Config{
		Seeds:             seeds,
		RefreshInterval:   5 * time.Minute,
		Workers:           4,
		RequestsPerSecond: 10,
	}
}

func (c Config) withDefaults() Config {
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = 5 * time.Minute
	}
	if c.Workers < 1 {
		c.Workers = 4
	}
	if c.RequestsPerSecond < 1 {
		c.RequestsPerSecond = 10
	}
	return c
}

// Monitor polls seed nodes for their block heights and caches the latest
// network snapshot. Reads never block on polling.
type Monitor struct {
	client NodeClient
	cfg    Config
	logger *zap.Logger
	rl     ratelimit.Limiter

	mu          sync.RWMutex
	nodes       []model.NetworkNode
	consensus   model.ConsensusView
	heightKnown bool
}

// New builds a monitor over the configured seeds.
func New(client NodeClient, cfg Config, logger *zap.Logger) *Monitor {
	cfg = cfg.withDefaults()
	return &Monitor{
		client: client,
		cfg:    cfg,
		logger: logger,
		rl:     ratelimit.New(cfg.RequestsPerSecond),
	}
}

// Start refreshes immediately and then on every interval until the context is
// canceled.
func (m *Monitor) Start(ctx context.Context) error {
	return clock.Loop(ctx, m.cfg.RefreshInterval, m.Refresh)
}

// Refresh polls every seed once and swaps in the new snapshot. Unreachable
// nodes are logged and dropped from the snapshot rather than failing the
// refresh.
func (m *Monitor) Refresh(ctx context.Context) {
	var (
		mu      sync.Mutex
		reached []model.NetworkNode
	)

	err := workerpool.Process(ctx, m.cfg.Workers, m.cfg.Seeds, func(ctx context.Context, url string) error {
		m.rl.Take()

		height, err := m.client.BlockCount(ctx, url)
		if err != nil {
			m.logger.Warn("node unreachable",
				zap.String("url", url),
				zap.Error(err))
			return nil
		}

		mu.Lock()
		reached = append(reached, model.NetworkNode{URL: url, Height: height})
		mu.Unlock()
		return nil
	})
	if err != nil {
		m.logger.Warn("node refresh interrupted", zap.Error(err))
		return
	}

	sort.Slice(reached, func(i, j int) bool { return reached[i].URL < reached[j].URL })
	consensus, known := computeConsensus(reached)

	m.mu.Lock()
	m.nodes = reached
	m.consensus = consensus
	m.heightKnown = known
	m.mu.Unlock()

	m.logger.Info("network snapshot refreshed",
		zap.Int("reachable_nodes", len(reached)),
		zap.Uint64("consensus_height", consensus.Height),
		zap.Bool("height_known", known))
}

// Nodes returns the last snapshot of reachable nodes and their heights.
func (m *Monitor) Nodes() []model.NetworkNode {
	m.mu.RLock()
	defer m.mu.RUnlock()

	nodes := make([]model.NetworkNode, len(m.nodes))
	copy(nodes, m.nodes)
	return nodes
}

// ConsensusNodes returns the urls of nodes agreeing on the consensus height.
func (m *Monitor) ConsensusNodes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	urls := make([]string, len(m.consensus.Nodes))
	copy(urls, m.consensus.Nodes)
	return urls
}

// ConsensusHeight returns the consensus height and whether one is known.
func (m *Monitor) ConsensusHeight() (uint64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.consensus.Height, m.heightKnown
}
