package monitor

import (
	"sort"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// computeConsensus groups reachable nodes by reported height and picks the
// height agreed on by the most nodes. Ties break toward the higher height.
func computeConsensus(nodes []model.NetworkNode) (model.ConsensusView, bool) {
	if len(nodes) == 0 {
		return model.ConsensusView{}, false
	}

	byHeight := make(map[uint64][]string, len(nodes))
	for _, node := range nodes {
		byHeight[node.Height] = append(byHeight[node.Height], node.URL)
	}

	var (
		best      uint64
		bestCount int
	)
	for height, urls := range byHeight {
		if len(urls) > bestCount || (len(urls) == bestCount && height > best) {
			best = height
			bestCount = len(urls)
		}
	}

	urls := byHeight[best]
	sort.Strings(urls)

	return model.ConsensusView{
		Nodes:  urls,
		Height: best,
	}, true
}
