package explorer

import "errors"

// ErrHeightUnavailable is returned by GetHeight while the monitor has not
// yet computed a consensus height. Callers must handle it; no height is ever
// fabricated.
var ErrHeightUnavailable = errors.New("consensus height unavailable")

// GetAllNodes returns every tracked peer with its last reported height.
func (e *Explorer) GetAllNodes() []NodeView {
	nodes := e.monitor.Nodes()

	views := make([]NodeView, 0, len(nodes))
	for _, node := range nodes {
		views = append(views, NodeView{
			URL:    node.URL,
			Height: node.Height,
		})
	}
	return views
}

// GetNodes returns the urls of the peers agreeing on the consensus height.
func (e *Explorer) GetNodes() NodesView {
	urls := e.monitor.ConsensusNodes()
	if urls == nil {
		urls = []string{}
	}
	return NodesView{URLs: urls}
}

// GetHeight returns the consensus height, or ErrHeightUnavailable when the
// monitor has no agreed value yet.
func (e *Explorer) GetHeight() (HeightView, error) {
	height, ok := e.monitor.ConsensusHeight()
	if !ok {
		return HeightView{}, ErrHeightUnavailable
	}
	return HeightView{Height: height}, nil
}
