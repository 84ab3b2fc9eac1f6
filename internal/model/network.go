package model

// NetworkNode is a peer node with the chain height it last reported.
type NetworkNode struct {
	URL    string
	Height uint64
}

// ConsensusView is the subset of peers agreeing on the majority height.
type ConsensusView struct {
	Nodes  []string
	Height uint64
}
