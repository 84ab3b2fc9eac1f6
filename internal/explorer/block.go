package explorer

import (
	"context"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// GetBlock resolves a block by height when the key parses as an integer and
// by hash otherwise. A miss yields the block sentinel, never an error.
func (e *Explorer) GetBlock(ctx context.Context, key string) (BlockView, error) {
	var (
		block *model.Block
		err   error
	)

	if k := ParseBlockKey(key); k.ByHeight {
		block, err = e.repo.BlockByIndex(ctx, k.Height)
	} else {
		block, err = e.repo.BlockByHash(ctx, k.Hash)
	}
	if err != nil {
		return BlockView{}, err
	}
	if block == nil {
		return SentinelBlock(), nil
	}

	return projectBlock(*block), nil
}

// GetLastBlocks returns the newest blocks above the configured height floor,
// descending by height, capped at the listing limit.
func (e *Explorer) GetLastBlocks(ctx context.Context) ([]BlockView, error) {
	blocks, err := e.repo.LastBlocks(ctx, e.cfg.BlockIndexFloor, e.cfg.ListingLimit)
	if err != nil {
		return nil, err
	}

	views := make([]BlockView, 0, len(blocks))
	for _, block := range blocks {
		views = append(views, projectBlock(block))
	}
	return views, nil
}

// GetHighestBlock returns the highest stored block, or the block sentinel
// when the store is empty.
func (e *Explorer) GetHighestBlock(ctx context.Context) (BlockView, error) {
	block, err := e.repo.HighestBlock(ctx, e.cfg.BlockIndexFloor)
	if err != nil {
		return BlockView{}, err
	}
	if block == nil {
		return SentinelBlock(), nil
	}
	return projectBlock(*block), nil
}

func projectBlock(block model.Block) BlockView {
	transactions := make([]string, 0, len(block.TxIDs))
	transactions = append(transactions, block.TxIDs...)

	return BlockView{
		Hash:              block.Hash,
		Index:             ptr(block.Index),
		Version:           ptr(block.Version),
		Size:              ptr(block.Size),
		Time:              ptr(block.Time),
		MerkleRoot:        ptr(block.MerkleRoot),
		PreviousBlockHash: ptr(block.PreviousBlockHash),
		NextBlockHash:     ptr(block.NextBlockHash),
		NextConsensus:     ptr(block.NextConsensus),
		Nonce:             ptr(block.Nonce),
		Script: &ScriptView{
			Invocation:   block.InvocationScript,
			Verification: block.VerificationScript,
		},
		Confirmations: ptr(block.Confirmations),
		TxCount:       ptr(len(transactions)),
		Transactions:  transactions,
	}
}
