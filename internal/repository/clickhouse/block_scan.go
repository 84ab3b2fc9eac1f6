package clickhouse

import (
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// blockColumns is the select list shared by every block query. Order must
// match scanBlock.
const blockColumns = `
	hash,
	height,
	version,
	size,
	time,
	merkleroot,
	previousblockhash,
	nextblockhash,
	nextconsensus,
	nonce,
	invocation_script,
	verification_script,
	confirmations,
	tx_ids`

func scanBlock(rows driver.Rows) (model.Block, error) {
	var block model.Block
	err := rows.Scan(
		&block.Hash,
		&block.Index,
		&block.Version,
		&block.Size,
		&block.Time,
		&block.MerkleRoot,
		&block.PreviousBlockHash,
		&block.NextBlockHash,
		&block.NextConsensus,
		&block.Nonce,
		&block.InvocationScript,
		&block.VerificationScript,
		&block.Confirmations,
		&block.TxIDs,
	)
	return block, err
}
