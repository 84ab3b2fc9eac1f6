package clickhouse

import (
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// transactionColumns is the select list shared by every transaction query.
// Order must match scanTransaction.
const transactionColumns = `
	txid,
	type,
	version,
	size,
	time,
	sys_fee,
	net_fee,
	nonce,
	pubkey,
	description,
	contract,
	block_height,
	block_hash,
	inserted_at,
	scripts.invocation,
	scripts.verification,
	attributes.usage,
	attributes.data,
	claims.txid,
	claims.vout`

func scanTransaction(rows driver.Rows) (model.Transaction, error) {
	var (
		tx                 model.Transaction
		scriptInvocations  []string
		scriptVerification []string
		attributeUsages    []string
		attributeData      []string
		claimTxIDs         []string
		claimVouts         []uint32
	)

	if err := rows.Scan(
		&tx.TxID,
		&tx.Type,
		&tx.Version,
		&tx.Size,
		&tx.Time,
		&tx.SysFee,
		&tx.NetFee,
		&tx.Nonce,
		&tx.PubKey,
		&tx.Description,
		&tx.Contract,
		&tx.BlockHeight,
		&tx.BlockHash,
		&tx.InsertedAt,
		&scriptInvocations,
		&scriptVerification,
		&attributeUsages,
		&attributeData,
		&claimTxIDs,
		&claimVouts,
	); err != nil {
		return model.Transaction{}, err
	}

	if len(scriptInvocations) != len(scriptVerification) {
		return model.Transaction{}, fmt.Errorf("transaction %s: script column length mismatch", tx.TxID)
	}
	for i := range scriptInvocations {
		tx.Scripts = append(tx.Scripts, model.Script{
			Invocation:   scriptInvocations[i],
			Verification: scriptVerification[i],
		})
	}

	if len(attributeUsages) != len(attributeData) {
		return model.Transaction{}, fmt.Errorf("transaction %s: attribute column length mismatch", tx.TxID)
	}
	for i := range attributeUsages {
		tx.Attributes = append(tx.Attributes, model.TransactionAttribute{
			Usage: attributeUsages[i],
			Data:  attributeData[i],
		})
	}

	if len(claimTxIDs) != len(claimVouts) {
		return model.Transaction{}, fmt.Errorf("transaction %s: claim column length mismatch", tx.TxID)
	}
	for i := range claimTxIDs {
		tx.Claims = append(tx.Claims, model.CoinReference{
			TxID: claimTxIDs[i],
			Vout: claimVouts[i],
		})
	}

	return tx, nil
}
