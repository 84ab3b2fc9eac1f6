package explorer

import (
	"context"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/model"
)

// GetTransaction returns a transaction with its resolved vouts and vins, or
// the transaction sentinel when the txid is unknown.
func (e *Explorer) GetTransaction(ctx context.Context, txid string) (TransactionView, error) {
	tx, err := e.repo.TransactionByID(ctx, txid)
	if err != nil {
		return TransactionView{}, err
	}
	if tx == nil {
		return SentinelTransaction(), nil
	}

	views, err := e.projectTransactions(ctx, []model.Transaction{*tx})
	if err != nil {
		return TransactionView{}, err
	}
	return views[0], nil
}

// GetLastTransactions returns transactions inserted within the recency
// window, newest first, capped at the listing limit. A non-empty txType
// restricts results to that type.
func (e *Explorer) GetLastTransactions(ctx context.Context, txType string) ([]TransactionView, error) {
	since := e.now().Add(-e.cfg.RecencyWindow)

	txs, err := e.repo.LastTransactions(ctx, since, txType, e.cfg.ListingLimit)
	if err != nil {
		return nil, err
	}

	return e.projectTransactions(ctx, txs)
}

// projectTransactions builds views for a batch of transactions. Nested vouts
// and vins are fetched with one query each for the whole batch, and asset
// names are resolved in a single pass.
func (e *Explorer) projectTransactions(ctx context.Context, txs []model.Transaction) ([]TransactionView, error) {
	views := make([]TransactionView, 0, len(txs))
	if len(txs) == 0 {
		return views, nil
	}

	txids := make([]string, 0, len(txs))
	for _, tx := range txs {
		txids = append(txids, tx.TxID)
	}

	voutsByTx, err := e.repo.VoutsByTxIDs(ctx, txids)
	if err != nil {
		return nil, err
	}
	vinsByTx, err := e.repo.VinsByTxIDs(ctx, txids)
	if err != nil {
		return nil, err
	}

	var assetIDs []string
	for _, vouts := range voutsByTx {
		for _, vout := range vouts {
			assetIDs = append(assetIDs, vout.Asset)
		}
	}
	for _, vins := range vinsByTx {
		for _, vin := range vins {
			assetIDs = append(assetIDs, vin.Asset)
		}
	}

	names, err := NewNameResolver(e.repo).ResolveBatch(ctx, assetIDs)
	if err != nil {
		return nil, err
	}

	for _, tx := range txs {
		views = append(views, projectTransaction(tx, voutsByTx[tx.TxID], vinsByTx[tx.TxID], names))
	}
	return views, nil
}

func projectTransaction(tx model.Transaction, vouts []model.Vout, vins []model.Vin, names map[string]string) TransactionView {
	scripts := make([]ScriptView, 0, len(tx.Scripts))
	for _, script := range tx.Scripts {
		scripts = append(scripts, ScriptView{
			Invocation:   script.Invocation,
			Verification: script.Verification,
		})
	}

	attributes := make([]AttributeView, 0, len(tx.Attributes))
	for _, attribute := range tx.Attributes {
		attributes = append(attributes, AttributeView{
			Usage: attribute.Usage,
			Data:  attribute.Data,
		})
	}

	claims := make([]ClaimRefView, 0, len(tx.Claims))
	for _, claim := range tx.Claims {
		claims = append(claims, ClaimRefView{
			TxID: claim.TxID,
			Vout: claim.Vout,
		})
	}

	voutViews := make([]VoutView, 0, len(vouts))
	for _, vout := range vouts {
		voutViews = append(voutViews, VoutView{
			N:       vout.N,
			Value:   vout.Value,
			Asset:   resolveName(names, vout.Asset),
			Address: vout.AddressHash,
		})
	}

	vinViews := make([]VinView, 0, len(vins))
	for _, vin := range vins {
		vinViews = append(vinViews, VinView{
			TxID:        vin.TxID,
			N:           vin.N,
			Value:       vin.Value,
			Asset:       resolveName(names, vin.Asset),
			AddressHash: vin.AddressHash,
		})
	}

	return TransactionView{
		TxID:        tx.TxID,
		Type:        ptr(tx.Type),
		Version:     ptr(tx.Version),
		Size:        ptr(tx.Size),
		Time:        ptr(tx.Time),
		SysFee:      ptr(tx.SysFee),
		NetFee:      ptr(tx.NetFee),
		Nonce:       tx.Nonce,
		PubKey:      tx.PubKey,
		Description: tx.Description,
		Contract:    tx.Contract,
		BlockHeight: ptr(tx.BlockHeight),
		BlockHash:   ptr(tx.BlockHash),
		Scripts:     scripts,
		Attributes:  attributes,
		Claims:      claims,
		Vouts:       voutViews,
		Vins:        vinViews,
	}
}

// resolveName falls back to the raw asset id when the resolver produced no
// entry, so an asset amount is never dropped or nulled.
func resolveName(names map[string]string, assetID string) string {
	if name, ok := names[assetID]; ok && name != "" {
		return name
	}
	return assetID
}
