package explorer

// Response shapes. Fields deliberately omit `omitempty` so that sentinel and
// success responses expose the same key set; absent values marshal as null.

// BalanceView is one asset position of an address.
type BalanceView struct {
	Asset  string  `json:"asset"`
	Amount float64 `json:"amount"`
}

// ClaimedView is one claim recorded for an address.
type ClaimedView struct {
	TxIDs  []string `json:"txids"`
	Asset  string   `json:"asset"`
	Amount float64  `json:"amount"`
}

// HistoryView is a balance snapshot of an address at a block height.
type HistoryView struct {
	TxID        string        `json:"txid"`
	Balance     []BalanceView `json:"balance"`
	BlockHeight uint64        `json:"block_height"`
}

// AddressBalanceView is the get_balance response.
type AddressBalanceView struct {
	Address string        `json:"address"`
	Balance []BalanceView `json:"balance"`
}

// AddressClaimedView is the get_claimed response.
type AddressClaimedView struct {
	Address string        `json:"address"`
	Claimed []ClaimedView `json:"claimed"`
}

// AddressView is the get_address response.
type AddressView struct {
	Address string        `json:"address"`
	Balance []BalanceView `json:"balance"`
	Claimed []ClaimedView `json:"claimed"`
	TxIDs   []HistoryView `json:"txids"`
}

// AssetNameView is one localized asset name.
type AssetNameView struct {
	Name string `json:"name"`
	Lang string `json:"lang"`
}

// AssetView is the get_asset response.
type AssetView struct {
	TxID      string          `json:"txid"`
	Type      *string         `json:"type"`
	Precision *uint8          `json:"precision"`
	Owner     *string         `json:"owner"`
	Admin     *string         `json:"admin"`
	Issued    *float64        `json:"issued"`
	Amount    *float64        `json:"amount"`
	Name      []AssetNameView `json:"name"`
}

// ScriptView is an invocation/verification script pair.
type ScriptView struct {
	Invocation   string `json:"invocation"`
	Verification string `json:"verification"`
}

// BlockView is the get_block response.
type BlockView struct {
	Hash              string      `json:"hash"`
	Index             *uint64     `json:"index"`
	Version           *uint32     `json:"version"`
	Size              *uint32     `json:"size"`
	Time              *uint64     `json:"time"`
	MerkleRoot        *string     `json:"merkleroot"`
	PreviousBlockHash *string     `json:"previousblockhash"`
	NextBlockHash     *string     `json:"nextblockhash"`
	NextConsensus     *string     `json:"nextconsensus"`
	Nonce             *string     `json:"nonce"`
	Script            *ScriptView `json:"script"`
	Confirmations     *uint64     `json:"confirmations"`
	TxCount           *int        `json:"tx_count"`
	Transactions      []string    `json:"transactions"`
}

// AttributeView is one transaction attribute.
type AttributeView struct {
	Usage string `json:"usage"`
	Data  string `json:"data"`
}

// ClaimRefView references a prior output claimed by a transaction.
type ClaimRefView struct {
	TxID string `json:"txid"`
	Vout uint32 `json:"vout"`
}

// VoutView is a projected transaction output; Asset carries the resolved
// display name, or the raw asset id when the asset is unknown.
type VoutView struct {
	N       uint32  `json:"n"`
	Value   float64 `json:"value"`
	Asset   string  `json:"asset"`
	Address string  `json:"address"`
}

// VinView is a projected transaction input. TxID references the transaction
// that produced the consumed output.
type VinView struct {
	TxID        string  `json:"txid"`
	N           uint32  `json:"n"`
	Value       float64 `json:"value"`
	Asset       string  `json:"asset"`
	AddressHash string  `json:"address_hash"`
}

// TransactionView is the get_transaction response.
type TransactionView struct {
	TxID        string          `json:"txid"`
	Type        *string         `json:"type"`
	Version     *uint32         `json:"version"`
	Size        *uint32         `json:"size"`
	Time        *uint64         `json:"time"`
	SysFee      *float64        `json:"sys_fee"`
	NetFee      *float64        `json:"net_fee"`
	Nonce       *uint64         `json:"nonce"`
	PubKey      *string         `json:"pubkey"`
	Description *string         `json:"description"`
	Contract    *string         `json:"contract"`
	BlockHeight *uint64         `json:"block_height"`
	BlockHash   *string         `json:"block_hash"`
	Scripts     []ScriptView    `json:"scripts"`
	Attributes  []AttributeView `json:"attributes"`
	Claims      []ClaimRefView  `json:"claims"`
	Vouts       []VoutView      `json:"vouts"`
	Vins        []VinView       `json:"vins"`
}

// NodeView is one tracked peer with its reported height.
type NodeView struct {
	URL    string `json:"url"`
	Height uint64 `json:"height"`
}

// NodesView is the get_nodes response.
type NodesView struct {
	URLs []string `json:"urls"`
}

// HeightView is the get_height response.
type HeightView struct {
	Height uint64 `json:"height"`
}

func ptr[T any](v T) *T {
	return &v
}
