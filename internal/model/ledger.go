package model

import "time"

// Block describes a block row as stored in ClickHouse. TxIDs preserves the
// on-chain transaction order.
type Block struct {
	Hash               string
	Index              uint64
	Version            uint32
	Size               uint32
	Time               uint64
	MerkleRoot         string
	PreviousBlockHash  string
	NextBlockHash      string
	NextConsensus      string
	Nonce              string
	InvocationScript   string
	VerificationScript string
	Confirmations      uint64
	TxIDs              []string
}

// Transaction describes a transaction row as stored in ClickHouse.
// Nonce, PubKey, Description and Contract are populated only for the
// transaction types that carry them.
type Transaction struct {
	TxID        string
	Type        string
	Version     uint32
	Size        uint32
	Time        uint64
	SysFee      float64
	NetFee      float64
	Nonce       *uint64
	PubKey      *string
	Description *string
	Contract    *string
	BlockHeight uint64
	BlockHash   string
	InsertedAt  time.Time
	Scripts     []Script
	Attributes  []TransactionAttribute
	Claims      []CoinReference
}

// Script is an invocation/verification script pair.
type Script struct {
	Invocation   string
	Verification string
}

// TransactionAttribute is a usage/data attribute attached to a transaction.
type TransactionAttribute struct {
	Usage string
	Data  string
}

// CoinReference points at a prior output being claimed or spent.
type CoinReference struct {
	TxID string
	Vout uint32
}

// Vout is a transaction output. N is the output index, unique per transaction.
type Vout struct {
	TxID        string
	N           uint32
	Value       float64
	Asset       string
	AddressHash string
}

// Vin is a resolved transaction input. TxID references the transaction that
// produced the consumed output; SpendingTxID is the transaction spending it.
type Vin struct {
	SpendingTxID string
	TxID         string
	N            uint32
	Value        float64
	Asset        string
	AddressHash  string
}

// Address describes an address row. Balances, claims and histories live in
// their own tables and are fetched separately.
type Address struct {
	Address    string
	InsertedAt time.Time
}

// BalanceEntry is one slot of an address balance. Slot is an internal storage
// key and never leaves the repository layer.
type BalanceEntry struct {
	Slot   string
	Asset  string
	Amount float64
}

// Claim records GAS claimed by an address over a set of transactions.
type Claim struct {
	TxIDs  []string
	Asset  string
	Amount float64
}

// AddressHistory is a balance snapshot taken when a transaction touched the
// address. Balance maps asset id to amount at that height.
type AddressHistory struct {
	TxID        string
	BlockHeight uint64
	Time        uint64
	Balance     map[string]float64
}

// Asset describes a registered asset. Names carries the localized
// name variants; Issued and Amount accrue as the asset is issued.
type Asset struct {
	TxID       string
	Type       string
	Precision  uint8
	Owner      string
	Admin      string
	Issued     float64
	Amount     float64
	Names      []AssetName
	InsertedAt time.Time
}

// AssetName is one localized display name of an asset.
type AssetName struct {
	Name string
	Lang string
}
