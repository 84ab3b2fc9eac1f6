package explorer

// NotFound is the identifier value every lookup miss carries.
const NotFound = "not found"

// Sentinels are field-complete: consumers see the same key set whether the
// lookup hit or missed, with every non-identifier field null.

// SentinelBalance is the get_balance miss response.
func SentinelBalance() AddressBalanceView {
	return AddressBalanceView{Address: NotFound}
}

// SentinelClaimed is the get_claimed miss response.
func SentinelClaimed() AddressClaimedView {
	return AddressClaimedView{Address: NotFound}
}

// SentinelAddress is the get_address miss response.
func SentinelAddress() AddressView {
	return AddressView{Address: NotFound}
}

// SentinelAsset is the get_asset miss response.
func SentinelAsset() AssetView {
	return AssetView{TxID: NotFound}
}

// SentinelBlock is the get_block miss response.
func SentinelBlock() BlockView {
	return BlockView{Hash: NotFound}
}

// SentinelTransaction is the get_transaction miss response.
func SentinelTransaction() TransactionView {
	return TransactionView{TxID: NotFound}
}
