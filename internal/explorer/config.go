package explorer

import "time"

// Listing policy defaults. The height floor excludes pre-checkpoint blocks
// from listings, the recency window bounds the transaction listing, and the
// listing limit caps every multi-record endpoint.
const (
	DefaultBlockIndexFloor uint64 = 1_200_000
	DefaultRecencyWindow          = time.Hour
	DefaultListingLimit    uint64 = 20
)

// Config carries the listing policy knobs.
type Config struct {
	BlockIndexFloor uint64
	RecencyWindow   time.Duration
	ListingLimit    uint64
}

// DefaultConfig returns the production listing policy.
func DefaultConfig() Config {
	return Config{
		BlockIndexFloor: DefaultBlockIndexFloor,
		RecencyWindow:   DefaultRecencyWindow,
		ListingLimit:    DefaultListingLimit,
	}
}

func (c Config) withDefaults() Config {
	if c.BlockIndexFloor == 0 {
		c.BlockIndexFloor = DefaultBlockIndexFloor
	}
	if c.RecencyWindow <= 0 {
		c.RecencyWindow = DefaultRecencyWindow
	}
	if c.ListingLimit == 0 {
		c.ListingLimit = DefaultListingLimit
	}
	return c
}
