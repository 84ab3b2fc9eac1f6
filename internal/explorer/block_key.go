package explorer

import "strconv"

// BlockKey is a tagged block lookup key: by height when the raw input parses
// as an unsigned integer, by hash otherwise.
type BlockKey struct {
	Height   uint64
	Hash     string
	ByHeight bool
}

// ParseBlockKey classifies a raw lookup key. Parse failure means "look up by
// hash"; it is never an error.
func ParseBlockKey(raw string) BlockKey {
	if height, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return BlockKey{Height: height, ByHeight: true}
	}
	return BlockKey{Hash: raw}
}
