package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts a length to uint32, failing on negative values and
// on values that do not fit.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be stored as uint32 (negative)", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be stored as uint32 (too large)", v)
	}
	return uint32(v), nil
}

// IntToUint16 is IntToUint32 for 16-bit length prefixes.
func IntToUint16(v int) (uint16, error) {
	if v < 0 || v > math.MaxUint16 {
		return 0, fmt.Errorf("integer overflow: %d cannot be stored as uint16", v)
	}
	return uint16(v), nil
}
