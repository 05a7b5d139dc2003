package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest returns the hex-encoded XXHash of data.
func Digest(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
