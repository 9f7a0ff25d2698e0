package delay

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint is a derived identifier for a canonical expression string.
// Expression conditions compiled from the same canonical source share one
// compiled program.
func Fingerprint(expr string) string {
	sum := blake3.Sum256([]byte(expr))
	return "blake3:" + hex.EncodeToString(sum[:16])
}
