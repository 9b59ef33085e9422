package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Text returns the SHA-256 hex digest of the exact submitted text.
// Batches are content-addressed by this value: the same paste always maps to
// the same batch, so whitespace and line order are deliberately significant.
func Text(s string) string {
	digest := sha256.Sum256([]byte(s))
	return hex.EncodeToString(digest[:])
}
