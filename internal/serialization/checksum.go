package serialization

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// ComputeChecksumReader computes SHA-256 checksum from an io.Reader
// without loading it into memory.
func ComputeChecksumReader(r io.Reader) ([32]byte, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return [32]byte{}, err
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// ValidateChecksum compares a computed checksum against the hex-encoded
// stored one. Returns ErrChecksumMismatch if they don't match.
func ValidateChecksum(computed [32]byte, stored string) error {
	if hex.EncodeToString(computed[:]) != stored {
		return ErrChecksumMismatch
	}
	return nil
}
