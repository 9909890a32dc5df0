package serialization

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	data := []byte("hadamard")
	sum, err := ComputeChecksumReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, sha256.Sum256(data), sum)

	assert.NoError(t, ValidateChecksum(sum, hex.EncodeToString(sum[:])))
	assert.ErrorIs(t, ValidateChecksum(sum, "00"), ErrChecksumMismatch)
}
