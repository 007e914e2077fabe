package utils

import (
	"encoding/hex"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomTokenHex(t *testing.T) {
	tok, err := RandomTokenHex(20)
	require.NoError(t, err)
	assert.Len(t, tok, 40)

	_, err = hex.DecodeString(tok)
	assert.NoError(t, err)

	other, err := RandomTokenHex(20)
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}

func TestVerificationCode_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := VerificationCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
