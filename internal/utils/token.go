package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// RandomTokenHex returns a hex string of nBytes of cryptographic randomness.
func RandomTokenHex(nBytes int) (string, error) {
	b := make([]byte, nBytes)
	_, err := rand.Read(b)
	if err != nil { return "", err }
	return hex.EncodeToString(b), nil
}

// VerificationCode returns a uniform random 6-digit code in [100000, 999999].
func VerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil { return "", err }
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
