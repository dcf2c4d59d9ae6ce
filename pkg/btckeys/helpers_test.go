package btckeys

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"
)

// hexDecode decodes a hex string, handling 0x prefix.
func hexDecode(t *testing.T, s string) []byte {
	t.Helper()
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("Failed to decode hex %q: %v", s, err)
	}
	return b
}

// hexInt parses a hex string into a big integer.
func hexInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(strings.TrimPrefix(s, "0x"), 16)
	if !ok {
		t.Fatalf("Failed to parse hex integer %q", s)
	}
	return v
}

// mustKeyPair builds a key pair from a hex scalar or fails the test.
func mustKeyPair(t *testing.T, dHex string, compressed bool) *KeyPair {
	t.Helper()
	kp, err := KeyPairFromPrivateScalar(hexInt(t, dHex), compressed)
	if err != nil {
		t.Fatalf("Failed to build key pair: %v", err)
	}
	return kp
}
