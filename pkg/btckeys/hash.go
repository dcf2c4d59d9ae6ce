package btckeys

import (
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/ripemd160"
)

func sum(b []byte, h hash.Hash) []byte {
	h.Write(b)
	return h.Sum(nil)
}

// Hash160 calculates RIPEMD160(SHA256(b)). This is the hash used for
// address calculations.
func Hash160(b []byte) []byte {
	return sum(sum(b, sha256.New()), ripemd160.New())
}
