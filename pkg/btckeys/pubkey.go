package btckeys

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Serialized public key lengths.
const (
	// PubKeyBytesLenCompressed is the length of a compressed public key:
	// a 0x02/0x03 parity prefix followed by the 32-byte x coordinate.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the length of an uncompressed public
	// key: a 0x04 prefix followed by the 32-byte x and y coordinates.
	PubKeyBytesLenUncompressed = 65
)

const (
	pubKeyPrefixCompressedEven byte = 0x02
	pubKeyPrefixCompressedOdd  byte = 0x03
	pubKeyPrefixUncompressed   byte = 0x04
)

// PubKeyHashVersion is the version byte for mainnet pay-to-pubkey-hash
// addresses.
const PubKeyHashVersion byte = 0x00

// PublicKey is a point on secp256k1 together with the compression state
// that decides its canonical serialized form. The encoded bytes are
// computed once at construction; the value never changes afterwards, so a
// PublicKey may be shared freely across goroutines. Changing the
// compression state produces a new value over the same point.
type PublicKey struct {
	point      *secp256k1.PublicKey
	compressed bool
	encoded    []byte
}

func newPublicKey(point *secp256k1.PublicKey, compressed bool) *PublicKey {
	var encoded []byte
	if compressed {
		encoded = point.SerializeCompressed()
	} else {
		encoded = point.SerializeUncompressed()
	}
	return &PublicKey{point: point, compressed: compressed, encoded: encoded}
}

// ParsePublicKey builds a public-only key from a serialized point. The
// compression state of the given encoding is preserved on the result, so a
// 33-byte input yields a compressed key and a 65-byte input an
// uncompressed one.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	point, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return newPublicKey(point, len(b) == PubKeyBytesLenCompressed), nil
}

// WithCompression returns a key whose serialized form uses the requested
// compression state. When the state already matches, the receiver itself
// is returned, so the operation is idempotent; otherwise a new value over
// the same (x, y) point is built.
func (p *PublicKey) WithCompression(compressed bool) *PublicKey {
	if p.compressed == compressed {
		return p
	}
	return newPublicKey(p.point, compressed)
}

// Compress returns the key in compressed serialized form.
func (p *PublicKey) Compress() *PublicKey {
	return p.WithCompression(true)
}

// Decompress returns the key in uncompressed serialized form.
func (p *PublicKey) Decompress() *PublicKey {
	return p.WithCompression(false)
}

// IsCompressed reports which serialized form is canonical for this value.
func (p *PublicKey) IsCompressed() bool {
	return p.compressed
}

// Serialize returns a copy of the encoded point under the current
// compression state: 33 bytes 02/03||x, or 65 bytes 04||x||y.
func (p *PublicKey) Serialize() []byte {
	out := make([]byte, len(p.encoded))
	copy(out, p.encoded)
	return out
}

// X returns the affine x coordinate of the point.
func (p *PublicKey) X() *big.Int {
	return p.point.X()
}

// Y returns the affine y coordinate of the point.
func (p *PublicKey) Y() *big.Int {
	return p.point.Y()
}

// IsEqual reports whether both keys describe the same curve point. The
// compression states may differ.
func (p *PublicKey) IsEqual(other *PublicKey) bool {
	return p.point.IsEqual(other.point)
}

// Hash160 returns RIPEMD160(SHA256(serialized point)), the 20-byte pubkey
// hash embedded in addresses. The currently-encoded form is hashed, so the
// compressed and uncompressed views of the same point hash differently.
func (p *PublicKey) Hash160() []byte {
	return Hash160(p.encoded)
}

// Address renders the pay-to-pubkey-hash address of this key under the
// given version byte.
func (p *PublicKey) Address(version byte) string {
	return base58.CheckEncode(p.Hash160(), version)
}
