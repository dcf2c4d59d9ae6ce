package btckeys

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PrivateKey is a secp256k1 private scalar d with 1 < d < n. The value is
// immutable after construction.
type PrivateKey struct {
	d *big.Int
}

// D returns a copy of the private scalar.
func (p *PrivateKey) D() *big.Int {
	return new(big.Int).Set(p.d)
}

// Serialize returns the scalar as exactly 32 big-endian bytes, left-padded
// with zeros.
func (p *PrivateKey) Serialize() []byte {
	return BigIntToBytes(p.d, 32)
}

// KeyPair binds a private scalar to the public point derived from it. For
// any pair built by this package the public key equals d·G.
type KeyPair struct {
	Private *PrivateKey
	Public  *PublicKey
}

var bigOne = big.NewInt(1)

// PublicPointFromPrivate returns the public key point d·G for the given
// private scalar. Scalars wider than the group order are reduced modulo n
// first, so hash-derived values may be passed directly. The fixed-base
// multiplication is delegated to the curve library, which uses precomputed
// tables.
func PublicPointFromPrivate(d *big.Int) *secp256k1.PublicKey {
	if d.BitLen() > CurveOrder.BitLen() {
		d = new(big.Int).Mod(d, CurveOrder)
	}
	return secp256k1.PrivKeyFromBytes(BigIntToBytes(d, 32)).PubKey()
}

// GenerateKeyPair draws a fresh private scalar from the curve library's key
// generation routine, uniform in [1, n) over crypto/rand, and derives the
// matching public point. The result's public key is tagged compressed.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate private key: %w", err)
	}
	return &KeyPair{
		Private: &PrivateKey{d: new(big.Int).SetBytes(priv.Serialize())},
		Public:  newPublicKey(priv.PubKey(), true),
	}, nil
}

// KeyPairFromPrivateScalar derives the public point for d and tags it with
// the requested compression flag. A scalar is mandatory on this path.
//
// The sentinel values 0 and 1 are rejected outright: scripting layers and
// type-confusion bugs in callers routinely produce them, and neither is a
// usable key.
func KeyPairFromPrivateScalar(d *big.Int, compressed bool) (*KeyPair, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: a private scalar is required", ErrInvalidKey)
	}
	if d.Sign() <= 0 || d.Cmp(bigOne) == 0 {
		return nil, fmt.Errorf("%w: scalar %v is not a usable key", ErrInvalidKey, d)
	}
	return &KeyPair{
		Private: &PrivateKey{d: new(big.Int).Set(d)},
		Public:  newPublicKey(PublicPointFromPrivate(d), compressed),
	}, nil
}

// KeyPairFromPrivateBytes interprets b as an unsigned big-endian scalar and
// derives the key pair from it.
func KeyPairFromPrivateBytes(b []byte, compressed bool) (*KeyPair, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: private key bytes are required", ErrInvalidKey)
	}
	return KeyPairFromPrivateScalar(new(big.Int).SetBytes(b), compressed)
}
