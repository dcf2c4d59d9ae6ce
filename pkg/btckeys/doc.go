// Package btckeys implements secp256k1 key pairs with the encoding
// conventions used by Bitcoin-compatible wallets.
//
// It covers deriving a public point from a private scalar, switching a
// public key between its compressed and uncompressed serialized forms,
// reading and writing the legacy ASN.1 private key record produced by
// OpenSSL and stored by Bitcoin Core wallets, and computing the
// RIPEMD160(SHA256(pubkey)) hash embedded in addresses.
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/btckeys/pkg/btckeys"
//
//	// Generate a fresh key pair (public key tagged compressed)
//	kp, err := btckeys.GenerateKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("pubkey:  %x\n", kp.Public.Serialize())
//	fmt.Printf("address: %s\n", kp.Public.Address(btckeys.PubKeyHashVersion))
//
//	// Export to the legacy OpenSSL/Bitcoin Core record and back
//	der, err := btckeys.MarshalECPrivateKey(kp)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	back, err := btckeys.ParseECPrivateKey(der)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Importing existing keys
//
//	// From a raw 32-byte scalar, choosing the serialized form
//	kp, err := btckeys.KeyPairFromPrivateBytes(raw, true)
//
//	// Public-only, preserving the encoding's compression state
//	pub, err := btckeys.ParsePublicKey(encoded)
//
// All exported key types are immutable values. Changing a public key's
// compression state yields a new value over the same curve point, so keys
// can be shared across goroutines without synchronization.
package btckeys
