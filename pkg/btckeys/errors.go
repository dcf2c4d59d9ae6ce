package btckeys

import (
	"errors"
)

var (
	// ErrInvalidKey is returned when a required private scalar is missing
	// or carries one of the sentinel values 0 or 1.
	ErrInvalidKey = errors.New("invalid private key")

	// ErrMalformedRecord is returned when an ASN.1 private key record
	// violates the expected structure: wrong element count, wrong version,
	// trailing bytes, wrong tag numbers, or a public key bit string whose
	// length is neither 33 nor 65 bytes.
	ErrMalformedRecord = errors.New("malformed EC private key record")

	// ErrUnsupportedEncoding is returned when a public key inside a record
	// uses a recognized but disallowed point encoding such as infinity or
	// the hybrid forms.
	ErrUnsupportedEncoding = errors.New("unsupported public key encoding")

	// ErrKeyMismatch is returned when the public key carried in a record
	// does not match the one re-derived from the record's private scalar.
	ErrKeyMismatch = errors.New("public key in record does not match private key")
)
