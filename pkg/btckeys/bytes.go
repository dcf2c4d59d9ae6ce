package btckeys

import "math/big"

// BigIntToBytes serializes a non-negative integer as a fixed-width
// big-endian byte array, left-padded with zero bytes. Unlike a raw two's
// complement encoding there is never a leading zero sign byte: the
// magnitude from (*big.Int).Bytes is used directly. A value wider than
// width keeps only its low width bytes, which by the package invariants
// never happens for in-range private scalars.
//
// A nil value returns nil.
func BigIntToBytes(v *big.Int, width int) []byte {
	if v == nil {
		return nil
	}
	out := make([]byte, width)
	mag := v.Bytes()
	if len(mag) > width {
		mag = mag[len(mag)-width:]
	}
	copy(out[width-len(mag):], mag)
	return out
}

// ReverseBytes returns a copy of the given byte slice in reverse order.
// The input is left untouched.
func ReverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[i] = b[len(b)-1-i]
	}
	return out
}
