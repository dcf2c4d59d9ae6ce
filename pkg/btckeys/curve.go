package btckeys

import (
	"encoding/asn1"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// curve is the secp256k1 parameter set shared by every operation in this
// package. The decred library builds its fixed-base multiplication tables
// at init, and nothing here is mutated afterwards, so concurrent reads are
// safe without locking.
var curve = secp256k1.S256()

// CurveOrder is the order n of the secp256k1 base point G. Private scalars
// are valid in the range [1, n).
var CurveOrder = curve.N

// oidPrimeField identifies the X9.62 prime-field fieldID choice inside the
// specified-curve ECParameters structure.
var oidPrimeField = asn1.ObjectIdentifier{1, 2, 840, 10045, 1, 1}

// ecFieldID is the X9.62 fieldID for a prime field.
type ecFieldID struct {
	FieldType asn1.ObjectIdentifier
	Prime     *big.Int
}

// ecCurveCoeffs holds the curve coefficients a and b as octet strings.
// OpenSSL emits them minimally sized rather than padded to the field size,
// and the byte-exact target here is OpenSSL's output.
type ecCurveCoeffs struct {
	A []byte
	B []byte
}

// ecParameters is the X9.62 specified-curve ECParameters structure that the
// legacy EC private key record embeds, matching what OpenSSL emits for
// secp256k1 with explicit parameters.
type ecParameters struct {
	Version  int
	FieldID  ecFieldID
	Curve    ecCurveCoeffs
	Base     []byte
	Order    *big.Int
	Cofactor int
}

// secp256k1ParamsDER is the canonical DER encoding of the secp256k1
// specified-curve parameters. It is built exactly once at package init and
// reused verbatim by every exported record.
var secp256k1ParamsDER []byte

func init() {
	base := make([]byte, 0, 65)
	base = append(base, pubKeyPrefixUncompressed)
	base = append(base, BigIntToBytes(curve.Gx, 32)...)
	base = append(base, BigIntToBytes(curve.Gy, 32)...)

	der, err := asn1.Marshal(ecParameters{
		Version: 1,
		FieldID: ecFieldID{FieldType: oidPrimeField, Prime: curve.P},
		Curve: ecCurveCoeffs{
			A: []byte{0x00},    // a = 0
			B: curve.B.Bytes(), // b = 7
		},
		Base:     base,
		Order:    curve.N,
		Cofactor: 1,
	})
	if err != nil {
		panic(fmt.Sprintf("btckeys: cannot encode secp256k1 parameters: %v", err))
	}
	secp256k1ParamsDER = der
}
