package btckeys

import (
	"bytes"
	"encoding/asn1"
	"fmt"
	"math/big"
)

// ecPrivateKey mirrors the OpenSSL EC_PRIVATEKEY template used by legacy
// wallet files:
//
//	ASN1_SEQUENCE(EC_PRIVATEKEY) = {
//	  ASN1_SIMPLE(EC_PRIVATEKEY, version, LONG),
//	  ASN1_SIMPLE(EC_PRIVATEKEY, privateKey, ASN1_OCTET_STRING),
//	  ASN1_EXP_OPT(EC_PRIVATEKEY, parameters, ECPKPARAMETERS, 0),
//	  ASN1_EXP_OPT(EC_PRIVATEKEY, publicKey, ASN1_BIT_STRING, 1)
//	} ASN1_SEQUENCE_END(EC_PRIVATEKEY)
//
// Both optional fields are always present in this profile.
//
// The Parameters field is a RawValue, and encoding/asn1 ignores tag options
// on RawValue fields, so the [0] EXPLICIT wrapper has to be built by hand;
// taggedCurveParams does that.
type ecPrivateKey struct {
	Version    int
	PrivateKey []byte
	Parameters asn1.RawValue  `asn1:"optional"`
	PublicKey  asn1.BitString `asn1:"optional,explicit,tag:1"`
}

// taggedCurveParams wraps the canonical secp256k1 parameter encoding in the
// context-specific [0] EXPLICIT tag the record requires.
func taggedCurveParams() asn1.RawValue {
	return asn1.RawValue{
		Class:      asn1.ClassContextSpecific,
		Tag:        0,
		IsCompound: true,
		Bytes:      secp256k1ParamsDER,
	}
}

// MarshalECPrivateKey encodes the key pair as the legacy EC private key
// record understood by OpenSSL and Bitcoin Core wallet storage. The public
// key bit string uses the key's current compression state, and the curve
// parameters are embedded in specified-curve form.
func MarshalECPrivateKey(kp *KeyPair) ([]byte, error) {
	if kp == nil || kp.Private == nil || kp.Public == nil {
		return nil, fmt.Errorf("%w: a full key pair is required", ErrInvalidKey)
	}
	pub := kp.Public.Serialize()
	der, err := asn1.Marshal(ecPrivateKey{
		Version:    1,
		PrivateKey: kp.Private.Serialize(),
		Parameters: taggedCurveParams(),
		PublicKey:  asn1.BitString{Bytes: pub, BitLength: len(pub) * 8},
	})
	if err != nil {
		// Pure in-memory construction; nothing here can legitimately fail.
		return nil, fmt.Errorf("encode EC private key record: %w", err)
	}
	return der, nil
}

// ParseECPrivateKey decodes a legacy EC private key record and rebuilds the
// key pair from its private scalar. The record structure is validated
// strictly, and the embedded public key must match the one re-derived from
// the scalar byte for byte; records where the two were not generated
// together fail with ErrKeyMismatch.
func ParseECPrivateKey(der []byte) (*KeyPair, error) {
	var seq asn1.RawValue
	rest, err := asn1.Unmarshal(der, &seq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after record", ErrMalformedRecord, len(rest))
	}
	if seq.Class != asn1.ClassUniversal || seq.Tag != asn1.TagSequence || !seq.IsCompound {
		return nil, fmt.Errorf("%w: top-level structure is not a sequence", ErrMalformedRecord)
	}

	elems, err := sequenceElements(seq.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if len(elems) != 4 {
		return nil, fmt.Errorf("%w: sequence has %d elements, want 4", ErrMalformedRecord, len(elems))
	}

	var version int
	if _, err := asn1.Unmarshal(elems[0].FullBytes, &version); err != nil {
		return nil, fmt.Errorf("%w: version is not an integer", ErrMalformedRecord)
	}
	if version != 1 {
		return nil, fmt.Errorf("%w: version %d, want 1", ErrMalformedRecord, version)
	}

	var privBytes []byte
	if _, err := asn1.Unmarshal(elems[1].FullBytes, &privBytes); err != nil {
		return nil, fmt.Errorf("%w: private key is not an octet string", ErrMalformedRecord)
	}

	if elems[2].Class != asn1.ClassContextSpecific || elems[2].Tag != 0 {
		return nil, fmt.Errorf("%w: curve parameters carry tag number %d, want 0", ErrMalformedRecord, elems[2].Tag)
	}
	if elems[3].Class != asn1.ClassContextSpecific || elems[3].Tag != 1 {
		return nil, fmt.Errorf("%w: public key carries tag number %d, want 1", ErrMalformedRecord, elems[3].Tag)
	}

	var pubBits asn1.BitString
	if _, err := asn1.Unmarshal(elems[3].Bytes, &pubBits); err != nil {
		return nil, fmt.Errorf("%w: public key is not a bit string", ErrMalformedRecord)
	}
	pub := pubBits.Bytes
	if len(pub) != PubKeyBytesLenCompressed && len(pub) != PubKeyBytesLenUncompressed {
		return nil, fmt.Errorf("%w: public key is %d bytes, want 33 or 65", ErrMalformedRecord, len(pub))
	}

	// Only the compressed (02, 03) and uncompressed (04) point encodings
	// are allowed, not infinity (00) or the hybrid forms (06, 07).
	switch pub[0] {
	case pubKeyPrefixCompressedEven, pubKeyPrefixCompressedOdd, pubKeyPrefixUncompressed:
	default:
		return nil, fmt.Errorf("%w: leading byte 0x%02x", ErrUnsupportedEncoding, pub[0])
	}

	compressed := len(pub) == PubKeyBytesLenCompressed
	kp, err := KeyPairFromPrivateScalar(new(big.Int).SetBytes(privBytes), compressed)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(kp.Public.Serialize(), pub) {
		return nil, ErrKeyMismatch
	}
	return kp, nil
}

// sequenceElements splits the content bytes of a DER sequence into its
// immediate child elements.
func sequenceElements(content []byte) ([]asn1.RawValue, error) {
	var elems []asn1.RawValue
	for len(content) > 0 {
		var elem asn1.RawValue
		rest, err := asn1.Unmarshal(content, &elem)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		content = rest
	}
	return elems, nil
}
