package btckeys

import (
	"bytes"
	"testing"
)

// testScalarHex derives a well-spread test point; any in-range scalar works.
const testScalarHex = "18e14a7b6a307f426a94f8114701e7c8e774e7f9a47e2c2035db29a206321725"

func TestWithCompressionIdempotent(t *testing.T) {
	pub := mustKeyPair(t, testScalarHex, true).Public

	if again := pub.Compress(); again != pub {
		t.Error("Compressing an already-compressed key built a new value")
	}

	dec := pub.Decompress()
	if dec.IsCompressed() {
		t.Error("Decompress left the key compressed")
	}
	if again := dec.Decompress(); again != dec {
		t.Error("Decompressing an already-uncompressed key built a new value")
	}
}

func TestCompressionRoundTripPreservesPoint(t *testing.T) {
	pub := mustKeyPair(t, testScalarHex, true).Public

	back := pub.Decompress().Compress()
	if back.X().Cmp(pub.X()) != 0 || back.Y().Cmp(pub.Y()) != 0 {
		t.Error("Round trip changed the point coordinates")
	}
	if !back.IsCompressed() {
		t.Error("Round trip lost the compression flag")
	}
	if !bytes.Equal(back.Serialize(), pub.Serialize()) {
		t.Errorf("Round trip changed the encoding: %x != %x", back.Serialize(), pub.Serialize())
	}
}

func TestSerializeForms(t *testing.T) {
	kp := mustKeyPair(t, testScalarHex, true)
	pub := kp.Public

	compressed := pub.Serialize()
	if len(compressed) != PubKeyBytesLenCompressed {
		t.Fatalf("Compressed length = %d, want %d", len(compressed), PubKeyBytesLenCompressed)
	}
	if compressed[0] != 0x02 && compressed[0] != 0x03 {
		t.Errorf("Compressed prefix = 0x%02x, want 0x02 or 0x03", compressed[0])
	}

	uncompressed := pub.Decompress().Serialize()
	if len(uncompressed) != PubKeyBytesLenUncompressed {
		t.Fatalf("Uncompressed length = %d, want %d", len(uncompressed), PubKeyBytesLenUncompressed)
	}
	want := append([]byte{0x04}, BigIntToBytes(pub.X(), 32)...)
	want = append(want, BigIntToBytes(pub.Y(), 32)...)
	if !bytes.Equal(uncompressed, want) {
		t.Errorf("Uncompressed = %x, want 04||x||y", uncompressed)
	}
}

func TestSerializeReturnsCopy(t *testing.T) {
	pub := mustKeyPair(t, testScalarHex, true).Public

	first := pub.Serialize()
	first[1] ^= 0xff
	if bytes.Equal(first, pub.Serialize()) {
		t.Error("Mutating a serialized copy changed the key's encoding")
	}
}

func TestParsePublicKey(t *testing.T) {
	pub := mustKeyPair(t, testScalarHex, true).Public

	for _, compressed := range []bool{true, false} {
		encoded := pub.WithCompression(compressed).Serialize()
		parsed, err := ParsePublicKey(encoded)
		if err != nil {
			t.Fatalf("Failed to parse %d-byte encoding: %v", len(encoded), err)
		}
		if parsed.IsCompressed() != compressed {
			t.Errorf("Parsed compression flag = %v, want %v", parsed.IsCompressed(), compressed)
		}
		if !parsed.IsEqual(pub) {
			t.Error("Parsed key is a different point")
		}
		if !bytes.Equal(parsed.Serialize(), encoded) {
			t.Errorf("Re-encoded form %x differs from input %x", parsed.Serialize(), encoded)
		}
	}
}

func TestParsePublicKeyRejectsGarbage(t *testing.T) {
	if _, err := ParsePublicKey([]byte{0x05, 0x01, 0x02}); err == nil {
		t.Error("Parsing garbage bytes succeeded")
	}
	if _, err := ParsePublicKey(nil); err == nil {
		t.Error("Parsing empty input succeeded")
	}
}

func TestPubKeyHashKnownVectors(t *testing.T) {
	// The base point's hashes are fixed, well-known values (the scalar-1
	// "puzzle" addresses).
	compressedG := hexDecode(t, "02"+baseGxHex)
	uncompressedG := hexDecode(t, "04"+baseGxHex+baseGyHex)

	pubC, err := ParsePublicKey(compressedG)
	if err != nil {
		t.Fatalf("Failed to parse compressed G: %v", err)
	}
	if got := pubC.Hash160(); !bytes.Equal(got, hexDecode(t, "751e76e8199196d454941c45d1b3a323f1433bd6")) {
		t.Errorf("Hash160(compressed G) = %x", got)
	}

	pubU, err := ParsePublicKey(uncompressedG)
	if err != nil {
		t.Fatalf("Failed to parse uncompressed G: %v", err)
	}
	if got := pubU.Hash160(); !bytes.Equal(got, hexDecode(t, "91b24bf9f5288532960ac687abb035127b1d28a5")) {
		t.Errorf("Hash160(uncompressed G) = %x", got)
	}

	// Stable across calls.
	if !bytes.Equal(pubC.Hash160(), pubC.Hash160()) {
		t.Error("Hash160 is not stable across calls")
	}
}

func TestAddressKnownVectors(t *testing.T) {
	pubC, err := ParsePublicKey(hexDecode(t, "02"+baseGxHex))
	if err != nil {
		t.Fatalf("Failed to parse compressed G: %v", err)
	}
	if got := pubC.Address(PubKeyHashVersion); got != "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH" {
		t.Errorf("Compressed address = %s", got)
	}

	pubU := pubC.Decompress()
	if got := pubU.Address(PubKeyHashVersion); got != "1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm" {
		t.Errorf("Uncompressed address = %s", got)
	}
}
