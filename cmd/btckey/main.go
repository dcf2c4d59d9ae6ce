package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/mahdiidarabi/btckeys/pkg/btckeys"
)

func main() {
	var (
		generate     = flag.Bool("generate", false, "Generate a fresh key pair")
		privHex      = flag.String("priv", "", "Private key as a hex scalar")
		importFile   = flag.String("import", "", "Path to an ASN.1 key record to load")
		exportFile   = flag.String("export", "", "Path to write the ASN.1 key record to")
		uncompressed = flag.Bool("uncompressed", false, "Use the uncompressed public key form")
		version      = flag.Int("address-version", int(btckeys.PubKeyHashVersion), "Address version byte")
	)
	flag.Parse()

	modes := 0
	for _, on := range []bool{*generate, *privHex != "", *importFile != ""} {
		if on {
			modes++
		}
	}
	if modes != 1 {
		fmt.Fprintf(os.Stderr, "Error: exactly one of --generate, --priv or --import is required\n")
		flag.Usage()
		os.Exit(1)
	}

	var (
		kp  *btckeys.KeyPair
		err error
	)
	switch {
	case *generate:
		kp, err = btckeys.GenerateKeyPair()
		if err == nil && *uncompressed {
			kp = &btckeys.KeyPair{Private: kp.Private, Public: kp.Public.Decompress()}
		}

	case *privHex != "":
		d, ok := new(big.Int).SetString(strings.TrimPrefix(*privHex, "0x"), 16)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: --priv is not a hex scalar\n")
			os.Exit(1)
		}
		kp, err = btckeys.KeyPairFromPrivateScalar(d, !*uncompressed)

	case *importFile != "":
		var der []byte
		der, err = os.ReadFile(*importFile)
		if err == nil {
			kp, err = btckeys.ParseECPrivateKey(der)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("private key:  %x\n", kp.Private.Serialize())
	fmt.Printf("public key:   %x\n", kp.Public.Serialize())
	fmt.Printf("pubkey hash:  %x\n", kp.Public.Hash160())
	fmt.Printf("address:      %s\n", kp.Public.Address(byte(*version)))
	fmt.Printf("compressed:   %v\n", kp.Public.IsCompressed())

	if *exportFile != "" {
		der, err := btckeys.MarshalECPrivateKey(kp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*exportFile, der, 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %d-byte key record to %s\n", len(der), *exportFile)
	}
}
