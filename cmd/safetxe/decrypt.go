package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/safe-global/safe-txe/cryptobox"
)

func runDecrypt(args []string) error {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	in := fs.String("in", "", "path to the TXE blob (required)")
	key := fs.String("key", "", "hex-encoded X25519 private key (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *key == "" {
		return fmt.Errorf("both -in and -key are required")
	}

	blob, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("reading blob: %w", err)
	}
	skBytes, err := hexutil.Decode(*key)
	if err != nil || len(skBytes) != 32 {
		return fmt.Errorf("-key must be a 32-byte hex X25519 private key")
	}
	var sk cryptobox.PrivateKey
	copy(sk[:], skBytes)

	tx, err := cryptobox.Decrypt(blob, sk)
	if err != nil {
		return fmt.Errorf("decrypting: %w", err)
	}

	out, err := marshalIndent(fromTransaction(tx))
	if err != nil {
		return fmt.Errorf("marshaling transaction: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
