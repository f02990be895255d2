package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/safe-global/safe-txe/circuit"
)

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	in := fs.String("in", "", "path to the TXE blob (required)")
	structHashHex := fs.String("struct-hash", "", "hex-encoded 32-byte EIP-712 struct hash (required)")
	nonceStr := fs.String("nonce", "", "decimal transaction nonce (required)")
	out := fs.String("out", "", "path to write the JSON circuit Input (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *structHashHex == "" || *nonceStr == "" {
		return fmt.Errorf("-in, -struct-hash, and -nonce are all required")
	}

	blob, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("reading blob: %w", err)
	}
	structHash, err := hexutil.Decode(*structHashHex)
	if err != nil {
		return fmt.Errorf("parsing -struct-hash: %w", err)
	}
	nonce, ok := new(big.Int).SetString(*nonceStr, 10)
	if !ok {
		return fmt.Errorf("parsing -nonce: not a valid decimal integer")
	}

	input, err := circuit.Extract(structHash, nonce, blob)
	if err != nil {
		return fmt.Errorf("extracting: %w", err)
	}

	raw, err := marshalIndent(fromInput(input))
	if err != nil {
		return fmt.Errorf("marshaling input: %w", err)
	}
	if *out == "" {
		fmt.Println(string(raw))
		return nil
	}
	return os.WriteFile(*out, raw, 0o600)
}

func loadInput(path string) (circuit.Input, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return circuit.Input{}, fmt.Errorf("reading input file: %w", err)
	}
	var ji jsonInput
	if err := json.Unmarshal(raw, &ji); err != nil {
		return circuit.Input{}, fmt.Errorf("parsing input JSON: %w", err)
	}
	return ji.toInput()
}
