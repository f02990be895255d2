package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/safe-global/safe-txe/cryptobox"
)

func runEncrypt(args []string) error {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	txFile := fs.String("tx", "", "path to a JSON transaction (see jsonTransaction shape)")
	recipientsFlag := fs.String("recipients", "", "comma-separated hex X25519 public keys")
	out := fs.String("out", "", "path to write the TXE blob (required)")
	witnessOut := fs.String("witness-out", "", "path to write the JSON proving witness (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *txFile == "" || *out == "" {
		return fmt.Errorf("both -tx and -out are required")
	}

	raw, err := os.ReadFile(*txFile)
	if err != nil {
		return fmt.Errorf("reading transaction file: %w", err)
	}
	var jtx jsonTransaction
	if err := json.Unmarshal(raw, &jtx); err != nil {
		return fmt.Errorf("parsing transaction JSON: %w", err)
	}
	tx, err := jtx.toTransaction()
	if err != nil {
		return err
	}

	recipients, err := parseRecipients(*recipientsFlag)
	if err != nil {
		return err
	}

	res, err := cryptobox.Encrypt(tx, recipients)
	if err != nil {
		return fmt.Errorf("encrypting: %w", err)
	}

	if err := os.WriteFile(*out, res.Blob, 0o600); err != nil {
		return fmt.Errorf("writing blob: %w", err)
	}

	witness, err := marshalIndent(fromPrivate(res.Private))
	if err != nil {
		return fmt.Errorf("marshaling witness: %w", err)
	}
	if *witnessOut == "" {
		fmt.Println(string(witness))
		return nil
	}
	return os.WriteFile(*witnessOut, witness, 0o600)
}

func parseRecipients(flag string) ([]cryptobox.PublicKey, error) {
	if flag == "" {
		return nil, fmt.Errorf("-recipients is required (comma-separated hex X25519 public keys)")
	}
	parts := strings.Split(flag, ",")
	keys := make([]cryptobox.PublicKey, len(parts))
	for i, p := range parts {
		b, err := hexutil.Decode(strings.TrimSpace(p))
		if err != nil || len(b) != 32 {
			return nil, fmt.Errorf("recipient %d: invalid 32-byte hex public key", i)
		}
		copy(keys[i][:], b)
	}
	return keys, nil
}
