// Command safetxe encrypts and decrypts Safe multisig transactions using
// the TXE envelope format, and assembles/verifies circuit inputs for the
// zero-knowledge disclosure relation.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/safe-global/safe-txe/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var cmdErr error
	switch os.Args[1] {
	case "encrypt":
		cmdErr = runEncrypt(os.Args[2:])
	case "decrypt":
		cmdErr = runDecrypt(os.Args[2:])
	case "extract":
		cmdErr = runExtract(os.Args[2:])
	case "argify":
		cmdErr = runArgify(os.Args[2:])
	case "verify":
		cmdErr = runVerify(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if cmdErr != nil {
		slog.Error("command failed", "cmd", os.Args[1], "err", cmdErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: safetxe <command> [flags]

commands:
  encrypt   build a TXE envelope from a transaction and recipient public keys
  decrypt   recover a transaction from a TXE envelope given a recipient key
  extract   assemble a circuit Input's public half (and zero-filled private)
  argify    RLP-serialize a circuit Input to the prover/verifier hex arguments
  verify    check the verifier relation against a complete circuit Input`)
}
