package main

import (
	"flag"
	"fmt"

	"github.com/safe-global/safe-txe/circuit"
)

func runArgify(args []string) error {
	fs := flag.NewFlagSet("argify", flag.ExitOnError)
	in := fs.String("in", "", "path to a JSON circuit Input, public and private halves both populated (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-in is required")
	}

	input, err := loadInput(*in)
	if err != nil {
		return err
	}

	publicHex, privateHex, err := circuit.Argify(input)
	if err != nil {
		return fmt.Errorf("argifying: %w", err)
	}

	fmt.Printf("public:  %s\nprivate: %s\n", publicHex, privateHex)
	return nil
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	in := fs.String("in", "", "path to a JSON circuit Input, public and private halves both populated (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-in is required")
	}

	input, err := loadInput(*in)
	if err != nil {
		return err
	}

	if err := circuit.Verify(input); err != nil {
		return fmt.Errorf("relation rejected: %w", err)
	}
	fmt.Println("ok")
	return nil
}
