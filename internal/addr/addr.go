// Package addr provides the hex and fixed-length address primitives used
// across the TXE codec: parsing and rendering 0x-prefixed hex, and guarding
// the 20-byte address fields of a SafeTx payload.
package addr

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Length is the fixed byte length of an Ethereum address.
const Length = common.AddressLength

// ErrInvalidHex is returned when a string is not valid 0x-prefixed hex with
// an even number of digits.
var ErrInvalidHex = errors.New("invalid hex string")

// ErrInvalidAddress is returned when a decoded byte string is not exactly
// Length bytes long.
var ErrInvalidAddress = errors.New("invalid address: must be 20 bytes")

// Address is a 20-byte Ethereum address.
type Address = common.Address

// DecodeHex parses a 0x-prefixed hex string into bytes. An odd number of hex
// digits, or a missing "0x" prefix, is rejected.
func DecodeHex(s string) ([]byte, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidHex, s, err)
	}
	return b, nil
}

// EncodeHex renders b as a 0x-prefixed lowercase hex string.
func EncodeHex(b []byte) string {
	return hexutil.Encode(b)
}

// ParseAddress decodes a 0x-prefixed hex string into a 20-byte Address,
// rejecting anything that does not decode to exactly Length bytes.
func ParseAddress(s string) (Address, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return Address{}, err
	}
	return BytesToAddress(b)
}

// BytesToAddress guards that b is exactly Length bytes before wrapping it.
func BytesToAddress(b []byte) (Address, error) {
	if len(b) != Length {
		return Address{}, fmt.Errorf("%w: got %d bytes", ErrInvalidAddress, len(b))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}
