package rlp

import (
	"fmt"
	"math/big"
)

// DecodeBigInt interprets an RLP byte-string payload as a minimal big-endian
// unsigned integer. A leading zero byte means the original encoding was not
// minimal and is rejected.
func DecodeBigInt(b []byte) (*big.Int, error) {
	if len(b) > 0 && b[0] == 0 {
		return nil, fmt.Errorf("%w: non-minimal integer encoding", ErrFieldTypeMismatch)
	}
	return new(big.Int).SetBytes(b), nil
}

// DecodeUint64 is DecodeBigInt restricted to values that fit in a uint64.
func DecodeUint64(b []byte) (uint64, error) {
	n, err := DecodeBigInt(b)
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("%w: value overflows uint64", ErrFieldTypeMismatch)
	}
	return n.Uint64(), nil
}

// AsBytes type-asserts v (as returned by Decode) to a byte string, failing
// with ErrFieldTypeMismatch if v is actually a List.
func AsBytes(v interface{}) ([]byte, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: expected byte string, got %T", ErrFieldTypeMismatch, v)
	}
	return b, nil
}

// AsList type-asserts v to a List, failing with ErrFieldTypeMismatch if v is
// actually a byte string.
func AsList(v interface{}) (List, error) {
	l, ok := v.(List)
	if !ok {
		return nil, fmt.Errorf("%w: expected list, got %T", ErrFieldTypeMismatch, v)
	}
	return l, nil
}
