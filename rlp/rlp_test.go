package rlp

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
)

func TestEncodeEmptyString(t *testing.T) {
	got, err := Encode([]byte{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(got, []byte{0x80}) {
		t.Fatalf("got %x, want 80", got)
	}
}

func TestEncodeSingleByteBelow0x80(t *testing.T) {
	got, err := Encode([]byte{0x7f})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(got, []byte{0x7f}) {
		t.Fatalf("got %x, want 7f", got)
	}
}

func TestEncodeShortString(t *testing.T) {
	got, err := Encode([]byte("hello world"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := append([]byte{0x80 + 11}, []byte("hello world")...)
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestEncodeLongStringBoundary(t *testing.T) {
	// 55 bytes: still short form.
	short := make([]byte, 55)
	got, err := Encode(short)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got[0] != 0x80+55 {
		t.Fatalf("55-byte string should use short form, got tag %#x", got[0])
	}

	// 56 bytes: long form with 1-byte length.
	long := make([]byte, 56)
	got, err = Encode(long)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got[0] != 0xb7+1 || got[1] != 56 {
		t.Fatalf("56-byte string should use long form, got %x", got[:2])
	}
}

func TestEncodeZeroInteger(t *testing.T) {
	got, err := Encode(uint(0))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(got, []byte{0x80}) {
		t.Fatalf("zero integer should encode as 0x80, got %x", got)
	}
}

func TestEncodeEmptyList(t *testing.T) {
	got, err := Encode(List{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(got, []byte{0xc0}) {
		t.Fatalf("got %x, want c0", got)
	}
}

func TestEncodeListMixedTypes(t *testing.T) {
	got, err := Encode(List{uint(1), []byte("hello"), []byte{0x42}})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	v, err := Decode(got)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	items, err := AsList(v)
	if err != nil {
		t.Fatalf("AsList: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
}

func TestRoundTripTree(t *testing.T) {
	tree := List{
		[]byte{0x01, 0x02, 0x03},
		List{uint(42), []byte("nested")},
		[]byte{},
		big.NewInt(1_000_000_000_000_000),
	}
	enc, err := Encode(tree)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	items, err := AsList(dec)
	if err != nil {
		t.Fatalf("AsList: %v", err)
	}
	b0, _ := AsBytes(items[0])
	if !bytes.Equal(b0, []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("field 0 mismatch: %x", b0)
	}
	nested, _ := AsList(items[1])
	n0, err := DecodeUint64(mustBytes(t, nested[0]))
	if err != nil || n0 != 42 {
		t.Fatalf("nested field 0: got %d, err %v", n0, err)
	}
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	enc, _ := Encode([]byte("hi"))
	enc = append(enc, 0xff)
	_, err := Decode(enc)
	if !errors.Is(err, ErrTrailingBytes) {
		t.Fatalf("got %v, want ErrTrailingBytes", err)
	}
}

func TestDecodeRejectsTruncatedLength(t *testing.T) {
	// Tag says 10-byte string, but only 2 bytes follow.
	_, err := Decode([]byte{0x80 + 10, 0x01, 0x02})
	if !errors.Is(err, ErrBadLengthPrefix) {
		t.Fatalf("got %v, want ErrBadLengthPrefix", err)
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	_, err := Decode(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
}

func TestDecodeRejectsNonMinimalInteger(t *testing.T) {
	_, err := DecodeUint64([]byte{0x00, 0x01})
	if !errors.Is(err, ErrFieldTypeMismatch) {
		t.Fatalf("got %v, want ErrFieldTypeMismatch", err)
	}
}

func mustBytes(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := AsBytes(v)
	if err != nil {
		t.Fatalf("AsBytes: %v", err)
	}
	return b
}
