package safetx

import (
	"math/big"
	"testing"

	"github.com/safe-global/safe-txe/internal/addr"
)

func addrN(b byte) addr.Address {
	var a addr.Address
	for i := range a {
		a[i] = b
	}
	return a
}

func TestRoundTrip(t *testing.T) {
	tx := Transaction{
		To:             addrN(0xa1),
		Value:          big.NewInt(2),
		Data:           []byte{0x03, 0x04, 0x05, 0x06},
		Operation:      DelegateCall,
		SafeTxGas:      big.NewInt(7),
		BaseGas:        big.NewInt(8),
		GasPrice:       big.NewInt(9),
		GasToken:       addrN(0xa2),
		RefundReceiver: addrN(0xa3),
	}

	enc, err := tx.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Equal(tx) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, tx)
	}
}

func TestAllZeroTransaction(t *testing.T) {
	tx := Transaction{
		Value:     big.NewInt(0),
		Operation: Call,
		SafeTxGas: big.NewInt(0),
		BaseGas:   big.NewInt(0),
		GasPrice:  big.NewInt(0),
	}
	enc, err := tx.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Equal(tx) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, tx)
	}
}

func TestDecodeRejectsWrongFieldCount(t *testing.T) {
	enc, _ := encodeShortList(3)
	if _, err := Decode(enc); err == nil {
		t.Fatal("expected error for wrong field count")
	}
}

func TestDecodeRejectsBadOperation(t *testing.T) {
	if _, err := decodeOperation([]byte{0x02}); err == nil {
		t.Fatal("expected error for operation byte 0x02")
	}
}

// encodeShortList is a minimal RLP-list-of-N-empty-strings encoder used only
// to exercise Decode's field-count check.
func encodeShortList(n int) ([]byte, error) {
	out := []byte{0xc0 + byte(n)}
	for i := 0; i < n; i++ {
		out = append(out, 0x80)
	}
	return out, nil
}
