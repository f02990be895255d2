package txe

import (
	"bytes"
	"errors"
	"testing"
)

func sampleEnvelope() Envelope {
	e := Envelope{
		Ciphertext: []byte{0x01, 0x02, 0x03, 0x04},
	}
	for i := range e.IV {
		e.IV[i] = byte(i + 1)
	}
	for i := range e.Tag {
		e.Tag[i] = byte(i + 100)
	}
	r1 := Recipient{}
	for i := range r1.EncryptedKey {
		r1.EncryptedKey[i] = byte(i)
	}
	for i := range r1.EphemeralPublicKey {
		r1.EphemeralPublicKey[i] = byte(i + 1)
	}
	e.Recipients = []Recipient{r1}
	return e
}

func TestRoundTrip(t *testing.T) {
	e := sampleEnvelope()
	blob, err := Encode(e)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got.Ciphertext, e.Ciphertext) || got.IV != e.IV || got.Tag != e.Tag {
		t.Fatalf("round trip mismatch: got %+v", got)
	}
	if len(got.Recipients) != 1 || got.Recipients[0] != e.Recipients[0] {
		t.Fatalf("recipient mismatch: got %+v", got.Recipients)
	}
}

func TestTrailingByteFails(t *testing.T) {
	e := sampleEnvelope()
	blob, _ := Encode(e)
	blob = append(blob, 0xff)
	if _, err := Decode(blob); !errors.Is(err, ErrTruncated) {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}

func TestTruncatedLastByteFails(t *testing.T) {
	e := sampleEnvelope()
	blob, _ := Encode(e)
	blob = blob[:len(blob)-1]
	if _, err := Decode(blob); !errors.Is(err, ErrTruncated) {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}

func TestEncodeRejectsNoRecipients(t *testing.T) {
	e := sampleEnvelope()
	e.Recipients = nil
	if _, err := Encode(e); !errors.Is(err, ErrNoRecipients) {
		t.Fatalf("got %v, want ErrNoRecipients", err)
	}
}

func TestEncodeRejectsTooManyRecipients(t *testing.T) {
	e := sampleEnvelope()
	many := make([]Recipient, MaxRecipients+1)
	e.Recipients = many
	if _, err := Encode(e); !errors.Is(err, ErrTooManyRecipients) {
		t.Fatalf("got %v, want ErrTooManyRecipients", err)
	}
}

func TestMaxRecipientsRoundTrips(t *testing.T) {
	e := sampleEnvelope()
	e.Recipients = make([]Recipient, MaxRecipients)
	blob, err := Encode(e)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Recipients) != MaxRecipients {
		t.Fatalf("got %d recipients, want %d", len(got.Recipients), MaxRecipients)
	}
}

func TestMaxCiphertextLenRoundTrips(t *testing.T) {
	e := sampleEnvelope()
	e.Ciphertext = make([]byte, MaxCiphertextLen)
	blob, err := Encode(e)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Ciphertext) != MaxCiphertextLen {
		t.Fatalf("got %d bytes, want %d", len(got.Ciphertext), MaxCiphertextLen)
	}
}

func TestEncodeRejectsOversizedCiphertext(t *testing.T) {
	e := sampleEnvelope()
	e.Ciphertext = make([]byte, MaxCiphertextLen+1)
	if _, err := Encode(e); !errors.Is(err, ErrLengthOverflow) {
		t.Fatalf("got %v, want ErrLengthOverflow", err)
	}
}

func TestEmptyCiphertextRoundTrips(t *testing.T) {
	e := sampleEnvelope()
	e.Ciphertext = nil
	blob, err := Encode(e)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Ciphertext) != 0 {
		t.Fatalf("got %d bytes, want 0", len(got.Ciphertext))
	}
}
