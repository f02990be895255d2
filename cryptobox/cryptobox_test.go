package cryptobox

import (
	"crypto/ecdh"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/safe-global/safe-txe/internal/addr"
	"github.com/safe-global/safe-txe/safetx"
)

func addrN(b byte) addr.Address {
	var a addr.Address
	for i := range a {
		a[i] = b
	}
	return a
}

func sampleTx() safetx.Transaction {
	return safetx.Transaction{
		To:             addrN(0xa1),
		Value:          big.NewInt(2),
		Data:           []byte{0x03, 0x04, 0x05, 0x06},
		Operation:      safetx.Call,
		SafeTxGas:      big.NewInt(7),
		BaseGas:        big.NewInt(8),
		GasPrice:       big.NewInt(9),
		GasToken:       addrN(0xa2),
		RefundReceiver: addrN(0xa3),
	}
}

func newStaticKeypair(t *testing.T) (PrivateKey, PublicKey) {
	t.Helper()
	key, err := ecdh.X25519().GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generating static keypair: %v", err)
	}
	var sk PrivateKey
	var pk PublicKey
	copy(sk[:], key.Bytes())
	copy(pk[:], key.PublicKey().Bytes())
	return sk, pk
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	sk, pk := newStaticKeypair(t)
	tx := sampleTx()

	res, err := Encrypt(tx, []PublicKey{pk})
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	got, err := Decrypt(res.Blob, sk)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !got.Equal(tx) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, tx)
	}
}

func TestMultiRecipientEachCanDecrypt(t *testing.T) {
	const n = 5
	sks := make([]PrivateKey, n)
	pks := make([]PublicKey, n)
	for i := range sks {
		sks[i], pks[i] = newStaticKeypair(t)
	}

	tx := sampleTx()
	res, err := Encrypt(tx, pks)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	for i, sk := range sks {
		got, err := Decrypt(res.Blob, sk)
		if err != nil {
			t.Fatalf("recipient %d: Decrypt: %v", i, err)
		}
		if !got.Equal(tx) {
			t.Fatalf("recipient %d: round trip mismatch: got %+v", i, got)
		}
	}
}

func TestDecryptRejectsNonRecipient(t *testing.T) {
	_, pk := newStaticKeypair(t)
	outsiderSK, _ := newStaticKeypair(t)

	res, err := Encrypt(sampleTx(), []PublicKey{pk})
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if _, err := Decrypt(res.Blob, outsiderSK); !errors.Is(err, ErrNotARecipient) {
		t.Fatalf("got %v, want ErrNotARecipient", err)
	}
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	sk, pk := newStaticKeypair(t)
	res, err := Encrypt(sampleTx(), []PublicKey{pk})
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	tampered := append([]byte{}, res.Blob...)
	tampered[2] ^= 0xff // first ciphertext byte, after the 2-byte length prefix

	if _, err := Decrypt(tampered, sk); !errors.Is(err, ErrAuthTagInvalid) {
		t.Fatalf("got %v, want ErrAuthTagInvalid", err)
	}
}

func TestEncryptRejectsNoRecipients(t *testing.T) {
	if _, err := Encrypt(sampleTx(), nil); !errors.Is(err, ErrNoRecipients) {
		t.Fatalf("got %v, want ErrNoRecipients", err)
	}
}

func TestEncryptPreservesRecipientOrder(t *testing.T) {
	_, pk1 := newStaticKeypair(t)
	_, pk2 := newStaticKeypair(t)

	res, err := Encrypt(sampleTx(), []PublicKey{pk1, pk2})
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if len(res.Private.Recipients) != 2 {
		t.Fatalf("got %d recipient witnesses, want 2", len(res.Private.Recipients))
	}
	if res.Private.Recipients[0].PublicKey != pk1 || res.Private.Recipients[1].PublicKey != pk2 {
		t.Fatalf("recipient order not preserved")
	}
}

func TestEncryptMaxRecipients(t *testing.T) {
	const n = 256
	pks := make([]PublicKey, n)
	var sks [n]PrivateKey
	for i := range pks {
		sks[i], pks[i] = newStaticKeypair(t)
	}

	res, err := Encrypt(sampleTx(), pks)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if _, err := Decrypt(res.Blob, sks[n-1]); err != nil {
		t.Fatalf("Decrypt (last recipient): %v", err)
	}
}

func TestEncryptEmptyData(t *testing.T) {
	sk, pk := newStaticKeypair(t)
	tx := sampleTx()
	tx.Data = nil

	res, err := Encrypt(tx, []PublicKey{pk})
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	got, err := Decrypt(res.Blob, sk)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !got.Equal(tx) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, tx)
	}
}
