package cryptobox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdh"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/safe-global/safe-txe/safetx"
	"github.com/safe-global/safe-txe/txe"
)

// concatKDFAlgorithmID is the JOSE algorithm identifier fed into the
// Concat KDF's OtherInfo, per RFC 7518 §4.6.
const concatKDFAlgorithmID = "ECDH-ES+A128KW"

// Result is the output of Encrypt: the wire-format blob and the private
// witness needed to build a circuit input.
type Result struct {
	Blob    []byte
	Private Private
}

// Encrypt RLP-encodes tx, generates a fresh CEK and IV, AES-128-GCM-seals
// the payload, and wraps the CEK for each recipient with a fresh ephemeral
// X25519 keypair. recipients must be non-empty, at most txe.MaxRecipients
// long, and in the order they should appear in the resulting envelope.
func Encrypt(tx safetx.Transaction, recipients []PublicKey) (Result, error) {
	if len(recipients) == 0 {
		return Result{}, ErrNoRecipients
	}
	if len(recipients) > txe.MaxRecipients {
		return Result{}, fmt.Errorf("%w: recipient count %d exceeds %d", ErrTooManyRecipients, len(recipients), txe.MaxRecipients)
	}

	plaintext, err := tx.Encode()
	if err != nil {
		return Result{}, fmt.Errorf("cryptobox: encoding transaction: %w", err)
	}

	var cek [CEKSize]byte
	if _, err := io.ReadFull(rand.Reader, cek[:]); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrRngFailure, err)
	}

	var iv [txe.IVSize]byte
	if _, err := io.ReadFull(rand.Reader, iv[:]); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrRngFailure, err)
	}

	ciphertext, tag, err := sealGCM(cek[:], iv[:], plaintext)
	if err != nil {
		return Result{}, fmt.Errorf("cryptobox: sealing content: %w", err)
	}

	envRecipients := make([]txe.Recipient, len(recipients))
	witnesses := make([]RecipientWitness, len(recipients))

	for i, pub := range recipients {
		esk, epk, err := generateEphemeralKeypair()
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrRngFailure, err)
		}

		z, err := sharedSecret(esk, pub)
		if err != nil {
			return Result{}, fmt.Errorf("cryptobox: deriving shared secret for recipient %d: %w", i, err)
		}

		kw := concatKDF(z, concatKDFAlgorithmID, CEKSize)
		wrapped, err := aesKeyWrap(kw, cek[:])
		if err != nil {
			return Result{}, fmt.Errorf("cryptobox: wrapping key for recipient %d: %w", i, err)
		}

		var r txe.Recipient
		copy(r.EncryptedKey[:], wrapped)
		copy(r.EphemeralPublicKey[:], epk[:])
		envRecipients[i] = r

		witnesses[i] = RecipientWitness{
			PublicKey:           pub,
			EphemeralPrivateKey: esk,
		}
	}

	blob, err := txe.Encode(txe.Envelope{
		Ciphertext: ciphertext,
		IV:         iv,
		Tag:        [txe.TagSize]byte(tag),
		Recipients: envRecipients,
	})
	if err != nil {
		return Result{}, fmt.Errorf("cryptobox: assembling envelope: %w", err)
	}

	return Result{
		Blob: blob,
		Private: Private{
			Transaction:          plaintext,
			ContentEncryptionKey: cek,
			Recipients:           witnesses,
		},
	}, nil
}

func sealGCM(key, iv, plaintext []byte) (ciphertext, tag []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	aead, err := cipher.NewGCMWithNonceSize(block, len(iv))
	if err != nil {
		return nil, nil, err
	}
	sealed := aead.Seal(nil, iv, plaintext, nil)
	ctLen := len(sealed) - aead.Overhead()
	return sealed[:ctLen], sealed[ctLen:], nil
}

func generateEphemeralKeypair() (PrivateKey, PublicKey, error) {
	key, err := ecdh.X25519().GenerateKey(rand.Reader)
	if err != nil {
		return PrivateKey{}, PublicKey{}, err
	}
	var sk PrivateKey
	var pk PublicKey
	copy(sk[:], key.Bytes())
	copy(pk[:], key.PublicKey().Bytes())
	return sk, pk, nil
}

func sharedSecret(sk PrivateKey, pub PublicKey) ([]byte, error) {
	priv, err := ecdh.X25519().NewPrivateKey(sk[:])
	if err != nil {
		return nil, err
	}
	pubKey, err := ecdh.X25519().NewPublicKey(pub[:])
	if err != nil {
		return nil, err
	}
	return priv.ECDH(pubKey)
}
