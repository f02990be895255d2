package circuit

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/safe-global/safe-txe/cryptobox"
	"github.com/safe-global/safe-txe/safetx"
)

// ErrShapeMismatch is returned when the public and private halves of an
// Input disagree on a length the relation requires to match (recipient
// counts, transaction/ciphertext length).
var ErrShapeMismatch = errors.New("circuit: shape mismatch between public and private input")

// ErrStructHashMismatch is returned when the recomputed SafeTx struct-hash
// does not equal the committed public.StructHash.
var ErrStructHashMismatch = errors.New("circuit: struct-hash does not match commitment")

// ErrAEADMismatch is returned when re-encrypting private.Transaction under
// private.ContentEncryptionKey does not reproduce public.Ciphertext/Tag.
var ErrAEADMismatch = errors.New("circuit: AEAD re-encryption does not match commitment")

// ErrKeyWrapMismatch is returned when a recipient's recomputed key-wrap
// chain does not reproduce its committed encryptedKey or ephemeralPublicKey.
var ErrKeyWrapMismatch = errors.New("circuit: recipient key-wrap does not match commitment")

// Verify checks the verifier relation: that input's private half is a
// genuine witness for its public half. It is the Go-native reference
// implementation of the predicate a real proving backend constrains
// arithmetically.
func Verify(input Input) error {
	pub, priv := input.Public, input.Private

	if len(priv.Recipients) != len(pub.Recipients) {
		return fmt.Errorf("%w: %d private recipients, %d public", ErrShapeMismatch, len(priv.Recipients), len(pub.Recipients))
	}
	if len(priv.Transaction) != len(pub.Ciphertext) {
		return fmt.Errorf("%w: transaction length %d, ciphertext length %d", ErrShapeMismatch, len(priv.Transaction), len(pub.Ciphertext))
	}

	if err := verifyStructHash(pub, priv); err != nil {
		return err
	}
	if err := verifyAEAD(pub, priv); err != nil {
		return err
	}
	for i := range priv.Recipients {
		if err := verifyRecipient(pub.Recipients[i], priv.Recipients[i], priv.ContentEncryptionKey); err != nil {
			return fmt.Errorf("recipient %d: %w", i, err)
		}
	}
	return nil
}

func verifyStructHash(pub Public, priv Private) error {
	tx, err := safetx.Decode(priv.Transaction)
	if err != nil {
		return fmt.Errorf("%w: decoding transaction: %v", ErrStructHashMismatch, err)
	}
	got := safeTxStructHash(tx, pub.Nonce)
	if !bytes.Equal(got[:], pub.StructHash[:]) {
		return ErrStructHashMismatch
	}
	return nil
}

func verifyAEAD(pub Public, priv Private) error {
	block, err := aes.NewCipher(priv.ContentEncryptionKey[:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAEADMismatch, err)
	}
	aead, err := cipher.NewGCMWithNonceSize(block, len(pub.IV))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAEADMismatch, err)
	}
	sealed := aead.Seal(nil, pub.IV[:], priv.Transaction, nil)
	ciphertext, tag := sealed[:len(sealed)-aead.Overhead()], sealed[len(sealed)-aead.Overhead():]

	if !bytes.Equal(ciphertext, pub.Ciphertext) || !bytes.Equal(tag, pub.Tag[:]) {
		return ErrAEADMismatch
	}
	return nil
}

func verifyRecipient(pub PublicRecipient, priv PrivateRecipient, cek [16]byte) error {
	epk, err := cryptobox.BasePointMultiply(cryptobox.PrivateKey(priv.EphemeralPrivateKey))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKeyWrapMismatch, err)
	}
	if [32]byte(epk) != pub.EphemeralPublicKey {
		return ErrKeyWrapMismatch
	}

	z, err := cryptobox.SharedSecret(cryptobox.PrivateKey(priv.EphemeralPrivateKey), cryptobox.PublicKey(priv.PublicKey))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKeyWrapMismatch, err)
	}
	kw := cryptobox.ConcatKDF(z, "ECDH-ES+A128KW", cryptobox.CEKSize)
	wrapped, err := cryptobox.WrapKey(kw, cek[:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKeyWrapMismatch, err)
	}
	if !bytes.Equal(wrapped, pub.EncryptedKey[:]) {
		return ErrKeyWrapMismatch
	}
	return nil
}
