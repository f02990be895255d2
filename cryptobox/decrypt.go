package cryptobox

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/safe-global/safe-txe/safetx"
	"github.com/safe-global/safe-txe/txe"
)

// Decrypt decodes blob as a TXE envelope, locates the recipient whose
// wrapped key unwraps successfully under sk, AES-128-GCM-opens the content,
// and RLP-decodes it into a Transaction. Recipients are tried in the order
// they appear in the envelope; if none unwrap, ErrNotARecipient is returned.
func Decrypt(blob []byte, sk PrivateKey) (safetx.Transaction, error) {
	env, err := txe.Decode(blob)
	if err != nil {
		return safetx.Transaction{}, fmt.Errorf("cryptobox: decoding envelope: %w", err)
	}

	cek, err := unwrapForAnyRecipient(env.Recipients, sk)
	if err != nil {
		return safetx.Transaction{}, err
	}

	plaintext, err := openGCM(cek, env.IV[:], env.Ciphertext, env.Tag[:])
	if err != nil {
		return safetx.Transaction{}, ErrAuthTagInvalid
	}

	tx, err := safetx.Decode(plaintext)
	if err != nil {
		return safetx.Transaction{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return tx, nil
}

func unwrapForAnyRecipient(recipients []txe.Recipient, sk PrivateKey) ([]byte, error) {
	for _, r := range recipients {
		var epk PublicKey
		copy(epk[:], r.EphemeralPublicKey[:])

		z, err := sharedSecret(sk, epk)
		if err != nil {
			continue
		}
		kw := concatKDF(z, concatKDFAlgorithmID, CEKSize)
		cek, err := aesKeyUnwrap(kw, r.EncryptedKey[:])
		if err != nil {
			continue
		}
		return cek, nil
	}
	return nil, ErrNotARecipient
}

func openGCM(key, iv, ciphertext, tag []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCMWithNonceSize(block, len(iv))
	if err != nil {
		return nil, err
	}
	sealed := append(append([]byte{}, ciphertext...), tag...)
	return aead.Open(nil, iv, sealed, nil)
}
