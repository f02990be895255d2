package cryptobox

import "crypto/ecdh"

// ConcatKDF derives a key via the Concat KDF of RFC 7518 §4.6.2, with empty
// PartyUInfo/PartyVInfo/SuppPrivInfo. Exported so the circuit package's
// verifier relation can recompute the same key-wrapping key from a
// candidate shared secret.
func ConcatKDF(z []byte, algorithmID string, keyLen int) []byte {
	return concatKDF(z, algorithmID, keyLen)
}

// WrapKey wraps cek under kek using AES Key Wrap (RFC 3394).
func WrapKey(kek, cek []byte) ([]byte, error) {
	return aesKeyWrap(kek, cek)
}

// UnwrapKey is the inverse of WrapKey.
func UnwrapKey(kek, wrapped []byte) ([]byte, error) {
	return aesKeyUnwrap(kek, wrapped)
}

// SharedSecret computes the X25519 scalar multiplication of sk with pub.
func SharedSecret(sk PrivateKey, pub PublicKey) ([]byte, error) {
	return sharedSecret(sk, pub)
}

// BasePointMultiply computes the X25519 public key corresponding to the
// private scalar sk (i.e. sk·basepoint).
func BasePointMultiply(sk PrivateKey) (PublicKey, error) {
	priv, err := ecdh.X25519().NewPrivateKey(sk[:])
	if err != nil {
		return PublicKey{}, err
	}
	var pk PublicKey
	copy(pk[:], priv.PublicKey().Bytes())
	return pk, nil
}
