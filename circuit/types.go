// Package circuit assembles the prover/verifier input for the TXE
// transaction-disclosure relation and implements the verifier's own
// predicate in Go, so it can be exercised and tested outside the proving
// backend. The public half of an Input names what is being disclosed; the
// private half is the witness that a real prover supplies and this package
// only zero-fills (Extract) or checks (Verify).
package circuit

import "math/big"

// PublicRecipient is one recipient's public-side record: the wrapped
// content encryption key and the ephemeral public key used to derive the
// wrapping key, matching a txe.Recipient.
type PublicRecipient struct {
	EncryptedKey       [24]byte
	EphemeralPublicKey [32]byte
}

// Public is the public half of a circuit Input: everything a verifier sees.
type Public struct {
	StructHash [32]byte
	Nonce      *big.Int
	Ciphertext []byte
	IV         [12]byte
	Tag        [16]byte
	Recipients []PublicRecipient
}

// PrivateRecipient is one recipient's private-side witness: their static
// public key and the ephemeral private key the sender generated for them.
type PrivateRecipient struct {
	PublicKey           [32]byte
	EphemeralPrivateKey [32]byte
}

// Private is the private half of a circuit Input: the prover's witness.
// Extract returns this zero-filled; a prover populates it with real values
// before calling Verify (or the proving backend's equivalent).
type Private struct {
	Transaction          []byte
	ContentEncryptionKey [16]byte
	Recipients           []PrivateRecipient
}

// Input is the full (public, private) pair the verifier relation checks.
type Input struct {
	Public  Public
	Private Private
}
