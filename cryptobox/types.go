// Package cryptobox implements a hybrid multi-recipient encryption scheme:
// AES-128-GCM content encryption with per-recipient ECDH-ES on Curve25519
// and A128KW key wrapping of a shared content encryption key.
package cryptobox

// CEKSize is the AES-128 content encryption key length, in bytes.
const CEKSize = 16

// PublicKey is a recipient's static X25519 public key.
type PublicKey [32]byte

// PrivateKey is an X25519 private scalar (either a recipient's static key
// or a sender's per-recipient ephemeral key).
type PrivateKey [32]byte

// RecipientWitness is the private-side record of one recipient: their
// static public key and the ephemeral private key the sender generated for
// them.
type RecipientWitness struct {
	PublicKey           PublicKey
	EphemeralPrivateKey PrivateKey
}

// Private is the private witness produced by Encrypt: the RLP-encoded
// transaction, the content encryption key, and one RecipientWitness per
// recipient (same order as the envelope).
type Private struct {
	Transaction          []byte
	ContentEncryptionKey [CEKSize]byte
	Recipients           []RecipientWitness
}
