// Package jwe converts between the TXE binary envelope (package txe) and a
// restricted subset of the JSON Web Encryption General Serialization
// (RFC 7516 §7.2.1). Only the shape this module produces and consumes is
// supported: AES-128-GCM content encryption with one ECDH-ES+A128KW
// recipient entry per envelope recipient, each carrying its own ephemeral
// public key.
package jwe

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/safe-global/safe-txe/txe"
)

// protected is the base64url encoding of the literal JSON
// `{"enc":"A128GCM"}`, the only protected header this module ever emits.
const protected = "eyJlbmMiOiJBMTI4R0NNIn0"

// ErrUnsupportedProtectedHeader is returned when a JWE's protected header is
// not the literal {"enc":"A128GCM"} this module understands.
var ErrUnsupportedProtectedHeader = errors.New("jwe: unsupported protected header")

// ErrUnsupportedAlgorithm is returned when a recipient header's alg is not
// ECDH-ES+A128KW, or its epk is not an OKP/X25519 key.
var ErrUnsupportedAlgorithm = errors.New("jwe: unsupported recipient algorithm")

var b64 = base64.RawURLEncoding

// JWK is the minimal JSON Web Key shape used for the ephemeral public key
// carried in each recipient header ("epk"), restricted to OKP/X25519.
type JWK struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
}

// RecipientHeader is the per-recipient unprotected header.
type RecipientHeader struct {
	Alg string `json:"alg"`
	EPK JWK    `json:"epk"`
}

// Recipient is one entry of the JWE's "recipients" array.
type Recipient struct {
	Header       RecipientHeader `json:"header"`
	EncryptedKey string          `json:"encrypted_key"`
}

// Message is a JWE in General Serialization (RFC 7516 §7.2.1), restricted to
// the fields this module populates.
type Message struct {
	Protected  string      `json:"protected"`
	IV         string      `json:"iv"`
	Ciphertext string      `json:"ciphertext"`
	Tag        string      `json:"tag"`
	Recipients []Recipient `json:"recipients"`
}

// FromEnvelope converts a decoded TXE envelope into its JWE General
// Serialization form.
func FromEnvelope(e txe.Envelope) Message {
	recipients := make([]Recipient, len(e.Recipients))
	for i, r := range e.Recipients {
		recipients[i] = Recipient{
			Header: RecipientHeader{
				Alg: "ECDH-ES+A128KW",
				EPK: JWK{
					Kty: "OKP",
					Crv: "X25519",
					X:   b64.EncodeToString(r.EphemeralPublicKey[:]),
				},
			},
			EncryptedKey: b64.EncodeToString(r.EncryptedKey[:]),
		}
	}
	return Message{
		Protected:  protected,
		IV:         b64.EncodeToString(e.IV[:]),
		Ciphertext: b64.EncodeToString(e.Ciphertext),
		Tag:        b64.EncodeToString(e.Tag[:]),
		Recipients: recipients,
	}
}

// ToEnvelope converts a JWE General Serialization message back into a TXE
// envelope, the inverse of FromEnvelope. It rejects messages whose protected
// header or recipient algorithm fall outside the subset this module
// understands.
func ToEnvelope(m Message) (txe.Envelope, error) {
	if m.Protected != protected {
		return txe.Envelope{}, ErrUnsupportedProtectedHeader
	}

	iv, err := decodeFixed(m.IV, txe.IVSize, "iv")
	if err != nil {
		return txe.Envelope{}, err
	}
	tag, err := decodeFixed(m.Tag, txe.TagSize, "tag")
	if err != nil {
		return txe.Envelope{}, err
	}
	ciphertext, err := b64.DecodeString(m.Ciphertext)
	if err != nil {
		return txe.Envelope{}, fmt.Errorf("jwe: decoding ciphertext: %w", err)
	}

	recipients := make([]txe.Recipient, len(m.Recipients))
	for i, rc := range m.Recipients {
		if rc.Header.Alg != "ECDH-ES+A128KW" || rc.Header.EPK.Kty != "OKP" || rc.Header.EPK.Crv != "X25519" {
			return txe.Envelope{}, fmt.Errorf("%w: recipient %d", ErrUnsupportedAlgorithm, i)
		}
		epk, err := decodeFixed(rc.Header.EPK.X, txe.EphemeralKeySize, "epk.x")
		if err != nil {
			return txe.Envelope{}, err
		}
		encKey, err := decodeFixed(rc.EncryptedKey, txe.EncryptedKeySize, "encrypted_key")
		if err != nil {
			return txe.Envelope{}, err
		}
		var r txe.Recipient
		copy(r.EphemeralPublicKey[:], epk)
		copy(r.EncryptedKey[:], encKey)
		recipients[i] = r
	}

	var e txe.Envelope
	copy(e.IV[:], iv)
	copy(e.Tag[:], tag)
	e.Ciphertext = ciphertext
	e.Recipients = recipients
	return e, nil
}

func decodeFixed(s string, size int, field string) ([]byte, error) {
	b, err := b64.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("jwe: decoding %s: %w", field, err)
	}
	if len(b) != size {
		return nil, fmt.Errorf("jwe: %s has length %d, want %d", field, len(b), size)
	}
	return b, nil
}

// ToBlob converts m directly to a TXE wire-format blob.
func ToBlob(m Message) ([]byte, error) {
	e, err := ToEnvelope(m)
	if err != nil {
		return nil, err
	}
	return txe.Encode(e)
}

// FromBlob decodes a TXE wire-format blob directly into its JWE form.
func FromBlob(blob []byte) (Message, error) {
	e, err := txe.Decode(blob)
	if err != nil {
		return Message{}, fmt.Errorf("jwe: decoding envelope: %w", err)
	}
	return FromEnvelope(e), nil
}

// IsWellFormed reports whether raw parses as a Message with the fields this
// module requires populated.
func IsWellFormed(raw []byte) bool {
	var m Message
	if err := json.Unmarshal(raw, &m); err != nil {
		return false
	}
	return m.Protected != "" && m.IV != "" && m.Ciphertext != "" && m.Tag != "" && len(m.Recipients) > 0
}
