package circuit

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/safe-global/safe-txe/txe"
)

// ErrInvalidStructHash is returned when structHash is not exactly 32 bytes.
var ErrInvalidStructHash = errors.New("circuit: structHash must be 32 bytes")

// ErrInvalidNonce is returned when nonce is negative or does not fit in 256
// bits.
var ErrInvalidNonce = errors.New("circuit: nonce out of range")

var maxNonce = new(big.Int).Lsh(big.NewInt(1), 256)

// Extract validates structHash and nonce, decodes blob, and returns an
// Input whose public half carries the real envelope and commitment and
// whose private half is zero-filled to the shapes the committed envelope
// implies. A verifier's witness-allocation sizes must match those used at
// proving time, but the witness values themselves are supplied only when
// proving.
func Extract(structHash []byte, nonce *big.Int, blob []byte) (Input, error) {
	if len(structHash) != 32 {
		return Input{}, ErrInvalidStructHash
	}
	if nonce == nil || nonce.Sign() < 0 || nonce.Cmp(maxNonce) >= 0 {
		return Input{}, ErrInvalidNonce
	}

	env, err := txe.Decode(blob)
	if err != nil {
		return Input{}, fmt.Errorf("circuit: decoding envelope: %w", err)
	}

	pub := Public{
		Nonce:      new(big.Int).Set(nonce),
		Ciphertext: append([]byte{}, env.Ciphertext...),
		IV:         env.IV,
		Tag:        env.Tag,
		Recipients: make([]PublicRecipient, len(env.Recipients)),
	}
	copy(pub.StructHash[:], structHash)
	for i, r := range env.Recipients {
		pub.Recipients[i] = PublicRecipient{
			EncryptedKey:       r.EncryptedKey,
			EphemeralPublicKey: r.EphemeralPublicKey,
		}
	}

	priv := Private{
		Transaction: make([]byte, len(env.Ciphertext)),
		Recipients:  make([]PrivateRecipient, len(env.Recipients)),
	}

	return Input{Public: pub, Private: priv}, nil
}
