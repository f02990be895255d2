package circuit

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/safe-global/safe-txe/rlp"
)

// Argify serializes each half of input as a single RLP list and hex-encodes
// the result: public is
// [structHash, nonce, ciphertext, iv, tag, [[encryptedKey, ephemeralPublicKey], ...]],
// private is [transaction, contentEncryptionKey, [[publicKey, ephemeralPrivateKey], ...]].
// This is the canonical input syntax passed to the prover/verifier binary.
func Argify(input Input) (publicHex, privateHex string, err error) {
	publicRecipients := make(rlp.List, len(input.Public.Recipients))
	for i, r := range input.Public.Recipients {
		publicRecipients[i] = rlp.List{
			append([]byte{}, r.EncryptedKey[:]...),
			append([]byte{}, r.EphemeralPublicKey[:]...),
		}
	}
	publicList := rlp.List{
		append([]byte{}, input.Public.StructHash[:]...),
		input.Public.Nonce,
		append([]byte{}, input.Public.Ciphertext...),
		append([]byte{}, input.Public.IV[:]...),
		append([]byte{}, input.Public.Tag[:]...),
		publicRecipients,
	}
	publicEnc, err := rlp.Encode(publicList)
	if err != nil {
		return "", "", fmt.Errorf("circuit: encoding public input: %w", err)
	}

	privateRecipients := make(rlp.List, len(input.Private.Recipients))
	for i, r := range input.Private.Recipients {
		privateRecipients[i] = rlp.List{
			append([]byte{}, r.PublicKey[:]...),
			append([]byte{}, r.EphemeralPrivateKey[:]...),
		}
	}
	privateList := rlp.List{
		append([]byte{}, input.Private.Transaction...),
		append([]byte{}, input.Private.ContentEncryptionKey[:]...),
		privateRecipients,
	}
	privateEnc, err := rlp.Encode(privateList)
	if err != nil {
		return "", "", fmt.Errorf("circuit: encoding private input: %w", err)
	}

	return hexutil.Encode(publicEnc), hexutil.Encode(privateEnc), nil
}
