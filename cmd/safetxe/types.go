package main

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/safe-global/safe-txe/circuit"
	"github.com/safe-global/safe-txe/cryptobox"
	"github.com/safe-global/safe-txe/internal/addr"
	"github.com/safe-global/safe-txe/safetx"
)

// jsonTransaction is the hex-friendly wire shape of a safetx.Transaction,
// used for CLI input/output.
type jsonTransaction struct {
	To             string `json:"to"`
	Value          string `json:"value"`
	Data           string `json:"data"`
	Operation      uint8  `json:"operation"`
	SafeTxGas      string `json:"safeTxGas"`
	BaseGas        string `json:"baseGas"`
	GasPrice       string `json:"gasPrice"`
	GasToken       string `json:"gasToken"`
	RefundReceiver string `json:"refundReceiver"`
}

func (j jsonTransaction) toTransaction() (safetx.Transaction, error) {
	to, err := addr.ParseAddress(j.To)
	if err != nil {
		return safetx.Transaction{}, fmt.Errorf("field 'to': %w", err)
	}
	gasToken, err := addr.ParseAddress(j.GasToken)
	if err != nil {
		return safetx.Transaction{}, fmt.Errorf("field 'gasToken': %w", err)
	}
	refundReceiver, err := addr.ParseAddress(j.RefundReceiver)
	if err != nil {
		return safetx.Transaction{}, fmt.Errorf("field 'refundReceiver': %w", err)
	}
	data, err := hexutil.Decode(orZeroHex(j.Data))
	if err != nil {
		return safetx.Transaction{}, fmt.Errorf("field 'data': %w", err)
	}
	return safetx.Transaction{
		To:             to,
		Value:          mustBigInt(j.Value),
		Data:           data,
		Operation:      safetx.Operation(j.Operation),
		SafeTxGas:      mustBigInt(j.SafeTxGas),
		BaseGas:        mustBigInt(j.BaseGas),
		GasPrice:       mustBigInt(j.GasPrice),
		GasToken:       gasToken,
		RefundReceiver: refundReceiver,
	}, nil
}

func fromTransaction(tx safetx.Transaction) jsonTransaction {
	return jsonTransaction{
		To:             addr.EncodeHex(tx.To[:]),
		Value:          tx.Value.String(),
		Data:           hexutil.Encode(tx.Data),
		Operation:      uint8(tx.Operation),
		SafeTxGas:      tx.SafeTxGas.String(),
		BaseGas:        tx.BaseGas.String(),
		GasPrice:       tx.GasPrice.String(),
		GasToken:       addr.EncodeHex(tx.GasToken[:]),
		RefundReceiver: addr.EncodeHex(tx.RefundReceiver[:]),
	}
}

func orZeroHex(s string) string {
	if s == "" {
		return "0x"
	}
	return s
}

func mustBigInt(s string) *big.Int {
	n := new(big.Int)
	if s == "" {
		return n
	}
	n.SetString(s, 10)
	return n
}

// jsonRecipientWitness is the hex-friendly wire shape of a
// cryptobox.RecipientWitness.
type jsonRecipientWitness struct {
	PublicKey           string `json:"publicKey"`
	EphemeralPrivateKey string `json:"ephemeralPrivateKey"`
}

// jsonPrivate is the hex-friendly wire shape of a cryptobox.Private,
// written by the encrypt subcommand as the proving witness.
type jsonPrivate struct {
	Transaction          string                 `json:"transaction"`
	ContentEncryptionKey string                 `json:"contentEncryptionKey"`
	Recipients           []jsonRecipientWitness `json:"recipients"`
}

func fromPrivate(p cryptobox.Private) jsonPrivate {
	recipients := make([]jsonRecipientWitness, len(p.Recipients))
	for i, r := range p.Recipients {
		recipients[i] = jsonRecipientWitness{
			PublicKey:           hexutil.Encode(r.PublicKey[:]),
			EphemeralPrivateKey: hexutil.Encode(r.EphemeralPrivateKey[:]),
		}
	}
	return jsonPrivate{
		Transaction:          hexutil.Encode(p.Transaction),
		ContentEncryptionKey: hexutil.Encode(p.ContentEncryptionKey[:]),
		Recipients:           recipients,
	}
}

func (j jsonPrivate) toPrivate() (circuit.Private, error) {
	txBytes, err := hexutil.Decode(orZeroHex(j.Transaction))
	if err != nil {
		return circuit.Private{}, fmt.Errorf("field 'transaction': %w", err)
	}
	cek, err := hexutil.Decode(j.ContentEncryptionKey)
	if err != nil || len(cek) != cryptobox.CEKSize {
		return circuit.Private{}, fmt.Errorf("field 'contentEncryptionKey': invalid 16-byte hex")
	}
	recipients := make([]circuit.PrivateRecipient, len(j.Recipients))
	for i, r := range j.Recipients {
		pub, err := hexutil.Decode(r.PublicKey)
		if err != nil || len(pub) != 32 {
			return circuit.Private{}, fmt.Errorf("recipient %d: invalid 'publicKey'", i)
		}
		esk, err := hexutil.Decode(r.EphemeralPrivateKey)
		if err != nil || len(esk) != 32 {
			return circuit.Private{}, fmt.Errorf("recipient %d: invalid 'ephemeralPrivateKey'", i)
		}
		var pr circuit.PrivateRecipient
		copy(pr.PublicKey[:], pub)
		copy(pr.EphemeralPrivateKey[:], esk)
		recipients[i] = pr
	}
	var priv circuit.Private
	priv.Transaction = txBytes
	copy(priv.ContentEncryptionKey[:], cek)
	priv.Recipients = recipients
	return priv, nil
}

// jsonInput is the hex-friendly wire shape of a circuit.Input, round-tripped
// through the extract/argify/verify subcommands.
type jsonInput struct {
	Public  jsonPublic  `json:"public"`
	Private jsonPrivate `json:"private"`
}

type jsonPublicRecipient struct {
	EncryptedKey       string `json:"encryptedKey"`
	EphemeralPublicKey string `json:"ephemeralPublicKey"`
}

type jsonPublic struct {
	StructHash string                `json:"structHash"`
	Nonce      string                `json:"nonce"`
	Ciphertext string                `json:"ciphertext"`
	IV         string                `json:"iv"`
	Tag        string                `json:"tag"`
	Recipients []jsonPublicRecipient `json:"recipients"`
}

func fromInput(in circuit.Input) jsonInput {
	pubRecipients := make([]jsonPublicRecipient, len(in.Public.Recipients))
	for i, r := range in.Public.Recipients {
		pubRecipients[i] = jsonPublicRecipient{
			EncryptedKey:       hexutil.Encode(r.EncryptedKey[:]),
			EphemeralPublicKey: hexutil.Encode(r.EphemeralPublicKey[:]),
		}
	}
	privRecipients := make([]jsonRecipientWitness, len(in.Private.Recipients))
	for i, r := range in.Private.Recipients {
		privRecipients[i] = jsonRecipientWitness{
			PublicKey:           hexutil.Encode(r.PublicKey[:]),
			EphemeralPrivateKey: hexutil.Encode(r.EphemeralPrivateKey[:]),
		}
	}
	return jsonInput{
		Public: jsonPublic{
			StructHash: hexutil.Encode(in.Public.StructHash[:]),
			Nonce:      in.Public.Nonce.String(),
			Ciphertext: hexutil.Encode(in.Public.Ciphertext),
			IV:         hexutil.Encode(in.Public.IV[:]),
			Tag:        hexutil.Encode(in.Public.Tag[:]),
			Recipients: pubRecipients,
		},
		Private: jsonPrivate{
			Transaction:          hexutil.Encode(in.Private.Transaction),
			ContentEncryptionKey: hexutil.Encode(in.Private.ContentEncryptionKey[:]),
			Recipients:           privRecipients,
		},
	}
}

func (j jsonInput) toInput() (circuit.Input, error) {
	structHash, err := hexutil.Decode(j.Public.StructHash)
	if err != nil || len(structHash) != 32 {
		return circuit.Input{}, fmt.Errorf("field 'public.structHash': invalid 32-byte hex")
	}
	ciphertext, err := hexutil.Decode(orZeroHex(j.Public.Ciphertext))
	if err != nil {
		return circuit.Input{}, fmt.Errorf("field 'public.ciphertext': %w", err)
	}
	iv, err := hexutil.Decode(j.Public.IV)
	if err != nil || len(iv) != 12 {
		return circuit.Input{}, fmt.Errorf("field 'public.iv': invalid 12-byte hex")
	}
	tag, err := hexutil.Decode(j.Public.Tag)
	if err != nil || len(tag) != 16 {
		return circuit.Input{}, fmt.Errorf("field 'public.tag': invalid 16-byte hex")
	}
	recipients := make([]circuit.PublicRecipient, len(j.Public.Recipients))
	for i, r := range j.Public.Recipients {
		encKey, err := hexutil.Decode(r.EncryptedKey)
		if err != nil || len(encKey) != 24 {
			return circuit.Input{}, fmt.Errorf("public recipient %d: invalid 'encryptedKey'", i)
		}
		epk, err := hexutil.Decode(r.EphemeralPublicKey)
		if err != nil || len(epk) != 32 {
			return circuit.Input{}, fmt.Errorf("public recipient %d: invalid 'ephemeralPublicKey'", i)
		}
		var pr circuit.PublicRecipient
		copy(pr.EncryptedKey[:], encKey)
		copy(pr.EphemeralPublicKey[:], epk)
		recipients[i] = pr
	}

	priv, err := j.Private.toPrivate()
	if err != nil {
		return circuit.Input{}, err
	}

	var pub circuit.Public
	copy(pub.StructHash[:], structHash)
	pub.Nonce = mustBigInt(j.Public.Nonce)
	pub.Ciphertext = ciphertext
	copy(pub.IV[:], iv)
	copy(pub.Tag[:], tag)
	pub.Recipients = recipients

	return circuit.Input{Public: pub, Private: priv}, nil
}

func marshalIndent(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
