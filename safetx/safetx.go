// Package safetx encodes and decodes the nine-field Safe multisig
// transaction payload as an RLP list. The nonce is carried separately from
// this payload (it belongs to the public commitment, not the encrypted
// content) and is therefore not a field of Transaction.
package safetx

import (
	"fmt"
	"math/big"

	"github.com/safe-global/safe-txe/internal/addr"
	"github.com/safe-global/safe-txe/rlp"
)

// Operation is the Safe call kind: a plain CALL or a DELEGATECALL.
type Operation uint8

const (
	Call         Operation = 0
	DelegateCall Operation = 1
)

// Transaction is the nine-field SafeTx payload, encoded in this fixed order:
// [to, value, data, operation, safeTxGas, baseGas, gasPrice, gasToken, refundReceiver].
type Transaction struct {
	To             addr.Address
	Value          *big.Int
	Data           []byte
	Operation      Operation
	SafeTxGas      *big.Int
	BaseGas        *big.Int
	GasPrice       *big.Int
	GasToken       addr.Address
	RefundReceiver addr.Address
}

// Encode RLP-encodes the payload in its fixed field order.
func (t Transaction) Encode() ([]byte, error) {
	list := rlp.List{
		t.To.Bytes(),
		t.Value,
		t.Data,
		uint(t.Operation),
		t.SafeTxGas,
		t.BaseGas,
		t.GasPrice,
		t.GasToken.Bytes(),
		t.RefundReceiver.Bytes(),
	}
	return rlp.Encode(list)
}

// Decode parses an RLP-encoded payload. The top item must be a list of
// exactly nine elements; address fields must be exactly 20 bytes;
// operation must be 0x (CALL) or 0x01 (DELEGATECALL).
func Decode(data []byte) (Transaction, error) {
	v, err := rlp.Decode(data)
	if err != nil {
		return Transaction{}, err
	}
	items, err := rlp.AsList(v)
	if err != nil {
		return Transaction{}, err
	}
	if len(items) != 9 {
		return Transaction{}, fmt.Errorf("%w: expected 9 fields, got %d", rlp.ErrFieldTypeMismatch, len(items))
	}

	var t Transaction

	toBytes, err := rlp.AsBytes(items[0])
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'to': %w", err)
	}
	t.To, err = addr.BytesToAddress(toBytes)
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'to': %w", err)
	}

	valueBytes, err := rlp.AsBytes(items[1])
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'value': %w", err)
	}
	t.Value, err = rlp.DecodeBigInt(valueBytes)
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'value': %w", err)
	}

	t.Data, err = rlp.AsBytes(items[2])
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'data': %w", err)
	}

	opBytes, err := rlp.AsBytes(items[3])
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'operation': %w", err)
	}
	t.Operation, err = decodeOperation(opBytes)
	if err != nil {
		return Transaction{}, err
	}

	gasBytes, err := rlp.AsBytes(items[4])
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'safeTxGas': %w", err)
	}
	t.SafeTxGas, err = rlp.DecodeBigInt(gasBytes)
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'safeTxGas': %w", err)
	}

	baseGasBytes, err := rlp.AsBytes(items[5])
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'baseGas': %w", err)
	}
	t.BaseGas, err = rlp.DecodeBigInt(baseGasBytes)
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'baseGas': %w", err)
	}

	gasPriceBytes, err := rlp.AsBytes(items[6])
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'gasPrice': %w", err)
	}
	t.GasPrice, err = rlp.DecodeBigInt(gasPriceBytes)
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'gasPrice': %w", err)
	}

	gasTokenBytes, err := rlp.AsBytes(items[7])
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'gasToken': %w", err)
	}
	t.GasToken, err = addr.BytesToAddress(gasTokenBytes)
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'gasToken': %w", err)
	}

	refundBytes, err := rlp.AsBytes(items[8])
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'refundReceiver': %w", err)
	}
	t.RefundReceiver, err = addr.BytesToAddress(refundBytes)
	if err != nil {
		return Transaction{}, fmt.Errorf("field 'refundReceiver': %w", err)
	}

	return t, nil
}

func decodeOperation(b []byte) (Operation, error) {
	switch {
	case len(b) == 0:
		return Call, nil
	case len(b) == 1 && b[0] == 0x01:
		return DelegateCall, nil
	default:
		return 0, fmt.Errorf("%w: invalid operation byte(s) %x", rlp.ErrFieldTypeMismatch, b)
	}
}

// Equal reports whether t and other encode to the same payload.
func (t Transaction) Equal(other Transaction) bool {
	return t.To == other.To &&
		bigEqual(t.Value, other.Value) &&
		string(t.Data) == string(other.Data) &&
		t.Operation == other.Operation &&
		bigEqual(t.SafeTxGas, other.SafeTxGas) &&
		bigEqual(t.BaseGas, other.BaseGas) &&
		bigEqual(t.GasPrice, other.GasPrice) &&
		t.GasToken == other.GasToken &&
		t.RefundReceiver == other.RefundReceiver
}

func bigEqual(a, b *big.Int) bool {
	if a == nil {
		a = new(big.Int)
	}
	if b == nil {
		b = new(big.Int)
	}
	return a.Cmp(b) == 0
}
