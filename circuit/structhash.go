package circuit

import (
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/safe-global/safe-txe/safetx"
)

// safeTxTypeHash is the EIP-712 type-hash of the Gnosis Safe SafeTx struct.
var safeTxTypeHash = crypto.Keccak256Hash([]byte(
	"SafeTx(address to,uint256 value,bytes data,uint8 operation,uint256 safeTxGas,uint256 baseGas,uint256 gasPrice,address gasToken,address refundReceiver,uint256 nonce)",
))

func pad32(n *big.Int) []byte {
	b := n.Bytes()
	if len(b) >= 32 {
		return b[len(b)-32:]
	}
	padded := make([]byte, 32)
	copy(padded[32-len(b):], b)
	return padded
}

func addrPad(a [20]byte) []byte {
	padded := make([]byte, 32)
	copy(padded[12:], a[:])
	return padded
}

// safeTxStructHash computes the EIP-712 hashStruct of tx combined with
// nonce, using the SafeTx type-hash.
func safeTxStructHash(tx safetx.Transaction, nonce *big.Int) [32]byte {
	enc := make([]byte, 11*32)
	copy(enc[0:32], safeTxTypeHash.Bytes())
	copy(enc[32:64], addrPad(tx.To))
	copy(enc[64:96], pad32(tx.Value))
	copy(enc[96:128], crypto.Keccak256(tx.Data))
	copy(enc[128:160], pad32(big.NewInt(int64(tx.Operation))))
	copy(enc[160:192], pad32(tx.SafeTxGas))
	copy(enc[192:224], pad32(tx.BaseGas))
	copy(enc[224:256], pad32(tx.GasPrice))
	copy(enc[256:288], addrPad(tx.GasToken))
	copy(enc[288:320], addrPad(tx.RefundReceiver))
	copy(enc[320:352], pad32(nonce))
	return crypto.Keccak256Hash(enc)
}
