package cryptobox

import (
	"crypto/aes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
)

// concatKDF implements the Concat KDF of RFC 7518 §4.6.2 (NIST SP 800-56A
// single-step KDF), used to derive the per-recipient key-wrapping key from
// the ECDH-ES shared secret Z. algorithmID identifies the target algorithm
// ("ECDH-ES+A128KW" in this module); PartyUInfo, PartyVInfo, and
// SuppPrivInfo are all empty.
func concatKDF(z []byte, algorithmID string, keyLen int) []byte {
	algID := lengthPrefixed([]byte(algorithmID))
	partyUInfo := lengthPrefixed(nil)
	partyVInfo := lengthPrefixed(nil)
	var suppPrivInfo []byte // the empty octet sequence, with no length prefix

	suppPubInfo := make([]byte, 4)
	binary.BigEndian.PutUint32(suppPubInfo, uint32(keyLen)*8)

	otherInfo := append([]byte{}, algID...)
	otherInfo = append(otherInfo, partyUInfo...)
	otherInfo = append(otherInfo, partyVInfo...)
	otherInfo = append(otherInfo, suppPubInfo...)
	otherInfo = append(otherInfo, suppPrivInfo...)

	key := make([]byte, 0, keyLen)
	for counter := uint32(1); len(key) < keyLen; counter++ {
		h := sha256.New()
		var counterBuf [4]byte
		binary.BigEndian.PutUint32(counterBuf[:], counter)
		h.Write(counterBuf[:])
		h.Write(z)
		h.Write(otherInfo)
		key = h.Sum(key)
	}
	return key[:keyLen]
}

func lengthPrefixed(data []byte) []byte {
	out := make([]byte, 4+len(data))
	binary.BigEndian.PutUint32(out, uint32(len(data)))
	copy(out[4:], data)
	return out
}

// aesKeyWrapDefaultIV is the standard AES Key Wrap initial value, per
// RFC 3394 §2.2.3.1.
var aesKeyWrapDefaultIV = [8]byte{0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6}

var errKeyWrapLength = errors.New("cryptobox: key length must be a multiple of 8 bytes")

// aesKeyWrap implements RFC 3394 AES Key Wrap: wraps cek (16 bytes, here)
// under kek, producing a wrapped key 8 bytes longer than cek.
func aesKeyWrap(kek, cek []byte) ([]byte, error) {
	if len(cek)%8 != 0 || len(cek) == 0 {
		return nil, errKeyWrapLength
	}
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}

	n := len(cek) / 8
	r := make([]byte, (n+1)*8)
	copy(r[:8], aesKeyWrapDefaultIV[:])
	copy(r[8:], cek)

	b := make([]byte, 16)
	for j := 0; j <= 5; j++ {
		for i := 1; i <= n; i++ {
			copy(b[:8], r[:8])
			copy(b[8:], r[i*8:i*8+8])
			block.Encrypt(b, b)

			t := uint64(j)*uint64(n) + uint64(i)
			for k := 0; k < 8; k++ {
				b[7-k] ^= byte(t >> (8 * k))
			}
			copy(r[:8], b[:8])
			copy(r[i*8:i*8+8], b[8:])
		}
	}
	return r, nil
}

// ErrKeyUnwrapFailed is returned by aesKeyUnwrap when the integrity check
// (the recovered IV) does not match, meaning kek is the wrong
// key-wrapping key for this wrapped value.
var ErrKeyUnwrapFailed = errors.New("cryptobox: key unwrap failed")

// aesKeyUnwrap implements the inverse of aesKeyWrap.
func aesKeyUnwrap(kek, wrapped []byte) ([]byte, error) {
	if len(wrapped)%8 != 0 || len(wrapped) < 16 {
		return nil, errKeyWrapLength
	}
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}

	n := len(wrapped)/8 - 1
	r := make([]byte, (n+1)*8)
	copy(r, wrapped)

	b := make([]byte, 16)
	for j := 5; j >= 0; j-- {
		for i := n; i >= 1; i-- {
			t := uint64(j)*uint64(n) + uint64(i)
			copy(b[:8], r[:8])
			for k := 0; k < 8; k++ {
				b[7-k] ^= byte(t >> (8 * k))
			}
			copy(b[8:], r[i*8:i*8+8])
			block.Decrypt(b, b)
			copy(r[:8], b[:8])
			copy(r[i*8:i*8+8], b[8:])
		}
	}

	for i := 0; i < 8; i++ {
		if r[i] != aesKeyWrapDefaultIV[i] {
			return nil, ErrKeyUnwrapFailed
		}
	}
	return r[8:], nil
}
