package hackathon

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"

	"github.com/mr-tron/base58"
)

// Anchor sighash preimages for account and instruction discriminators.
const (
	accountNamespace     = "account"
	instructionNamespace = "global"
)

func accountDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte(accountNamespace + ":" + name))
	return hash[:8]
}

func instructionDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte(instructionNamespace + ":" + name))
	return hash[:8]
}

func putDiscriminator(dst []byte, v []byte, offset *int) {
	copy(dst[*offset:], v)
	*offset += 8
}
func getDiscriminator(src []byte, dst *[]byte, offset *int) {
	*dst = make([]byte, 8)
	copy(*dst, src[*offset:])
	*offset += 8
}

func putKey(dst []byte, src ed25519.PublicKey, offset *int) {
	copy(dst[*offset:], src)
	*offset += ed25519.PublicKeySize
}
func getKey(src []byte, dst *ed25519.PublicKey, offset *int) {
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src[*offset:])
	*offset += ed25519.PublicKeySize
}

func putHash(dst []byte, src [32]byte, offset *int) {
	copy(dst[*offset:], src[:])
	*offset += 32
}
func getHash(src []byte, dst *[32]byte, offset *int) {
	copy(dst[:], src[*offset:])
	*offset += 32
}

func putUint8(dst []byte, v uint8, offset *int) {
	dst[*offset] = v
	*offset += 1
}
func getUint8(src []byte, dst *uint8, offset *int) {
	*dst = src[*offset]
	*offset += 1
}

func putUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], v)
	*offset += 4
}
func getUint32(src []byte, dst *uint32, offset *int) {
	*dst = binary.LittleEndian.Uint32(src[*offset:])
	*offset += 4
}

func putUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}
func getUint64(src []byte, dst *uint64, offset *int) {
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
}

func putInt64(dst []byte, v int64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], uint64(v))
	*offset += 8
}
func getInt64(src []byte, dst *int64, offset *int) {
	*dst = int64(binary.LittleEndian.Uint64(src[*offset:]))
	*offset += 8
}

// Borsh strings are serialized as a u32 length prefix followed by the raw
// bytes.
func putString(dst []byte, src string, offset *int) {
	putUint32(dst, uint32(len(src)), offset)
	copy(dst[*offset:], src)
	*offset += len(src)
}
func getString(src []byte, dst *string, offset *int) error {
	if len(src) < *offset+4 {
		return ErrInvalidAccountData
	}
	var length uint32
	getUint32(src, &length, offset)
	if len(src) < *offset+int(length) {
		return ErrInvalidAccountData
	}
	*dst = string(src[*offset : *offset+int(length)])
	*offset += int(length)
	return nil
}

func uint64ToLeBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
