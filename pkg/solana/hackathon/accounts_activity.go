package hackathon

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	MaxTitleLength = 128

	// Allocated account space. Serialized data is contiguous, so a short
	// title leaves zero padding at the tail.
	ActivityAccountSize = (8 + // discriminator
		32 + // authority
		8 + // activity_id
		4 + MaxTitleLength + // title
		32 + // description_hash
		1 + // phase
		1 + // bump
		8) // created_at
)

var ActivityAccountDiscriminator = accountDiscriminator("Activity")

type ActivityAccount struct {
	Authority       ed25519.PublicKey
	ActivityId      uint64
	Title           string
	DescriptionHash [32]byte
	Phase           ActivityPhase
	Bump            uint8
	CreatedAt       int64
}

func (obj *ActivityAccount) Marshal() []byte {
	data := make([]byte, ActivityAccountSize)

	var offset int

	putDiscriminator(data, ActivityAccountDiscriminator, &offset)
	putKey(data, obj.Authority, &offset)
	putUint64(data, obj.ActivityId, &offset)
	putString(data, obj.Title, &offset)
	putHash(data, obj.DescriptionHash, &offset)
	putActivityPhase(data, obj.Phase, &offset)
	putUint8(data, obj.Bump, &offset)
	putInt64(data, obj.CreatedAt, &offset)

	return data
}

func (obj *ActivityAccount) Unmarshal(data []byte) error {
	if len(data) < ActivityAccountSize-MaxTitleLength {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, ActivityAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.Authority, &offset)
	getUint64(data, &obj.ActivityId, &offset)
	if err := getString(data, &obj.Title, &offset); err != nil {
		return err
	}
	if len(obj.Title) > MaxTitleLength {
		return ErrInvalidAccountData
	}
	if len(data) < offset+32+1+1+8 {
		return ErrInvalidAccountData
	}
	getHash(data, &obj.DescriptionHash, &offset)
	getActivityPhase(data, &obj.Phase, &offset)
	getUint8(data, &obj.Bump, &offset)
	getInt64(data, &obj.CreatedAt, &offset)

	if !obj.Phase.Valid() {
		return ErrInvalidAccountData
	}

	return nil
}

func (obj *ActivityAccount) String() string {
	return fmt.Sprintf(
		"ActivityAccount{authority=%s,activity_id=%d,title=%s,phase=%s,bump=%d,created_at=%d}",
		base58.Encode(obj.Authority),
		obj.ActivityId,
		obj.Title,
		obj.Phase.String(),
		obj.Bump,
		obj.CreatedAt,
	)
}
