package hackathon

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	MaxCheckInAttendees = 200

	CheckInsAccountSize = (8 + // discriminator
		32 + // activity
		32 + // authority
		4 + MaxCheckInAttendees*32 + // attendees
		1) // bump
)

var CheckInsAccountDiscriminator = accountDiscriminator("ActivityCheckIns")

// CheckInsAccount is the attendee roster uploaded once at the end of the
// check-in phase. There is no amendment instruction; the roster is
// immutable after creation.
type CheckInsAccount struct {
	Activity  ed25519.PublicKey
	Authority ed25519.PublicKey
	Attendees []ed25519.PublicKey
	Bump      uint8
}

func (obj *CheckInsAccount) Marshal() []byte {
	data := make([]byte, CheckInsAccountSize)

	var offset int

	putDiscriminator(data, CheckInsAccountDiscriminator, &offset)
	putKey(data, obj.Activity, &offset)
	putKey(data, obj.Authority, &offset)
	putUint32(data, uint32(len(obj.Attendees)), &offset)
	for _, attendee := range obj.Attendees {
		putKey(data, attendee, &offset)
	}
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *CheckInsAccount) Unmarshal(data []byte) error {
	if len(data) < 8+32+32+4+1 {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, CheckInsAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.Activity, &offset)
	getKey(data, &obj.Authority, &offset)

	var count uint32
	getUint32(data, &count, &offset)
	if count > MaxCheckInAttendees || len(data) < offset+int(count)*32+1 {
		return ErrInvalidAccountData
	}
	obj.Attendees = make([]ed25519.PublicKey, count)
	for i := range obj.Attendees {
		getKey(data, &obj.Attendees[i], &offset)
	}
	getUint8(data, &obj.Bump, &offset)

	return nil
}

// Contains reports whether the given key is in the attendee roster.
func (obj *CheckInsAccount) Contains(key ed25519.PublicKey) bool {
	for _, attendee := range obj.Attendees {
		if bytes.Equal(attendee, key) {
			return true
		}
	}
	return false
}

func (obj *CheckInsAccount) String() string {
	return fmt.Sprintf(
		"CheckInsAccount{activity=%s,authority=%s,attendees=%d,bump=%d}",
		base58.Encode(obj.Activity),
		base58.Encode(obj.Authority),
		len(obj.Attendees),
		obj.Bump,
	)
}
