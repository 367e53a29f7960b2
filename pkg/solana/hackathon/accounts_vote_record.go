package hackathon

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const VoteRecordAccountSize = (8 + // discriminator
	32 + // voter
	32 + // activity
	8 + // candidate_id
	1) // bump

var VoteRecordAccountDiscriminator = accountDiscriminator("VoteRecord")

// VoteRecordAccount holds one voter's choice for one activity. Its address
// is derived from (activity, voter), so a second vote without revoking
// first fails at account creation.
type VoteRecordAccount struct {
	Voter       ed25519.PublicKey
	Activity    ed25519.PublicKey
	CandidateId uint64
	Bump        uint8
}

func (obj *VoteRecordAccount) Marshal() []byte {
	data := make([]byte, VoteRecordAccountSize)

	var offset int

	putDiscriminator(data, VoteRecordAccountDiscriminator, &offset)
	putKey(data, obj.Voter, &offset)
	putKey(data, obj.Activity, &offset)
	putUint64(data, obj.CandidateId, &offset)
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *VoteRecordAccount) Unmarshal(data []byte) error {
	if len(data) < VoteRecordAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, VoteRecordAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.Voter, &offset)
	getKey(data, &obj.Activity, &offset)
	getUint64(data, &obj.CandidateId, &offset)
	getUint8(data, &obj.Bump, &offset)

	return nil
}

func (obj *VoteRecordAccount) String() string {
	return fmt.Sprintf(
		"VoteRecordAccount{voter=%s,activity=%s,candidate_id=%d,bump=%d}",
		base58.Encode(obj.Voter),
		base58.Encode(obj.Activity),
		obj.CandidateId,
		obj.Bump,
	)
}
