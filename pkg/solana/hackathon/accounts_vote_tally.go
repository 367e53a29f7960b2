package hackathon

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	MaxTallyEntries = 100

	VoteTallyAccountSize = (8 + // discriminator
		32 + // activity
		32 + // authority
		4 + MaxTallyEntries*CandidateVoteSize + // counts
		1) // bump
)

var VoteTallyAccountDiscriminator = accountDiscriminator("VoteTally")

// VoteTallyAccount is the final per-candidate vote summary, created exactly
// once when the authority ends the voting phase.
type VoteTallyAccount struct {
	Activity  ed25519.PublicKey
	Authority ed25519.PublicKey
	Counts    []CandidateVote
	Bump      uint8
}

func (obj *VoteTallyAccount) Marshal() []byte {
	data := make([]byte, VoteTallyAccountSize)

	var offset int

	putDiscriminator(data, VoteTallyAccountDiscriminator, &offset)
	putKey(data, obj.Activity, &offset)
	putKey(data, obj.Authority, &offset)
	putUint32(data, uint32(len(obj.Counts)), &offset)
	for _, count := range obj.Counts {
		putCandidateVote(data, count, &offset)
	}
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *VoteTallyAccount) Unmarshal(data []byte) error {
	if len(data) < 8+32+32+4+1 {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, VoteTallyAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.Activity, &offset)
	getKey(data, &obj.Authority, &offset)

	var count uint32
	getUint32(data, &count, &offset)
	if count > MaxTallyEntries || len(data) < offset+int(count)*CandidateVoteSize+1 {
		return ErrInvalidAccountData
	}
	obj.Counts = make([]CandidateVote, count)
	for i := range obj.Counts {
		getCandidateVote(data, &obj.Counts[i], &offset)
	}
	getUint8(data, &obj.Bump, &offset)

	return nil
}

func (obj *VoteTallyAccount) String() string {
	return fmt.Sprintf(
		"VoteTallyAccount{activity=%s,authority=%s,counts=%d,bump=%d}",
		base58.Encode(obj.Activity),
		base58.Encode(obj.Authority),
		len(obj.Counts),
		obj.Bump,
	)
}
