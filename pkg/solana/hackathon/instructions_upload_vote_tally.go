package hackathon

import (
	"bytes"
	"crypto/ed25519"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
)

var UploadVoteTallyInstructionDiscriminator = instructionDiscriminator("upload_vote_tally")

// The two lists are positionally paired; the program rejects mismatched
// lengths before creating the tally.
type UploadVoteTallyInstructionArgs struct {
	CandidateIds []uint64
	VoteCounts   []uint64
}

type UploadVoteTallyInstructionAccounts struct {
	Authority ed25519.PublicKey
	Activity  ed25519.PublicKey
	VoteTally ed25519.PublicKey
}

func NewUploadVoteTallyInstruction(
	accounts *UploadVoteTallyInstructionAccounts,
	args *UploadVoteTallyInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 8+4+len(args.CandidateIds)*8+4+len(args.VoteCounts)*8)

	putDiscriminator(data, UploadVoteTallyInstructionDiscriminator, &offset)
	putUint32(data, uint32(len(args.CandidateIds)), &offset)
	for _, id := range args.CandidateIds {
		putUint64(data, id, &offset)
	}
	putUint32(data, uint32(len(args.VoteCounts)), &offset)
	for _, count := range args.VoteCounts {
		putUint64(data, count, &offset)
	}

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Authority,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Activity,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.VoteTally,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

func ParseUploadVoteTallyInstructionArgs(data []byte) (*UploadVoteTallyInstructionArgs, error) {
	if len(data) < 8+4 {
		return nil, ErrInvalidInstructionData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, UploadVoteTallyInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	var args UploadVoteTallyInstructionArgs

	var idCount uint32
	getUint32(data, &idCount, &offset)
	if len(data) < offset+int(idCount)*8+4 {
		return nil, ErrInvalidInstructionData
	}
	args.CandidateIds = make([]uint64, idCount)
	for i := range args.CandidateIds {
		getUint64(data, &args.CandidateIds[i], &offset)
	}

	var countCount uint32
	getUint32(data, &countCount, &offset)
	if len(data) < offset+int(countCount)*8 {
		return nil, ErrInvalidInstructionData
	}
	args.VoteCounts = make([]uint64, countCount)
	for i := range args.VoteCounts {
		getUint64(data, &args.VoteCounts[i], &offset)
	}

	return &args, nil
}
