package hackathon

import (
	"bytes"
	"crypto/ed25519"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
)

var VoteInstructionDiscriminator = instructionDiscriminator("vote")

type VoteInstructionArgs struct {
	CandidateId uint64
}

type VoteInstructionAccounts struct {
	Voter      ed25519.PublicKey
	Activity   ed25519.PublicKey
	CheckIns   ed25519.PublicKey
	VoteRecord ed25519.PublicKey
}

func NewVoteInstruction(
	accounts *VoteInstructionAccounts,
	args *VoteInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 8+8)

	putDiscriminator(data, VoteInstructionDiscriminator, &offset)
	putUint64(data, args.CandidateId, &offset)

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Voter,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Activity,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.CheckIns,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.VoteRecord,
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

func ParseVoteInstructionArgs(data []byte) (*VoteInstructionArgs, error) {
	if len(data) < 8+8 {
		return nil, ErrInvalidInstructionData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, VoteInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	var args VoteInstructionArgs
	getUint64(data, &args.CandidateId, &offset)

	return &args, nil
}
