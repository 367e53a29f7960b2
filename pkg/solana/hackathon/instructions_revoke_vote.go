package hackathon

import (
	"crypto/ed25519"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
)

var RevokeVoteInstructionDiscriminator = instructionDiscriminator("revoke_vote")

type RevokeVoteInstructionAccounts struct {
	Voter      ed25519.PublicKey
	Activity   ed25519.PublicKey
	CheckIns   ed25519.PublicKey
	VoteRecord ed25519.PublicKey
}

func NewRevokeVoteInstruction(
	accounts *RevokeVoteInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 8)

	putDiscriminator(data, RevokeVoteInstructionDiscriminator, &offset)

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
		},
	}
}
