package hackathon

import (
	"crypto/ed25519"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
)

var DeleteActivityInstructionDiscriminator = instructionDiscriminator("delete_activity")

type DeleteActivityInstructionAccounts struct {
	Authority ed25519.PublicKey
	Activity  ed25519.PublicKey
}

func NewDeleteActivityInstruction(
	accounts *DeleteActivityInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 8)

	putDiscriminator(data, DeleteActivityInstructionDiscriminator, &offset)

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
		},
	}
}
