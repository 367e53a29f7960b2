package hackathon

import (
	"crypto/ed25519"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
)

// The five argument-less phase transition instructions share the same
// account shape: the activity's authority co-signs and the activity account
// is mutated in place.

var (
	StartRegistrationInstructionDiscriminator  = instructionDiscriminator("start_registration")
	StartCheckInInstructionDiscriminator       = instructionDiscriminator("start_check_in")
	StartTeamFormationInstructionDiscriminator = instructionDiscriminator("start_team_formation")
	StartSubmissionInstructionDiscriminator    = instructionDiscriminator("start_submission")
	StartVotingInstructionDiscriminator        = instructionDiscriminator("start_voting")
)

type PhaseTransitionInstructionAccounts struct {
	Authority ed25519.PublicKey
	Activity  ed25519.PublicKey
}

func newPhaseTransitionInstruction(
	discriminator []byte,
	accounts *PhaseTransitionInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 8)

	putDiscriminator(data, discriminator, &offset)

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Authority,
				IsWritable: false,
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

func NewStartRegistrationInstruction(accounts *PhaseTransitionInstructionAccounts) solana.Instruction {
	return newPhaseTransitionInstruction(StartRegistrationInstructionDiscriminator, accounts)
}

func NewStartCheckInInstruction(accounts *PhaseTransitionInstructionAccounts) solana.Instruction {
	return newPhaseTransitionInstruction(StartCheckInInstructionDiscriminator, accounts)
}

func NewStartTeamFormationInstruction(accounts *PhaseTransitionInstructionAccounts) solana.Instruction {
	return newPhaseTransitionInstruction(StartTeamFormationInstructionDiscriminator, accounts)
}

func NewStartSubmissionInstruction(accounts *PhaseTransitionInstructionAccounts) solana.Instruction {
	return newPhaseTransitionInstruction(StartSubmissionInstructionDiscriminator, accounts)
}

func NewStartVotingInstruction(accounts *PhaseTransitionInstructionAccounts) solana.Instruction {
	return newPhaseTransitionInstruction(StartVotingInstructionDiscriminator, accounts)
}
