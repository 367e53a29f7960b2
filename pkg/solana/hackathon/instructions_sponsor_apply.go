package hackathon

import (
	"bytes"
	"crypto/ed25519"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
)

var SponsorApplyInstructionDiscriminator = instructionDiscriminator("sponsor_apply")

type SponsorApplyInstructionArgs struct {
	ApplicationId uint64
	Amount        uint64
}

type SponsorApplyInstructionAccounts struct {
	Sponsor     ed25519.PublicKey
	Config      ed25519.PublicKey
	Treasury    ed25519.PublicKey
	Application ed25519.PublicKey
}

func NewSponsorApplyInstruction(
	accounts *SponsorApplyInstructionAccounts,
	args *SponsorApplyInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 8+8+8)

	putDiscriminator(data, SponsorApplyInstructionDiscriminator, &offset)
	putUint64(data, args.ApplicationId, &offset)
	putUint64(data, args.Amount, &offset)

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Sponsor,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Config,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Treasury,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Application,
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

func ParseSponsorApplyInstructionArgs(data []byte) (*SponsorApplyInstructionArgs, error) {
	if len(data) < 8+8+8 {
		return nil, ErrInvalidInstructionData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, SponsorApplyInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	var args SponsorApplyInstructionArgs
	getUint64(data, &args.ApplicationId, &offset)
	getUint64(data, &args.Amount, &offset)

	return &args, nil
}
