package hackathon

import (
	"bytes"
	"crypto/ed25519"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
)

var InitializeSponsorConfigInstructionDiscriminator = instructionDiscriminator("initialize_sponsor_config")

type InitializeSponsorConfigInstructionArgs struct {
	AdminWallet      ed25519.PublicKey
	ReviewPeriodSecs uint64
}

type InitializeSponsorConfigInstructionAccounts struct {
	Authority ed25519.PublicKey
	Config    ed25519.PublicKey
	Treasury  ed25519.PublicKey
}

func NewInitializeSponsorConfigInstruction(
	accounts *InitializeSponsorConfigInstructionAccounts,
	args *InitializeSponsorConfigInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 8+32+8)

	putDiscriminator(data, InitializeSponsorConfigInstructionDiscriminator, &offset)
	putKey(data, args.AdminWallet, &offset)
	putUint64(data, args.ReviewPeriodSecs, &offset)

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
				PublicKey:  accounts.Config,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Treasury,
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

func ParseInitializeSponsorConfigInstructionArgs(data []byte) (*InitializeSponsorConfigInstructionArgs, error) {
	if len(data) < 8+32+8 {
		return nil, ErrInvalidInstructionData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, InitializeSponsorConfigInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	var args InitializeSponsorConfigInstructionArgs
	getKey(data, &args.AdminWallet, &offset)
	getUint64(data, &args.ReviewPeriodSecs, &offset)

	return &args, nil
}
