package hackathon

import (
	"bytes"
	"crypto/ed25519"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
)

var (
	ApproveSponsorInstructionDiscriminator = instructionDiscriminator("approve_sponsor")
	RejectSponsorInstructionDiscriminator  = instructionDiscriminator("reject_sponsor")
)

// approve_sponsor and reject_sponsor share one account shape: both wallets
// are supplied so the program can verify them against config/application
// before any funds move.
type ReviewSponsorInstructionArgs struct {
	ApplicationId uint64
}

type ReviewSponsorInstructionAccounts struct {
	Authority     ed25519.PublicKey
	Config        ed25519.PublicKey
	Treasury      ed25519.PublicKey
	Application   ed25519.PublicKey
	AdminWallet   ed25519.PublicKey
	SponsorWallet ed25519.PublicKey
}

func newReviewSponsorInstruction(
	discriminator []byte,
	accounts *ReviewSponsorInstructionAccounts,
	args *ReviewSponsorInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 8+8)

	putDiscriminator(data, discriminator, &offset)
	putUint64(data, args.ApplicationId, &offset)

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
				PublicKey:  accounts.AdminWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.SponsorWallet,
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

func NewApproveSponsorInstruction(
	accounts *ReviewSponsorInstructionAccounts,
	args *ReviewSponsorInstructionArgs,
) solana.Instruction {
	return newReviewSponsorInstruction(ApproveSponsorInstructionDiscriminator, accounts, args)
}

func NewRejectSponsorInstruction(
	accounts *ReviewSponsorInstructionAccounts,
	args *ReviewSponsorInstructionArgs,
) solana.Instruction {
	return newReviewSponsorInstruction(RejectSponsorInstructionDiscriminator, accounts, args)
}

func ParseReviewSponsorInstructionArgs(data []byte) (*ReviewSponsorInstructionArgs, error) {
	if len(data) < 8+8 {
		return nil, ErrInvalidInstructionData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, ApproveSponsorInstructionDiscriminator) &&
		!bytes.Equal(discriminator, RejectSponsorInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	var args ReviewSponsorInstructionArgs
	getUint64(data, &args.ApplicationId, &offset)

	return &args, nil
}
