package hackathon

import (
	"bytes"
	"crypto/ed25519"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
)

var PublishActivityInstructionDiscriminator = instructionDiscriminator("publish_activity")

type PublishActivityInstructionArgs struct {
	ActivityId      uint64
	Title           string
	DescriptionHash [32]byte
}

type PublishActivityInstructionAccounts struct {
	Authority ed25519.PublicKey
	Activity  ed25519.PublicKey
}

func NewPublishActivityInstruction(
	accounts *PublishActivityInstructionAccounts,
	args *PublishActivityInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 8+8+4+len(args.Title)+32)

	putDiscriminator(data, PublishActivityInstructionDiscriminator, &offset)
	putUint64(data, args.ActivityId, &offset)
	putString(data, args.Title, &offset)
	putHash(data, args.DescriptionHash, &offset)

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
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

func ParsePublishActivityInstructionArgs(data []byte) (*PublishActivityInstructionArgs, error) {
	if len(data) < 8+8+4+32 {
		return nil, ErrInvalidInstructionData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, PublishActivityInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	var args PublishActivityInstructionArgs
	getUint64(data, &args.ActivityId, &offset)
	if err := getString(data, &args.Title, &offset); err != nil {
		return nil, ErrInvalidInstructionData
	}
	if len(data) < offset+32 {
		return nil, ErrInvalidInstructionData
	}
	getHash(data, &args.DescriptionHash, &offset)

	return &args, nil
}
