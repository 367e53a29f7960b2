package hackathon

import (
	"bytes"
	"crypto/ed25519"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
)

var UploadCheckInsInstructionDiscriminator = instructionDiscriminator("upload_check_ins")

type UploadCheckInsInstructionArgs struct {
	Attendees []ed25519.PublicKey
}

type UploadCheckInsInstructionAccounts struct {
	Authority ed25519.PublicKey
	Activity  ed25519.PublicKey
	CheckIns  ed25519.PublicKey
}

func NewUploadCheckInsInstruction(
	accounts *UploadCheckInsInstructionAccounts,
	args *UploadCheckInsInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 8+4+len(args.Attendees)*32)

	putDiscriminator(data, UploadCheckInsInstructionDiscriminator, &offset)
	putUint32(data, uint32(len(args.Attendees)), &offset)
	for _, attendee := range args.Attendees {
		putKey(data, attendee, &offset)
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
				PublicKey:  accounts.CheckIns,
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

func ParseUploadCheckInsInstructionArgs(data []byte) (*UploadCheckInsInstructionArgs, error) {
	if len(data) < 8+4 {
		return nil, ErrInvalidInstructionData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, UploadCheckInsInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	var count uint32
	getUint32(data, &count, &offset)
	if len(data) < offset+int(count)*32 {
		return nil, ErrInvalidInstructionData
	}

	args := &UploadCheckInsInstructionArgs{
		Attendees: make([]ed25519.PublicKey, count),
	}
	for i := range args.Attendees {
		getKey(data, &args.Attendees[i], &offset)
	}

	return args, nil
}
