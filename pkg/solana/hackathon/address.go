package hackathon

import (
	"crypto/ed25519"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
)

var (
	ActivityPrefix           = []byte("activity")
	CheckInsPrefix           = []byte("check_ins")
	VoteRecordPrefix         = []byte("vote")
	VoteTallyPrefix          = []byte("vote_tally")
	ConfigPrefix             = []byte("config")
	TreasuryPrefix           = []byte("treasury")
	SponsorApplicationPrefix = []byte("sponsor_application")
)

type GetActivityAddressArgs struct {
	Authority  ed25519.PublicKey
	ActivityId uint64
}

func GetActivityAddress(args *GetActivityAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		ActivityPrefix,
		args.Authority,
		uint64ToLeBytes(args.ActivityId),
	)
}

type GetCheckInsAddressArgs struct {
	Activity ed25519.PublicKey
}

func GetCheckInsAddress(args *GetCheckInsAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		CheckInsPrefix,
		args.Activity,
	)
}

type GetVoteRecordAddressArgs struct {
	Activity ed25519.PublicKey
	Voter    ed25519.PublicKey
}

func GetVoteRecordAddress(args *GetVoteRecordAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		VoteRecordPrefix,
		args.Activity,
		args.Voter,
	)
}

type GetVoteTallyAddressArgs struct {
	Activity ed25519.PublicKey
}

func GetVoteTallyAddress(args *GetVoteTallyAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		VoteTallyPrefix,
		args.Activity,
	)
}

func GetSponsorConfigAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		ConfigPrefix,
	)
}

func GetTreasuryAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		TreasuryPrefix,
	)
}

type GetSponsorApplicationAddressArgs struct {
	ApplicationId uint64
}

func GetSponsorApplicationAddress(args *GetSponsorApplicationAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		SponsorApplicationPrefix,
		uint64ToLeBytes(args.ApplicationId),
	)
}
