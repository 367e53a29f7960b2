package runtime

import (
	"bytes"
	"context"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
	"github.com/hackarena-io/hackathon-server/pkg/solana/hackathon"
)

func castVote(ctx context.Context, t *tx, ixn solana.Instruction) error {
	args, err := hackathon.ParseVoteInstructionArgs(ixn.Data)
	if err != nil {
		return err
	}
	if len(ixn.Accounts) < 4 {
		return hackathon.ErrInvalidInstructionData
	}

	voter := ixn.Accounts[0]
	activityMeta := ixn.Accounts[1]
	checkInsMeta := ixn.Accounts[2]
	voteRecordMeta := ixn.Accounts[3]

	if !voter.IsSigner {
		return ErrMissingSignature
	}

	activity, _, err := loadActivity(ctx, t, activityMeta.PublicKey)
	if err != nil {
		return err
	}
	if activity.Phase != hackathon.ActivityPhaseVoting {
		return hackathon.ErrInvalidPhaseForVote
	}

	checkIns, err := loadRosterForActivity(ctx, t, activityMeta.PublicKey, checkInsMeta.PublicKey)
	if err != nil {
		return err
	}
	if !checkIns.Contains(voter.PublicKey) {
		return hackathon.ErrNotInCheckInList
	}

	derived, bump, err := hackathon.GetVoteRecordAddress(&hackathon.GetVoteRecordAddressArgs{
		Activity: activityMeta.PublicKey,
		Voter:    voter.PublicKey,
	})
	if err != nil {
		return errors.Wrap(err, "failed to derive vote record address")
	}
	if !bytes.Equal(derived, voteRecordMeta.PublicKey) {
		return ErrInvalidAccountAddress
	}

	// One vote per voter per activity: the record PDA can only be
	// created once while it exists.
	voteRecord := &hackathon.VoteRecordAccount{
		Voter:       voter.PublicKey,
		Activity:    activityMeta.PublicKey,
		CandidateId: args.CandidateId,
		Bump:        bump,
	}
	return t.createProgramAccount(ctx, voteRecordMeta.PublicKey, voteRecord.Marshal(), voter.PublicKey)
}

func revokeVote(ctx context.Context, t *tx, ixn solana.Instruction) error {
	if len(ixn.Accounts) < 4 {
		return hackathon.ErrInvalidInstructionData
	}

	voter := ixn.Accounts[0]
	activityMeta := ixn.Accounts[1]
	checkInsMeta := ixn.Accounts[2]
	voteRecordMeta := ixn.Accounts[3]

	if !voter.IsSigner {
		return ErrMissingSignature
	}

	activity, _, err := loadActivity(ctx, t, activityMeta.PublicKey)
	if err != nil {
		return err
	}
	if activity.Phase != hackathon.ActivityPhaseVoting {
		return hackathon.ErrInvalidPhaseForVote
	}

	checkIns, err := loadRosterForActivity(ctx, t, activityMeta.PublicKey, checkInsMeta.PublicKey)
	if err != nil {
		return err
	}
	if !checkIns.Contains(voter.PublicKey) {
		return hackathon.ErrNotInCheckInList
	}

	voteRecord, _, err := loadVoteRecord(ctx, t, voteRecordMeta.PublicKey)
	if err != nil {
		return err
	}
	if !bytes.Equal(voteRecord.Voter, voter.PublicKey) || !bytes.Equal(voteRecord.Activity, activityMeta.PublicKey) {
		return ErrConstraintViolation
	}

	return t.closeAccount(ctx, voteRecordMeta.PublicKey, voter.PublicKey)
}

// upload_vote_tally publishes the final counts and ends the activity.
func uploadVoteTally(ctx context.Context, t *tx, ixn solana.Instruction) error {
	args, err := hackathon.ParseUploadVoteTallyInstructionArgs(ixn.Data)
	if err != nil {
		return err
	}
	if len(ixn.Accounts) < 3 {
		return hackathon.ErrInvalidInstructionData
	}

	authority := ixn.Accounts[0]
	activityMeta := ixn.Accounts[1]
	voteTallyMeta := ixn.Accounts[2]

	if !authority.IsSigner {
		return ErrMissingSignature
	}
	if len(args.CandidateIds) != len(args.VoteCounts) {
		return hackathon.ErrTallyLengthMismatch
	}
	if len(args.CandidateIds) > hackathon.MaxTallyEntries {
		return hackathon.ErrTallyTooLong
	}

	activity, activityRecord, err := loadActivity(ctx, t, activityMeta.PublicKey)
	if err != nil {
		return err
	}
	if !bytes.Equal(activity.Authority, authority.PublicKey) {
		return ErrConstraintViolation
	}
	if activity.Phase != hackathon.ActivityPhaseVoting {
		return hackathon.ErrInvalidPhaseForTally
	}

	derived, bump, err := hackathon.GetVoteTallyAddress(&hackathon.GetVoteTallyAddressArgs{
		Activity: activityMeta.PublicKey,
	})
	if err != nil {
		return errors.Wrap(err, "failed to derive vote tally address")
	}
	if !bytes.Equal(derived, voteTallyMeta.PublicKey) {
		return ErrInvalidAccountAddress
	}

	counts := make([]hackathon.CandidateVote, len(args.CandidateIds))
	for i := range args.CandidateIds {
		counts[i] = hackathon.CandidateVote{
			CandidateId: args.CandidateIds[i],
			VoteCount:   args.VoteCounts[i],
		}
	}

	voteTally := &hackathon.VoteTallyAccount{
		Activity:  activityMeta.PublicKey,
		Authority: authority.PublicKey,
		Counts:    counts,
		Bump:      bump,
	}
	if err := t.createProgramAccount(ctx, voteTallyMeta.PublicKey, voteTally.Marshal(), authority.PublicKey); err != nil {
		return err
	}

	activity.Phase = hackathon.ActivityPhaseEnded
	activityRecord.Data = activity.Marshal()
	t.stage(activityMeta.PublicKey)
	return nil
}

// loadRosterForActivity loads the check-ins account and verifies it is
// the canonical roster PDA for the activity.
func loadRosterForActivity(ctx context.Context, t *tx, activity, checkIns ed25519.PublicKey) (*hackathon.CheckInsAccount, error) {
	derived, _, err := hackathon.GetCheckInsAddress(&hackathon.GetCheckInsAddressArgs{
		Activity: activity,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive check-ins address")
	}
	if !bytes.Equal(derived, checkIns) {
		return nil, ErrInvalidAccountAddress
	}

	roster, _, err := loadCheckIns(ctx, t, checkIns)
	if err != nil {
		return nil, err
	}
	return roster, nil
}
