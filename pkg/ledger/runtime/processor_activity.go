package runtime

import (
	"bytes"
	"context"

	"github.com/pkg/errors"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
	"github.com/hackarena-io/hackathon-server/pkg/solana/hackathon"
)

func publishActivity(ctx context.Context, t *tx, ixn solana.Instruction) error {
	args, err := hackathon.ParsePublishActivityInstructionArgs(ixn.Data)
	if err != nil {
		return err
	}
	if len(ixn.Accounts) < 2 {
		return hackathon.ErrInvalidInstructionData
	}

	authority := ixn.Accounts[0]
	activityMeta := ixn.Accounts[1]

	if !authority.IsSigner {
		return ErrMissingSignature
	}
	if len(args.Title) > hackathon.MaxTitleLength {
		return hackathon.ErrTitleTooLong
	}

	derived, bump, err := hackathon.GetActivityAddress(&hackathon.GetActivityAddressArgs{
		Authority:  authority.PublicKey,
		ActivityId: args.ActivityId,
	})
	if err != nil {
		return errors.Wrap(err, "failed to derive activity address")
	}
	if !bytes.Equal(derived, activityMeta.PublicKey) {
		return ErrInvalidAccountAddress
	}

	activity := &hackathon.ActivityAccount{
		Authority:       authority.PublicKey,
		ActivityId:      args.ActivityId,
		Title:           args.Title,
		DescriptionHash: args.DescriptionHash,
		Phase:           hackathon.ActivityPhaseDraft,
		Bump:            bump,
		CreatedAt:       t.now,
	}
	return t.createProgramAccount(ctx, activityMeta.PublicKey, activity.Marshal(), authority.PublicKey)
}

func deleteActivity(ctx context.Context, t *tx, ixn solana.Instruction) error {
	if len(ixn.Accounts) < 2 {
		return hackathon.ErrInvalidInstructionData
	}

	authority := ixn.Accounts[0]
	activityMeta := ixn.Accounts[1]

	if !authority.IsSigner {
		return ErrMissingSignature
	}

	activity, _, err := loadActivity(ctx, t, activityMeta.PublicKey)
	if err != nil {
		return err
	}
	if !bytes.Equal(activity.Authority, authority.PublicKey) {
		return ErrConstraintViolation
	}
	if activity.Phase != hackathon.ActivityPhaseDraft {
		return hackathon.ErrCannotDeleteAfterRegistration
	}

	return t.closeAccount(ctx, activityMeta.PublicKey, authority.PublicKey)
}

func startRegistration(ctx context.Context, t *tx, ixn solana.Instruction) error {
	return advancePhase(ctx, t, ixn, hackathon.ActivityPhaseDraft, hackathon.ActivityPhaseRegistration)
}

func startCheckIn(ctx context.Context, t *tx, ixn solana.Instruction) error {
	return advancePhase(ctx, t, ixn, hackathon.ActivityPhaseRegistration, hackathon.ActivityPhaseCheckIn)
}

// start_team_formation moves an activity out of check-in without a roster.
// Voting then fails on the missing check-ins account; upload_check_ins is
// the transition that also records attendees.
func startTeamFormation(ctx context.Context, t *tx, ixn solana.Instruction) error {
	return advancePhase(ctx, t, ixn, hackathon.ActivityPhaseCheckIn, hackathon.ActivityPhaseTeamFormation)
}

func startSubmission(ctx context.Context, t *tx, ixn solana.Instruction) error {
	return advancePhase(ctx, t, ixn, hackathon.ActivityPhaseTeamFormation, hackathon.ActivityPhaseSubmission)
}

func startVoting(ctx context.Context, t *tx, ixn solana.Instruction) error {
	return advancePhase(ctx, t, ixn, hackathon.ActivityPhaseSubmission, hackathon.ActivityPhaseVoting)
}

// advancePhase applies one edge of the phase machine: the caller must be
// the activity's authority, and the activity must be in the exact
// predecessor phase.
func advancePhase(ctx context.Context, t *tx, ixn solana.Instruction, from, to hackathon.ActivityPhase) error {
	if len(ixn.Accounts) < 2 {
		return hackathon.ErrInvalidInstructionData
	}

	authority := ixn.Accounts[0]
	activityMeta := ixn.Accounts[1]

	if !authority.IsSigner {
		return ErrMissingSignature
	}

	activity, record, err := loadActivity(ctx, t, activityMeta.PublicKey)
	if err != nil {
		return err
	}
	if !bytes.Equal(activity.Authority, authority.PublicKey) {
		return ErrConstraintViolation
	}
	if activity.Phase != from {
		return hackathon.ErrInvalidPhaseTransition
	}

	activity.Phase = to
	record.Data = activity.Marshal()
	t.stage(activityMeta.PublicKey)
	return nil
}
