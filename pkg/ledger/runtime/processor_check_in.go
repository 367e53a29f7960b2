package runtime

import (
	"bytes"
	"context"

	"github.com/pkg/errors"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
	"github.com/hackarena-io/hackathon-server/pkg/solana/hackathon"
)

// upload_check_ins records the attendee roster and doubles as the
// CheckIn -> TeamFormation transition.
func uploadCheckIns(ctx context.Context, t *tx, ixn solana.Instruction) error {
	args, err := hackathon.ParseUploadCheckInsInstructionArgs(ixn.Data)
	if err != nil {
		return err
	}
	if len(ixn.Accounts) < 3 {
		return hackathon.ErrInvalidInstructionData
	}

	authority := ixn.Accounts[0]
	activityMeta := ixn.Accounts[1]
	checkInsMeta := ixn.Accounts[2]

	if !authority.IsSigner {
		return ErrMissingSignature
	}
	if len(args.Attendees) > hackathon.MaxCheckInAttendees {
		return hackathon.ErrCheckInListTooLong
	}

	activity, activityRecord, err := loadActivity(ctx, t, activityMeta.PublicKey)
	if err != nil {
		return err
	}
	if !bytes.Equal(activity.Authority, authority.PublicKey) {
		return ErrConstraintViolation
	}
	if activity.Phase != hackathon.ActivityPhaseCheckIn {
		return hackathon.ErrInvalidPhaseForCheckInUpload
	}

	derived, bump, err := hackathon.GetCheckInsAddress(&hackathon.GetCheckInsAddressArgs{
		Activity: activityMeta.PublicKey,
	})
	if err != nil {
		return errors.Wrap(err, "failed to derive check-ins address")
	}
	if !bytes.Equal(derived, checkInsMeta.PublicKey) {
		return ErrInvalidAccountAddress
	}

	checkIns := &hackathon.CheckInsAccount{
		Activity:  activityMeta.PublicKey,
		Authority: authority.PublicKey,
		Attendees: args.Attendees,
		Bump:      bump,
	}
	if err := t.createProgramAccount(ctx, checkInsMeta.PublicKey, checkIns.Marshal(), authority.PublicKey); err != nil {
		return err
	}

	activity.Phase = hackathon.ActivityPhaseTeamFormation
	activityRecord.Data = activity.Marshal()
	t.stage(activityMeta.PublicKey)
	return nil
}
