package runtime

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/hackarena-io/hackathon-server/pkg/ledger/data/account"
	"github.com/hackarena-io/hackathon-server/pkg/solana"
	"github.com/hackarena-io/hackathon-server/pkg/solana/hackathon"
)

// Runtime executes hackathon program instructions against an account
// store. Each Execute call is one all-or-nothing ledger transaction: the
// handler validates signers, derived addresses, phase preconditions and
// balances against a staged view of the accounts, and only a fully
// successful execution commits its write set.
//
// Executions are serialized. A transaction racing on an account therefore
// observes the winner's committed state on its own fresh reads, so the
// loser of, say, two decisions on one sponsor application fails on the
// status check instead of double-spending the escrow.
type Runtime struct {
	executeMu sync.Mutex

	log   *logrus.Entry
	store account.Store
	nowFn func() int64
}

// New returns a runtime backed by the provided account store.
func New(store account.Store) *Runtime {
	return &Runtime{
		log:   logrus.StandardLogger().WithField("type", "ledger/runtime"),
		store: store,
		nowFn: func() int64 { return time.Now().Unix() },
	}
}

// SetNowFunc overrides the time source used for recorded timestamps.
// Primarily intended for tests to provide deterministic values.
func (r *Runtime) SetNowFunc(now func() int64) {
	if now == nil {
		r.nowFn = func() int64 { return time.Now().Unix() }
		return
	}
	r.nowFn = now
}

// Execute runs a single instruction. Failures are deterministic given the
// account state and instruction contents, and leave no partial state
// change behind.
func (r *Runtime) Execute(ctx context.Context, ixn solana.Instruction) error {
	if !bytes.Equal(ixn.Program, hackathon.PROGRAM_ID) {
		return ErrInvalidProgram
	}
	if len(ixn.Data) < 8 {
		return hackathon.ErrInvalidInstructionData
	}

	name, handler, err := r.resolveHandler(ixn.Data[:8])
	if err != nil {
		return err
	}

	r.executeMu.Lock()
	defer r.executeMu.Unlock()

	log := r.log.WithFields(logrus.Fields{
		"method":      "Execute",
		"trace_id":    uuid.NewString(),
		"instruction": name,
	})

	t := newTx(r.store, r.nowFn())

	if err := handler(ctx, t, ixn); err != nil {
		log.WithError(err).Debug("instruction rejected")
		return err
	}

	if err := t.commit(ctx); err != nil {
		log.WithError(err).Warn("failed to commit state changes")
		return errors.Wrap(err, "failed to commit state changes")
	}

	log.Debug("instruction executed")
	return nil
}

type instructionHandler func(ctx context.Context, t *tx, ixn solana.Instruction) error

func (r *Runtime) resolveHandler(discriminator []byte) (string, instructionHandler, error) {
	for _, entry := range []struct {
		discriminator []byte
		name          string
		handler       instructionHandler
	}{
		{hackathon.PublishActivityInstructionDiscriminator, "publish_activity", publishActivity},
		{hackathon.DeleteActivityInstructionDiscriminator, "delete_activity", deleteActivity},
		{hackathon.StartRegistrationInstructionDiscriminator, "start_registration", startRegistration},
		{hackathon.StartCheckInInstructionDiscriminator, "start_check_in", startCheckIn},
		{hackathon.StartTeamFormationInstructionDiscriminator, "start_team_formation", startTeamFormation},
		{hackathon.StartSubmissionInstructionDiscriminator, "start_submission", startSubmission},
		{hackathon.StartVotingInstructionDiscriminator, "start_voting", startVoting},
		{hackathon.UploadCheckInsInstructionDiscriminator, "upload_check_ins", uploadCheckIns},
		{hackathon.VoteInstructionDiscriminator, "vote", castVote},
		{hackathon.RevokeVoteInstructionDiscriminator, "revoke_vote", revokeVote},
		{hackathon.UploadVoteTallyInstructionDiscriminator, "upload_vote_tally", uploadVoteTally},
		{hackathon.InitializeSponsorConfigInstructionDiscriminator, "initialize_sponsor_config", initializeSponsorConfig},
		{hackathon.SponsorApplyInstructionDiscriminator, "sponsor_apply", sponsorApply},
		{hackathon.ApproveSponsorInstructionDiscriminator, "approve_sponsor", approveSponsor},
		{hackathon.RejectSponsorInstructionDiscriminator, "reject_sponsor", rejectSponsor},
	} {
		if bytes.Equal(discriminator, entry.discriminator) {
			return entry.name, entry.handler, nil
		}
	}
	return "", nil, hackathon.ErrInvalidInstructionData
}
