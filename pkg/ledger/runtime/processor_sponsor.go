package runtime

import (
	"bytes"
	"context"

	"github.com/pkg/errors"

	"github.com/hackarena-io/hackathon-server/pkg/ledger/data/account"
	"github.com/hackarena-io/hackathon-server/pkg/solana"
	"github.com/hackarena-io/hackathon-server/pkg/solana/hackathon"
)

func initializeSponsorConfig(ctx context.Context, t *tx, ixn solana.Instruction) error {
	args, err := hackathon.ParseInitializeSponsorConfigInstructionArgs(ixn.Data)
	if err != nil {
		return err
	}
	if len(ixn.Accounts) < 3 {
		return hackathon.ErrInvalidInstructionData
	}

	authority := ixn.Accounts[0]
	configMeta := ixn.Accounts[1]
	treasuryMeta := ixn.Accounts[2]

	if !authority.IsSigner {
		return ErrMissingSignature
	}

	derivedConfig, configBump, err := hackathon.GetSponsorConfigAddress()
	if err != nil {
		return errors.Wrap(err, "failed to derive config address")
	}
	if !bytes.Equal(derivedConfig, configMeta.PublicKey) {
		return ErrInvalidAccountAddress
	}

	derivedTreasury, treasuryBump, err := hackathon.GetTreasuryAddress()
	if err != nil {
		return errors.Wrap(err, "failed to derive treasury address")
	}
	if !bytes.Equal(derivedTreasury, treasuryMeta.PublicKey) {
		return hackathon.ErrInvalidTreasury
	}

	config := &hackathon.SponsorConfigAccount{
		Authority:        authority.PublicKey,
		AdminWallet:      args.AdminWallet,
		ReviewPeriodSecs: args.ReviewPeriodSecs,
		TreasuryBump:     treasuryBump,
		Bump:             configBump,
	}
	if err := t.createProgramAccount(ctx, configMeta.PublicKey, config.Marshal(), authority.PublicKey); err != nil {
		if errors.Is(err, account.ErrAccountAlreadyExists) {
			return hackathon.ErrConfigAlreadyInitialized
		}
		return err
	}

	// The treasury holds lamports only, so it stays under system
	// ownership and is funded to its rent floor up front.
	if err := t.createSystemAccount(ctx, treasuryMeta.PublicKey, authority.PublicKey); err != nil {
		if errors.Is(err, account.ErrAccountAlreadyExists) {
			return hackathon.ErrConfigAlreadyInitialized
		}
		return err
	}
	return nil
}

func sponsorApply(ctx context.Context, t *tx, ixn solana.Instruction) error {
	args, err := hackathon.ParseSponsorApplyInstructionArgs(ixn.Data)
	if err != nil {
		return err
	}
	if len(ixn.Accounts) < 4 {
		return hackathon.ErrInvalidInstructionData
	}

	sponsor := ixn.Accounts[0]
	configMeta := ixn.Accounts[1]
	treasuryMeta := ixn.Accounts[2]
	applicationMeta := ixn.Accounts[3]

	if !sponsor.IsSigner {
		return ErrMissingSignature
	}
	if args.Amount == 0 {
		return hackathon.ErrZeroAmount
	}

	config, err := loadConfigAt(ctx, t, configMeta.PublicKey)
	if err != nil {
		return err
	}
	if err := verifyTreasury(treasuryMeta.PublicKey, config.TreasuryBump); err != nil {
		return err
	}

	derived, bump, err := hackathon.GetSponsorApplicationAddress(&hackathon.GetSponsorApplicationAddressArgs{
		ApplicationId: args.ApplicationId,
	})
	if err != nil {
		return errors.Wrap(err, "failed to derive application address")
	}
	if !bytes.Equal(derived, applicationMeta.PublicKey) {
		return ErrInvalidAccountAddress
	}

	application := &hackathon.SponsorApplicationAccount{
		Sponsor:   sponsor.PublicKey,
		Amount:    args.Amount,
		Status:    hackathon.SponsorApplicationStatusPending,
		AppliedAt: t.now,
		Bump:      bump,
	}
	if err := t.createProgramAccount(ctx, applicationMeta.PublicKey, application.Marshal(), sponsor.PublicKey); err != nil {
		return err
	}

	// Escrow the pledge. Rent for the application account was already
	// debited above, so the sponsor pays amount + rent in total.
	if err := t.debitWallet(ctx, sponsor.PublicKey, args.Amount); err != nil {
		return err
	}
	return t.creditWallet(ctx, treasuryMeta.PublicKey, args.Amount)
}

func approveSponsor(ctx context.Context, t *tx, ixn solana.Instruction) error {
	return reviewSponsor(ctx, t, ixn, hackathon.SponsorApplicationStatusApproved)
}

func rejectSponsor(ctx context.Context, t *tx, ixn solana.Instruction) error {
	return reviewSponsor(ctx, t, ixn, hackathon.SponsorApplicationStatusRejected)
}

// reviewSponsor settles a pending application: approval releases the
// escrowed amount to the admin wallet, rejection refunds the sponsor.
func reviewSponsor(ctx context.Context, t *tx, ixn solana.Instruction, decision hackathon.SponsorApplicationStatus) error {
	args, err := hackathon.ParseReviewSponsorInstructionArgs(ixn.Data)
	if err != nil {
		return err
	}
	if len(ixn.Accounts) < 6 {
		return hackathon.ErrInvalidInstructionData
	}

	authority := ixn.Accounts[0]
	configMeta := ixn.Accounts[1]
	treasuryMeta := ixn.Accounts[2]
	applicationMeta := ixn.Accounts[3]
	adminWalletMeta := ixn.Accounts[4]
	sponsorWalletMeta := ixn.Accounts[5]

	if !authority.IsSigner {
		return ErrMissingSignature
	}

	config, err := loadConfigAt(ctx, t, configMeta.PublicKey)
	if err != nil {
		return err
	}
	if !bytes.Equal(config.Authority, authority.PublicKey) {
		return hackathon.ErrNotConfigAuthority
	}
	if !bytes.Equal(config.AdminWallet, adminWalletMeta.PublicKey) {
		return hackathon.ErrAdminWalletMismatch
	}
	if err := verifyTreasury(treasuryMeta.PublicKey, config.TreasuryBump); err != nil {
		return err
	}

	derived, _, err := hackathon.GetSponsorApplicationAddress(&hackathon.GetSponsorApplicationAddressArgs{
		ApplicationId: args.ApplicationId,
	})
	if err != nil {
		return errors.Wrap(err, "failed to derive application address")
	}
	if !bytes.Equal(derived, applicationMeta.PublicKey) {
		return ErrInvalidAccountAddress
	}

	application, applicationRecord, err := loadSponsorApplication(ctx, t, applicationMeta.PublicKey)
	if err != nil {
		return err
	}
	if !application.IsPending() {
		return hackathon.ErrApplicationNotPending
	}
	if !bytes.Equal(application.Sponsor, sponsorWalletMeta.PublicKey) {
		return hackathon.ErrSponsorWalletMismatch
	}

	recipient := adminWalletMeta.PublicKey
	if decision == hackathon.SponsorApplicationStatusRejected {
		recipient = sponsorWalletMeta.PublicKey
	}
	if err := t.debitWallet(ctx, treasuryMeta.PublicKey, application.Amount); err != nil {
		return err
	}
	if err := t.creditWallet(ctx, recipient, application.Amount); err != nil {
		return err
	}

	application.Status = decision
	applicationRecord.Data = application.Marshal()
	t.stage(applicationMeta.PublicKey)
	return nil
}

func loadConfigAt(ctx context.Context, t *tx, address []byte) (*hackathon.SponsorConfigAccount, error) {
	derived, _, err := hackathon.GetSponsorConfigAddress()
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive config address")
	}
	if !bytes.Equal(derived, address) {
		return nil, ErrInvalidAccountAddress
	}

	config, _, err := loadSponsorConfig(ctx, t, address)
	if err != nil {
		return nil, err
	}
	return config, nil
}

func verifyTreasury(address []byte, bump uint8) error {
	derived, err := solana.CreateProgramAddress(
		hackathon.PROGRAM_ID,
		hackathon.TreasuryPrefix,
		[]byte{bump},
	)
	if err != nil {
		return errors.Wrap(err, "failed to derive treasury address")
	}
	if !bytes.Equal(derived, address) {
		return hackathon.ErrInvalidTreasury
	}
	return nil
}
