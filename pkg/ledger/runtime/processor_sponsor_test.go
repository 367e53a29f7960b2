package runtime

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
	"github.com/hackarena-io/hackathon-server/pkg/solana/hackathon"
)

type sponsorTestEnv struct {
	*testEnv

	authority   ed25519.PublicKey
	adminWallet ed25519.PublicKey
	config      ed25519.PublicKey
	treasury    ed25519.PublicKey
}

func newSponsorTestEnv(t *testing.T) *sponsorTestEnv {
	env := &sponsorTestEnv{
		testEnv:     newTestEnv(t),
		authority:   testWallet(1),
		adminWallet: testWallet(2),
	}

	var err error
	env.config, _, err = hackathon.GetSponsorConfigAddress()
	require.NoError(t, err)
	env.treasury, _, err = hackathon.GetTreasuryAddress()
	require.NoError(t, err)

	env.fundWallet(t, env.authority, 100_000_000)
	require.NoError(t, env.execute(hackathon.NewInitializeSponsorConfigInstruction(
		&hackathon.InitializeSponsorConfigInstructionAccounts{
			Authority: env.authority,
			Config:    env.config,
			Treasury:  env.treasury,
		},
		&hackathon.InitializeSponsorConfigInstructionArgs{
			AdminWallet:      env.adminWallet,
			ReviewPeriodSecs: 86400,
		},
	)))
	return env
}

func (e *sponsorTestEnv) apply(t *testing.T, sponsor ed25519.PublicKey, id, amount uint64) ed25519.PublicKey {
	application, _, err := hackathon.GetSponsorApplicationAddress(&hackathon.GetSponsorApplicationAddressArgs{
		ApplicationId: id,
	})
	require.NoError(t, err)

	require.NoError(t, e.execute(hackathon.NewSponsorApplyInstruction(
		&hackathon.SponsorApplyInstructionAccounts{
			Sponsor:     sponsor,
			Config:      e.config,
			Treasury:    e.treasury,
			Application: application,
		},
		&hackathon.SponsorApplyInstructionArgs{
			ApplicationId: id,
			Amount:        amount,
		},
	)))
	return application
}

func (e *sponsorTestEnv) reviewAccounts(sponsor, application ed25519.PublicKey) *hackathon.ReviewSponsorInstructionAccounts {
	return &hackathon.ReviewSponsorInstructionAccounts{
		Authority:     e.authority,
		Config:        e.config,
		Treasury:      e.treasury,
		Application:   application,
		AdminWallet:   e.adminWallet,
		SponsorWallet: sponsor,
	}
}

func TestInitializeSponsorConfig(t *testing.T) {
	env := newSponsorTestEnv(t)

	record, err := env.store.Get(env.ctx, base58.Encode(env.config))
	require.NoError(t, err)

	var config hackathon.SponsorConfigAccount
	require.NoError(t, config.Unmarshal(record.Data))
	assert.Equal(t, env.authority, config.Authority)
	assert.Equal(t, env.adminWallet, config.AdminWallet)
	assert.EqualValues(t, 86400, config.ReviewPeriodSecs)

	// The treasury exists at its rent floor under system ownership
	assert.Equal(t, RentExemptMinimum(0), env.balance(t, env.treasury))

	// Re-initialization is rejected
	err = env.execute(hackathon.NewInitializeSponsorConfigInstruction(
		&hackathon.InitializeSponsorConfigInstructionAccounts{
			Authority: env.authority,
			Config:    env.config,
			Treasury:  env.treasury,
		},
		&hackathon.InitializeSponsorConfigInstructionArgs{AdminWallet: env.adminWallet},
	))
	assert.Equal(t, hackathon.ErrConfigAlreadyInitialized, err)
}

func TestSponsorApply(t *testing.T) {
	env := newSponsorTestEnv(t)

	sponsor := testWallet(3)
	env.fundWallet(t, sponsor, 1_000_000_000)

	treasuryBefore := env.balance(t, env.treasury)
	application := env.apply(t, sponsor, 1, 100_000_000)

	actual := env.getApplication(t, application)
	assert.Equal(t, sponsor, actual.Sponsor)
	assert.EqualValues(t, 100_000_000, actual.Amount)
	assert.Equal(t, hackathon.SponsorApplicationStatusPending, actual.Status)
	assert.Equal(t, testTime, actual.AppliedAt)

	// The pledge sits in the treasury, rent in the application account
	rent := RentExemptMinimum(hackathon.SponsorApplicationAccountSize)
	assert.Equal(t, treasuryBefore+100_000_000, env.balance(t, env.treasury))
	assert.Equal(t, 1_000_000_000-100_000_000-rent, env.balance(t, sponsor))
}

func TestSponsorApply_Validation(t *testing.T) {
	env := newSponsorTestEnv(t)

	sponsor := testWallet(3)
	env.fundWallet(t, sponsor, 1_000_000_000)

	application, _, err := hackathon.GetSponsorApplicationAddress(&hackathon.GetSponsorApplicationAddressArgs{
		ApplicationId: 1,
	})
	require.NoError(t, err)

	err = env.execute(hackathon.NewSponsorApplyInstruction(
		&hackathon.SponsorApplyInstructionAccounts{
			Sponsor:     sponsor,
			Config:      env.config,
			Treasury:    env.treasury,
			Application: application,
		},
		&hackathon.SponsorApplyInstructionArgs{ApplicationId: 1, Amount: 0},
	))
	assert.Equal(t, hackathon.ErrZeroAmount, err)

	err = env.execute(hackathon.NewSponsorApplyInstruction(
		&hackathon.SponsorApplyInstructionAccounts{
			Sponsor:     sponsor,
			Config:      env.config,
			Treasury:    testWallet(9),
			Application: application,
		},
		&hackathon.SponsorApplyInstructionArgs{ApplicationId: 1, Amount: 1},
	))
	assert.Equal(t, hackathon.ErrInvalidTreasury, err)

	assert.Equal(t, uint64(1_000_000_000), env.balance(t, sponsor))
}

func TestReviewSponsor_Approve(t *testing.T) {
	env := newSponsorTestEnv(t)

	sponsor := testWallet(3)
	env.fundWallet(t, sponsor, 1_000_000_000)

	application := env.apply(t, sponsor, 1, 100_000_000)
	treasuryBefore := env.balance(t, env.treasury)

	require.NoError(t, env.execute(hackathon.NewApproveSponsorInstruction(
		env.reviewAccounts(sponsor, application),
		&hackathon.ReviewSponsorInstructionArgs{ApplicationId: 1},
	)))

	assert.Equal(t, hackathon.SponsorApplicationStatusApproved, env.getApplication(t, application).Status)
	assert.Equal(t, uint64(100_000_000), env.balance(t, env.adminWallet))
	assert.Equal(t, treasuryBefore-100_000_000, env.balance(t, env.treasury))

	// The decision is final
	err := env.execute(hackathon.NewRejectSponsorInstruction(
		env.reviewAccounts(sponsor, application),
		&hackathon.ReviewSponsorInstructionArgs{ApplicationId: 1},
	))
	assert.Equal(t, hackathon.ErrApplicationNotPending, err)
}

func TestReviewSponsor_Reject(t *testing.T) {
	env := newSponsorTestEnv(t)

	sponsor := testWallet(3)
	env.fundWallet(t, sponsor, 1_000_000_000)

	application := env.apply(t, sponsor, 1, 30_000_000)
	sponsorBefore := env.balance(t, sponsor)

	require.NoError(t, env.execute(hackathon.NewRejectSponsorInstruction(
		env.reviewAccounts(sponsor, application),
		&hackathon.ReviewSponsorInstructionArgs{ApplicationId: 1},
	)))

	assert.Equal(t, hackathon.SponsorApplicationStatusRejected, env.getApplication(t, application).Status)
	assert.Equal(t, sponsorBefore+30_000_000, env.balance(t, sponsor))
	assert.Equal(t, uint64(0), env.balance(t, env.adminWallet))

	err := env.execute(hackathon.NewApproveSponsorInstruction(
		env.reviewAccounts(sponsor, application),
		&hackathon.ReviewSponsorInstructionArgs{ApplicationId: 1},
	))
	assert.Equal(t, hackathon.ErrApplicationNotPending, err)
}

func TestReviewSponsor_Validation(t *testing.T) {
	env := newSponsorTestEnv(t)

	sponsor := testWallet(3)
	env.fundWallet(t, sponsor, 1_000_000_000)

	application := env.apply(t, sponsor, 1, 100_000_000)

	accounts := env.reviewAccounts(sponsor, application)
	accounts.Authority = testWallet(9)
	err := env.execute(hackathon.NewApproveSponsorInstruction(accounts, &hackathon.ReviewSponsorInstructionArgs{ApplicationId: 1}))
	assert.Equal(t, hackathon.ErrNotConfigAuthority, err)

	accounts = env.reviewAccounts(sponsor, application)
	accounts.AdminWallet = testWallet(9)
	err = env.execute(hackathon.NewApproveSponsorInstruction(accounts, &hackathon.ReviewSponsorInstructionArgs{ApplicationId: 1}))
	assert.Equal(t, hackathon.ErrAdminWalletMismatch, err)

	accounts = env.reviewAccounts(sponsor, application)
	accounts.SponsorWallet = testWallet(9)
	err = env.execute(hackathon.NewApproveSponsorInstruction(accounts, &hackathon.ReviewSponsorInstructionArgs{ApplicationId: 1}))
	assert.Equal(t, hackathon.ErrSponsorWalletMismatch, err)

	accounts = env.reviewAccounts(sponsor, application)
	accounts.Treasury = testWallet(9)
	err = env.execute(hackathon.NewApproveSponsorInstruction(accounts, &hackathon.ReviewSponsorInstructionArgs{ApplicationId: 1}))
	assert.Equal(t, hackathon.ErrInvalidTreasury, err)

	// Nothing moved
	assert.Equal(t, hackathon.SponsorApplicationStatusPending, env.getApplication(t, application).Status)
	assert.Equal(t, uint64(0), env.balance(t, env.adminWallet))
}

func TestReviewSponsor_ConcurrentDecisions(t *testing.T) {
	env := newSponsorTestEnv(t)

	sponsor := testWallet(3)
	env.fundWallet(t, sponsor, 1_000_000_000)

	application := env.apply(t, sponsor, 1, 100_000_000)
	sponsorBefore := env.balance(t, sponsor)
	treasuryBefore := env.balance(t, env.treasury)

	approve := hackathon.NewApproveSponsorInstruction(
		env.reviewAccounts(sponsor, application),
		&hackathon.ReviewSponsorInstructionArgs{ApplicationId: 1},
	)
	reject := hackathon.NewRejectSponsorInstruction(
		env.reviewAccounts(sponsor, application),
		&hackathon.ReviewSponsorInstructionArgs{ApplicationId: 1},
	)

	start := make(chan struct{})
	errs := make(chan error, 2)
	for _, ixn := range []solana.Instruction{approve, reject} {
		go func(ixn solana.Instruction) {
			<-start
			errs <- env.execute(ixn)
		}(ixn)
	}
	close(start)

	var failures []error
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			failures = append(failures, err)
		}
	}

	// Exactly one decision lands; the loser sees the settled status
	require.Len(t, failures, 1)
	assert.Equal(t, hackathon.ErrApplicationNotPending, failures[0])

	// The escrowed amount was paid out exactly once
	assert.Equal(t, treasuryBefore-100_000_000, env.balance(t, env.treasury))
	adminGain := env.balance(t, env.adminWallet)
	sponsorGain := env.balance(t, sponsor) - sponsorBefore
	assert.Equal(t, uint64(100_000_000), adminGain+sponsorGain)

	status := env.getApplication(t, application).Status
	if adminGain > 0 {
		assert.Equal(t, hackathon.SponsorApplicationStatusApproved, status)
		assert.Equal(t, uint64(0), sponsorGain)
	} else {
		assert.Equal(t, hackathon.SponsorApplicationStatusRejected, status)
		assert.Equal(t, uint64(100_000_000), sponsorGain)
	}
}

func TestSponsorEscrow_Conservation(t *testing.T) {
	env := newSponsorTestEnv(t)

	sponsor := testWallet(3)
	env.fundWallet(t, sponsor, 1_000_000_000)

	parties := []ed25519.PublicKey{
		env.authority, sponsor, env.adminWallet, env.config, env.treasury,
	}
	total := func(application ed25519.PublicKey) uint64 {
		var sum uint64
		for _, party := range parties {
			sum += env.balance(t, party)
		}
		return sum + env.balance(t, application)
	}

	application, _, err := hackathon.GetSponsorApplicationAddress(&hackathon.GetSponsorApplicationAddressArgs{
		ApplicationId: 1,
	})
	require.NoError(t, err)

	before := total(application)
	env.apply(t, sponsor, 1, 100_000_000)
	assert.Equal(t, before, total(application))

	require.NoError(t, env.execute(hackathon.NewApproveSponsorInstruction(
		env.reviewAccounts(sponsor, application),
		&hackathon.ReviewSponsorInstructionArgs{ApplicationId: 1},
	)))
	assert.Equal(t, before, total(application))
}
