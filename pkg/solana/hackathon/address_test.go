package hackathon

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackarena-io/hackathon-server/pkg/solana"
)

func TestGetActivityAddress(t *testing.T) {
	authority := testKey(1)

	address, bump, err := GetActivityAddress(&GetActivityAddressArgs{
		Authority:  authority,
		ActivityId: 42,
	})
	require.NoError(t, err)
	require.Len(t, []byte(address), ed25519.PublicKeySize)

	// Derivation is deterministic
	again, againBump, err := GetActivityAddress(&GetActivityAddressArgs{
		Authority:  authority,
		ActivityId: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, address, again)
	assert.Equal(t, bump, againBump)

	// The bump reproduces the address directly
	direct, err := solana.CreateProgramAddress(
		PROGRAM_ID,
		ActivityPrefix,
		authority,
		uint64ToLeBytes(42),
		[]byte{bump},
	)
	require.NoError(t, err)
	assert.Equal(t, address, direct)

	// Different id or authority yields a different account
	other, _, err := GetActivityAddress(&GetActivityAddressArgs{
		Authority:  authority,
		ActivityId: 43,
	})
	require.NoError(t, err)
	assert.NotEqual(t, address, other)

	other, _, err = GetActivityAddress(&GetActivityAddressArgs{
		Authority:  testKey(2),
		ActivityId: 42,
	})
	require.NoError(t, err)
	assert.NotEqual(t, address, other)
}

func TestGetDerivedActivityAddresses(t *testing.T) {
	activity, _, err := GetActivityAddress(&GetActivityAddressArgs{
		Authority:  testKey(1),
		ActivityId: 1,
	})
	require.NoError(t, err)

	checkIns, _, err := GetCheckInsAddress(&GetCheckInsAddressArgs{
		Activity: activity,
	})
	require.NoError(t, err)

	voteTally, _, err := GetVoteTallyAddress(&GetVoteTallyAddressArgs{
		Activity: activity,
	})
	require.NoError(t, err)

	voteRecord, _, err := GetVoteRecordAddress(&GetVoteRecordAddressArgs{
		Activity: activity,
		Voter:    testKey(3),
	})
	require.NoError(t, err)

	// All PDAs for one activity are distinct
	assert.NotEqual(t, checkIns, voteTally)
	assert.NotEqual(t, checkIns, voteRecord)
	assert.NotEqual(t, voteTally, voteRecord)

	// Per-voter records are distinct
	otherVoteRecord, _, err := GetVoteRecordAddress(&GetVoteRecordAddressArgs{
		Activity: activity,
		Voter:    testKey(4),
	})
	require.NoError(t, err)
	assert.NotEqual(t, voteRecord, otherVoteRecord)
}

func TestGetSponsorAddresses(t *testing.T) {
	config, _, err := GetSponsorConfigAddress()
	require.NoError(t, err)

	treasury, treasuryBump, err := GetTreasuryAddress()
	require.NoError(t, err)
	assert.NotEqual(t, config, treasury)

	direct, err := solana.CreateProgramAddress(
		PROGRAM_ID,
		TreasuryPrefix,
		[]byte{treasuryBump},
	)
	require.NoError(t, err)
	assert.Equal(t, treasury, direct)

	application, _, err := GetSponsorApplicationAddress(&GetSponsorApplicationAddressArgs{
		ApplicationId: 7,
	})
	require.NoError(t, err)

	otherApplication, _, err := GetSponsorApplicationAddress(&GetSponsorApplicationAddressArgs{
		ApplicationId: 8,
	})
	require.NoError(t, err)
	assert.NotEqual(t, application, otherApplication)
}

func testKey(fill byte) ed25519.PublicKey {
	key := make(ed25519.PublicKey, ed25519.PublicKeySize)
	for i := range key {
		key[i] = fill
	}
	return key
}
