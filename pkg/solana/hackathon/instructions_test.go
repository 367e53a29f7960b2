package hackathon

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishActivityInstruction(t *testing.T) {
	authority := testKey(1)
	activity, _, err := GetActivityAddress(&GetActivityAddressArgs{
		Authority:  authority,
		ActivityId: 42,
	})
	require.NoError(t, err)

	expected := PublishActivityInstructionArgs{
		ActivityId: 42,
		Title:      "summer hackathon",
	}
	for i := range expected.DescriptionHash {
		expected.DescriptionHash[i] = 0xcd
	}

	ixn := NewPublishActivityInstruction(
		&PublishActivityInstructionAccounts{
			Authority: authority,
			Activity:  activity,
		},
		&expected,
	)

	assert.Equal(t, PROGRAM_ADDRESS, []byte(ixn.Program))
	require.Len(t, ixn.Accounts, 3)
	assert.True(t, ixn.Accounts[0].IsSigner)
	assert.True(t, ixn.Accounts[0].IsWritable)
	assert.Equal(t, activity, ixn.Accounts[1].PublicKey)
	assert.Equal(t, SYSTEM_PROGRAM_ID, ixn.Accounts[2].PublicKey)

	actual, err := ParsePublishActivityInstructionArgs(ixn.Data)
	require.NoError(t, err)
	assert.Equal(t, expected, *actual)
}

func TestPublishActivityInstructionParseInvalid(t *testing.T) {
	ixn := NewPublishActivityInstruction(
		&PublishActivityInstructionAccounts{
			Authority: testKey(1),
			Activity:  testKey(2),
		},
		&PublishActivityInstructionArgs{ActivityId: 1, Title: "t"},
	)

	_, err := ParsePublishActivityInstructionArgs(ixn.Data[:8])
	assert.Error(t, err)

	badDiscriminator := make([]byte, len(ixn.Data))
	copy(badDiscriminator, ixn.Data)
	badDiscriminator[0] ^= 0xff
	_, err = ParsePublishActivityInstructionArgs(badDiscriminator)
	assert.Error(t, err)

	// Length prefix pointing past the buffer
	truncated := make([]byte, len(ixn.Data))
	copy(truncated, ixn.Data)
	truncated[16] = 0xff
	_, err = ParsePublishActivityInstructionArgs(truncated)
	assert.Error(t, err)
}

func TestUploadCheckInsInstruction(t *testing.T) {
	expected := UploadCheckInsInstructionArgs{
		Attendees: []ed25519.PublicKey{testKey(3), testKey(4), testKey(5)},
	}

	ixn := NewUploadCheckInsInstruction(
		&UploadCheckInsInstructionAccounts{
			Authority: testKey(1),
			Activity:  testKey(2),
			CheckIns:  testKey(6),
		},
		&expected,
	)

	actual, err := ParseUploadCheckInsInstructionArgs(ixn.Data)
	require.NoError(t, err)
	assert.Equal(t, expected, *actual)
}

func TestVoteInstruction(t *testing.T) {
	ixn := NewVoteInstruction(
		&VoteInstructionAccounts{
			Voter:      testKey(1),
			Activity:   testKey(2),
			CheckIns:   testKey(3),
			VoteRecord: testKey(4),
		},
		&VoteInstructionArgs{CandidateId: 7},
	)

	require.Len(t, ixn.Accounts, 5)
	assert.True(t, ixn.Accounts[0].IsSigner)
	assert.False(t, ixn.Accounts[2].IsWritable)

	actual, err := ParseVoteInstructionArgs(ixn.Data)
	require.NoError(t, err)
	assert.EqualValues(t, 7, actual.CandidateId)
}

func TestUploadVoteTallyInstruction(t *testing.T) {
	expected := UploadVoteTallyInstructionArgs{
		CandidateIds: []uint64{1, 2, 3},
		VoteCounts:   []uint64{10, 0, 4},
	}

	ixn := NewUploadVoteTallyInstruction(
		&UploadVoteTallyInstructionAccounts{
			Authority: testKey(1),
			Activity:  testKey(2),
			VoteTally: testKey(3),
		},
		&expected,
	)

	actual, err := ParseUploadVoteTallyInstructionArgs(ixn.Data)
	require.NoError(t, err)
	assert.Equal(t, expected, *actual)
}

func TestReviewSponsorInstruction(t *testing.T) {
	accounts := &ReviewSponsorInstructionAccounts{
		Authority:     testKey(1),
		Config:        testKey(2),
		Treasury:      testKey(3),
		Application:   testKey(4),
		AdminWallet:   testKey(5),
		SponsorWallet: testKey(6),
	}
	args := &ReviewSponsorInstructionArgs{ApplicationId: 7}

	// Both decisions share the argument layout
	for _, ixn := range []struct {
		name string
		data []byte
	}{
		{"approve", NewApproveSponsorInstruction(accounts, args).Data},
		{"reject", NewRejectSponsorInstruction(accounts, args).Data},
	} {
		actual, err := ParseReviewSponsorInstructionArgs(ixn.data)
		require.NoError(t, err, ixn.name)
		assert.EqualValues(t, 7, actual.ApplicationId, ixn.name)
	}

	// A non-review discriminator is rejected
	_, err := ParseReviewSponsorInstructionArgs(NewSponsorApplyInstruction(
		&SponsorApplyInstructionAccounts{
			Sponsor:     testKey(1),
			Config:      testKey(2),
			Treasury:    testKey(3),
			Application: testKey(4),
		},
		&SponsorApplyInstructionArgs{ApplicationId: 7, Amount: 1},
	).Data)
	assert.Error(t, err)
}
