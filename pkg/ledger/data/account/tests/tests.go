package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackarena-io/hackathon-server/pkg/ledger/data/account"
)

func RunTests(t *testing.T, s account.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s account.Store){
		testHappyPath,
		testCommit,
	} {
		tf(t, s)
		teardown()
	}
}

func testHappyPath(t *testing.T, s account.Store) {
	t.Run("testHappyPath", func(t *testing.T) {
		ctx := context.Background()

		_, err := s.Get(ctx, "address1")
		assert.Equal(t, account.ErrAccountNotFound, err)

		start := time.Now()

		expected := &account.Record{
			Address:  "address1",
			Owner:    "owner1",
			Lamports: 890880,
			Data:     []byte("data1"),
		}
		cloned := expected.Clone()

		require.NoError(t, s.Put(ctx, expected))
		assert.EqualValues(t, 1, expected.Id)
		assert.True(t, expected.CreatedAt.After(start))

		actual, err := s.Get(ctx, "address1")
		require.NoError(t, err)
		assertEquivalentRecords(t, actual, &cloned)

		assert.Equal(t, account.ErrAccountAlreadyExists, s.Put(ctx, expected))

		count, err := s.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})
}

func testCommit(t *testing.T, s account.Store) {
	t.Run("testCommit", func(t *testing.T) {
		ctx := context.Background()

		first := &account.Record{
			Address:  "address1",
			Owner:    "owner1",
			Lamports: 100,
			Data:     []byte("data1"),
		}
		require.NoError(t, s.Put(ctx, first))

		// A commit can update an existing record, create a new one, and
		// close a third in one shot.
		updated := first.Clone()
		updated.Lamports = 50
		updated.Data = []byte("data1-updated")

		second := &account.Record{
			Address:  "address2",
			Owner:    "owner1",
			Lamports: 50,
		}

		require.NoError(t, s.Commit(ctx, []*account.Record{&updated, second}, nil))

		actual, err := s.Get(ctx, "address1")
		require.NoError(t, err)
		assertEquivalentRecords(t, actual, &updated)
		assert.Equal(t, first.Id, actual.Id)

		actual, err = s.Get(ctx, "address2")
		require.NoError(t, err)
		assertEquivalentRecords(t, actual, second)

		require.NoError(t, s.Commit(ctx, nil, []string{"address2"}))

		_, err = s.Get(ctx, "address2")
		assert.Equal(t, account.ErrAccountNotFound, err)

		count, err := s.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})
}

func assertEquivalentRecords(t *testing.T, obj1, obj2 *account.Record) {
	assert.Equal(t, obj1.Address, obj2.Address)
	assert.Equal(t, obj1.Owner, obj2.Owner)
	assert.Equal(t, obj1.Lamports, obj2.Lamports)
	assert.Equal(t, obj1.Data, obj2.Data)
}
