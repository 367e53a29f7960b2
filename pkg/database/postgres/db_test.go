package pg

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTxFromCtx_IsolationLevels(t *testing.T) {
	tx := &sqlx.Tx{}

	ctx := context.WithValue(context.Background(), txStructContextKey{}, tx)
	ctx = context.WithValue(ctx, txIsolationContextKey{}, sql.LevelSerializable)

	// A stronger ambient transaction satisfies any weaker requirement
	actual, err := getTxFromCtx(ctx, sql.LevelReadCommitted)
	require.NoError(t, err)
	assert.Same(t, tx, actual)

	actual, err = getTxFromCtx(ctx, sql.LevelSerializable)
	require.NoError(t, err)
	assert.Same(t, tx, actual)

	// A weaker ambient transaction does not
	ctx = context.WithValue(context.Background(), txStructContextKey{}, tx)
	ctx = context.WithValue(ctx, txIsolationContextKey{}, sql.LevelReadCommitted)
	_, err = getTxFromCtx(ctx, sql.LevelSerializable)
	assert.Error(t, err)

	_, err = getTxFromCtx(context.Background(), sql.LevelSerializable)
	assert.Equal(t, ErrNotInTx, err)
}
