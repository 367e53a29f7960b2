package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/hackarena-io/hackathon-server/pkg/ledger/data/account"
)

type store struct {
	db *sqlx.DB
}

// New returns a new postgres-backed account.Store
func New(db *sql.DB) account.Store {
	return &store{
		db: sqlx.NewDb(db, "pgx"),
	}
}

// Put implements account.Store.Put
func (s *store) Put(ctx context.Context, record *account.Record) error {
	model, err := toModel(record)
	if err != nil {
		return err
	}

	if err := model.dbPut(ctx, s.db); err != nil {
		return err
	}

	res := fromModel(model)
	res.CopyTo(record)

	return nil
}

// Get implements account.Store.Get
func (s *store) Get(ctx context.Context, address string) (*account.Record, error) {
	model, err := dbGet(ctx, s.db, address)
	if err != nil {
		return nil, err
	}
	return fromModel(model), nil
}

// Commit implements account.Store.Commit
func (s *store) Commit(ctx context.Context, puts []*account.Record, closes []string) error {
	models := make([]*model, len(puts))
	for i, record := range puts {
		m, err := toModel(record)
		if err != nil {
			return err
		}
		models[i] = m
	}

	if err := dbCommit(ctx, s.db, models, closes); err != nil {
		return err
	}

	for i, m := range models {
		res := fromModel(m)
		res.CopyTo(puts[i])
	}

	return nil
}

// Count implements account.Store.Count
func (s *store) Count(ctx context.Context) (uint64, error) {
	return dbCount(ctx, s.db)
}
