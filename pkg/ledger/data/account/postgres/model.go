package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	pgutil "github.com/hackarena-io/hackathon-server/pkg/database/postgres"
	"github.com/hackarena-io/hackathon-server/pkg/ledger/data/account"
)

const (
	tableName = "hackathon__core_ledgeraccount"
)

type model struct {
	Id sql.NullInt64 `db:"id"`

	Address  string `db:"address"`
	Owner    string `db:"owner"`
	Lamports int64  `db:"lamports"`
	Data     []byte `db:"data"`

	CreatedAt time.Time `db:"created_at"`
}

func toModel(obj *account.Record) (*model, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}

	return &model{
		Address:   obj.Address,
		Owner:     obj.Owner,
		Lamports:  int64(obj.Lamports),
		Data:      obj.Data,
		CreatedAt: obj.CreatedAt,
	}, nil
}

func fromModel(obj *model) *account.Record {
	return &account.Record{
		Id:        uint64(obj.Id.Int64),
		Address:   obj.Address,
		Owner:     obj.Owner,
		Lamports:  uint64(obj.Lamports),
		Data:      obj.Data,
		CreatedAt: obj.CreatedAt,
	}
}

func (m *model) dbPut(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `INSERT INTO ` + tableName + `
			(address, owner, lamports, data, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, address, owner, lamports, data, created_at`

		if m.CreatedAt.IsZero() {
			m.CreatedAt = time.Now()
		}

		err := tx.QueryRowxContext(
			ctx,
			query,
			m.Address,
			m.Owner,
			m.Lamports,
			m.Data,
			m.CreatedAt.UTC(),
		).StructScan(m)

		return pgutil.CheckUniqueViolation(err, account.ErrAccountAlreadyExists)
	})
}

func dbGet(ctx context.Context, db *sqlx.DB, address string) (*model, error) {
	res := &model{}

	query := `SELECT id, address, owner, lamports, data, created_at FROM ` + tableName + `
		WHERE address = $1
	`

	err := db.GetContext(ctx, res, query, address)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, account.ErrAccountNotFound)
	}
	return res, nil
}

func dbCommit(ctx context.Context, db *sqlx.DB, puts []*model, closes []string) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `INSERT INTO ` + tableName + `
			(address, owner, lamports, data, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (address)
			DO UPDATE SET owner = $2, lamports = $3, data = $4
			RETURNING id, address, owner, lamports, data, created_at`

		for _, m := range puts {
			if m.CreatedAt.IsZero() {
				m.CreatedAt = time.Now()
			}

			err := tx.QueryRowxContext(
				ctx,
				query,
				m.Address,
				m.Owner,
				m.Lamports,
				m.Data,
				m.CreatedAt.UTC(),
			).StructScan(m)
			if err != nil {
				return err
			}
		}

		deleteQuery := `DELETE FROM ` + tableName + ` WHERE address = $1`
		for _, address := range closes {
			if _, err := tx.ExecContext(ctx, deleteQuery, address); err != nil {
				return err
			}
		}

		return nil
	})
}

func dbCount(ctx context.Context, db *sqlx.DB) (uint64, error) {
	var res uint64

	query := `SELECT COUNT(*) FROM ` + tableName

	err := db.GetContext(ctx, &res, query)
	if err != nil {
		return 0, err
	}
	return res, nil
}
