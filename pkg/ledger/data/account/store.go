package account

import (
	"context"
	"errors"
)

var (
	// ErrAccountNotFound indicates no account record exists at an address
	ErrAccountNotFound = errors.New("account record not found")

	// ErrAccountAlreadyExists indicates an account record already exists at an address
	ErrAccountAlreadyExists = errors.New("account record already exists")
)

type Store interface {
	// Put creates a new account record
	Put(ctx context.Context, record *Record) error

	// Get gets an account record by its address
	Get(ctx context.Context, address string) (*Record, error)

	// Commit atomically applies a batch of upserts and closes. Either the
	// entire batch is applied or none of it is.
	Commit(ctx context.Context, puts []*Record, closes []string) error

	// Count returns the total number of live account records
	Count(ctx context.Context) (uint64, error)
}
