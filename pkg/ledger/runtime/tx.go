package runtime

import (
	"context"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/hackarena-io/hackathon-server/pkg/ledger/data/account"
	"github.com/hackarena-io/hackathon-server/pkg/solana/hackathon"
)

var (
	programOwner = base58.Encode(hackathon.PROGRAM_ID)
	systemOwner  = base58.Encode(hackathon.SYSTEM_PROGRAM_ID)
)

type stagedAccount struct {
	record *account.Record // nil when the address is known to be vacant
	dirty  bool
	closed bool
}

// tx is the working state of one instruction execution. Handlers mutate
// cloned records staged here; nothing reaches the store until commit, so
// any error leaves the ledger untouched.
type tx struct {
	store account.Store
	now   int64

	accounts map[string]*stagedAccount
	order    []string
}

func newTx(store account.Store, now int64) *tx {
	return &tx{
		store:    store,
		now:      now,
		accounts: make(map[string]*stagedAccount),
		order:    nil,
	}
}

func (t *tx) entry(ctx context.Context, address ed25519.PublicKey) (*stagedAccount, error) {
	key := base58.Encode(address)
	if staged, ok := t.accounts[key]; ok {
		return staged, nil
	}

	staged := &stagedAccount{}
	record, err := t.store.Get(ctx, key)
	switch err {
	case nil:
		staged.record = record
	case account.ErrAccountNotFound:
	default:
		return nil, errors.Wrap(err, "failed to load account")
	}

	t.accounts[key] = staged
	t.order = append(t.order, key)
	return staged, nil
}

// load returns the live record at an address, or ErrAccountNotFound for
// vacant and closed addresses.
func (t *tx) load(ctx context.Context, address ed25519.PublicKey) (*account.Record, error) {
	staged, err := t.entry(ctx, address)
	if err != nil {
		return nil, err
	}
	if staged.record == nil || staged.closed {
		return nil, account.ErrAccountNotFound
	}
	return staged.record, nil
}

// loadProgramAccount returns the live program-owned record at an address.
func (t *tx) loadProgramAccount(ctx context.Context, address ed25519.PublicKey) (*account.Record, error) {
	record, err := t.load(ctx, address)
	if err != nil {
		return nil, err
	}
	if record.Owner != programOwner {
		return nil, hackathon.ErrInvalidAccountData
	}
	return record, nil
}

// loadWallet returns the system-owned record at an address, materializing a
// zero-balance wallet for vacant addresses. The wallet is only persisted if
// a handler stages a mutation to it.
func (t *tx) loadWallet(ctx context.Context, address ed25519.PublicKey) (*account.Record, error) {
	staged, err := t.entry(ctx, address)
	if err != nil {
		return nil, err
	}
	if staged.record == nil || staged.closed {
		staged.record = &account.Record{
			Address: base58.Encode(address),
			Owner:   systemOwner,
		}
		staged.closed = false
	}
	return staged.record, nil
}

func (t *tx) stage(address ed25519.PublicKey) {
	if staged, ok := t.accounts[base58.Encode(address)]; ok {
		staged.dirty = true
	}
}

// createProgramAccount allocates a new program-owned account at an address,
// funding its rent-exempt minimum from the payer's wallet. Fails if the
// address is already occupied.
func (t *tx) createProgramAccount(ctx context.Context, address ed25519.PublicKey, data []byte, payer ed25519.PublicKey) error {
	staged, err := t.entry(ctx, address)
	if err != nil {
		return err
	}
	if staged.record != nil && !staged.closed {
		return account.ErrAccountAlreadyExists
	}

	rent := RentExemptMinimum(len(data))
	if err := t.debitWallet(ctx, payer, rent); err != nil {
		return err
	}

	staged.record = &account.Record{
		Address:  base58.Encode(address),
		Owner:    programOwner,
		Lamports: rent,
		Data:     data,
	}
	staged.closed = false
	staged.dirty = true
	return nil
}

// createSystemAccount allocates a new dataless system-owned account at an
// address, funding its rent-exempt minimum from the payer's wallet.
func (t *tx) createSystemAccount(ctx context.Context, address ed25519.PublicKey, payer ed25519.PublicKey) error {
	staged, err := t.entry(ctx, address)
	if err != nil {
		return err
	}
	if staged.record != nil && !staged.closed {
		return account.ErrAccountAlreadyExists
	}

	rent := RentExemptMinimum(0)
	if err := t.debitWallet(ctx, payer, rent); err != nil {
		return err
	}

	staged.record = &account.Record{
		Address:  base58.Encode(address),
		Owner:    systemOwner,
		Lamports: rent,
	}
	staged.closed = false
	staged.dirty = true
	return nil
}

// closeAccount destroys a live account and refunds its entire balance to
// the recipient's wallet.
func (t *tx) closeAccount(ctx context.Context, address ed25519.PublicKey, recipient ed25519.PublicKey) error {
	record, err := t.load(ctx, address)
	if err != nil {
		return err
	}

	refund := record.Lamports
	record.Lamports = 0

	staged := t.accounts[record.Address]
	staged.closed = true
	staged.dirty = true

	return t.creditWallet(ctx, recipient, refund)
}

func (t *tx) debitWallet(ctx context.Context, address ed25519.PublicKey, amount uint64) error {
	wallet, err := t.loadWallet(ctx, address)
	if err != nil {
		return err
	}
	// Only the system program can move lamports out of an account it owns.
	if wallet.Owner != systemOwner {
		return ErrConstraintViolation
	}
	if wallet.Lamports < amount {
		return ErrInsufficientFunds
	}
	wallet.Lamports -= amount
	t.stage(address)
	return nil
}

func (t *tx) creditWallet(ctx context.Context, address ed25519.PublicKey, amount uint64) error {
	wallet, err := t.loadWallet(ctx, address)
	if err != nil {
		return err
	}
	wallet.Lamports += amount
	t.stage(address)
	return nil
}

// commit flushes the staged write set to the store in one atomic batch.
func (t *tx) commit(ctx context.Context) error {
	var puts []*account.Record
	var closes []string

	for _, key := range t.order {
		staged := t.accounts[key]
		if !staged.dirty {
			continue
		}
		if staged.closed {
			closes = append(closes, key)
			continue
		}
		if staged.record != nil {
			puts = append(puts, staged.record)
		}
	}

	if len(puts) == 0 && len(closes) == 0 {
		return nil
	}
	return t.store.Commit(ctx, puts, closes)
}
