package runtime

import (
	"context"
	"crypto/ed25519"

	"github.com/hackarena-io/hackathon-server/pkg/ledger/data/account"
	"github.com/hackarena-io/hackathon-server/pkg/solana/hackathon"
)

// Typed loaders over tx.loadProgramAccount. Each returns the decoded
// state alongside the staged record so callers can mutate record.Data
// and stage the address.

func loadActivity(ctx context.Context, t *tx, address ed25519.PublicKey) (*hackathon.ActivityAccount, *account.Record, error) {
	record, err := t.loadProgramAccount(ctx, address)
	if err != nil {
		return nil, nil, err
	}

	var obj hackathon.ActivityAccount
	if err := obj.Unmarshal(record.Data); err != nil {
		return nil, nil, err
	}
	return &obj, record, nil
}

func loadCheckIns(ctx context.Context, t *tx, address ed25519.PublicKey) (*hackathon.CheckInsAccount, *account.Record, error) {
	record, err := t.loadProgramAccount(ctx, address)
	if err != nil {
		return nil, nil, err
	}

	var obj hackathon.CheckInsAccount
	if err := obj.Unmarshal(record.Data); err != nil {
		return nil, nil, err
	}
	return &obj, record, nil
}

func loadVoteRecord(ctx context.Context, t *tx, address ed25519.PublicKey) (*hackathon.VoteRecordAccount, *account.Record, error) {
	record, err := t.loadProgramAccount(ctx, address)
	if err != nil {
		return nil, nil, err
	}

	var obj hackathon.VoteRecordAccount
	if err := obj.Unmarshal(record.Data); err != nil {
		return nil, nil, err
	}
	return &obj, record, nil
}

func loadSponsorConfig(ctx context.Context, t *tx, address ed25519.PublicKey) (*hackathon.SponsorConfigAccount, *account.Record, error) {
	record, err := t.loadProgramAccount(ctx, address)
	if err != nil {
		return nil, nil, err
	}

	var obj hackathon.SponsorConfigAccount
	if err := obj.Unmarshal(record.Data); err != nil {
		return nil, nil, err
	}
	return &obj, record, nil
}

func loadSponsorApplication(ctx context.Context, t *tx, address ed25519.PublicKey) (*hackathon.SponsorApplicationAccount, *account.Record, error) {
	record, err := t.loadProgramAccount(ctx, address)
	if err != nil {
		return nil, nil, err
	}

	var obj hackathon.SponsorApplicationAccount
	if err := obj.Unmarshal(record.Data); err != nil {
		return nil, nil, err
	}
	return &obj, record, nil
}
