package hackathon

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const SponsorConfigAccountSize = (8 + // discriminator
	32 + // authority
	32 + // admin_wallet
	8 + // review_period_secs
	1 + // treasury_bump
	1) // bump

var SponsorConfigAccountDiscriminator = accountDiscriminator("SponsorConfig")

// SponsorConfigAccount is the global sponsorship config singleton. The
// treasury bump is stored here because the treasury itself is a dataless
// system-owned pool.
//
// ReviewPeriodSecs is advisory metadata for off-chain schedulers; no
// instruction enforces it.
type SponsorConfigAccount struct {
	Authority        ed25519.PublicKey
	AdminWallet      ed25519.PublicKey
	ReviewPeriodSecs uint64
	TreasuryBump     uint8
	Bump             uint8
}

func (obj *SponsorConfigAccount) Marshal() []byte {
	data := make([]byte, SponsorConfigAccountSize)

	var offset int

	putDiscriminator(data, SponsorConfigAccountDiscriminator, &offset)
	putKey(data, obj.Authority, &offset)
	putKey(data, obj.AdminWallet, &offset)
	putUint64(data, obj.ReviewPeriodSecs, &offset)
	putUint8(data, obj.TreasuryBump, &offset)
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *SponsorConfigAccount) Unmarshal(data []byte) error {
	if len(data) < SponsorConfigAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, SponsorConfigAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.Authority, &offset)
	getKey(data, &obj.AdminWallet, &offset)
	getUint64(data, &obj.ReviewPeriodSecs, &offset)
	getUint8(data, &obj.TreasuryBump, &offset)
	getUint8(data, &obj.Bump, &offset)

	return nil
}

func (obj *SponsorConfigAccount) String() string {
	return fmt.Sprintf(
		"SponsorConfigAccount{authority=%s,admin_wallet=%s,review_period_secs=%d,treasury_bump=%d,bump=%d}",
		base58.Encode(obj.Authority),
		base58.Encode(obj.AdminWallet),
		obj.ReviewPeriodSecs,
		obj.TreasuryBump,
		obj.Bump,
	)
}
