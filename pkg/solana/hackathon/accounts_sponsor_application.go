package hackathon

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const SponsorApplicationAccountSize = (8 + // discriminator
	32 + // sponsor
	8 + // amount_lamports
	1 + // status
	8 + // applied_at
	1) // bump

var SponsorApplicationAccountDiscriminator = accountDiscriminator("SponsorApplication")

// SponsorApplicationAccount tracks one sponsorship application. Funds sit
// in the treasury while the status is pending; approval forwards them to
// the admin wallet and rejection returns them to the sponsor.
type SponsorApplicationAccount struct {
	Sponsor   ed25519.PublicKey
	Amount    uint64
	Status    SponsorApplicationStatus
	AppliedAt int64
	Bump      uint8
}

func (obj *SponsorApplicationAccount) Marshal() []byte {
	data := make([]byte, SponsorApplicationAccountSize)

	var offset int

	putDiscriminator(data, SponsorApplicationAccountDiscriminator, &offset)
	putKey(data, obj.Sponsor, &offset)
	putUint64(data, obj.Amount, &offset)
	putSponsorApplicationStatus(data, obj.Status, &offset)
	putInt64(data, obj.AppliedAt, &offset)
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *SponsorApplicationAccount) Unmarshal(data []byte) error {
	if len(data) < SponsorApplicationAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, SponsorApplicationAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.Sponsor, &offset)
	getUint64(data, &obj.Amount, &offset)
	getSponsorApplicationStatus(data, &obj.Status, &offset)
	getInt64(data, &obj.AppliedAt, &offset)
	getUint8(data, &obj.Bump, &offset)

	if !obj.Status.Valid() {
		return ErrInvalidAccountData
	}

	return nil
}

func (obj *SponsorApplicationAccount) IsPending() bool {
	return obj.Status == SponsorApplicationStatusPending
}

func (obj *SponsorApplicationAccount) String() string {
	return fmt.Sprintf(
		"SponsorApplicationAccount{sponsor=%s,amount=%d,status=%s,applied_at=%d,bump=%d}",
		base58.Encode(obj.Sponsor),
		obj.Amount,
		obj.Status.String(),
		obj.AppliedAt,
		obj.Bump,
	)
}
