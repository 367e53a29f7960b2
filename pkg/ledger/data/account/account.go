package account

import (
	"errors"
	"time"
)

// Record is one on-ledger account: an address-keyed balance plus opaque
// program data. Wallets are system-owned records with no data; program
// accounts carry their serialized state and are owned by the program id.
type Record struct {
	Id uint64

	Address  string
	Owner    string
	Lamports uint64
	Data     []byte

	CreatedAt time.Time
}

func (r *Record) Validate() error {
	if len(r.Address) == 0 {
		return errors.New("address is required")
	}

	if len(r.Owner) == 0 {
		return errors.New("owner is required")
	}

	return nil
}

func (r *Record) Clone() Record {
	var dataCopy []byte
	if r.Data != nil {
		dataCopy = make([]byte, len(r.Data))
		copy(dataCopy, r.Data)
	}

	return Record{
		Id: r.Id,

		Address:  r.Address,
		Owner:    r.Owner,
		Lamports: r.Lamports,
		Data:     dataCopy,

		CreatedAt: r.CreatedAt,
	}
}

func (r *Record) CopyTo(dst *Record) {
	dst.Id = r.Id

	dst.Address = r.Address
	dst.Owner = r.Owner
	dst.Lamports = r.Lamports
	dst.Data = r.Data

	dst.CreatedAt = r.CreatedAt
}
