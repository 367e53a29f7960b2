package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hackarena-io/hackathon-server/pkg/ledger/data/account"
)

type store struct {
	mu      sync.Mutex
	records map[string]*account.Record
	last    uint64
}

// New returns a new in memory account.Store
func New() account.Store {
	return &store{
		records: make(map[string]*account.Record),
	}
}

// Put implements account.Store.Put
func (s *store) Put(_ context.Context, data *account.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[data.Address]; ok {
		return account.ErrAccountAlreadyExists
	}

	s.last++
	if data.Id == 0 {
		data.Id = s.last
	}
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}
	c := data.Clone()
	s.records[data.Address] = &c

	return nil
}

// Get implements account.Store.Get
func (s *store) Get(_ context.Context, address string) (*account.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item, ok := s.records[address]; ok {
		cloned := item.Clone()
		return &cloned, nil
	}
	return nil, account.ErrAccountNotFound
}

// Commit implements account.Store.Commit
func (s *store) Commit(_ context.Context, puts []*account.Record, closes []string) error {
	for _, record := range puts {
		if err := record.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range puts {
		if existing, ok := s.records[record.Address]; ok {
			record.Id = existing.Id
			record.CreatedAt = existing.CreatedAt
		} else {
			s.last++
			if record.Id == 0 {
				record.Id = s.last
			}
			if record.CreatedAt.IsZero() {
				record.CreatedAt = time.Now()
			}
		}
		c := record.Clone()
		s.records[record.Address] = &c
	}

	for _, address := range closes {
		delete(s.records, address)
	}

	return nil
}

// Count implements account.Store.Count
func (s *store) Count(_ context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return uint64(len(s.records)), nil
}

func (s *store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]*account.Record)
	s.last = 0
}
