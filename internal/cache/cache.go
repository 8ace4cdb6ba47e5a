// Package cache stores finalized receipts keyed by their input set, so an
// agreement drafted twice with the same inputs is only computed once.
package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aoideee/toolrenter/internal/rental"
)

// ReceiptCache is implemented by Memory and Redis.
type ReceiptCache interface {
	Get(ctx context.Context, key string) (rental.Receipt, bool, error)
	Set(ctx context.Context, key string, r rental.Receipt) error
}

// DefaultMemoryEntries bounds a Memory cache built with a non-positive size.
const DefaultMemoryEntries = 1024

// Memory is an in-process ReceiptCache holding at most a fixed number of
// receipts. The least recently used receipt is evicted first.
type Memory struct {
	data *lru.Cache[string, rental.Receipt]
}

// NewMemory creates an empty in-memory cache holding up to size receipts.
func NewMemory(size int) *Memory {
	if size <= 0 {
		size = DefaultMemoryEntries
	}
	data, err := lru.New[string, rental.Receipt](size)
	if err != nil {
		// lru.New only fails for a non-positive size.
		panic(err)
	}
	return &Memory{data: data}
}

func (m *Memory) Get(_ context.Context, key string) (rental.Receipt, bool, error) {
	r, ok := m.data.Get(key)
	return r, ok, nil
}

func (m *Memory) Set(_ context.Context, key string, r rental.Receipt) error {
	m.data.Add(key, r)
	return nil
}

// Len returns the number of receipts currently held.
func (m *Memory) Len() int { return m.data.Len() }

var _ ReceiptCache = (*Memory)(nil)
