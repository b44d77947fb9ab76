package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryBlacklist — in-memory замена Redis для single-instance запуска.
// Просроченные записи вычищаются лениво при обращениях.
type MemoryBlacklist struct {
	mu    sync.Mutex
	items map[string]time.Time
	now   func() time.Time
}

func NewMemoryBlacklist() *MemoryBlacklist {
	return &MemoryBlacklist{
		items: make(map[string]time.Time),
		now:   time.Now,
	}
}

func (b *MemoryBlacklist) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[jti] = b.now().Add(ttl)
	return nil
}

func (b *MemoryBlacklist) IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	for k, exp := range b.items {
		if exp.Before(now) {
			delete(b.items, k)
		}
	}
	exp, ok := b.items[jti]
	return ok && exp.After(now), nil
}
