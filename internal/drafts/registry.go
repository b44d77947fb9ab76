// Package drafts parks interpreter-issued email drafts until the user
// explicitly confirms them. Nothing is ever sent straight from a voice query.
package drafts

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nanorand/nanorand"

	"github.com/aimeevoice/aimee-web-app/internal/models"
)

var (
	ErrNotFound = errors.New("draft not found")
	ErrBadCode  = errors.New("wrong confirmation code")
	ErrExpired  = errors.New("draft expired")
)

type Pending struct {
	ID        uuid.UUID         `json:"id"`
	Code      string            `json:"code"`
	Draft     models.EmailDraft `json:"draft"`
	CreatedAt time.Time         `json:"created_at"`
}

// Registry — потокобезопасное in-memory хранилище черновиков. Просроченные
// записи вычищаются лениво.
type Registry struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[uuid.UUID]Pending
}

func New(ttl time.Duration) *Registry {
	return &Registry{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[uuid.UUID]Pending),
	}
}

// Add parks a draft and returns it with its id and short confirmation code.
func (r *Registry) Add(draft models.EmailDraft) (Pending, error) {
	code, err := nanorand.Gen(6)
	if err != nil {
		return Pending{}, err
	}
	p := Pending{
		ID:        uuid.New(),
		Code:      code,
		Draft:     draft,
		CreatedAt: r.now(),
	}
	r.mu.Lock()
	r.sweepLocked()
	r.items[p.ID] = p
	r.mu.Unlock()
	return p, nil
}

// Confirm removes and returns the draft when the code matches.
func (r *Registry) Confirm(id uuid.UUID, code string) (*models.EmailDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if r.now().Sub(p.CreatedAt) > r.ttl {
		delete(r.items, id)
		return nil, ErrExpired
	}
	if p.Code != code {
		return nil, ErrBadCode
	}
	delete(r.items, id)
	d := p.Draft
	return &d, nil
}

func (r *Registry) sweepLocked() {
	cutoff := r.now().Add(-r.ttl)
	for id, p := range r.items {
		if p.CreatedAt.Before(cutoff) {
			delete(r.items, id)
		}
	}
}
