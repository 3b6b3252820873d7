package negocio

import (
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("negocio not found")

// Repository is the snapshot store for the directory. The sheet is the only
// source of truth; a snapshot just bounds how often it is re-fetched.
type Repository interface {
	Snapshot() ([]Negocio, bool)
	Store(negocios []Negocio)
	GetByID(id string) (Negocio, error)
}

// SnapshotRepository keeps the last fetched directory in memory with a TTL.
// Snapshot reports ok=false once the TTL has elapsed, which makes the next
// List re-fetch the sheet.
type SnapshotRepository struct {
	mu        sync.RWMutex
	storage   []Negocio
	fetchedAt time.Time
	ttl       time.Duration
}

func NewSnapshotRepository(ttl time.Duration) *SnapshotRepository {
	return &SnapshotRepository{ttl: ttl}
}

func (r *SnapshotRepository) Snapshot() ([]Negocio, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.fetchedAt.IsZero() || time.Since(r.fetchedAt) > r.ttl {
		return nil, false
	}
	out := make([]Negocio, len(r.storage))
	copy(out, r.storage)
	return out, true
}

func (r *SnapshotRepository) Store(negocios []Negocio) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Negocio, len(negocios))
	copy(r.storage, negocios)
	r.fetchedAt = time.Now()
}

// GetByID resolves an id within the current snapshot. Ids are not stable
// across re-fetches, so a miss after a refresh is expected and maps to 404.
func (r *SnapshotRepository) GetByID(id string) (Negocio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.storage {
		if n.ID == id {
			return n, nil
		}
	}
	return Negocio{}, ErrNotFound
}
