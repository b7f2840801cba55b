// Package memstore implements the local entity store: every collection
// held in memory, mutated synchronously, and written out as one JSON
// snapshot after each mutation. The store is the sole owner of the
// collections; table and kanban consumers only derive views from it.
package memstore

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/huemot/atlas/pkg/types"
)

// Store holds all entity collections. Construct one instance at process
// start and pass it by reference; there is no package-level singleton.
type Store struct {
	mu      sync.RWMutex
	data    types.Snapshot
	persist Persister
	log     zerolog.Logger
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report persistence failures.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a Store backed by the given persister. The persister is read
// once here; a missing or unreadable snapshot falls back to the seed
// dataset. Later writes are best-effort: a failed write is logged and the
// in-memory state stays authoritative for the session.
func New(persist Persister, opts ...Option) *Store {
	s := &Store{
		persist: persist,
		log:     zerolog.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	snap, ok, err := persist.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("loading snapshot failed, using seed data")
		ok = false
	}
	if ok {
		s.data = snap
	} else {
		s.data = Seed()
	}
	return s
}

// Reset replaces all collections with the seed dataset and persists.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = Seed()
	s.persistLocked()
}

// Export returns a deep copy of the full snapshot.
func (s *Store) Export() types.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Import replaces the full snapshot and persists.
func (s *Store) Import(snap types.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = snap.Clone()
	s.persistLocked()
}

// FindDuplicateCandidates returns every candidate whose email matches
// exactly, in creation order. Matching is byte-for-byte; a differently
// cased address counts as a different address.
func (s *Store) FindDuplicateCandidates(email string) []types.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []types.Candidate
	for _, c := range s.data.Candidates {
		if c.Email == email {
			out = append(out, c)
		}
	}
	return out
}

// persistLocked writes the full snapshot through the persister. Failures
// are logged and swallowed: the mutation has already happened in memory
// and is reported as successful to the caller.
func (s *Store) persistLocked() {
	if err := s.persist.Save(s.data); err != nil {
		s.log.Error().Err(err).Msg("snapshot write failed, in-memory state remains authoritative")
	}
}

// rec constrains PT to a pointer to T that exposes the embedded Meta.
type rec[T any] interface {
	*T
	types.Record
}

// Collection is a typed view over one entity collection. Collections keep
// type-specific fields statically known at every call site; the dynamic
// collection-name dispatch lives only at the CLI boundary.
type Collection[T any, PT rec[T]] struct {
	store *Store
	name  string
	slice func(*types.Snapshot) *[]T
}

// Name returns the collection name.
func (c Collection[T, PT]) Name() string { return c.name }

// List returns a copy of the full collection, snapshot-consistent with
// respect to concurrent mutations. Insertion order is preserved but not
// semantically meaningful.
func (c Collection[T, PT]) List() []T {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	return slices.Clone(*c.slice(&c.store.data))
}

// Get returns the record with the given id, or ok=false.
func (c Collection[T, PT]) Get(id string) (T, bool) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	sl := *c.slice(&c.store.data)
	for i := range sl {
		if PT(&sl[i]).EntityMeta().ID == id {
			return sl[i], true
		}
	}
	var zero T
	return zero, false
}

// Create assigns a fresh id, stamps createdAt and updatedAt, appends the
// record, and persists. The returned id is never reused by a later Create
// in the same process: ids are UUID v7 values.
func (c Collection[T, PT]) Create(record T) (T, error) {
	id, err := uuid.NewV7()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("generating entity ID: %w", err)
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	now := c.store.now().UTC()
	m := PT(&record).EntityMeta()
	m.ID = id.String()
	m.CreatedAt = now
	m.UpdatedAt = now

	sl := c.slice(&c.store.data)
	*sl = append(*sl, record)
	c.store.persistLocked()
	return record, nil
}

// Update applies mutate to a copy of the stored record, restores the
// immutable fields (id, createdAt), stamps updatedAt, writes the copy
// back, and persists. A nil mutate still advances updatedAt. Returns
// ok=false without mutation when the id is absent; Update never creates.
func (c Collection[T, PT]) Update(id string, mutate func(*T)) (T, bool) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	sl := c.slice(&c.store.data)
	for i := range *sl {
		if PT(&(*sl)[i]).EntityMeta().ID != id {
			continue
		}
		updated := (*sl)[i]
		if mutate != nil {
			mutate(&updated)
		}
		m := PT(&updated).EntityMeta()
		m.ID = id
		m.CreatedAt = PT(&(*sl)[i]).EntityMeta().CreatedAt
		m.UpdatedAt = c.store.now().UTC()
		(*sl)[i] = updated
		c.store.persistLocked()
		return updated, true
	}
	var zero T
	return zero, false
}

// Delete removes the record with the given id and persists. Returns
// whether a removal occurred. Deleting never cascades: records referring
// to the deleted id are left dangling.
func (c Collection[T, PT]) Delete(id string) bool {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	sl := c.slice(&c.store.data)
	for i := range *sl {
		if PT(&(*sl)[i]).EntityMeta().ID == id {
			*sl = append((*sl)[:i], (*sl)[i+1:]...)
			c.store.persistLocked()
			return true
		}
	}
	return false
}

// Typed collection accessors. One per entity type; the generic Collection
// carries the CRUD mechanics.

func Jobs(s *Store) Collection[types.Job, *types.Job] {
	return Collection[types.Job, *types.Job]{store: s, name: types.CollectionJobs,
		slice: func(d *types.Snapshot) *[]types.Job { return &d.Jobs }}
}

func Candidates(s *Store) Collection[types.Candidate, *types.Candidate] {
	return Collection[types.Candidate, *types.Candidate]{store: s, name: types.CollectionCandidates,
		slice: func(d *types.Snapshot) *[]types.Candidate { return &d.Candidates }}
}

func Applications(s *Store) Collection[types.Application, *types.Application] {
	return Collection[types.Application, *types.Application]{store: s, name: types.CollectionApplications,
		slice: func(d *types.Snapshot) *[]types.Application { return &d.Applications }}
}

func Interviews(s *Store) Collection[types.Interview, *types.Interview] {
	return Collection[types.Interview, *types.Interview]{store: s, name: types.CollectionInterviews,
		slice: func(d *types.Snapshot) *[]types.Interview { return &d.Interviews }}
}

func Offers(s *Store) Collection[types.Offer, *types.Offer] {
	return Collection[types.Offer, *types.Offer]{store: s, name: types.CollectionOffers,
		slice: func(d *types.Snapshot) *[]types.Offer { return &d.Offers }}
}

func Accounts(s *Store) Collection[types.Account, *types.Account] {
	return Collection[types.Account, *types.Account]{store: s, name: types.CollectionAccounts,
		slice: func(d *types.Snapshot) *[]types.Account { return &d.Accounts }}
}

func Contacts(s *Store) Collection[types.Contact, *types.Contact] {
	return Collection[types.Contact, *types.Contact]{store: s, name: types.CollectionContacts,
		slice: func(d *types.Snapshot) *[]types.Contact { return &d.Contacts }}
}

func Opportunities(s *Store) Collection[types.Opportunity, *types.Opportunity] {
	return Collection[types.Opportunity, *types.Opportunity]{store: s, name: types.CollectionOpportunities,
		slice: func(d *types.Snapshot) *[]types.Opportunity { return &d.Opportunities }}
}

func Activities(s *Store) Collection[types.Activity, *types.Activity] {
	return Collection[types.Activity, *types.Activity]{store: s, name: types.CollectionActivities,
		slice: func(d *types.Snapshot) *[]types.Activity { return &d.Activities }}
}
