package contact

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store persists the registry contents. Save replaces everything stored.
type Store interface {
	Load(ctx context.Context) ([]Contact, error)
	Save(ctx context.Context, contacts []Contact) error
}

// Registry is the authoritative collection of contacts.
//
// The underlying slice keeps insertion order; callers only ever see it
// through List, which applies the active Ordering. Every mutation builds the
// next slice, persists it and only then swaps it in, so a failed call leaves
// the registry untouched.
type Registry struct {
	mu       sync.RWMutex
	contacts []Contact
	order    *Ordering
	store    Store
	log      zerolog.Logger
}

// NewRegistry returns an empty registry. store may be nil for a purely
// in-memory address book.
func NewRegistry(order *Ordering, store Store, log zerolog.Logger) *Registry {
	if order == nil {
		order = NewOrdering(true, "it")
	}
	return &Registry{order: order, store: store, log: log}
}

// Ordering returns the policy consulted by List.
func (r *Registry) Ordering() *Ordering { return r.order }

// Load replaces the in-memory contents with what the store holds.
func (r *Registry) Load(ctx context.Context) error {
	if r.store == nil {
		return nil
	}
	loaded, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}
	for i := range loaded {
		if loaded[i].ID == "" {
			loaded[i].ID = uuid.NewString()
		}
		loaded[i].Selected = false
	}
	r.mu.Lock()
	r.contacts = loaded
	r.mu.Unlock()
	r.log.Debug().Int("count", len(loaded)).Msg("contacts loaded")
	return nil
}

// List returns every contact sorted by the active key. Equal keys keep
// insertion order.
func (r *Registry) List() []Contact {
	r.mu.RLock()
	out := make([]Contact, len(r.contacts))
	for i, c := range r.contacts {
		out[i] = c.clone()
	}
	r.mu.RUnlock()
	slices.SortStableFunc(out, r.order.comparator())
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contacts)
}

// Get looks a contact up by ID.
func (r *Registry) Get(id string) (Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.contacts {
		if c.ID == id {
			return c.clone(), nil
		}
	}
	return Contact{}, fmt.Errorf("%w: id %s", ErrNotFound, id)
}

// Add appends c and returns the stored copy, which carries a fresh ID.
// There is no duplicate check.
func (r *Registry) Add(ctx context.Context, c Contact) (Contact, error) {
	added, err := r.AddAll(ctx, []Contact{c})
	if err != nil {
		return Contact{}, err
	}
	return added[0], nil
}

// AddAll appends every contact or none of them.
func (r *Registry) AddAll(ctx context.Context, cs []Contact) ([]Contact, error) {
	if len(cs) == 0 {
		return nil, nil
	}
	added := make([]Contact, 0, len(cs))
	for i, c := range cs {
		c = c.Normalize()
		if err := c.Validate(); err != nil {
			if len(cs) > 1 {
				return nil, fmt.Errorf("contact %d: %w", i+1, err)
			}
			return nil, err
		}
		c.ID = uuid.NewString()
		c.Selected = false
		added = append(added, c)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	next := append(r.cloneLocked(), added...)
	if err := r.commitLocked(ctx, next); err != nil {
		return nil, err
	}
	r.log.Debug().Int("count", len(added)).Msg("contacts added")
	out := make([]Contact, len(added))
	for i, c := range added {
		out[i] = c.clone()
	}
	return out, nil
}

// Replace substitutes the first contact matching old with updated. The
// replacement keeps the original ID and position.
func (r *Registry) Replace(ctx context.Context, old, updated Contact) (Contact, error) {
	updated = updated.Normalize()
	if err := updated.Validate(); err != nil {
		return Contact{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	idx := slices.IndexFunc(r.contacts, func(c Contact) bool { return matches(c, old) })
	if idx < 0 {
		return Contact{}, fmt.Errorf("%w: %s", ErrNotFound, old.FullName())
	}
	updated.ID = r.contacts[idx].ID
	updated.Selected = false
	next := r.cloneLocked()
	next[idx] = updated
	if err := r.commitLocked(ctx, next); err != nil {
		return Contact{}, err
	}
	r.log.Debug().Str("id", updated.ID).Msg("contact replaced")
	return updated.clone(), nil
}

// RemoveAll drops every stored contact matching a member of set and
// returns how many were removed. Non-members are ignored.
func (r *Registry) RemoveAll(ctx context.Context, set []Contact) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		if !slices.ContainsFunc(set, func(t Contact) bool { return matches(c, t) }) {
			next = append(next, c.clone())
		}
	}
	removed := len(r.contacts) - len(next)
	if removed == 0 {
		return 0, nil
	}
	if err := r.commitLocked(ctx, next); err != nil {
		return 0, err
	}
	r.log.Debug().Int("count", removed).Msg("contacts removed")
	return removed, nil
}

// SetSelected flags a contact for a bulk action. Selection is not persisted.
func (r *Registry) SetSelected(id string, selected bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.contacts {
		if r.contacts[i].ID == id {
			r.contacts[i].Selected = selected
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", ErrNotFound, id)
}

func (r *Registry) ClearSelection() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.contacts {
		r.contacts[i].Selected = false
	}
}

// Selected returns the flagged contacts in list order.
func (r *Registry) Selected() []Contact {
	var out []Contact
	for _, c := range r.List() {
		if c.Selected {
			out = append(out, c)
		}
	}
	return out
}

func (r *Registry) cloneLocked() []Contact {
	out := make([]Contact, len(r.contacts))
	for i, c := range r.contacts {
		out[i] = c.clone()
	}
	return out
}

func (r *Registry) commitLocked(ctx context.Context, next []Contact) error {
	if r.store != nil {
		if err := r.store.Save(ctx, next); err != nil {
			r.log.Warn().Err(err).Msg("persist contacts")
			return fmt.Errorf("persist contacts: %w", err)
		}
	}
	r.contacts = next
	return nil
}

// matches reports whether stored is the contact target refers to: equal by
// value and, when target carries an ID, the same ID.
func matches(stored, target Contact) bool {
	if target.ID != "" && stored.ID != target.ID {
		return false
	}
	return stored.Equal(target.Normalize())
}
