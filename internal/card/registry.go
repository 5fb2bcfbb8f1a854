package card

import "sync"

type draftEntry struct {
	draft    *Draft
	loadGen  uint64 // generation of the latest initiated load
	loaded   bool   // a load has completed for this entry
	saveBusy bool   // advisory commit-in-flight guard
}

// Registry keeps one live draft per signed-in user. Access is guarded so
// concurrent requests for the same user never observe a half-applied
// mutation; the registry itself never touches the network.
type Registry struct {
	mu     sync.RWMutex
	drafts map[string]*draftEntry
}

// NewRegistry creates an empty draft registry.
func NewRegistry() *Registry {
	return &Registry{drafts: make(map[string]*draftEntry)}
}

func (r *Registry) entry(userID, accountEmail string) *draftEntry {
	e, ok := r.drafts[userID]
	if !ok {
		e = &draftEntry{draft: NewDraft(accountEmail)}
		r.drafts[userID] = e
	}
	return e
}

// BeginLoad records that a load was initiated for the user and returns a
// generation token. A result may only be applied while its token is still
// the latest one, so the last initiated load wins even when responses
// arrive out of order.
func (r *Registry) BeginLoad(userID, accountEmail string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entry(userID, accountEmail)
	e.loadGen++
	return e.loadGen
}

// CompleteLoad hydrates the user's draft from rec if gen is still the
// latest initiated load. It reports whether the result was applied; stale
// results are discarded.
func (r *Registry) CompleteLoad(userID string, gen uint64, rec Snapshot, links []Link) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.drafts[userID]
	if !ok || gen != e.loadGen {
		return false
	}
	e.draft.LoadFrom(rec, links)
	e.loaded = true
	return true
}

// Loaded reports whether a load has completed for the user's draft.
func (r *Registry) Loaded(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.drafts[userID]
	return ok && e.loaded
}

// MarkLoaded flags the draft as hydrated without replacing it, used when
// the store has no record yet and the defaults stand.
func (r *Registry) MarkLoaded(userID, accountEmail string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entry(userID, accountEmail).loaded = true
}

// Mutate runs fn against the user's draft under the write lock.
func (r *Registry) Mutate(userID, accountEmail string, fn func(*Draft)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn(r.entry(userID, accountEmail).draft)
}

// View returns a copy of the user's draft for read-only consumers.
func (r *Registry) View(userID, accountEmail string) Draft {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := *r.entry(userID, accountEmail).draft
	links := make([]Link, len(d.Links))
	copy(links, d.Links)
	d.Links = links
	return d
}

// TrySave flips the advisory commit-in-flight flag. It returns false when a
// commit is already outstanding; callers must call EndSave once done. The
// flag does not serialize commits, it only lets the caller refuse a second
// save while one is in flight.
func (r *Registry) TrySave(userID, accountEmail string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entry(userID, accountEmail)
	if e.saveBusy {
		return false
	}
	e.saveBusy = true
	return true
}

// EndSave clears the commit-in-flight flag.
func (r *Registry) EndSave(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.drafts[userID]; ok {
		e.saveBusy = false
	}
}

// Drop removes the user's draft, used on sign-out.
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.drafts, userID)
}
