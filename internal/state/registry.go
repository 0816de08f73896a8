package state

import (
	"strings"
	"sync"
	"time"
)

const (
	DefaultMaxSessions = 10000
	DefaultSessionIdle = 24 * time.Hour
)

// SessionListener observes every dispatch of every store a Registry hands out.
type SessionListener func(sessionID string, a Action, s State)

// Registry keeps one Store per browser session. It holds at most
// MaxSessions stores and forgets a session idle for IdleTTL; the least
// recently used session goes first when the cap is reached.
type Registry struct {
	MaxSessions int
	IdleTTL     time.Duration
	// OnDispatch is subscribed to each store when it is created.
	OnDispatch SessionListener

	mu     sync.Mutex
	stores map[string]*session
	now    func() time.Time
}

type session struct {
	store    *Store
	lastSeen time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		MaxSessions: DefaultMaxSessions,
		IdleTTL:     DefaultSessionIdle,
		stores:      map[string]*session{},
		now:         time.Now,
	}
}

// Get returns the store for sessionID, creating it on first use.
// An empty session id gets a fresh, unregistered store.
func (r *Registry) Get(sessionID string) *Store {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return r.Ephemeral(sessionID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if e, ok := r.stores[sessionID]; ok {
		if !r.expiredLocked(e, now) {
			e.lastSeen = now
			return e.store
		}
		delete(r.stores, sessionID)
	}
	r.evictLocked(now)
	s := r.newStore(sessionID)
	r.stores[sessionID] = &session{store: s, lastSeen: now}
	return s
}

// Ephemeral returns a store for sessionID that the registry does not keep.
// Used for a session whose cookie has not come back yet.
func (r *Registry) Ephemeral(sessionID string) *Store {
	return r.newStore(sessionID)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

func (r *Registry) newStore(sessionID string) *Store {
	s := NewStore()
	if l := r.OnDispatch; l != nil {
		s.Subscribe(func(a Action, st State) { l(sessionID, a, st) })
	}
	return s
}

func (r *Registry) expiredLocked(e *session, now time.Time) bool {
	return r.IdleTTL > 0 && now.Sub(e.lastSeen) >= r.IdleTTL
}

// evictLocked makes room for one more session.
func (r *Registry) evictLocked(now time.Time) {
	for id, e := range r.stores {
		if r.expiredLocked(e, now) {
			delete(r.stores, id)
		}
	}
	if r.MaxSessions < 1 {
		return
	}
	for len(r.stores) >= r.MaxSessions {
		var (
			oldestID string
			oldest   time.Time
		)
		for id, e := range r.stores {
			if oldestID == "" || e.lastSeen.Before(oldest) {
				oldestID, oldest = id, e.lastSeen
			}
		}
		delete(r.stores, oldestID)
	}
}
