package state

import "sync"

// State is the full client state held by a Store.
type State struct {
	Pages    PagesState    `json:"pages"`
	Settings SettingsState `json:"settings"`
}

// Listener is notified after every dispatch with the action and the new state.
type Listener func(Action, State)

// Store owns one State and serialises every mutation through Dispatch.
type Store struct {
	mu        sync.Mutex
	state     State
	listeners map[int]Listener
	nextID    int
}

func NewStore() *Store {
	return &Store{
		state:     State{Pages: PagesState{}},
		listeners: map[int]Listener{},
	}
}

// Dispatch runs the action through every reducer and returns the new state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	next := State{
		Pages:    ReducePages(s.state.Pages, a),
		Settings: ReduceSettings(s.state.Settings, a),
	}
	s.state = next
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(a, next)
	}
	return next
}

// State returns the current state. Reducers never mutate a published map,
// so the snapshot stays valid after later dispatches.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// PageEntry returns the query state stored for pageKey.
func (s *Store) PageEntry(pageKey string) (QueryState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.state.Pages[pageKey]
	return e, ok
}

func (s *Store) Settings() SettingsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

// Subscribe registers l and returns a func that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
