package state

import (
	"sync"
	"testing"
)

func TestStoreDispatchRoutesToReducers(t *testing.T) {
	s := NewStore()
	s.Dispatch(SetQueryState("episodes", QueryState{QueryPage: Some(2), IsLoadingInitial: Some(true)}))
	s.Dispatch(SetQueryState("episodes", QueryState{IsLoadingInitial: Some(false)}))
	s.Dispatch(SetNSFWMode(false))

	entry, ok := s.PageEntry("episodes")
	if !ok {
		t.Fatalf("missing episodes entry")
	}
	if v, _ := entry.QueryPage.Get(); v != 2 {
		t.Fatalf("queryPage=%d", v)
	}
	if v, ok := entry.IsLoadingInitial.Get(); !ok || v {
		t.Fatalf("isLoadingInitial should be false")
	}
	if v, ok := s.Settings().NSFWMode.Get(); !ok || v {
		t.Fatalf("nsfwMode should be false")
	}
}

func TestStoreSnapshotIsStable(t *testing.T) {
	s := NewStore()
	s.Dispatch(SetQueryState("podcasts", QueryState{QueryPage: Some(1)}))
	snap := s.State()
	s.Dispatch(SetQueryState("podcasts", QueryState{QueryPage: Some(5)}))

	if v, _ := snap.Pages["podcasts"].QueryPage.Get(); v != 1 {
		t.Fatalf("snapshot changed after dispatch: %d", v)
	}
}

func TestStoreSubscribe(t *testing.T) {
	s := NewStore()
	var got []ActionType
	unsubscribe := s.Subscribe(func(a Action, _ State) {
		got = append(got, a.Type)
	})
	s.Dispatch(SetUITheme("dark"))
	unsubscribe()
	s.Dispatch(SetUITheme("light"))

	if len(got) != 1 || got[0] != SettingsSetUITheme {
		t.Fatalf("unexpected notifications: %v", got)
	}
}

func TestStoreConcurrentDispatch(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Dispatch(SetQueryState("episodes", QueryState{QueryPage: Some(i)}))
		}(i)
	}
	wg.Wait()
	if _, ok := s.PageEntry("episodes"); !ok {
		t.Fatalf("missing entry after concurrent dispatch")
	}
}

func TestRegistryReturnsSameStorePerSession(t *testing.T) {
	r := NewRegistry()
	a := r.Get("session-a")
	if r.Get("session-a") != a {
		t.Fatalf("expected same store for same session")
	}
	if r.Get("session-b") == a {
		t.Fatalf("expected distinct store per session")
	}
	if r.Get("") == r.Get("") {
		t.Fatalf("empty session should not share a store")
	}
	if r.Len() != 2 {
		t.Fatalf("len=%d", r.Len())
	}
}
