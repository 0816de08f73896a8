package pages

import (
	"context"
	"errors"
	"sync"
	"testing"

	"podverse-web/internal/domain"
	"podverse-web/internal/state"
)

type fakeFetcher struct {
	mu      sync.Mutex
	total   int
	err     error
	queries []domain.ListQuery
	// gate, when set, blocks a fetch for the given page until released.
	gate    map[int]chan struct{}
	started chan int
}

func (f *fakeFetcher) FetchList(ctx context.Context, q domain.ListQuery) ([]domain.MediaRef, int, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	gate := f.gate[q.Page]
	total, err := f.total, f.err
	f.mu.Unlock()

	if gate != nil {
		if f.started != nil {
			f.started <- q.Page
		}
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		}
	}
	if err != nil {
		return nil, 0, err
	}
	return []domain.MediaRef{{ID: "p" + string(rune('0'+q.Page)), Title: string(q.Sort)}}, total, nil
}

func (f *fakeFetcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func (f *fakeFetcher) last() domain.ListQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

func newTestController(f *fakeFetcher, init Initial, store *state.Store, scrolls *int) *Controller {
	return NewController(Options{
		PageKey:  "episode",
		Base:     domain.ListQuery{EpisodeID: "ep1"},
		PageSize: 20,
		Fetcher:  f,
		Store:    store,
		ScrollToTop: func() {
			if scrolls != nil {
				*scrolls++
			}
		},
	}, init)
}

func TestNextTwiceThenRejectedAtLastPage(t *testing.T) {
	f := &fakeFetcher{total: 60}
	c := newTestController(f, Initial{Page: 1, Sort: domain.SortTopPastYear, PageCount: 3}, nil, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := c.Next(ctx)
		if err != nil || !ok {
			t.Fatalf("next #%d: ok=%v err=%v", i+1, ok, err)
		}
	}
	if got := c.Snapshot().Filter.Page; got != 3 {
		t.Fatalf("page=%d want 3", got)
	}

	ok, err := c.Next(ctx)
	if err != nil || ok {
		t.Fatalf("next at last page should be rejected, ok=%v err=%v", ok, err)
	}
	if got := c.Snapshot().Filter.Page; got != 3 {
		t.Fatalf("page=%d want 3", got)
	}
	if f.calls() != 2 {
		t.Fatalf("rejected transition must not fetch, calls=%d", f.calls())
	}
}

func TestPreviousRejectedOnFirstPage(t *testing.T) {
	f := &fakeFetcher{total: 60}
	c := newTestController(f, Initial{Page: 1, Sort: domain.SortOldest, PageCount: 3}, nil, nil)

	ok, err := c.Previous(context.Background())
	if err != nil || ok {
		t.Fatalf("expected rejection, ok=%v err=%v", ok, err)
	}
	if f.calls() != 0 {
		t.Fatalf("calls=%d", f.calls())
	}
}

func TestSortChangeResetsPage(t *testing.T) {
	f := &fakeFetcher{total: 100}
	c := newTestController(f, Initial{Page: 4, Sort: domain.SortTopPastYear, PageCount: 5}, nil, nil)

	if err := c.SortChanged(context.Background(), domain.SortMostRecent); err != nil {
		t.Fatalf("sort change: %v", err)
	}
	snap := c.Snapshot()
	if snap.Filter.Page != 1 || snap.Filter.Sort != domain.SortMostRecent {
		t.Fatalf("unexpected filter %+v", snap.Filter)
	}
	q := f.last()
	if q.Page != 1 || q.Sort != domain.SortMostRecent || q.EpisodeID != "ep1" || q.PageSize != 20 {
		t.Fatalf("unexpected query %+v", q)
	}
}

func TestSortChangeRejectsUnknownSort(t *testing.T) {
	f := &fakeFetcher{total: 10}
	c := newTestController(f, Initial{Page: 1, Sort: domain.SortOldest, PageCount: 1}, nil, nil)
	if err := c.SortChanged(context.Background(), "alphabetical"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if f.calls() != 0 {
		t.Fatalf("calls=%d", f.calls())
	}
}

func TestJumpBounds(t *testing.T) {
	f := &fakeFetcher{total: 60}
	c := newTestController(f, Initial{Page: 1, Sort: domain.SortOldest, PageCount: 3}, nil, nil)
	ctx := context.Background()

	for _, p := range []int{0, -1, 4} {
		if ok, _ := c.Jump(ctx, p); ok {
			t.Fatalf("jump to %d should be rejected", p)
		}
	}
	ok, err := c.Jump(ctx, 3)
	if err != nil || !ok {
		t.Fatalf("jump to 3: ok=%v err=%v", ok, err)
	}
	if f.calls() != 1 {
		t.Fatalf("calls=%d", f.calls())
	}
}

func TestFetchRecomputesPageCountAndScrolls(t *testing.T) {
	f := &fakeFetcher{total: 21}
	scrolls := 0
	c := newTestController(f, Initial{Page: 1, Sort: domain.SortOldest, PageCount: 5}, nil, &scrolls)

	if ok, err := c.Jump(context.Background(), 2); err != nil || !ok {
		t.Fatalf("jump: ok=%v err=%v", ok, err)
	}
	snap := c.Snapshot()
	if snap.PageCount != 2 {
		t.Fatalf("pageCount=%d want 2", snap.PageCount)
	}
	if len(snap.Items) != 1 || snap.Items[0].ID != "p2" {
		t.Fatalf("items not replaced: %+v", snap.Items)
	}
	if scrolls != 1 {
		t.Fatalf("scrolls=%d", scrolls)
	}
}

func TestStaleFetchIsClampedToNewPageCount(t *testing.T) {
	// pageCount was 5 when the jump was accepted, the result says only 2 pages exist
	f := &fakeFetcher{total: 30}
	c := newTestController(f, Initial{Page: 1, Sort: domain.SortOldest, PageCount: 5}, nil, nil)

	if ok, err := c.Jump(context.Background(), 4); err != nil || !ok {
		t.Fatalf("jump: ok=%v err=%v", ok, err)
	}
	snap := c.Snapshot()
	if snap.Filter.Page != 2 || snap.PageCount != 2 {
		t.Fatalf("expected clamp to page 2 of 2, got %+v pageCount=%d", snap.Filter, snap.PageCount)
	}
	if f.last().Page != 2 {
		t.Fatalf("last fetch should target the clamped page, got %d", f.last().Page)
	}
}

func TestFetchFailureSurfacesAndKeepsItems(t *testing.T) {
	boom := errors.New("backend down")
	f := &fakeFetcher{total: 60, err: boom}
	initial := []domain.MediaRef{{ID: "keep"}}
	c := newTestController(f, Initial{Items: initial, Page: 1, Sort: domain.SortOldest, PageCount: 3}, nil, nil)

	ok, err := c.Next(context.Background())
	if !ok || !errors.Is(err, boom) {
		t.Fatalf("expected accepted transition with error, ok=%v err=%v", ok, err)
	}
	if items := c.Snapshot().Items; len(items) != 1 || items[0].ID != "keep" {
		t.Fatalf("items should be untouched on failure: %+v", items)
	}
}

func TestOlderResultIsDiscarded(t *testing.T) {
	slow := make(chan struct{})
	f := &fakeFetcher{total: 100, gate: map[int]chan struct{}{2: slow}, started: make(chan int, 1)}
	c := newTestController(f, Initial{Page: 1, Sort: domain.SortOldest, PageCount: 5}, nil, nil)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := c.Jump(ctx, 2)
		done <- err
	}()

	<-f.started
	if ok, err := c.Jump(ctx, 3); err != nil || !ok {
		t.Fatalf("jump 3: ok=%v err=%v", ok, err)
	}
	close(slow)

	if err := <-done; !errors.Is(err, ErrStaleResult) {
		t.Fatalf("expected stale result, got %v", err)
	}
	snap := c.Snapshot()
	if snap.Filter.Page != 3 || snap.Items[0].ID != "p3" {
		t.Fatalf("newer result was overwritten: %+v", snap)
	}
}

func TestCloseDiscardsInFlightFetch(t *testing.T) {
	slow := make(chan struct{})
	f := &fakeFetcher{total: 100, gate: map[int]chan struct{}{2: slow}, started: make(chan int, 1)}
	c := newTestController(f, Initial{Items: []domain.MediaRef{{ID: "orig"}}, Page: 1, Sort: domain.SortOldest, PageCount: 5}, nil, nil)

	done := make(chan error, 1)
	go func() {
		_, err := c.Jump(context.Background(), 2)
		done <- err
	}()
	<-f.started
	c.Close()

	if err := <-done; !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if items := c.Snapshot().Items; items[0].ID != "orig" {
		t.Fatalf("closed controller applied a result: %+v", items)
	}
	if _, err := c.Jump(context.Background(), 3); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed after close, got %v", err)
	}
}

func TestControllerMirrorsIntoQueryState(t *testing.T) {
	f := &fakeFetcher{total: 40}
	store := state.NewStore()
	c := newTestController(f, Initial{Page: 1, Sort: domain.SortOldest, PageCount: 2}, store, nil)

	if ok, err := c.Next(context.Background()); err != nil || !ok {
		t.Fatalf("next: ok=%v err=%v", ok, err)
	}
	entry, ok := store.PageEntry("episode")
	if !ok {
		t.Fatalf("missing query state entry")
	}
	if v, _ := entry.QueryPage.Get(); v != 2 {
		t.Fatalf("queryPage=%d", v)
	}
	if v, _ := entry.QuerySort.Get(); v != string(domain.SortOldest) {
		t.Fatalf("querySort=%q", v)
	}
	if v, ok := entry.IsLoadingInitial.Get(); !ok || v {
		t.Fatalf("isLoadingInitial should end false")
	}
	if v, _ := entry.EndReached.Get(); !v {
		t.Fatalf("endReached should be true on the last page")
	}
	if items, _ := entry.ListItems.Get(); len(items) != 1 {
		t.Fatalf("listItems=%v", items)
	}
}
