package pages

import (
	"context"
	"errors"
	"testing"
	"time"

	"podverse-web/internal/domain"
	"podverse-web/internal/state"
)

type fakeEpisodes struct {
	ep  domain.Episode
	err error
}

func (f fakeEpisodes) GetEpisodeByID(context.Context, string) (domain.Episode, error) {
	return f.ep, f.err
}

func TestPrepareEpisodeDefaults(t *testing.T) {
	clips := &fakeFetcher{total: 45}
	deps := EpisodeDeps{
		Episodes: fakeEpisodes{ep: domain.Episode{ID: "ep1", Title: "Ep"}},
		Clips:    clips,
		PageSize: 20,
	}
	props, err := PrepareEpisode(context.Background(), deps, "ep1", nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if props.InitialPage != 1 || props.InitialSort != domain.SortTopPastYear {
		t.Fatalf("defaults: page=%d sort=%s", props.InitialPage, props.InitialSort)
	}
	if props.InitialPageCount != 3 || len(props.InitialItems) != 1 {
		t.Fatalf("pageCount=%d items=%d", props.InitialPageCount, len(props.InitialItems))
	}
	if props.Entity == nil || props.Entity.ID != "ep1" {
		t.Fatalf("entity=%+v", props.Entity)
	}
	if q := clips.last(); q.EpisodeID != "ep1" || q.Sort != domain.SortTopPastYear || q.Page != 1 {
		t.Fatalf("query=%+v", q)
	}
}

func TestPrepareEpisodeNotFoundStillRenders(t *testing.T) {
	deps := EpisodeDeps{
		Episodes: fakeEpisodes{err: domain.NotFoundError{Resource: "episode", ID: "gone"}},
		Clips:    &fakeFetcher{total: 0},
	}
	props, err := PrepareEpisode(context.Background(), deps, "gone", nil, nil)
	if err != nil {
		t.Fatalf("not found should not fail preparation: %v", err)
	}
	if props.Entity != nil {
		t.Fatalf("entity should be absent")
	}

	view := BuildEpisodeView(props, Snapshot{Filter: Filter{Page: 1, Sort: props.InitialSort}}, "/episode/gone", keyEcho, time.Now())
	if view.Title != "untitledEpisode" || view.Header.AboveTitle != "untitledPodcast" {
		t.Fatalf("title=%q above=%q", view.Title, view.Header.AboveTitle)
	}
}

func TestPrepareEpisodePropagatesFailures(t *testing.T) {
	boom := errors.New("timeout")
	deps := EpisodeDeps{
		Episodes: fakeEpisodes{err: domain.UpstreamError{Op: "get episode", Err: boom}},
		Clips:    &fakeFetcher{},
	}
	if _, err := PrepareEpisode(context.Background(), deps, "ep1", nil, nil); !errors.Is(err, boom) {
		t.Fatalf("expected lookup failure, got %v", err)
	}

	deps = EpisodeDeps{
		Episodes: fakeEpisodes{ep: domain.Episode{ID: "ep1"}},
		Clips:    &fakeFetcher{err: boom},
	}
	if _, err := PrepareEpisode(context.Background(), deps, "ep1", nil, nil); !errors.Is(err, boom) {
		t.Fatalf("expected clip failure, got %v", err)
	}
}

func TestEpisodeControllerFromProps(t *testing.T) {
	clips := &fakeFetcher{total: 45}
	deps := EpisodeDeps{Episodes: fakeEpisodes{ep: domain.Episode{ID: "ep1"}}, Clips: clips, PageSize: 20}
	props, err := PrepareEpisode(context.Background(), deps, "ep1", nil, nil)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}

	store := state.NewStore()
	c := NewEpisodeController(props, deps, "ep1", store, nil)
	defer c.Close()

	if ok, err := c.Jump(context.Background(), 3); err != nil || !ok {
		t.Fatalf("jump: ok=%v err=%v", ok, err)
	}
	view := BuildEpisodeView(props, c.Snapshot(), "/episode/ep1", keyEcho, time.Now())
	if view.Filter.Page != 3 || view.Pagination.HasNext() || !view.Pagination.HasPrevious() {
		t.Fatalf("view pagination %+v", view.Pagination)
	}
	if len(view.SortOptions) != len(domain.ClipSorts) || len(view.PageLinks) != 3 {
		t.Fatalf("sort options=%d page links=%d", len(view.SortOptions), len(view.PageLinks))
	}
	if _, ok := store.PageEntry(EpisodePageKey); !ok {
		t.Fatalf("controller did not mirror into the store")
	}
}
