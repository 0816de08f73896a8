package pages

import (
	"context"
	"fmt"
	"time"

	"podverse-web/internal/domain"
	"podverse-web/internal/i18n"
	"podverse-web/internal/services"
	"podverse-web/internal/state"
)

// EpisodePageKey is the query-state key of the episode clip list.
const EpisodePageKey = "episode"

type EpisodeDeps struct {
	Episodes services.EpisodeLookup
	Clips    services.ListFetcher
	PageSize int
}

// EpisodeProps is what server-side preparation hands to the episode page.
type EpisodeProps struct {
	InitialItems     []domain.MediaRef
	InitialPage      int
	InitialSort      domain.SortKey
	InitialPageCount int
	Entity           *domain.Episode
	UserInfo         *domain.UserInfo
	Translations     map[i18n.Key]string
}

// PrepareEpisode loads the episode and the first page of its clips. A missing
// episode leaves Entity nil; the page still renders.
func PrepareEpisode(ctx context.Context, deps EpisodeDeps, episodeID string, user *domain.UserInfo, msgs map[i18n.Key]string) (EpisodeProps, error) {
	props := EpisodeProps{
		InitialPage:  1,
		InitialSort:  domain.DefaultClipSort,
		UserInfo:     user,
		Translations: msgs,
	}

	ep, err := deps.Episodes.GetEpisodeByID(ctx, episodeID)
	switch {
	case err == nil:
		props.Entity = &ep
	case domain.IsNotFound(err):
	default:
		return props, fmt.Errorf("prepare episode %s: %w", episodeID, err)
	}

	items, total, err := deps.Clips.FetchList(ctx, domain.ListQuery{
		EpisodeID: episodeID,
		Page:      props.InitialPage,
		Sort:      props.InitialSort,
		PageSize:  deps.PageSize,
	})
	if err != nil {
		return props, fmt.Errorf("prepare episode clips %s: %w", episodeID, err)
	}
	props.InitialItems = items
	props.InitialPageCount = domain.PageCount(total, pageSizeOr(deps.PageSize))
	return props, nil
}

// NewEpisodeController starts a clip list controller from prepared props.
func NewEpisodeController(props EpisodeProps, deps EpisodeDeps, episodeID string, store *state.Store, scrollToTop func()) *Controller {
	return NewController(Options{
		PageKey:     EpisodePageKey,
		Base:        domain.ListQuery{EpisodeID: episodeID},
		PageSize:    pageSizeOr(deps.PageSize),
		Sorts:       domain.ClipSorts,
		Fetcher:     deps.Clips,
		Store:       store,
		ScrollToTop: scrollToTop,
	}, Initial{
		Items:     props.InitialItems,
		Page:      props.InitialPage,
		Sort:      props.InitialSort,
		PageCount: props.InitialPageCount,
	})
}

// EpisodeView is the template data of the episode page.
type EpisodeView struct {
	Title       string
	Nav         []NavBarLink
	Header      PodcastHeader
	Episode     *domain.Episode
	SortOptions []SortOption
	SortHeader  string
	Clips       []ClipListItem
	NoClipsText string
	Filter      Filter
	Pagination  Pagination
	PageLinks   []PageLink
	PrevText    string
	NextText    string
	BasePath    string
}

// BuildEpisodeView renders the controller's current state.
func BuildEpisodeView(props EpisodeProps, snap Snapshot, basePath string, t i18n.T, now time.Time) EpisodeView {
	var podcast *domain.Podcast
	if props.Entity != nil {
		podcast = props.Entity.Podcast
	}
	pg := NewPagination(snap.Filter.Page, snap.PageCount, nil)
	return EpisodeView{
		Title:       EpisodeTitle(props.Entity, t),
		Nav:         NavBarLinks(basePath, t),
		Header:      NewPodcastHeader(podcast, props.Entity, props.UserInfo, t),
		Episode:     props.Entity,
		SortOptions: SortOptions(domain.ClipSorts, snap.Filter.Sort, t),
		SortHeader:  t(i18n.KeyClips),
		Clips:       ClipListElements(snap.Items, props.Entity, t, now),
		NoClipsText: t(i18n.KeyNoClips),
		Filter:      snap.Filter,
		Pagination:  pg,
		PageLinks:   pg.Window(5),
		PrevText:    t(i18n.KeyPrevious),
		NextText:    t(i18n.KeyNext),
		BasePath:    basePath,
	}
}

func pageSizeOr(n int) int {
	if n < 1 {
		return domain.DefaultPageSize
	}
	return n
}
