package handlers

import (
	"net/http"
	"strings"
	"time"

	"podverse-web/internal/domain"
	"podverse-web/internal/http/middleware"
	"podverse-web/internal/pages"
	"podverse-web/internal/services"
	"podverse-web/internal/state"
	"podverse-web/internal/utils"

	"github.com/gin-gonic/gin"
)

// EpisodePage renders an episode with its clip list. ?sort= and ?page= drive
// the page controller the same way the dropdown and pagination links do.
func (h *Handlers) EpisodePage(c *gin.Context) {
	ctx := c.Request.Context()
	reqID := middleware.GetRequestID(c)
	episodeID := strings.TrimSpace(c.Param("episodeId"))

	page, sort, err := listParams(c, domain.DefaultClipSort)
	if err != nil {
		RespondPageError(c, err)
		return
	}

	t, msgs := h.translator(c)
	deps := h.episodeDeps()
	props, err := pages.PrepareEpisode(ctx, deps, episodeID, middleware.GetUserInfo(c), msgs)
	if err != nil {
		utils.LogEvent(reqID, "episode", "prepare", err.Error())
		RespondPageError(c, err)
		return
	}

	store := h.sessionStore(c)
	ctrl := pages.NewEpisodeController(props, deps, episodeID, store, nil)
	defer ctrl.Close()

	if sort != props.InitialSort {
		if err := ctrl.SortChanged(ctx, sort); err != nil {
			RespondPageError(c, err)
			return
		}
	}
	if page != 1 {
		ok, err := ctrl.Jump(ctx, page)
		if err != nil {
			RespondPageError(c, err)
			return
		}
		if !ok {
			utils.LogEvent(reqID, "episode", "jump", "page di luar jangkauan, tetap di halaman sekarang")
		}
	}

	view := pages.BuildEpisodeView(props, ctrl.Snapshot(), "/episode/"+episodeID, t, time.Now())
	status := http.StatusOK
	if props.Entity == nil {
		status = http.StatusNotFound
	}
	c.HTML(status, "episode.tmpl", view)
}

// ClipListResponse is the JSON form of one clip list page.
type ClipListResponse struct {
	Items      []domain.MediaRef `json:"items"`
	TotalCount int               `json:"totalCount"`
	PageCount  int               `json:"pageCount"`
	Page       int               `json:"page"`
	Sort       domain.SortKey    `json:"sort"`
}

// EpisodeClips returns one page of an episode's public clips and mirrors the
// cursor into the session's query state.
func (h *Handlers) EpisodeClips(c *gin.Context) {
	episodeID := strings.TrimSpace(c.Param("episodeId"))
	page, sort, err := listParams(c, domain.DefaultClipSort)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	q := domain.ListQuery{EpisodeID: episodeID, Page: page, Sort: sort, PageSize: h.PageSize}
	if err := services.ValidateListQuery(q, domain.ClipSorts); err != nil {
		RespondDomainError(c, err)
		return
	}
	items, total, err := h.Clips.FetchList(c.Request.Context(), q)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "episode", "clips", err.Error())
		RespondDomainError(c, err)
		return
	}
	if items == nil {
		items = []domain.MediaRef{}
	}

	listItems := make([]state.ListItem, len(items))
	for i := range items {
		listItems[i] = items[i]
	}
	h.sessionStore(c).Dispatch(state.SetQueryState(pages.EpisodePageKey, state.QueryState{
		QueryPage:        state.Some(page),
		QuerySort:        state.Some(string(sort)),
		ListItems:        state.Some(listItems),
		IsLoadingInitial: state.Some(false),
	}))

	pageSize := h.PageSize
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	c.JSON(http.StatusOK, ClipListResponse{
		Items:      items,
		TotalCount: total,
		PageCount:  domain.PageCount(total, pageSize),
		Page:       page,
		Sort:       sort,
	})
}
