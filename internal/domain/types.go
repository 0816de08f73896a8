package domain

import "strings"

// DefaultPageSize matches the query results limit used by every list endpoint.
const DefaultPageSize = 20

// MaxPageSize is the largest page a list query may ask for.
const MaxPageSize = 100

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total,omitempty"`
}

// Offset returns the row offset of the current page.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}

// Limit returns the page size, falling back to DefaultPageSize.
func (p Pagination) Limit() int {
	if p.PageSize < 1 {
		return DefaultPageSize
	}
	return p.PageSize
}

// PageCount is ceil(totalCount / pageSize). A zero total has zero pages.
func PageCount(totalCount, pageSize int) int {
	if totalCount <= 0 {
		return 0
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return (totalCount + pageSize - 1) / pageSize
}

// ListQuery is the filter state sent to a list fetcher.
type ListQuery struct {
	EpisodeID  string  `json:"episodeId,omitempty"`
	PodcastID  string  `json:"podcastId,omitempty"`
	CategoryID string  `json:"categoryId,omitempty"`
	Page       int     `json:"page"`
	Sort       SortKey `json:"sort"`
	PageSize   int     `json:"-"`
}

// Pagination converts the query's paging fields.
func (q ListQuery) Pagination() Pagination {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return Pagination{Page: page, PageSize: q.PageSize}
}

// UserInfo is the authenticated user attached to a rendered page.
type UserInfo struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name,omitempty"`
	SubscribedPodcastIDs []string `json:"subscribedPodcastIds,omitempty"`
}

// IsSubscribed reports whether the user follows the given podcast.
func (u *UserInfo) IsSubscribed(podcastID string) bool {
	if u == nil {
		return false
	}
	podcastID = strings.TrimSpace(podcastID)
	for _, id := range u.SubscribedPodcastIDs {
		if id == podcastID {
			return true
		}
	}
	return false
}
