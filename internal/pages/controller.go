// Package pages holds the listing page controllers, their server-side
// preparation, and the view models the templates render.
package pages

import (
	"context"
	"errors"
	"sync"

	"podverse-web/internal/domain"
	"podverse-web/internal/services"
	"podverse-web/internal/state"
)

var (
	// ErrStaleResult is returned by a fetch that resolved after a newer one
	// was issued; its result is dropped.
	ErrStaleResult = errors.New("pages: result superseded by a newer request")
	// ErrClosed is returned by a fetch that resolved after Close.
	ErrClosed = errors.New("pages: controller closed")
)

// Filter is the cursor of a listing page.
type Filter struct {
	Page       int            `json:"page"`
	Sort       domain.SortKey `json:"sort"`
	CategoryID string         `json:"categoryId,omitempty"`
}

// Initial is the server-prepared starting point of a controller.
type Initial struct {
	Items     []domain.MediaRef
	Page      int
	Sort      domain.SortKey
	PageCount int
}

type Options struct {
	// PageKey names the query-state entry the controller mirrors into.
	PageKey string
	// Base carries the type specific filters (episode, podcast) of every query.
	Base     domain.ListQuery
	PageSize int
	Sorts    []domain.SortKey
	Fetcher  services.ListFetcher
	// Store is optional.
	Store *state.Store
	// ScrollToTop runs after every applied fetch.
	ScrollToTop func()
}

// Snapshot is a consistent read of the controller state.
type Snapshot struct {
	Filter    Filter
	Items     []domain.MediaRef
	PageCount int
}

// Controller owns the filter state of one list and refetches on every
// accepted transition. Only the newest fetch is applied.
type Controller struct {
	opts Options

	mu        sync.Mutex
	filter    Filter
	items     []domain.MediaRef
	pageCount int
	issued    uint64

	life   context.Context
	cancel context.CancelFunc
}

func NewController(opts Options, init Initial) *Controller {
	if opts.PageSize < 1 {
		opts.PageSize = domain.DefaultPageSize
	}
	if len(opts.Sorts) == 0 {
		opts.Sorts = domain.ClipSorts
	}
	page := init.Page
	if page < 1 {
		page = 1
	}
	sort := init.Sort
	if sort == "" {
		sort = opts.Sorts[0]
	}
	life, cancel := context.WithCancel(context.Background())
	return &Controller{
		opts:      opts,
		filter:    Filter{Page: page, Sort: sort, CategoryID: opts.Base.CategoryID},
		items:     init.Items,
		pageCount: init.PageCount,
		life:      life,
		cancel:    cancel,
	}
}

// Close ends the controller lifetime. In-flight fetches are cancelled and
// their results discarded.
func (c *Controller) Close() {
	c.cancel()
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]domain.MediaRef, len(c.items))
	copy(items, c.items)
	return Snapshot{Filter: c.filter, Items: items, PageCount: c.pageCount}
}

// SortChanged resets the page to 1 and refetches with the new sort.
func (c *Controller) SortChanged(ctx context.Context, sort domain.SortKey) error {
	if !sort.IsOneOf(c.opts.Sorts) {
		return domain.ValidationError{Field: "sort", Msg: "unsupported sort " + string(sort)}
	}
	c.mu.Lock()
	c.filter.Page = 1
	c.filter.Sort = sort
	c.mu.Unlock()
	return c.load(ctx)
}

// Jump moves to page. Pages below 1 or beyond the last known page count are
// rejected without a fetch.
func (c *Controller) Jump(ctx context.Context, page int) (bool, error) {
	c.mu.Lock()
	if page < 1 || page > c.upperBoundLocked() {
		c.mu.Unlock()
		return false, nil
	}
	c.filter.Page = page
	c.mu.Unlock()
	return true, c.load(ctx)
}

// Next advances one page unless the current page is the last.
func (c *Controller) Next(ctx context.Context) (bool, error) {
	return c.Pagination(ctx).Next()
}

// Previous goes back one page unless the current page is the first.
func (c *Controller) Previous(ctx context.Context) (bool, error) {
	return c.Pagination(ctx).Previous()
}

// Pagination binds the pagination control to this controller's state.
func (c *Controller) Pagination(ctx context.Context) Pagination {
	c.mu.Lock()
	current, count := c.filter.Page, c.pageCount
	c.mu.Unlock()
	return NewPagination(current, count, func(page int) (bool, error) {
		return c.Jump(ctx, page)
	})
}

// upperBoundLocked is the highest page a jump may target. An empty list
// still has page 1.
func (c *Controller) upperBoundLocked() int {
	if c.pageCount < 1 {
		return 1
	}
	return c.pageCount
}

func (c *Controller) queryLocked() domain.ListQuery {
	q := c.opts.Base
	q.Page = c.filter.Page
	q.Sort = c.filter.Sort
	q.CategoryID = c.filter.CategoryID
	q.PageSize = c.opts.PageSize
	return q
}

func (c *Controller) load(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	q := c.queryLocked()
	c.mu.Unlock()

	if c.life.Err() != nil {
		return ErrClosed
	}
	c.dispatch(state.QueryState{
		QueryPage:        state.Some(q.Page),
		QuerySort:        state.Some(string(q.Sort)),
		IsLoadingInitial: state.Some(true),
	})

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.life, cancel)
	defer stop()

	items, total, err := c.opts.Fetcher.FetchList(fetchCtx, q)

	c.mu.Lock()
	if c.life.Err() != nil {
		c.mu.Unlock()
		return ErrClosed
	}
	if seq != c.issued {
		c.mu.Unlock()
		return ErrStaleResult
	}
	if err != nil {
		c.mu.Unlock()
		c.dispatch(state.QueryState{IsLoadingInitial: state.Some(false)})
		return err
	}

	c.items = items
	c.pageCount = domain.PageCount(total, c.opts.PageSize)
	clamped := c.pageCount > 0 && c.filter.Page > c.pageCount
	if clamped {
		c.filter.Page = c.pageCount
	}
	page, count := c.filter.Page, c.pageCount
	c.mu.Unlock()

	if clamped {
		return c.load(ctx)
	}

	if c.opts.ScrollToTop != nil {
		c.opts.ScrollToTop()
	}
	listItems := make([]state.ListItem, 0, len(items))
	for _, it := range items {
		listItems = append(listItems, it)
	}
	c.dispatch(state.QueryState{
		ListItems:        state.Some(listItems),
		IsLoadingInitial: state.Some(false),
		EndReached:       state.Some(page >= count),
	})
	return nil
}

func (c *Controller) dispatch(patch state.QueryState) {
	if c.opts.Store == nil || c.opts.PageKey == "" {
		return
	}
	c.opts.Store.Dispatch(state.SetQueryState(c.opts.PageKey, patch))
}
