// Package apiclient reads clips and episodes from a remote podverse API.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"podverse-web/internal/domain"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchList calls GET /mediaRef. The API answers with a two element array:
// [items, totalCount].
func (c *Client) FetchList(ctx context.Context, q domain.ListQuery) ([]domain.MediaRef, int, error) {
	params := url.Values{}
	if q.EpisodeID != "" {
		params.Set("episodeId", q.EpisodeID)
	}
	if q.PodcastID != "" {
		params.Set("podcastId", q.PodcastID)
	}
	if q.CategoryID != "" {
		params.Set("categories", q.CategoryID)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Sort != "" {
		params.Set("sort", string(q.Sort))
	}
	// page counts are computed from this size, so the API must use it too
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}

	var raw []json.RawMessage
	if err := c.getJSON(ctx, "/mediaRef?"+params.Encode(), "list clips", &raw); err != nil {
		return nil, 0, err
	}
	if len(raw) != 2 {
		return nil, 0, domain.UpstreamError{Op: "list clips", Err: fmt.Errorf("unexpected response shape: %d elements", len(raw))}
	}

	items := []domain.MediaRef{}
	if err := json.Unmarshal(raw[0], &items); err != nil {
		return nil, 0, domain.UpstreamError{Op: "list clips", Err: err}
	}
	var total int
	if err := json.Unmarshal(raw[1], &total); err != nil {
		return nil, 0, domain.UpstreamError{Op: "list clips", Err: err}
	}
	return items, total, nil
}

// GetEpisodeByID calls GET /episode/:id.
func (c *Client) GetEpisodeByID(ctx context.Context, id string) (domain.Episode, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Episode{}, domain.NotFoundError{Resource: "episode"}
	}
	var ep domain.Episode
	if err := c.getJSON(ctx, "/episode/"+url.PathEscape(id), "get episode", &ep); err != nil {
		if domain.IsNotFound(err) {
			return domain.Episode{}, domain.NotFoundError{Resource: "episode", ID: id, Err: err}
		}
		return domain.Episode{}, err
	}
	if ep.Podcast != nil && ep.PodcastID == "" {
		ep.PodcastID = ep.Podcast.ID
	}
	return ep, nil
}

func (c *Client) getJSON(ctx context.Context, path, op string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return domain.UpstreamError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain.UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.NotFoundError{Resource: op}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.UpstreamError{Op: op, Err: fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return domain.UpstreamError{Op: op, Err: err}
	}
	return nil
}
