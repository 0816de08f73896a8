package services

import (
	"context"
	"fmt"
	"strconv"

	"podverse-web/internal/domain"
	"podverse-web/internal/repositories"
	"podverse-web/internal/utils"
)

// ClipService answers clip list queries from the database.
type ClipService struct {
	Repo     repositories.MediaRefRepository
	PageSize int
}

func (s ClipService) FetchList(ctx context.Context, q domain.ListQuery) ([]domain.MediaRef, int, error) {
	if q.PageSize == 0 {
		q.PageSize = s.PageSize
	}
	if err := ValidateListQuery(q, domain.ClipSorts); err != nil {
		return nil, 0, err
	}

	items, total, err := s.Repo.List(ctx, q)
	if err != nil {
		utils.LogEvent(utils.RequestIDFrom(ctx), "clips", "fetch_list_error", err.Error())
		return nil, 0, domain.UpstreamError{Op: "list clips", Err: err}
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "clips", "fetch_list",
		fmt.Sprintf("episode=%s page=%d sort=%s total=%s", q.EpisodeID, q.Page, q.Sort, strconv.Itoa(total)))
	return items, total, nil
}

// EpisodeService resolves episodes from the database.
type EpisodeService struct {
	Repo repositories.EpisodeRepository
}

func (s EpisodeService) GetEpisodeByID(ctx context.Context, id string) (domain.Episode, error) {
	ep, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.Episode{}, err
		}
		utils.LogEvent(utils.RequestIDFrom(ctx), "episode", "get_error", err.Error())
		return domain.Episode{}, domain.UpstreamError{Op: "get episode", Err: err}
	}
	return ep, nil
}
