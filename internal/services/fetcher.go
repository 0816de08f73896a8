package services

import (
	"context"

	"podverse-web/internal/domain"
)

// ListFetcher returns one page of clips plus the total match count.
// Implementations must be free of side effects and must return transport
// failures as errors, never as an empty page.
type ListFetcher interface {
	FetchList(ctx context.Context, q domain.ListQuery) ([]domain.MediaRef, int, error)
}

// EpisodeLookup resolves an episode by id. A missing episode is a domain.NotFoundError.
type EpisodeLookup interface {
	GetEpisodeByID(ctx context.Context, id string) (domain.Episode, error)
}
