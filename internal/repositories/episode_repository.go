package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"podverse-web/internal/domain"
)

// EpisodeRepository reads episodes together with their podcast.
type EpisodeRepository struct {
	DB *sql.DB
}

// GetByID loads an episode, its podcast, and the podcast's authors and categories.
func (r EpisodeRepository) GetByID(ctx context.Context, id string) (domain.Episode, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Episode{}, domain.NotFoundError{Resource: "episode"}
	}

	var (
		ep          domain.Episode
		pod         domain.Podcast
		description sql.NullString
		pubDate     sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT e.id, e.title, e.description, e.media_url, e.image_url, e.duration, e.pub_date,
		       p.id, p.title, p.image_url, p.feed_url
		FROM episodes e
		JOIN podcasts p ON p.id = e.podcast_id
		WHERE e.id = ?
		LIMIT 1
	`, id).Scan(
		&ep.ID, &ep.Title, &description, &ep.MediaURL, &ep.ImageURL, &ep.Duration, &pubDate,
		&pod.ID, &pod.Title, &pod.ImageURL, &pod.FeedURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Episode{}, domain.NotFoundError{Resource: "episode", ID: id, Err: err}
		}
		return domain.Episode{}, fmt.Errorf("query episode %s: %w", id, err)
	}
	ep.Description = description.String
	if pubDate.Valid {
		ep.PubDate = pubDate.Time
	}

	if pod.Authors, err = r.authors(ctx, pod.ID); err != nil {
		return domain.Episode{}, err
	}
	if pod.Categories, err = r.categories(ctx, pod.ID); err != nil {
		return domain.Episode{}, err
	}
	ep.PodcastID = pod.ID
	ep.Podcast = &pod
	return ep, nil
}

func (r EpisodeRepository) authors(ctx context.Context, podcastID string) ([]domain.Author, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT a.id, a.name
		FROM authors a
		JOIN podcasts_authors pa ON pa.author_id = a.id
		WHERE pa.podcast_id = ?
		ORDER BY a.name ASC
	`, podcastID)
	if err != nil {
		return nil, fmt.Errorf("query authors: %w", err)
	}
	defer rows.Close()

	out := []domain.Author{}
	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r EpisodeRepository) categories(ctx context.Context, podcastID string) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT c.id, c.title
		FROM categories c
		JOIN podcasts_categories pc ON pc.category_id = c.id
		WHERE pc.podcast_id = ?
		ORDER BY c.title ASC
	`, podcastID)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	out := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Title); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
