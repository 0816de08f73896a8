package testsupport

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"podverse-web/internal/domain"
)

const (
	TestPodcastFeedURL  = "http://example.com/test333"
	TestPodcastTitle    = "Most interesting podcast in the world"
	TestEpisodeMediaURL = "http://example.com/test999"
	TestEpisodeTitle    = "Best episode in the history of time"
	TestMediaRefOwner   = "testOwner"
)

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
}

// CreateTestPodcastAndEpisode finds or creates the fixture podcast and its episode.
func CreateTestPodcastAndEpisode(ctx context.Context, db *sql.DB) (domain.Podcast, domain.Episode, error) {
	pod := domain.Podcast{FeedURL: TestPodcastFeedURL, Title: TestPodcastTitle}
	err := db.QueryRowContext(ctx, `SELECT id, title FROM podcasts WHERE feed_url = ? LIMIT 1`, pod.FeedURL).Scan(&pod.ID, &pod.Title)
	if errors.Is(err, sql.ErrNoRows) {
		pod.ID = newID()
		_, err = db.ExecContext(ctx, `INSERT INTO podcasts (id, title, feed_url) VALUES (?, ?, ?)`, pod.ID, pod.Title, pod.FeedURL)
	}
	if err != nil {
		return pod, domain.Episode{}, fmt.Errorf("fixture podcast: %w", err)
	}

	ep := domain.Episode{MediaURL: TestEpisodeMediaURL, Title: TestEpisodeTitle, PodcastID: pod.ID, Podcast: &pod}
	err = db.QueryRowContext(ctx, `SELECT id, title FROM episodes WHERE media_url = ? LIMIT 1`, ep.MediaURL).Scan(&ep.ID, &ep.Title)
	if errors.Is(err, sql.ErrNoRows) {
		ep.ID = newID()
		ep.PubDate = time.Now().UTC().Truncate(time.Second)
		_, err = db.ExecContext(ctx,
			`INSERT INTO episodes (id, podcast_id, title, media_url, pub_date) VALUES (?, ?, ?, ?, ?)`,
			ep.ID, pod.ID, ep.Title, ep.MediaURL, ep.PubDate)
	}
	if err != nil {
		return pod, ep, fmt.Errorf("fixture episode: %w", err)
	}
	return pod, ep, nil
}

// CreateTestMediaRefs adds four public clips, TestTitle0..TestTitle3, to the
// fixture episode. Higher indexes are newer and more viewed.
func CreateTestMediaRefs(ctx context.Context, db *sql.DB) ([]domain.MediaRef, error) {
	_, ep, err := CreateTestPodcastAndEpisode(ctx, db)
	if err != nil {
		return nil, err
	}

	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	out := make([]domain.MediaRef, 0, 4)
	for i := 0; i < 4; i++ {
		end := (i + 1) * 60
		m := domain.MediaRef{
			ID:        newID(),
			Title:     fmt.Sprintf("TestTitle%d", i),
			StartTime: i * 60,
			EndTime:   &end,
			OwnerID:   TestMediaRefOwner,
			IsPublic:  true,
			EpisodeID: ep.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		views := (i + 1) * 10
		_, err := db.ExecContext(ctx, `
			INSERT INTO media_refs (id, episode_id, owner_id, title, start_time, end_time, is_public,
				past_day_total_unique_pageviews, past_week_total_unique_pageviews, past_month_total_unique_pageviews,
				past_year_total_unique_pageviews, past_all_time_total_unique_pageviews, created_at)
			VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?, ?, ?, ?, ?)
		`, m.ID, m.EpisodeID, m.OwnerID, m.Title, m.StartTime, end, views, views, views, views, views, m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("fixture media ref %d: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}
