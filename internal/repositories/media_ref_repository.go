package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"podverse-web/internal/domain"
)

// MediaRefRepository lists public clips with filter and sort.
type MediaRefRepository struct {
	DB *sql.DB
	// Dialect is "mysql" or "sqlite"; it only affects random ordering.
	Dialect string
}

var mediaRefOrder = map[domain.SortKey]string{
	domain.SortChronological: "m.start_time ASC, m.id ASC",
	domain.SortMostRecent:    "m.created_at DESC, m.id ASC",
	domain.SortTopPastDay:    "m.past_day_total_unique_pageviews DESC, m.id ASC",
	domain.SortTopPastWeek:   "m.past_week_total_unique_pageviews DESC, m.id ASC",
	domain.SortTopPastMonth:  "m.past_month_total_unique_pageviews DESC, m.id ASC",
	domain.SortTopPastYear:   "m.past_year_total_unique_pageviews DESC, m.id ASC",
	domain.SortTopAllTime:    "m.past_all_time_total_unique_pageviews DESC, m.id ASC",
	domain.SortOldest:        "m.created_at ASC, m.id ASC",
}

func (r MediaRefRepository) orderBy(sort domain.SortKey) (string, error) {
	if sort == domain.SortRandom {
		return randomFunc(r.Dialect), nil
	}
	if sort == "" {
		sort = domain.DefaultClipSort
	}
	clause, ok := mediaRefOrder[sort]
	if !ok {
		return "", domain.ValidationError{Field: "sort", Msg: fmt.Sprintf("unsupported sort %q", sort)}
	}
	return clause, nil
}

func buildMediaRefWhere(q domain.ListQuery) (string, []any) {
	where := []string{"m.is_public = 1"}
	args := []any{}

	if id := strings.TrimSpace(q.EpisodeID); id != "" {
		where = append(where, "m.episode_id = ?")
		args = append(args, id)
	}
	if id := strings.TrimSpace(q.PodcastID); id != "" {
		where = append(where, "e.podcast_id = ?")
		args = append(args, id)
	}
	if id := strings.TrimSpace(q.CategoryID); id != "" {
		where = append(where, "e.podcast_id IN (SELECT pc.podcast_id FROM podcasts_categories pc WHERE pc.category_id = ?)")
		args = append(args, id)
	}
	return strings.Join(where, " AND "), args
}

// List returns one page of clips and the total number of matching clips.
func (r MediaRefRepository) List(ctx context.Context, q domain.ListQuery) ([]domain.MediaRef, int, error) {
	order, err := r.orderBy(q.Sort)
	if err != nil {
		return nil, 0, err
	}
	where, args := buildMediaRefWhere(q)
	from := ` FROM media_refs m JOIN episodes e ON e.id = m.episode_id WHERE ` + where

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*)`+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count media refs: %w", err)
	}

	pg := q.Pagination()
	pageArgs := append(append([]any{}, args...), pg.Limit(), pg.Offset())
	rows, err := r.DB.QueryContext(ctx, `
		SELECT m.id, m.title, m.start_time, m.end_time, m.owner_id, m.is_public, m.episode_id, m.created_at`+
		from+` ORDER BY `+order+` LIMIT ? OFFSET ?`, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("query media refs: %w", err)
	}
	defer rows.Close()

	items := []domain.MediaRef{}
	for rows.Next() {
		var (
			m       domain.MediaRef
			endTime sql.NullInt64
		)
		if err := rows.Scan(&m.ID, &m.Title, &m.StartTime, &endTime, &m.OwnerID, &m.IsPublic, &m.EpisodeID, &m.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan media ref: %w", err)
		}
		if endTime.Valid {
			v := int(endTime.Int64)
			m.EndTime = &v
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
