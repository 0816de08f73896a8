package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"podverse-web/internal/domain"
)

func TestMediaRefListFiltersByEpisodeAndPaginates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM media_refs m JOIN episodes e ON e.id = m.episode_id WHERE m.is_public = 1 AND m.episode_id = \?`).
		WithArgs("ep1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(41))
	mock.ExpectQuery(`ORDER BY m.past_year_total_unique_pageviews DESC, m.id ASC LIMIT \? OFFSET \?`).
		WithArgs("ep1", 20, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "start_time", "end_time", "owner_id", "is_public", "episode_id", "created_at"}).
			AddRow("c1", "First", 10, 40, "owner", true, "ep1", created).
			AddRow("c2", "Second", 60, nil, "owner", true, "ep1", created))

	repo := MediaRefRepository{DB: db, Dialect: "mysql"}
	items, total, err := repo.List(context.Background(), domain.ListQuery{EpisodeID: "ep1", Page: 2, Sort: domain.SortTopPastYear})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if total != 41 {
		t.Fatalf("total=%d", total)
	}
	if len(items) != 2 {
		t.Fatalf("items=%d", len(items))
	}
	if items[0].EndTime == nil || *items[0].EndTime != 40 {
		t.Fatalf("endTime not scanned: %+v", items[0].EndTime)
	}
	if items[1].EndTime != nil {
		t.Fatalf("null endTime should stay nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMediaRefListRandomUsesDialect(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`ORDER BY RANDOM\(\) LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "start_time", "end_time", "owner_id", "is_public", "episode_id", "created_at"}))

	repo := MediaRefRepository{DB: db, Dialect: "sqlite"}
	items, total, err := repo.List(context.Background(), domain.ListQuery{CategoryID: "cat", Page: 1, Sort: domain.SortRandom})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if total != 0 || len(items) != 0 {
		t.Fatalf("expected empty result, got %d/%d", len(items), total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMediaRefListRejectsUnknownSort(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	_, _, err = MediaRefRepository{DB: db}.List(context.Background(), domain.ListQuery{Sort: "alphabetical"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMediaRefListPropagatesQueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery(`SELECT COUNT`).WillReturnError(boom)

	_, _, err = MediaRefRepository{DB: db}.List(context.Background(), domain.ListQuery{EpisodeID: "ep1", Page: 1})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}
