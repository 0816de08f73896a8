package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaStatements creates the tables read by the page queries. Column types
// are chosen to work on both MySQL and SQLite.
var SchemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS podcasts (
		id VARCHAR(14) PRIMARY KEY,
		title VARCHAR(255) NOT NULL DEFAULT '',
		image_url VARCHAR(2048) NOT NULL DEFAULT '',
		feed_url VARCHAR(2048) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS authors (
		id VARCHAR(14) PRIMARY KEY,
		name VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS podcasts_authors (
		podcast_id VARCHAR(14) NOT NULL,
		author_id VARCHAR(14) NOT NULL,
		PRIMARY KEY (podcast_id, author_id)
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id VARCHAR(14) PRIMARY KEY,
		title VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS podcasts_categories (
		podcast_id VARCHAR(14) NOT NULL,
		category_id VARCHAR(14) NOT NULL,
		PRIMARY KEY (podcast_id, category_id)
	)`,
	`CREATE TABLE IF NOT EXISTS episodes (
		id VARCHAR(14) PRIMARY KEY,
		podcast_id VARCHAR(14) NOT NULL,
		title VARCHAR(255) NOT NULL DEFAULT '',
		description TEXT,
		media_url VARCHAR(2048) NOT NULL DEFAULT '',
		image_url VARCHAR(2048) NOT NULL DEFAULT '',
		duration INTEGER NOT NULL DEFAULT 0,
		pub_date DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS media_refs (
		id VARCHAR(14) PRIMARY KEY,
		episode_id VARCHAR(14) NOT NULL,
		owner_id VARCHAR(255) NOT NULL DEFAULT '',
		title VARCHAR(255) NOT NULL DEFAULT '',
		start_time INTEGER NOT NULL DEFAULT 0,
		end_time INTEGER,
		is_public INTEGER NOT NULL DEFAULT 1,
		past_day_total_unique_pageviews INTEGER NOT NULL DEFAULT 0,
		past_week_total_unique_pageviews INTEGER NOT NULL DEFAULT 0,
		past_month_total_unique_pageviews INTEGER NOT NULL DEFAULT 0,
		past_year_total_unique_pageviews INTEGER NOT NULL DEFAULT 0,
		past_all_time_total_unique_pageviews INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	)`,
}

// EnsureSchema runs SchemaStatements in order.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range SchemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func randomFunc(dialect string) string {
	if dialect == "mysql" || dialect == "" {
		return "RAND()"
	}
	return "RANDOM()"
}
