package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/glebarez/sqlite"
	_ "github.com/go-sql-driver/mysql"
)

// ConnectDB opens and pings the pool for the configured driver.
// DB_DRIVER=sqlite uses the pure-Go sqlite driver, handy for local runs.
func ConnectDB(env Env) (*sql.DB, error) {
	driver := env.DBDriver
	switch driver {
	case "mysql", "sqlite":
	default:
		return nil, fmt.Errorf("DB_DRIVER tidak dikenal: %q", driver)
	}

	db, err := sql.Open(driver, env.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if driver == "mysql" {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(10 * time.Minute)
		db.SetConnMaxIdleTime(5 * time.Minute)
	} else {
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	log.Printf("[DB] connected driver=%s", driver)
	return db, nil
}

// PingDB checks an open pool with a short deadline.
func PingDB(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database belum terhubung")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}
