package pgoracle

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
)

// Open opens a connection pool tuned for the query pattern the rest of
// this package drives it with: every Lookup* call is a single short,
// independent statement (at most one set_limit+similarity pair inside a
// transaction), never a long-running one, and Match calls typically
// arrive in short concurrent bursts rather than a steady trickle. That
// argues for keeping idle connections equal to the open cap, so a burst
// doesn't pay dial/auth latency on its first few calls, and for
// recycling connections that sit idle between bursts rather than only
// bounding their total lifetime.
func Open(dsn string, maxOpenConns int) (*sql.DB, error) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("pgoracle: open: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pgoracle: ping: %w", err)
	}

	return db, nil
}

// OpenFromEnv builds a DSN from TAXAMATCH_PG* environment variables and
// opens it via Open, falling back to local-development defaults.
func OpenFromEnv() (*sql.DB, error) {
	host := getEnvOrDefault("TAXAMATCH_PGHOST", "localhost")
	port := getEnvOrDefault("TAXAMATCH_PGPORT", "5432")
	user := getEnvOrDefault("TAXAMATCH_PGUSER", "taxamatch")
	password := getEnvOrDefault("TAXAMATCH_PGPASSWORD", "taxamatch")
	dbname := getEnvOrDefault("TAXAMATCH_PGDATABASE", "taxamatch")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	maxOpenConns := 20
	if v := os.Getenv("TAXAMATCH_PGMAXCONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxOpenConns = parsed
		}
	}

	return Open(dsn, maxOpenConns)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
