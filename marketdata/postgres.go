package marketdata

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresFixingStore persists daily index fixings in a Postgres table:
//
//	CREATE TABLE index_fixings (
//	    index_name  text        NOT NULL,
//	    fixing_date date        NOT NULL,
//	    rate        double precision NOT NULL,
//	    PRIMARY KEY (index_name, fixing_date)
//	);
type PostgresFixingStore struct {
	db *sql.DB
}

// OpenPostgresFixingStore connects with a lib/pq DSN and verifies the
// connection.
func OpenPostgresFixingStore(dsn string) (*PostgresFixingStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("OpenPostgresFixingStore: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenPostgresFixingStore: ping: %w", err)
	}
	return &PostgresFixingStore{db: db}, nil
}

// Fixing looks up the fixing for an index on a date.
func (s *PostgresFixingStore) Fixing(index string, date time.Time) (float64, error) {
	var rate float64
	err := s.db.QueryRow(
		`SELECT rate FROM index_fixings WHERE index_name = $1 AND fixing_date = $2`,
		index, date.Format("2006-01-02"),
	).Scan(&rate)
	if err != nil {
		return 0, fmt.Errorf("Fixing %s %s: %w", index, date.Format("2006-01-02"), err)
	}
	return rate, nil
}

// FixingOn adapts Fixing to the FixingFeed contract. Database errors other
// than a missing row are also reported as misses; use Fixing when the cause
// matters.
func (s *PostgresFixingStore) FixingOn(index string, date time.Time) (float64, bool) {
	rate, err := s.Fixing(index, date)
	if err != nil {
		return 0, false
	}
	return rate, true
}

// SaveFixing upserts a fixing.
func (s *PostgresFixingStore) SaveFixing(index string, date time.Time, rate float64) error {
	_, err := s.db.Exec(
		`INSERT INTO index_fixings (index_name, fixing_date, rate)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (index_name, fixing_date) DO UPDATE SET rate = EXCLUDED.rate`,
		index, date.Format("2006-01-02"), rate,
	)
	if err != nil {
		return fmt.Errorf("SaveFixing %s %s: %w", index, date.Format("2006-01-02"), err)
	}
	return nil
}

// IsMissing reports whether err from Fixing means the row does not exist.
func IsMissing(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// Close releases the underlying connection pool.
func (s *PostgresFixingStore) Close() error {
	return s.db.Close()
}
