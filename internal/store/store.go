// Package store owns the process-wide database handle. The connection is
// established lazily on first use; concurrent first callers share a single
// in-flight dial attempt instead of racing to open their own.
package store

import (
	"database/sql"
	"sync"

	_ "github.com/lib/pq"
	"golang.org/x/sync/singleflight"
)

// Store hands out the shared *sql.DB, dialing on first use.
type Store struct {
	dsn  string
	open func(dsn string) (*sql.DB, error)

	mu    sync.RWMutex
	db    *sql.DB
	group singleflight.Group
}

// New creates a Store for the given Postgres DSN. No connection is made
// until DB is first called.
func New(dsn string) *Store {
	return &Store{dsn: dsn, open: openPostgres}
}

// DB returns the shared handle, establishing it if needed.
func (s *Store) DB() (*sql.DB, error) {
	s.mu.RLock()
	db := s.db
	s.mu.RUnlock()
	if db != nil {
		return db, nil
	}

	v, err, _ := s.group.Do("connect", func() (interface{}, error) {
		s.mu.RLock()
		db := s.db
		s.mu.RUnlock()
		if db != nil {
			return db, nil
		}
		db, err := s.open(s.dsn)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.db = db
		s.mu.Unlock()
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*sql.DB), nil
}

// Close releases the handle if one was ever established.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func openPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
