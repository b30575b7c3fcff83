package store

import (
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDB_ConcurrentFirstUseDialsOnce(t *testing.T) {
	var opens int64
	gate := make(chan struct{})

	s := New("postgres://ignored")
	s.open = func(string) (*sql.DB, error) {
		atomic.AddInt64(&opens, 1)
		<-gate // hold the dial until all callers are queued
		return sql.Open("postgres", "host=localhost dbname=unused")
	}

	const callers = 16
	results := make([]*sql.DB, callers)
	var wg sync.WaitGroup
	var started sync.WaitGroup
	started.Add(callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			started.Done()
			db, err := s.DB()
			require.NoError(t, err)
			results[i] = db
		}(i)
	}
	started.Wait()
	close(gate)
	wg.Wait()

	require.EqualValues(t, 1, atomic.LoadInt64(&opens), "all first callers must share one dial")
	for _, db := range results {
		require.Same(t, results[0], db)
	}
}

func TestDB_FailedDialIsRetriedOnNextUse(t *testing.T) {
	var opens int
	s := New("postgres://ignored")
	s.open = func(string) (*sql.DB, error) {
		opens++
		if opens == 1 {
			return nil, errors.New("connection refused")
		}
		return sql.Open("postgres", "host=localhost dbname=unused")
	}

	_, err := s.DB()
	require.Error(t, err)

	db, err := s.DB()
	require.NoError(t, err)
	require.NotNil(t, db)

	// Subsequent calls reuse the cached handle.
	again, err := s.DB()
	require.NoError(t, err)
	require.Same(t, db, again)
	require.Equal(t, 2, opens)
}

func TestClose_WithoutDialIsNoop(t *testing.T) {
	s := New("postgres://ignored")
	require.NoError(t, s.Close())
}
