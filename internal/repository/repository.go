// Package repository provides PostgreSQL data access for users, categories and jobs.
package repository

import (
	"errors"

	"github.com/lib/pq"
	"github.com/techforing/jobboard/internal/store"
)

// Repository provides database operations
type Repository struct {
	store *store.Store
}

// NewRepository initializes a new repository over the shared store handle
func NewRepository(st *store.Store) *Repository {
	return &Repository{store: st}
}

// isUniqueViolation reports whether the error is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// isForeignKeyViolation reports whether the error is a foreign key violation.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
