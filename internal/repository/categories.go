package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/techforing/jobboard/internal/errs"
	"github.com/techforing/jobboard/internal/models"
)

// ListCategories returns all categories ordered by name ascending
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// FindCategoryByName retrieves a category matching the name case-insensitively.
// Storage uniqueness stays exact-match; only the lookup folds case.
func (r *Repository) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}
	c := &models.Category{}
	query := `SELECT id, name FROM categories WHERE LOWER(name) = LOWER($1)`
	err = db.QueryRowContext(ctx, query, name).Scan(&c.ID, &c.Name)
	if err == sql.ErrNoRows {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return c, nil
}

// CreateCategory creates a new category with the name as typed
func (r *Repository) CreateCategory(ctx context.Context, category *models.Category) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	err = db.QueryRowContext(ctx, query, category.Name).Scan(&category.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("category %s: %w", category.Name, errs.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}
