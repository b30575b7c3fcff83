package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/techforing/jobboard/internal/errs"
	"github.com/techforing/jobboard/internal/models"
)

const jobColumns = `
	j.id, j.title, j.description, j.min_age, j.max_age, j.min_yoe,
	j.skills, j.requirements, j.specifications, j.educations,
	c.id, c.name`

func scanJob(row interface{ Scan(...interface{}) error }) (*models.Job, error) {
	j := &models.Job{}
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.MinAge, &j.MaxAge, &j.MinYOE,
		pq.Array(&j.Skills), pq.Array(&j.Requirements), pq.Array(&j.Specifications),
		&j.Educations, &j.Category.ID, &j.Category.Name,
	)
	if err != nil {
		return nil, err
	}
	return j, nil
}

// ListJobs returns all jobs with their category expanded inline
func (r *Repository) ListJobs(ctx context.Context) ([]models.Job, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN categories c ON c.id = j.category_id
		ORDER BY c.name ASC, j.title ASC`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

// FindJobByID retrieves a job with its category expanded inline
func (r *Repository) FindJobByID(ctx context.Context, id int64) (*models.Job, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN categories c ON c.id = j.category_id
		WHERE j.id = $1`
	j, err := scanJob(db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return j, nil
}

// CreateJob creates a new job referencing an existing category
func (r *Repository) CreateJob(ctx context.Context, job *models.Job) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}
	query := `
		INSERT INTO jobs (title, description, min_age, max_age, min_yoe,
			skills, requirements, specifications, educations, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err = db.QueryRowContext(ctx, query,
		job.Title, job.Description, job.MinAge, job.MaxAge, job.MinYOE,
		pq.Array(job.Skills), pq.Array(job.Requirements), pq.Array(job.Specifications),
		job.Educations, job.Category.ID,
	).Scan(&job.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("title %s: %w", job.Title, errs.ErrConflict)
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: unknown category", errs.ErrValidation)
	}
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// UpdateJob overwrites all fields of an existing job
func (r *Repository) UpdateJob(ctx context.Context, job *models.Job) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}
	query := `
		UPDATE jobs
		SET title = $2, description = $3, min_age = $4, max_age = $5, min_yoe = $6,
			skills = $7, requirements = $8, specifications = $9, educations = $10,
			category_id = $11
		WHERE id = $1`
	res, err := db.ExecContext(ctx, query,
		job.ID, job.Title, job.Description, job.MinAge, job.MaxAge, job.MinYOE,
		pq.Array(job.Skills), pq.Array(job.Requirements), pq.Array(job.Specifications),
		job.Educations, job.Category.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("title %s: %w", job.Title, errs.ErrConflict)
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: unknown category", errs.ErrValidation)
	}
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// DeleteJob removes a job by id
func (r *Repository) DeleteJob(ctx context.Context, id int64) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
