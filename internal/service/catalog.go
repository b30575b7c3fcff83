package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/techforing/jobboard/internal/errs"
	"github.com/techforing/jobboard/internal/models"
)

// CatalogRepository provides persistence for categories and jobs.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error

	ListJobs(ctx context.Context) ([]models.Job, error)
	FindJobByID(ctx context.Context, id int64) (*models.Job, error)
	CreateJob(ctx context.Context, job *models.Job) error
	UpdateJob(ctx context.Context, job *models.Job) error
	DeleteJob(ctx context.Context, id int64) error
}

// CatalogService handles category and job operations.
type CatalogService struct {
	repo CatalogRepository
	log  *logrus.Logger
}

// NewCatalogService initializes the catalog service
func NewCatalogService(repo CatalogRepository, log *logrus.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

// JobInput carries job fields from a request. Nil fields were not provided,
// which only matters for partial updates. The three list fields arrive as
// comma-separated text and are normalized before storage.
type JobInput struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	MinAge         *int    `json:"min_age"`
	MaxAge         *int    `json:"max_age"`
	MinYOE         *int    `json:"min_yoe"`
	Skills         *string `json:"skills"`
	Requirements   *string `json:"requirements"`
	Specifications *string `json:"specifications"`
	Educations     *string `json:"educations"`
	Category       *string `json:"category"`
}

// ListCategories returns all categories sorted by name ascending
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.ListCategories(ctx)
}

// CreateCategory creates a category, rejecting names that already exist
// under any casing.
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: category name is required", errs.ErrValidation)
	}
	if _, err := s.repo.FindCategoryByName(ctx, name); err == nil {
		return nil, fmt.Errorf("category %s: %w", name, errs.ErrConflict)
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	category := &models.Category{Name: name}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	s.log.Infof("Category created: %s", category.Name)
	return category, nil
}

// FindOrCreateCategory returns the category matching name case-insensitively,
// creating it with the name as typed when no match exists.
//
// Two concurrent calls with differently-cased spellings of a new name can
// both pass the lookup and insert twice; the storage unique index only stops
// exact duplicates. Inherited behavior, kept as is.
func (s *CatalogService) FindOrCreateCategory(ctx context.Context, name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: category name is required", errs.ErrValidation)
	}
	category, err := s.repo.FindCategoryByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	category = &models.Category{Name: name}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	s.log.Infof("Category created: %s", category.Name)
	return category, nil
}

// ListJobs returns all jobs with their category expanded inline
func (s *CatalogService) ListJobs(ctx context.Context) ([]models.Job, error) {
	return s.repo.ListJobs(ctx)
}

// GetJob retrieves a single job by id
func (s *CatalogService) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	return s.repo.FindJobByID(ctx, id)
}

// CreateJob validates the input, resolves the category and stores the job
func (s *CatalogService) CreateJob(ctx context.Context, in JobInput) (*models.Job, error) {
	job, err := s.buildJob(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateJob(ctx, job); err != nil {
		return nil, err
	}
	s.log.Infof("Job created: %s", job.Title)
	return job, nil
}

// ReplaceJob fully overwrites an existing job, re-validating every field
func (s *CatalogService) ReplaceJob(ctx context.Context, id int64, in JobInput) (*models.Job, error) {
	job, err := s.buildJob(ctx, in)
	if err != nil {
		return nil, err
	}
	job.ID = id
	if err := s.repo.UpdateJob(ctx, job); err != nil {
		return nil, err
	}
	s.log.Infof("Job replaced: %s", job.Title)
	return job, nil
}

// PatchJob merges the provided fields into an existing job; only fields
// present in the input are validated and changed.
func (s *CatalogService) PatchJob(ctx context.Context, id int64, in JobInput) (*models.Job, error) {
	job, err := s.repo.FindJobByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.mergeJob(ctx, job, in); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateJob(ctx, job); err != nil {
		return nil, err
	}
	s.log.Infof("Job updated: %s", job.Title)
	return job, nil
}

// DeleteJob removes a job by id
func (s *CatalogService) DeleteJob(ctx context.Context, id int64) error {
	if err := s.repo.DeleteJob(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Job deleted: %d", id)
	return nil
}

// buildJob validates a full set of fields and resolves the category reference.
func (s *CatalogService) buildJob(ctx context.Context, in JobInput) (*models.Job, error) {
	for name, v := range map[string]*string{
		"title":       in.Title,
		"description": in.Description,
		"educations":  in.Educations,
		"category":    in.Category,
	} {
		if v == nil || strings.TrimSpace(*v) == "" {
			return nil, fmt.Errorf("%w: %s is required", errs.ErrValidation, name)
		}
	}
	for name, v := range map[string]*int{
		"min_age": in.MinAge,
		"max_age": in.MaxAge,
		"min_yoe": in.MinYOE,
	} {
		if v == nil {
			return nil, fmt.Errorf("%w: %s is required", errs.ErrValidation, name)
		}
		if *v < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative", errs.ErrValidation, name)
		}
	}

	category, err := s.FindOrCreateCategory(ctx, *in.Category)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:       strings.TrimSpace(*in.Title),
		Description: *in.Description,
		MinAge:      *in.MinAge,
		MaxAge:      *in.MaxAge,
		MinYOE:      *in.MinYOE,
		Educations:  *in.Educations,
		Category:    *category,
	}
	job.Skills = splitList(valueOr(in.Skills))
	job.Requirements = splitList(valueOr(in.Requirements))
	job.Specifications = splitList(valueOr(in.Specifications))
	return job, nil
}

// mergeJob applies only the provided fields onto an existing job.
func (s *CatalogService) mergeJob(ctx context.Context, job *models.Job, in JobInput) error {
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return fmt.Errorf("%w: title is required", errs.ErrValidation)
		}
		job.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return fmt.Errorf("%w: description is required", errs.ErrValidation)
		}
		job.Description = *in.Description
	}
	if in.Educations != nil {
		if strings.TrimSpace(*in.Educations) == "" {
			return fmt.Errorf("%w: educations is required", errs.ErrValidation)
		}
		job.Educations = *in.Educations
	}
	for name, f := range map[string]struct {
		in  *int
		dst *int
	}{
		"min_age": {in.MinAge, &job.MinAge},
		"max_age": {in.MaxAge, &job.MaxAge},
		"min_yoe": {in.MinYOE, &job.MinYOE},
	} {
		if f.in == nil {
			continue
		}
		if *f.in < 0 {
			return fmt.Errorf("%w: %s must not be negative", errs.ErrValidation, name)
		}
		*f.dst = *f.in
	}
	if in.Skills != nil {
		job.Skills = splitList(*in.Skills)
	}
	if in.Requirements != nil {
		job.Requirements = splitList(*in.Requirements)
	}
	if in.Specifications != nil {
		job.Specifications = splitList(*in.Specifications)
	}
	if in.Category != nil {
		category, err := s.FindOrCreateCategory(ctx, *in.Category)
		if err != nil {
			return err
		}
		job.Category = *category
	}
	return nil
}

// splitList turns comma-separated text into a trimmed list without empty entries.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func valueOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
