package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"jobtrack/internal/errors"
	"jobtrack/internal/model"
	"jobtrack/internal/repository"
	"jobtrack/internal/sheets"
)

// ApplicationService handles job application tracking. Creates and deletes
// are mirrored to the spreadsheet after the local write; the mirror outcome
// comes back as a status string next to the primary result and never fails
// the operation.
type ApplicationService interface {
	Exists(ctx context.Context, userEmail, jobLink string) (bool, error)
	Create(ctx context.Context, app *model.JobApplication) (*model.JobApplication, string, error)
	ListForUser(ctx context.Context, userEmail string) ([]model.JobApplication, error)
	Update(ctx context.Context, id uint, app *model.JobApplication) error
	Delete(ctx context.Context, id uint) (string, error)
}

type applicationService struct {
	repo   repository.ApplicationRepository
	mirror sheets.Mirror
}

// NewApplicationService creates a new application service.
func NewApplicationService(repo repository.ApplicationRepository, mirror sheets.Mirror) ApplicationService {
	return &applicationService{
		repo:   repo,
		mirror: mirror,
	}
}

// Exists reports whether the user already tracks jobLink. Links are
// compared exactly as stored; case and whitespace differences count as
// different links.
func (s *applicationService) Exists(ctx context.Context, userEmail, jobLink string) (bool, error) {
	return s.repo.ExistsForUser(ctx, userEmail, jobLink)
}

// Create stores a new application and appends it to the spreadsheet
// mirror. A (user, job link) pair that is already tracked is rejected
// before anything is written. A failed append still leaves the create
// successful; the status string carries the mirror outcome either way.
func (s *applicationService) Create(ctx context.Context, app *model.JobApplication) (*model.JobApplication, string, error) {
	exists, err := s.repo.ExistsForUser(ctx, app.UserEmail, app.JobLink)
	if err != nil {
		return nil, "", fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, "", errors.ErrDuplicateApplication
	}

	app.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, "", fmt.Errorf("create application: %w", err)
	}

	syncStatus := s.mirror.Append(ctx, app)
	log.Printf("Google Sheets: %s", syncStatus)

	return app, syncStatus, nil
}

// ListForUser returns the user's applications, newest first.
func (s *applicationService) ListForUser(ctx context.Context, userEmail string) ([]model.JobApplication, error) {
	apps, err := s.repo.ListByUserEmail(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// Update rewrites the data fields of an application in place. The mirror
// is not told about updates, and an id that does not exist is not an
// error; both follow the store's blind-update behavior.
func (s *applicationService) Update(ctx context.Context, id uint, app *model.JobApplication) error {
	if err := s.repo.UpdateFields(ctx, id, app); err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	return nil
}

// Delete removes an application and its mirrored row. The sheet row is
// keyed by (user email, job link), which has to be read before the local
// delete destroys it.
func (s *applicationService) Delete(ctx context.Context, id uint) (string, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.ErrApplicationNotFound
		}
		return "", fmt.Errorf("find application: %w", err)
	}

	userEmail, jobLink := app.UserEmail, app.JobLink

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return "", fmt.Errorf("delete application: %w", err)
	}

	syncStatus := s.mirror.Delete(ctx, userEmail, jobLink)
	log.Printf("Google Sheets: %s", syncStatus)

	return syncStatus, nil
}
