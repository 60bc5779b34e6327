package repository

import (
	"context"

	"gorm.io/gorm"

	"jobtrack/internal/model"
)

// ApplicationRepository defines job application persistence operations.
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.JobApplication) error
	ExistsForUser(ctx context.Context, userEmail, jobLink string) (bool, error)
	ListByUserEmail(ctx context.Context, userEmail string) ([]model.JobApplication, error)
	FindByID(ctx context.Context, id uint) (*model.JobApplication, error)
	UpdateFields(ctx context.Context, id uint, app *model.JobApplication) error
	DeleteByID(ctx context.Context, id uint) error
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository builds a GORM-backed repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *model.JobApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

// ExistsForUser reports whether the user already tracks jobLink. The match
// is exact string equality on both columns, no normalization.
func (r *applicationRepository) ExistsForUser(ctx context.Context, userEmail, jobLink string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.JobApplication{}).
		Where("user_email = ? AND job_link = ?", userEmail, jobLink).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUserEmail returns the user's applications, newest first.
func (r *applicationRepository) ListByUserEmail(ctx context.Context, userEmail string) ([]model.JobApplication, error) {
	var apps []model.JobApplication
	if err := r.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("id DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) FindByID(ctx context.Context, id uint) (*model.JobApplication, error) {
	var app model.JobApplication
	if err := r.db.WithContext(ctx).First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateFields rewrites the data columns of the row with the given id.
// user_email and created_at are never touched, and updating an id that
// does not exist is a silent no-op.
func (r *applicationRepository) UpdateFields(ctx context.Context, id uint, app *model.JobApplication) error {
	fields := map[string]interface{}{
		"job_link":        app.JobLink,
		"company_name":    app.CompanyName,
		"job_role":        app.JobRole,
		"job_location":    app.JobLocation,
		"status":          app.Status,
		"recruiter_name":  app.RecruiterName,
		"recruiter_email": app.RecruiterEmail,
		"recruiter_phone": app.RecruiterPhone,
		"comments":        app.Comments,
	}
	return r.db.WithContext(ctx).Model(&model.JobApplication{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// DeleteByID removes the row permanently.
func (r *applicationRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.JobApplication{}, id).Error
}
