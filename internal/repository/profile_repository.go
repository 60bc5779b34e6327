package repository

import (
	"context"

	"gorm.io/gorm"

	"jobtrack/internal/model"
)

// ProfileRepository defines profile persistence operations. Profiles are
// an insert-only history; reads and updates always target the row with the
// highest id for the given email.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	FindCurrentByEmail(ctx context.Context, email string) (*model.Profile, error)
	UpdateCurrent(ctx context.Context, email string, profile *model.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository builds a GORM-backed repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// FindCurrentByEmail returns the latest profile row for email, or
// gorm.ErrRecordNotFound when the user never saved one.
func (r *profileRepository) FindCurrentByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("id DESC").
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateCurrent rewrites the data columns of the latest profile row for
// email. The owning email and created_at are never touched. When the user
// has no profile rows the call is a silent no-op.
func (r *profileRepository) UpdateCurrent(ctx context.Context, email string, profile *model.Profile) error {
	var latest model.Profile
	err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("id DESC").
		First(&latest).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	fields := map[string]interface{}{
		"first_name":          profile.FirstName,
		"last_name":           profile.LastName,
		"address":             profile.Address,
		"city":                profile.City,
		"mobile_number":       profile.MobileNumber,
		"github_url":          profile.GithubURL,
		"job_position":        profile.JobPosition,
		"experience_months":   profile.ExperienceMonths,
		"skills":              profile.Skills,
		"preferred_locations": profile.PreferredLocations,
	}
	return r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", latest.ID).
		Updates(fields).Error
}
