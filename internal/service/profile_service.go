package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"jobtrack/internal/cache"
	"jobtrack/internal/model"
	"jobtrack/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// ProfileService handles candidate profile operations. Saves append to an
// insert-only history; reads and updates address the latest row.
type ProfileService interface {
	Save(ctx context.Context, profile *model.Profile) error
	GetCurrent(ctx context.Context, email string) (*model.Profile, error)
	UpdateCurrent(ctx context.Context, email string, profile *model.Profile) error
}

type profileService struct {
	repo  repository.ProfileRepository
	cache *cache.Client
}

// NewProfileService creates a new profile service.
func NewProfileService(repo repository.ProfileRepository, cache *cache.Client) ProfileService {
	return &profileService{
		repo:  repo,
		cache: cache,
	}
}

func (s *profileService) cacheKey(email string) string {
	return fmt.Sprintf("profile:current:%s", email)
}

// Save appends a new profile snapshot for the given user.
func (s *profileService) Save(ctx context.Context, profile *model.Profile) error {
	profile.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, profile); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(profile.UserEmail))
	return nil
}

// GetCurrent retrieves the latest profile for email with caching. A user
// without a profile gets (nil, nil), not an error.
func (s *profileService) GetCurrent(ctx context.Context, email string) (*model.Profile, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(email)); data != nil {
		var cached model.Profile
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	profile, err := s.repo.FindCurrentByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	if payload, err := json.Marshal(profile); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(email), payload, profileCacheTTL)
	}

	return profile, nil
}

// UpdateCurrent rewrites the latest profile row in place. When the user
// has never saved a profile this is a silent no-op, matching the store's
// behavior.
func (s *profileService) UpdateCurrent(ctx context.Context, email string, profile *model.Profile) error {
	if err := s.repo.UpdateCurrent(ctx, email, profile); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(email))
	return nil
}
