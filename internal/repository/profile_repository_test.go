package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"jobtrack/internal/model"
)

func TestProfileRepository_FindCurrentByEmail(t *testing.T) {
	repo := NewProfileRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.FindCurrentByEmail(ctx, "a@x.com")
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	assert.NoError(t, repo.Create(ctx, &model.Profile{UserEmail: "a@x.com", FirstName: "Ada", City: "London"}))
	assert.NoError(t, repo.Create(ctx, &model.Profile{UserEmail: "b@x.com", FirstName: "Bob"}))
	assert.NoError(t, repo.Create(ctx, &model.Profile{UserEmail: "a@x.com", FirstName: "Ada", City: "Zurich"}))

	got, err := repo.FindCurrentByEmail(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "Zurich", got.City)
}

func TestProfileRepository_CreateKeepsHistory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, &model.Profile{UserEmail: "a@x.com", City: "London"}))
	assert.NoError(t, repo.Create(ctx, &model.Profile{UserEmail: "a@x.com", City: "Zurich"}))

	var count int64
	assert.NoError(t, db.Model(&model.Profile{}).Where("user_email = ?", "a@x.com").Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestProfileRepository_UpdateCurrent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	// No rows yet: a silent no-op, and still no rows afterwards.
	assert.NoError(t, repo.UpdateCurrent(ctx, "a@x.com", &model.Profile{City: "Zurich"}))
	_, err := repo.FindCurrentByEmail(ctx, "a@x.com")
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	older := &model.Profile{UserEmail: "a@x.com", City: "London", Skills: "go"}
	assert.NoError(t, repo.Create(ctx, older))
	latest := &model.Profile{UserEmail: "a@x.com", City: "Berlin", Skills: "go"}
	assert.NoError(t, repo.Create(ctx, latest))

	assert.NoError(t, repo.UpdateCurrent(ctx, "a@x.com", &model.Profile{
		UserEmail: "evil@x.com", // must be ignored
		City:      "Zurich",
		Skills:    "go, sql",
	}))

	// Only the latest row is rewritten; history below it stays intact.
	got, err := repo.FindCurrentByEmail(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, latest.ID, got.ID)
	assert.Equal(t, "Zurich", got.City)
	assert.Equal(t, "go, sql", got.Skills)
	assert.Equal(t, "a@x.com", got.UserEmail)

	var untouched model.Profile
	assert.NoError(t, db.First(&untouched, older.ID).Error)
	assert.Equal(t, "London", untouched.City)
}
