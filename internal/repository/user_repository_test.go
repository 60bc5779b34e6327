package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"jobtrack/internal/model"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := &model.User{Email: "a@x.com", PasswordHash: "hash"}
	assert.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	_, err = repo.FindByEmail(ctx, "missing@x.com")
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestUserRepository_EmailUnique(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, &model.User{Email: "a@x.com", PasswordHash: "hash1"}))
	assert.Error(t, repo.Create(ctx, &model.User{Email: "a@x.com", PasswordHash: "hash2"}))
}
