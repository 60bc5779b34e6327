package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"jobtrack/internal/model"
)

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindCurrentByEmail(ctx context.Context, email string) (*model.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateCurrent(ctx context.Context, email string, profile *model.Profile) error {
	args := m.Called(ctx, email, profile)
	return args.Error(0)
}

func TestProfileService_GetCurrent(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		setupMock func(*MockProfileRepository)
		want      *model.Profile
	}{
		{
			name:  "latest profile returned",
			email: "a@x.com",
			setupMock: func(m *MockProfileRepository) {
				m.On("FindCurrentByEmail", mock.Anything, "a@x.com").Return(&model.Profile{
					ID: 3, UserEmail: "a@x.com", FirstName: "Ada",
				}, nil)
			},
			want: &model.Profile{ID: 3, UserEmail: "a@x.com", FirstName: "Ada"},
		},
		{
			name:  "no profile is empty, not an error",
			email: "new@x.com",
			setupMock: func(m *MockProfileRepository) {
				m.On("FindCurrentByEmail", mock.Anything, "new@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProfileRepository)
			tt.setupMock(mockRepo)

			service := NewProfileService(mockRepo, nil)
			got, err := service.GetCurrent(context.Background(), tt.email)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProfileService_Save(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(nil)

	service := NewProfileService(mockRepo, nil)
	profile := &model.Profile{UserEmail: "a@x.com", FirstName: "Ada"}

	assert.NoError(t, service.Save(context.Background(), profile))
	assert.False(t, profile.CreatedAt.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestProfileService_UpdateCurrent(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	profile := &model.Profile{FirstName: "Ada"}
	mockRepo.On("UpdateCurrent", mock.Anything, "a@x.com", profile).Return(nil)

	service := NewProfileService(mockRepo, nil)

	assert.NoError(t, service.UpdateCurrent(context.Background(), "a@x.com", profile))
	mockRepo.AssertExpectations(t)
}
