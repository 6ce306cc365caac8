package services_test

import (
	"context"
	"testing"

	"vogue/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVisitRepository is a mock implementation of repositories.VisitRepository
type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) Ensure(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVisitRepository) Increment(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestVisitService(t *testing.T) {
	mockRepo := new(MockVisitRepository)
	service := services.NewVisitService(mockRepo)

	mockRepo.On("Ensure", ctx).Return(nil).Once()
	mockRepo.On("Increment", ctx).Return(int64(42), nil).Once()

	assert.NoError(t, service.Init(ctx))
	count, err := service.TrackVisit(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), count)
	mockRepo.AssertExpectations(t)
}
