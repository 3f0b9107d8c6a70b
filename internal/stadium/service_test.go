package stadium_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/mocks"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/stadium"
)

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.StadiumRepository{}
	repo.On("Create", ctx, mock.MatchedBy(func(s *stadium.Stadium) bool {
		return s.Name == "North Field" && s.IsActive && s.Capacity == 500
	})).Return(nil)

	got, err := stadium.NewService(repo).Create(ctx, stadium.CreateRequest{
		Name:     "  North Field ",
		Location: "Campus North",
		Capacity: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, "North Field", got.Name)
	repo.AssertExpectations(t)
}

func TestService_CreateValidation(t *testing.T) {
	repo := &mocks.StadiumRepository{}
	svc := stadium.NewService(repo)

	_, err := svc.Create(context.Background(), stadium.CreateRequest{Name: "   "})
	require.ErrorIs(t, err, stadium.ErrNameRequired)

	_, err = svc.Create(context.Background(), stadium.CreateRequest{Name: "Gym", Capacity: -1})
	require.ErrorIs(t, err, stadium.ErrCapacityInvalid)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.StadiumRepository{}
	repo.On("GetByID", ctx, "s1").Return(&stadium.Stadium{ID: "s1", Name: "Gym", Location: "East", Capacity: 100, IsActive: true}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	inactive := false
	got, err := stadium.NewService(repo).Update(ctx, "s1", stadium.UpdateRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, "Gym", got.Name)
	assert.Equal(t, 100, got.Capacity)
}

func TestService_UpdateNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.StadiumRepository{}
	repo.On("GetByID", ctx, "s1").Return(nil, stadium.ErrNotFound)

	_, err := stadium.NewService(repo).Update(ctx, "s1", stadium.UpdateRequest{})
	require.ErrorIs(t, err, stadium.ErrNotFound)
}
