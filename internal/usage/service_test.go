package usage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/mocks"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/usage"
)

func TestService_IncrementRequiresPair(t *testing.T) {
	repo := &mocks.UsageRepository{}
	svc := usage.NewService(repo)

	for _, pair := range [][2]string{{"", "s1"}, {"d1", ""}, {"  ", "  "}} {
		_, err := svc.Increment(context.Background(), pair[0], pair[1])
		require.ErrorIs(t, err, usage.ErrPairRequired)
	}
	repo.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_IncrementTrimsIDs(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UsageRepository{}
	repo.On("Increment", ctx, "d1", "s1").Return(&usage.Counter{ID: "c1", DepartmentID: "d1", StadiumID: "s1", Count: 3}, nil)

	got, err := usage.NewService(repo).Increment(ctx, " d1 ", "s1\n")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Count)
	repo.AssertExpectations(t)
}

func TestService_IncrementUnknownStadium(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UsageRepository{}
	repo.On("Increment", ctx, "d1", "s1").Return(nil, usage.ErrStadiumNotFound)

	_, err := usage.NewService(repo).Increment(ctx, "d1", "s1")
	require.ErrorIs(t, err, usage.ErrStadiumNotFound)
}

func TestService_ListPassesFilter(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UsageRepository{}
	filter := usage.Filter{DepartmentID: "d1"}
	repo.On("List", ctx, filter).Return([]*usage.Counter{{ID: "c1"}, {ID: "c2"}}, nil)

	list, err := usage.NewService(repo).List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
