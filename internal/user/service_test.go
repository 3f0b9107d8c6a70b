package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/mocks"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/user"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newService() (user.Service, *mocks.UserRepository, *mocks.PasswordHasher) {
	repo := &mocks.UserRepository{}
	hasher := &mocks.PasswordHasher{}
	return user.NewService(repo, hasher), repo, hasher
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, repo, hasher := newService()
	hasher.On("Hash", "password123").Return("hashed", nil)
	repo.On("Create", ctx, mock.MatchedBy(func(u *user.User) bool {
		return u.Username == "alice" && u.Email == "alice@example.com" && u.PasswordHash == "hashed" && u.IsActive
	})).Return(nil)

	u, err := svc.Register(ctx, user.RegisterRequest{
		Username:        " alice ",
		Email:           "Alice@Example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Department:      "Athletics",
	})
	require.NoError(t, err)
	assert.Equal(t, "Athletics", u.Department)
	assert.False(t, u.IsSystemAdmin)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  user.RegisterRequest
		want error
	}{
		{"no username", user.RegisterRequest{Email: "a@b.c", Password: "password123", ConfirmPassword: "password123"}, user.ErrUsernameRequired},
		{"no email", user.RegisterRequest{Username: "a", Password: "password123", ConfirmPassword: "password123"}, user.ErrEmailRequired},
		{"mismatch", user.RegisterRequest{Username: "a", Email: "a@b.c", Password: "password123", ConfirmPassword: "password124"}, user.ErrPasswordMismatch},
		{"too short", user.RegisterRequest{Username: "a", Email: "a@b.c", Password: "short", ConfirmPassword: "short"}, user.ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService()
			_, err := svc.Register(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.want)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, repo, hasher := newService()
	hasher.On("Hash", mock.Anything).Return("hashed", nil)
	repo.On("Create", ctx, mock.Anything).Return(user.ErrUsernameAlreadyUsed)

	_, err := svc.Register(ctx, user.RegisterRequest{Username: "a", Email: "a@b.c", Password: "password123", ConfirmPassword: "password123"})
	require.ErrorIs(t, err, user.ErrUsernameAlreadyUsed)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, repo, hasher := newService()
	repo.On("GetByUsername", ctx, "alice").Return(&user.User{ID: "u1", Username: "alice", PasswordHash: "hashed", IsActive: true}, nil)
	hasher.On("Compare", "hashed", "password123").Return(nil)
	repo.On("UpdateLastLogin", ctx, "u1", mock.AnythingOfType("time.Time")).Return(nil)

	u, err := svc.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	require.NotNil(t, u.LastLoginAt)
	assert.WithinDuration(t, time.Now(), *u.LastLoginAt, time.Minute)
}

func TestLogin_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		svc, repo, _ := newService()
		repo.On("GetByUsername", ctx, "ghost").Return(nil, user.ErrNotFound)
		_, err := svc.Login(ctx, "ghost", "password123")
		require.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo, hasher := newService()
		repo.On("GetByUsername", ctx, "alice").Return(&user.User{ID: "u1", PasswordHash: "hashed", IsActive: true}, nil)
		hasher.On("Compare", "hashed", "nope").Return(errors.New("mismatch"))
		_, err := svc.Login(ctx, "alice", "nope")
		require.ErrorIs(t, err, user.ErrInvalidCredentials)
		repo.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("inactive", func(t *testing.T) {
		svc, repo, hasher := newService()
		repo.On("GetByUsername", ctx, "alice").Return(&user.User{ID: "u1", PasswordHash: "hashed", IsActive: false}, nil)
		_, err := svc.Login(ctx, "alice", "password123")
		require.ErrorIs(t, err, user.ErrInvalidCredentials)
		hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
	})

	t.Run("empty input", func(t *testing.T) {
		svc, _, _ := newService()
		_, err := svc.Login(ctx, "", "")
		require.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

func TestListByDepartment(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newService()

	_, err := svc.ListByDepartment(ctx, " ")
	require.ErrorIs(t, err, user.ErrDepartmentRequired)

	repo.On("List", ctx, user.Filter{Department: "ath", SortBy: "username", SortOrder: "ASC"}).
		Return([]*user.User{{ID: "u1"}, {ID: "u2"}}, 2, nil)
	list, err := svc.ListByDepartment(ctx, "ath")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUpdate_SelfProfile(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newService()
	repo.On("GetByID", ctx, "u1").Return(&user.User{ID: "u1", Username: "alice", Email: "a@b.c", IsActive: true}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	u, err := svc.Update(ctx, "u1", "u1", user.UpdateRequest{FirstName: strPtr(" Alice "), Email: strPtr("NEW@B.C")})
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.FirstName)
	assert.Equal(t, "new@b.c", u.Email)
}

func TestUpdate_Permissions(t *testing.T) {
	ctx := context.Background()

	t.Run("non-admin editing another user", func(t *testing.T) {
		svc, repo, _ := newService()
		repo.On("GetByID", ctx, "u1").Return(&user.User{ID: "u1", IsActive: true}, nil)
		_, err := svc.Update(ctx, "u1", "u2", user.UpdateRequest{FirstName: strPtr("x")})
		require.ErrorIs(t, err, user.ErrPermissionDenied)
	})

	t.Run("non-admin granting themselves admin", func(t *testing.T) {
		svc, repo, _ := newService()
		repo.On("GetByID", ctx, "u1").Return(&user.User{ID: "u1", IsActive: true}, nil)
		_, err := svc.Update(ctx, "u1", "u1", user.UpdateRequest{IsSystemAdmin: boolPtr(true)})
		require.ErrorIs(t, err, user.ErrPermissionDenied)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("admin deactivating another user", func(t *testing.T) {
		svc, repo, _ := newService()
		repo.On("GetByID", ctx, "admin").Return(&user.User{ID: "admin", IsActive: true, IsSystemAdmin: true}, nil)
		repo.On("GetByID", ctx, "u2").Return(&user.User{ID: "u2", IsActive: true}, nil)
		repo.On("Update", ctx, mock.Anything).Return(nil)

		u, err := svc.Update(ctx, "admin", "u2", user.UpdateRequest{IsActive: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, u.IsActive)
	})
}

func TestUpdate_ChangePassword(t *testing.T) {
	ctx := context.Background()
	current := func(repo *mocks.UserRepository) {
		repo.On("GetByID", ctx, "u1").Return(&user.User{ID: "u1", PasswordHash: "old-hash", IsActive: true}, nil)
	}

	t.Run("success", func(t *testing.T) {
		svc, repo, hasher := newService()
		current(repo)
		hasher.On("Compare", "old-hash", "oldpassword").Return(nil)
		hasher.On("Hash", "newpassword").Return("new-hash", nil)
		repo.On("Update", ctx, mock.MatchedBy(func(u *user.User) bool { return u.PasswordHash == "new-hash" })).Return(nil)

		_, err := svc.Update(ctx, "u1", "u1", user.UpdateRequest{
			CurrentPassword:    strPtr("oldpassword"),
			NewPassword:        strPtr("newpassword"),
			ConfirmNewPassword: strPtr("newpassword"),
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, repo, _ := newService()
		current(repo)
		_, err := svc.Update(ctx, "u1", "u1", user.UpdateRequest{NewPassword: strPtr("newpassword")})
		require.ErrorIs(t, err, user.ErrPasswordFieldsRequired)
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, repo, hasher := newService()
		current(repo)
		hasher.On("Compare", "old-hash", "guess").Return(errors.New("mismatch"))
		_, err := svc.Update(ctx, "u1", "u1", user.UpdateRequest{
			CurrentPassword:    strPtr("guess"),
			NewPassword:        strPtr("newpassword"),
			ConfirmNewPassword: strPtr("newpassword"),
		})
		require.ErrorIs(t, err, user.ErrCurrentPasswordIncorrect)
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		svc, repo, hasher := newService()
		current(repo)
		hasher.On("Compare", "old-hash", "oldpassword").Return(nil)
		_, err := svc.Update(ctx, "u1", "u1", user.UpdateRequest{
			CurrentPassword:    strPtr("oldpassword"),
			NewPassword:        strPtr("newpassword"),
			ConfirmNewPassword: strPtr("newpassw0rd"),
		})
		require.ErrorIs(t, err, user.ErrNewPasswordMismatch)
	})
}

func TestIsSystemAdmin(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newService()
	repo.On("GetByID", ctx, "a").Return(&user.User{IsActive: true, IsSystemAdmin: true}, nil)
	repo.On("GetByID", ctx, "b").Return(&user.User{IsActive: false, IsSystemAdmin: true}, nil)
	repo.On("GetByID", ctx, "c").Return(nil, user.ErrNotFound)

	ok, err := svc.IsSystemAdmin(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsSystemAdmin(ctx, "b")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.IsSystemAdmin(ctx, "c")
	require.ErrorIs(t, err, user.ErrNotFound)
}
