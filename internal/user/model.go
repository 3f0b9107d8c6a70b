package user

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/apperror"
)

var (
	ErrNotFound                 = apperror.New(http.StatusNotFound, "user not found")
	ErrUsernameAlreadyUsed      = apperror.New(http.StatusConflict, "username already used")
	ErrEmailAlreadyUsed         = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials       = apperror.NewKind(http.StatusBadRequest, apperror.KindUnauthorized, "Invalid username or password")
	ErrUsernameRequired         = apperror.Validation("username is required")
	ErrEmailRequired            = apperror.Validation("email is required")
	ErrPasswordTooShort         = apperror.Validation("password must be at least 8 characters")
	ErrPasswordMismatch         = apperror.Validation("Passwords do not match.")
	ErrPasswordFieldsRequired   = apperror.Validation("Current password and password confirmation are required.")
	ErrCurrentPasswordIncorrect = apperror.Validation("Current password is incorrect.")
	ErrNewPasswordMismatch      = apperror.Validation("New passwords do not match.")
	ErrDepartmentRequired       = apperror.Validation("Department parameter is required")
	ErrPermissionDenied         = apperror.New(http.StatusForbidden, "permission denied")
)

// User is an account. Department is free text and is not linked to the departments table.
type User struct {
	ID            string
	Username      string
	Email         string
	PasswordHash  string
	FirstName     string
	LastName      string
	Department    string
	IsActive      bool
	IsSystemAdmin bool
	CreatedAt     time.Time
	LastLoginAt   *time.Time
}

// Filter defines filter options for listing users.
type Filter struct {
	Username   string
	Email      string
	Department string // case-insensitive substring
	IsActive   *bool

	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
