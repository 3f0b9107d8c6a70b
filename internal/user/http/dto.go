package http

import (
	"strings"
	"time"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/request"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/user"
)

// ListUsersRequest defines query parameters for listing users.
type ListUsersRequest struct {
	request.ListParams
	Username   string `form:"username"`
	Email      string `form:"email"`
	Department string `form:"department"`
	IsActive   *bool  `form:"is_active"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=username email created_at"`
}

func (r *ListUsersRequest) Normalize() {
	r.SortOrder = strings.ToUpper(r.SortOrder)
}

// UserResponse is the shape of user data returned in API responses.
type UserResponse struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Department    string     `json:"department"`
	IsActive      bool       `json:"is_active"`
	IsSystemAdmin bool       `json:"is_system_admin"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLoginAt   *time.Time `json:"last_login_at"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Department:    u.Department,
		IsActive:      u.IsActive,
		IsSystemAdmin: u.IsSystemAdmin,
		CreatedAt:     u.CreatedAt,
		LastLoginAt:   u.LastLoginAt,
	}
}

func NewUserResponses(list []*user.User) []UserResponse {
	out := make([]UserResponse, len(list))
	for i, u := range list {
		out[i] = NewUserResponse(u)
	}
	return out
}

// RegisterRequest defines the payload for user registration.
type RegisterRequest struct {
	Username        string `json:"username" binding:"required,max=150"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name" binding:"max=30"`
	LastName        string `json:"last_name" binding:"max=30"`
	Department      string `json:"department" binding:"max=100"`
}

// LoginRequest defines the payload for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the token and a brief of the user.
type LoginResponse struct {
	Token      string `json:"token"`
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Department string `json:"department"`
}

// UpdateUserRequest defines fields allowed to be updated via PATCH.
// Use pointers to distinguish between "field not sent" and "field sent as false/empty".
type UpdateUserRequest struct {
	Username           *string `json:"username" binding:"omitempty,max=150"`
	Email              *string `json:"email" binding:"omitempty,email"`
	FirstName          *string `json:"first_name" binding:"omitempty,max=30"`
	LastName           *string `json:"last_name" binding:"omitempty,max=30"`
	Department         *string `json:"department" binding:"omitempty,max=100"`
	CurrentPassword    *string `json:"current_password"`
	NewPassword        *string `json:"new_password"`
	ConfirmNewPassword *string `json:"confirm_new_password"`
	IsActive           *bool   `json:"is_active"`
	IsSystemAdmin      *bool   `json:"is_system_admin"`
}

func (r UpdateUserRequest) ToService() user.UpdateRequest {
	return user.UpdateRequest{
		Username:           r.Username,
		Email:              r.Email,
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Department:         r.Department,
		CurrentPassword:    r.CurrentPassword,
		NewPassword:        r.NewPassword,
		ConfirmNewPassword: r.ConfirmNewPassword,
		IsActive:           r.IsActive,
		IsSystemAdmin:      r.IsSystemAdmin,
	}
}

type ByDepartmentRequest struct {
	Department string `form:"department"`
}
