package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/auth"
)

type RegisterRequest struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	Department      string
}

// UpdateRequest carries a partial update. A password change needs all three
// password fields. IsActive and IsSystemAdmin are admin-only.
type UpdateRequest struct {
	Username           *string
	Email              *string
	FirstName          *string
	LastName           *string
	Department         *string
	CurrentPassword    *string
	NewPassword        *string
	ConfirmNewPassword *string
	IsActive           *bool
	IsSystemAdmin      *bool
}

// Service defines business logic related to users.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, username, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int, error)
	ListByDepartment(ctx context.Context, department string) ([]*User, error)
	// Update applies req to user id on behalf of actorID.
	Update(ctx context.Context, actorID, id string, req UpdateRequest) (*User, error)
	Delete(ctx context.Context, id string) error
	IsSystemAdmin(ctx context.Context, id string) (bool, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
	now    func() time.Time

	minPasswordLength int
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		now:               time.Now,
		minPasswordLength: 8,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(req.Password) < s.minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Department:   strings.TrimSpace(req.Department),
		IsActive:     true,
	}

	// Uniqueness is enforced by the database and mapped in the repository.
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user by username: %w", err)
	}

	// Inactive accounts get the same answer as a wrong password.
	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, u.ID, now); err != nil {
		slog.WarnContext(ctx, "failed to record last login", "user_id", u.ID, "err", err)
	} else {
		u.LastLoginAt = &now
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ListByDepartment(ctx context.Context, department string) ([]*User, error) {
	department = strings.TrimSpace(department)
	if department == "" {
		return nil, ErrDepartmentRequired
	}
	users, _, err := s.repo.List(ctx, Filter{Department: department, SortBy: "username", SortOrder: "ASC"})
	return users, err
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateRequest) (*User, error) {
	isAdmin := false
	if actorID != id || req.IsActive != nil || req.IsSystemAdmin != nil {
		var err error
		isAdmin, err = s.IsSystemAdmin(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if !isAdmin {
			return nil, ErrPermissionDenied
		}
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		if u.Username = strings.TrimSpace(*req.Username); u.Username == "" {
			return nil, ErrUsernameRequired
		}
	}
	if req.Email != nil {
		if u.Email = normalizeEmail(*req.Email); u.Email == "" {
			return nil, ErrEmailRequired
		}
	}
	if req.FirstName != nil {
		u.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		u.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Department != nil {
		u.Department = strings.TrimSpace(*req.Department)
	}
	if isAdmin {
		if req.IsActive != nil {
			u.IsActive = *req.IsActive
		}
		if req.IsSystemAdmin != nil {
			u.IsSystemAdmin = *req.IsSystemAdmin
		}
	}

	if req.NewPassword != nil {
		if err := s.changePassword(u, req); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) changePassword(u *User, req UpdateRequest) error {
	if req.CurrentPassword == nil || req.ConfirmNewPassword == nil {
		return ErrPasswordFieldsRequired
	}
	if err := s.hasher.Compare(u.PasswordHash, *req.CurrentPassword); err != nil {
		return ErrCurrentPasswordIncorrect
	}
	if *req.NewPassword != *req.ConfirmNewPassword {
		return ErrNewPasswordMismatch
	}
	if len(*req.NewPassword) < s.minPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(*req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = hash
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) IsSystemAdmin(ctx context.Context, id string) (bool, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return u.IsActive && u.IsSystemAdmin, nil
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
