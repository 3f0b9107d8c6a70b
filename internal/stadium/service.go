package stadium

import (
	"context"
	"strings"
)

// CreateRequest carries data to create a stadium.
type CreateRequest struct {
	Name     string
	Location string
	Capacity int
	IsActive *bool
}

// UpdateRequest carries data for partial updates.
type UpdateRequest struct {
	Name     *string
	Location *string
	Capacity *int
	IsActive *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Stadium, error)
	GetByID(ctx context.Context, id string) (*Stadium, error)
	List(ctx context.Context, filter Filter) ([]*Stadium, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Stadium, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validate(s *Stadium) error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrNameRequired
	}
	if s.Capacity < 0 {
		return ErrCapacityInvalid
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Stadium, error) {
	st := &Stadium{
		Name:     strings.TrimSpace(req.Name),
		Location: req.Location,
		Capacity: req.Capacity,
		IsActive: true,
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}
	if err := validate(st); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Stadium, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Stadium, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Stadium, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		st.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		st.Location = *req.Location
	}
	if req.Capacity != nil {
		st.Capacity = *req.Capacity
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}
	if err := validate(st); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
