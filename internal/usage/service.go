package usage

import (
	"context"
	"strings"
)

type Service interface {
	Increment(ctx context.Context, departmentID, stadiumID string) (*Counter, error)
	GetByID(ctx context.Context, id string) (*Counter, error)
	List(ctx context.Context, filter Filter) ([]*Counter, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Increment(ctx context.Context, departmentID, stadiumID string) (*Counter, error) {
	departmentID = strings.TrimSpace(departmentID)
	stadiumID = strings.TrimSpace(stadiumID)
	if departmentID == "" || stadiumID == "" {
		return nil, ErrPairRequired
	}
	return s.repo.Increment(ctx, departmentID, stadiumID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Counter, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Counter, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
