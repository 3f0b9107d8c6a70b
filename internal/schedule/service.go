package schedule

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/department"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/stadium"
)

type CreateRequest struct {
	DepartmentID string
	StadiumID    string
	Date         time.Time
	StartTime    Clock
	EndTime      Clock
	IsActive     *bool
}

// UpdateRequest carries data for partial updates. Nil fields are left unchanged.
type UpdateRequest struct {
	DepartmentID *string
	StadiumID    *string
	Date         *time.Time
	StartTime    *Clock
	EndTime      *Clock
	IsActive     *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Schedule, error)
	GetByID(ctx context.Context, id string) (*Schedule, error)
	List(ctx context.Context, filter Filter) ([]*Schedule, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Schedule, error)
	Delete(ctx context.Context, id string) error
	// AvailableSlots returns the free windows of a stadium on date.
	// Bounds left unset in override come from the configured operating hours.
	AvailableSlots(ctx context.Context, stadiumID string, date time.Time, override HoursOverride) ([]Interval, error)
}

type service struct {
	repo        Repository
	cache       Cache
	depService  department.Service
	stadService stadium.Service
	hours       OperatingHours
}

func NewService(repo Repository, cache Cache, depService department.Service, stadService stadium.Service, hours OperatingHours) Service {
	if cache == nil {
		cache = NoopCache{}
	}
	return &service{
		repo:        repo,
		cache:       cache,
		depService:  depService,
		stadService: stadService,
		hours:       hours,
	}
}

func (s *service) ensureDepartment(ctx context.Context, id string) error {
	if _, err := s.depService.GetByID(ctx, id); err != nil {
		if errors.Is(err, department.ErrNotFound) {
			return ErrDepartmentNotFound
		}
		return err
	}
	return nil
}

func (s *service) ensureStadium(ctx context.Context, id string) error {
	if _, err := s.stadService.GetByID(ctx, id); err != nil {
		if errors.Is(err, stadium.ErrNotFound) {
			return ErrStadiumNotFound
		}
		return err
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Schedule, error) {
	// 1. Validate time range
	if !(Interval{Start: req.StartTime, End: req.EndTime}).Valid() {
		return nil, ErrInvalidTimeRange
	}

	// 2. Validate references
	if err := s.ensureDepartment(ctx, req.DepartmentID); err != nil {
		return nil, err
	}
	if err := s.ensureStadium(ctx, req.StadiumID); err != nil {
		return nil, err
	}

	// 3. Conflict check and insert run atomically in the repository
	sched := &Schedule{
		DepartmentID: req.DepartmentID,
		StadiumID:    req.StadiumID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		IsActive:     true,
	}
	if req.IsActive != nil {
		sched.IsActive = *req.IsActive
	}

	if err := s.repo.CreateExclusive(ctx, sched); err != nil {
		return nil, err
	}

	s.invalidate(ctx, sched.StadiumID, sched.Date)
	return sched, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Schedule, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Schedule, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Schedule, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	if req.DepartmentID != nil {
		next.DepartmentID = *req.DepartmentID
	}
	if req.StadiumID != nil {
		next.StadiumID = *req.StadiumID
	}
	if req.Date != nil {
		next.Date = *req.Date
	}
	if req.StartTime != nil {
		next.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		next.EndTime = *req.EndTime
	}
	if req.IsActive != nil {
		next.IsActive = *req.IsActive
	}

	if !next.Interval().Valid() {
		return nil, ErrInvalidTimeRange
	}
	if next.DepartmentID != current.DepartmentID {
		if err := s.ensureDepartment(ctx, next.DepartmentID); err != nil {
			return nil, err
		}
	}
	if next.StadiumID != current.StadiumID {
		if err := s.ensureStadium(ctx, next.StadiumID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateExclusive(ctx, &next); err != nil {
		return nil, err
	}

	s.invalidate(ctx, current.StadiumID, current.Date)
	if next.StadiumID != current.StadiumID || !next.Date.Equal(current.Date) {
		s.invalidate(ctx, next.StadiumID, next.Date)
	}
	return &next, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, current.StadiumID, current.Date)
	return nil
}

func (s *service) AvailableSlots(ctx context.Context, stadiumID string, date time.Time, override HoursOverride) ([]Interval, error) {
	if stadiumID == "" {
		return nil, ErrSlotParamsRequired
	}

	h := override.Apply(s.hours)
	if err := h.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureStadium(ctx, stadiumID); err != nil {
		return nil, err
	}

	busy, err := s.activeIntervals(ctx, stadiumID, date)
	if err != nil {
		return nil, err
	}
	return AvailableSlots(h, busy), nil
}

// activeIntervals reads through the cache. The generation is read before the
// database so a snapshot taken before a concurrent write is stored under a
// generation that write has already retired. Cache failures fall back to the database.
func (s *service) activeIntervals(ctx context.Context, stadiumID string, date time.Time) ([]Interval, error) {
	gen, err := s.cache.Generation(ctx, stadiumID, date)
	if err != nil {
		slog.WarnContext(ctx, "availability cache generation read failed", "stadium_id", stadiumID, "err", err)
		return s.loadActive(ctx, stadiumID, date)
	}

	cached, ok, err := s.cache.Get(ctx, stadiumID, date, gen)
	if err != nil {
		slog.WarnContext(ctx, "availability cache read failed", "stadium_id", stadiumID, "err", err)
	}
	if ok {
		return cached, nil
	}

	busy, err := s.loadActive(ctx, stadiumID, date)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, stadiumID, date, gen, busy); err != nil {
		slog.WarnContext(ctx, "availability cache write failed", "stadium_id", stadiumID, "err", err)
	}
	return busy, nil
}

func (s *service) loadActive(ctx context.Context, stadiumID string, date time.Time) ([]Interval, error) {
	list, err := s.repo.ListActiveInScope(ctx, stadiumID, date)
	if err != nil {
		return nil, err
	}
	busy := make([]Interval, len(list))
	for i, sc := range list {
		busy[i] = sc.Interval()
	}
	return busy, nil
}

const invalidateAttempts = 3

func (s *service) invalidate(ctx context.Context, stadiumID string, date time.Time) {
	var err error
	for range invalidateAttempts {
		if err = s.cache.Invalidate(ctx, stadiumID, date); err == nil {
			return
		}
	}
	slog.ErrorContext(ctx, "availability cache invalidation failed", "stadium_id", stadiumID, "attempts", invalidateAttempts, "err", err)
}
