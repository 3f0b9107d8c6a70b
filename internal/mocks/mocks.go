package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/department"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/schedule"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/stadium"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/usage"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/user"
)

// StadiumRepository is a mock for stadium.Repository.
type StadiumRepository struct {
	mock.Mock
}

func (m *StadiumRepository) Create(ctx context.Context, s *stadium.Stadium) error {
	return m.Called(ctx, s).Error(0)
}

func (m *StadiumRepository) GetByID(ctx context.Context, id string) (*stadium.Stadium, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*stadium.Stadium); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StadiumRepository) List(ctx context.Context, filter stadium.Filter) ([]*stadium.Stadium, int, error) {
	args := m.Called(ctx, filter)
	if list, ok := args.Get(0).([]*stadium.Stadium); ok {
		return list, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *StadiumRepository) Update(ctx context.Context, s *stadium.Stadium) error {
	return m.Called(ctx, s).Error(0)
}

func (m *StadiumRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// StadiumService is a mock for stadium.Service.
type StadiumService struct {
	mock.Mock
}

func (m *StadiumService) Create(ctx context.Context, req stadium.CreateRequest) (*stadium.Stadium, error) {
	args := m.Called(ctx, req)
	if s, ok := args.Get(0).(*stadium.Stadium); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StadiumService) GetByID(ctx context.Context, id string) (*stadium.Stadium, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*stadium.Stadium); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StadiumService) List(ctx context.Context, filter stadium.Filter) ([]*stadium.Stadium, int, error) {
	args := m.Called(ctx, filter)
	if list, ok := args.Get(0).([]*stadium.Stadium); ok {
		return list, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *StadiumService) Update(ctx context.Context, id string, req stadium.UpdateRequest) (*stadium.Stadium, error) {
	args := m.Called(ctx, id, req)
	if s, ok := args.Get(0).(*stadium.Stadium); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StadiumService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// DepartmentRepository is a mock for department.Repository.
type DepartmentRepository struct {
	mock.Mock
}

func (m *DepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	return m.Called(ctx, d).Error(0)
}

func (m *DepartmentRepository) GetByID(ctx context.Context, id string) (*department.Department, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*department.Department); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DepartmentRepository) List(ctx context.Context, filter department.Filter) ([]*department.Department, int, error) {
	args := m.Called(ctx, filter)
	if list, ok := args.Get(0).([]*department.Department); ok {
		return list, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *DepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	return m.Called(ctx, d).Error(0)
}

func (m *DepartmentRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// DepartmentService is a mock for department.Service.
type DepartmentService struct {
	mock.Mock
}

func (m *DepartmentService) Create(ctx context.Context, name string) (*department.Department, error) {
	args := m.Called(ctx, name)
	if d, ok := args.Get(0).(*department.Department); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DepartmentService) GetByID(ctx context.Context, id string) (*department.Department, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*department.Department); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DepartmentService) List(ctx context.Context, filter department.Filter) ([]*department.Department, int, error) {
	args := m.Called(ctx, filter)
	if list, ok := args.Get(0).([]*department.Department); ok {
		return list, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *DepartmentService) Update(ctx context.Context, id string, name *string) (*department.Department, error) {
	args := m.Called(ctx, id, name)
	if d, ok := args.Get(0).(*department.Department); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DepartmentService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// ScheduleRepository is a mock for schedule.Repository.
type ScheduleRepository struct {
	mock.Mock
}

func (m *ScheduleRepository) GetByID(ctx context.Context, id string) (*schedule.Schedule, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*schedule.Schedule); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScheduleRepository) List(ctx context.Context, filter schedule.Filter) ([]*schedule.Schedule, error) {
	args := m.Called(ctx, filter)
	if list, ok := args.Get(0).([]*schedule.Schedule); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScheduleRepository) ListActiveInScope(ctx context.Context, stadiumID string, date time.Time) ([]*schedule.Schedule, error) {
	args := m.Called(ctx, stadiumID, date)
	if list, ok := args.Get(0).([]*schedule.Schedule); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScheduleRepository) CreateExclusive(ctx context.Context, s *schedule.Schedule) error {
	return m.Called(ctx, s).Error(0)
}

func (m *ScheduleRepository) UpdateExclusive(ctx context.Context, s *schedule.Schedule) error {
	return m.Called(ctx, s).Error(0)
}

func (m *ScheduleRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// ScheduleService is a mock for schedule.Service.
type ScheduleService struct {
	mock.Mock
}

func (m *ScheduleService) Create(ctx context.Context, req schedule.CreateRequest) (*schedule.Schedule, error) {
	args := m.Called(ctx, req)
	if s, ok := args.Get(0).(*schedule.Schedule); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScheduleService) GetByID(ctx context.Context, id string) (*schedule.Schedule, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*schedule.Schedule); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScheduleService) List(ctx context.Context, filter schedule.Filter) ([]*schedule.Schedule, error) {
	args := m.Called(ctx, filter)
	if list, ok := args.Get(0).([]*schedule.Schedule); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScheduleService) Update(ctx context.Context, id string, req schedule.UpdateRequest) (*schedule.Schedule, error) {
	args := m.Called(ctx, id, req)
	if s, ok := args.Get(0).(*schedule.Schedule); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScheduleService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ScheduleService) AvailableSlots(ctx context.Context, stadiumID string, date time.Time, override schedule.HoursOverride) ([]schedule.Interval, error) {
	args := m.Called(ctx, stadiumID, date, override)
	if list, ok := args.Get(0).([]schedule.Interval); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ScheduleCache is a mock for schedule.Cache.
type ScheduleCache struct {
	mock.Mock
}

func (m *ScheduleCache) Generation(ctx context.Context, stadiumID string, date time.Time) (int64, error) {
	args := m.Called(ctx, stadiumID, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ScheduleCache) Get(ctx context.Context, stadiumID string, date time.Time, gen int64) ([]schedule.Interval, bool, error) {
	args := m.Called(ctx, stadiumID, date, gen)
	if list, ok := args.Get(0).([]schedule.Interval); ok {
		return list, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *ScheduleCache) Set(ctx context.Context, stadiumID string, date time.Time, gen int64, intervals []schedule.Interval) error {
	return m.Called(ctx, stadiumID, date, gen, intervals).Error(0)
}

func (m *ScheduleCache) Invalidate(ctx context.Context, stadiumID string, date time.Time) error {
	return m.Called(ctx, stadiumID, date).Error(0)
}

// UsageRepository is a mock for usage.Repository.
type UsageRepository struct {
	mock.Mock
}

func (m *UsageRepository) Increment(ctx context.Context, departmentID, stadiumID string) (*usage.Counter, error) {
	args := m.Called(ctx, departmentID, stadiumID)
	if c, ok := args.Get(0).(*usage.Counter); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UsageRepository) GetByID(ctx context.Context, id string) (*usage.Counter, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*usage.Counter); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UsageRepository) List(ctx context.Context, filter usage.Filter) ([]*usage.Counter, error) {
	args := m.Called(ctx, filter)
	if list, ok := args.Get(0).([]*usage.Counter); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UsageRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// UsageService is a mock for usage.Service.
type UsageService struct {
	mock.Mock
}

func (m *UsageService) Increment(ctx context.Context, departmentID, stadiumID string) (*usage.Counter, error) {
	args := m.Called(ctx, departmentID, stadiumID)
	if c, ok := args.Get(0).(*usage.Counter); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UsageService) GetByID(ctx context.Context, id string) (*usage.Counter, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*usage.Counter); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UsageService) List(ctx context.Context, filter usage.Filter) ([]*usage.Counter, error) {
	args := m.Called(ctx, filter)
	if list, ok := args.Get(0).([]*usage.Counter); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UsageService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// UserRepository is a mock for user.Repository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	return m.Called(ctx, id, t).Error(0)
}

func (m *UserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int, error) {
	args := m.Called(ctx, filter)
	if list, ok := args.Get(0).([]*user.User); ok {
		return list, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *UserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// UserService is a mock for user.Service.
type UserService struct {
	mock.Mock
}

func (m *UserService) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	args := m.Called(ctx, req)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserService) Login(ctx context.Context, username, password string) (*user.User, error) {
	args := m.Called(ctx, username, password)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserService) GetByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserService) List(ctx context.Context, filter user.Filter) ([]*user.User, int, error) {
	args := m.Called(ctx, filter)
	if list, ok := args.Get(0).([]*user.User); ok {
		return list, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *UserService) ListByDepartment(ctx context.Context, department string) ([]*user.User, error) {
	args := m.Called(ctx, department)
	if list, ok := args.Get(0).([]*user.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserService) Update(ctx context.Context, actorID, id string, req user.UpdateRequest) (*user.User, error) {
	args := m.Called(ctx, actorID, id, req)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserService) IsSystemAdmin(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// PasswordHasher is a mock for auth.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Compare(hash, plain string) error {
	return m.Called(hash, plain).Error(0)
}
