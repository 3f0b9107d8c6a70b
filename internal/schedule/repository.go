package schedule

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/db"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/event"
)

// Repository defines data access methods for schedules.
//
// CreateExclusive and UpdateExclusive serialize writers per (stadium, date)
// and fail with *ConflictError when an active schedule in scope overlaps.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Schedule, error)
	List(ctx context.Context, filter Filter) ([]*Schedule, error)
	ListActiveInScope(ctx context.Context, stadiumID string, date time.Time) ([]*Schedule, error)
	CreateExclusive(ctx context.Context, s *Schedule) error
	UpdateExclusive(ctx context.Context, s *Schedule) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool   *pgxpool.Pool
	events event.Recorder
}

func NewPgxRepository(pool *pgxpool.Pool, events event.Recorder) Repository {
	return &pgxRepository{pool: pool, events: events}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func selectSchedules() squirrel.SelectBuilder {
	return psql.Select(
		"s.id", "s.department_id", "d.name", "s.stadium_id", "st.name",
		"s.date", "s.start_time::text", "s.end_time::text",
		"s.is_active", "s.created_at", "s.updated_at",
	).
		From("public.schedules s").
		Join("public.departments d ON s.department_id = d.id").
		Join("public.stadiums st ON s.stadium_id = st.id")
}

// TIME columns are read as text and parsed into Clock.
func scanSchedule(row pgx.Row) (*Schedule, error) {
	var s Schedule
	var start, end string
	err := row.Scan(
		&s.ID, &s.DepartmentID, &s.DepartmentName, &s.StadiumID, &s.StadiumName,
		&s.Date, &start, &end,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if s.StartTime, err = ParseClock(start); err != nil {
		return nil, fmt.Errorf("invalid start_time %q: %w", start, err)
	}
	if s.EndTime, err = ParseClock(end); err != nil {
		return nil, fmt.Errorf("invalid end_time %q: %w", end, err)
	}
	return &s, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Schedule, error) {
	return getByID(ctx, r.pool, id)
}

func getByID(ctx context.Context, q db.DBTX, id string) (*Schedule, error) {
	query, args, err := selectSchedules().Where(squirrel.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get schedule query failed: %w", err)
	}

	s, err := scanSchedule(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get schedule failed: %w", err)
	}
	return s, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Schedule, error) {
	query := selectSchedules()

	if filter.Date != nil {
		query = query.Where(squirrel.Eq{"s.date": *filter.Date})
	}
	if filter.DepartmentID != "" {
		query = query.Where(squirrel.Eq{"s.department_id": filter.DepartmentID})
	}
	if filter.StadiumID != "" {
		query = query.Where(squirrel.Eq{"s.stadium_id": filter.StadiumID})
	}
	if filter.IsActive != nil {
		query = query.Where(squirrel.Eq{"s.is_active": *filter.IsActive})
	}
	query = query.OrderBy("s.date ASC", "s.start_time ASC", "s.id ASC")

	return queryAll(ctx, r.pool, query)
}

func (r *pgxRepository) ListActiveInScope(ctx context.Context, stadiumID string, date time.Time) ([]*Schedule, error) {
	return listActiveInScope(ctx, r.pool, stadiumID, date)
}

func listActiveInScope(ctx context.Context, q db.DBTX, stadiumID string, date time.Time) ([]*Schedule, error) {
	query := selectSchedules().
		Where(squirrel.Eq{"s.stadium_id": stadiumID, "s.date": date, "s.is_active": true}).
		OrderBy("s.start_time ASC")
	return queryAll(ctx, q, query)
}

func queryAll(ctx context.Context, q db.DBTX, query squirrel.SelectBuilder) ([]*Schedule, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list schedules query failed: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedules failed: %w", err)
	}
	defer rows.Close()

	var list []*Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule failed: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedules failed: %w", err)
	}
	return list, nil
}

// lockScopes takes transaction-scoped advisory locks in a fixed order so two
// writers moving schedules between the same scopes cannot deadlock.
func lockScopes(ctx context.Context, tx pgx.Tx, keys ...string) error {
	slices.Sort(keys)
	keys = slices.Compact(keys)
	for _, k := range keys {
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", k); err != nil {
			return fmt.Errorf("lock schedule scope failed: %w", err)
		}
	}
	return nil
}

func checkScope(ctx context.Context, tx pgx.Tx, s *Schedule) error {
	if !s.IsActive {
		return nil
	}
	scope, err := listActiveInScope(ctx, tx, s.StadiumID, s.Date)
	if err != nil {
		return err
	}
	if other := conflictWith(s.Interval(), scope, s.ID); other != nil {
		return &ConflictError{ScheduleID: other.ID}
	}
	return nil
}

func (r *pgxRepository) CreateExclusive(ctx context.Context, s *Schedule) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if err := lockScopes(ctx, tx, scopeKey(s.StadiumID, s.Date)); err != nil {
			return err
		}
		if err := checkScope(ctx, tx, s); err != nil {
			return err
		}

		query, args, err := psql.Insert("public.schedules").
			Columns("department_id", "stadium_id", "date", "start_time", "end_time", "is_active").
			Values(s.DepartmentID, s.StadiumID, s.Date, s.StartTime.Long(), s.EndTime.Long(), s.IsActive).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build create schedule query failed: %w", err)
		}

		var id string
		if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			return mapWriteError(err, "create schedule failed")
		}

		created, err := getByID(ctx, tx, id)
		if err != nil {
			return err
		}
		*s = *created

		return r.record(ctx, tx, s, event.TypeScheduleCreated)
	})
}

func (r *pgxRepository) UpdateExclusive(ctx context.Context, s *Schedule) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var oldStadium string
		var oldDate time.Time
		err := tx.QueryRow(ctx,
			"SELECT stadium_id, date FROM public.schedules WHERE id = $1 FOR UPDATE", s.ID,
		).Scan(&oldStadium, &oldDate)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("lock schedule failed: %w", err)
		}

		if err := lockScopes(ctx, tx, scopeKey(oldStadium, oldDate), scopeKey(s.StadiumID, s.Date)); err != nil {
			return err
		}
		if err := checkScope(ctx, tx, s); err != nil {
			return err
		}

		query, args, err := psql.Update("public.schedules").
			Set("department_id", s.DepartmentID).
			Set("stadium_id", s.StadiumID).
			Set("date", s.Date).
			Set("start_time", s.StartTime.Long()).
			Set("end_time", s.EndTime.Long()).
			Set("is_active", s.IsActive).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": s.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update schedule query failed: %w", err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return mapWriteError(err, "update schedule failed")
		}

		updated, err := getByID(ctx, tx, s.ID)
		if err != nil {
			return err
		}
		*s = *updated

		return r.record(ctx, tx, s, event.TypeScheduleUpdated)
	})
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		s, err := getByID(ctx, tx, id)
		if err != nil {
			return err
		}

		query, args, err := psql.Delete("public.schedules").Where(squirrel.Eq{"id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete schedule query failed: %w", err)
		}

		ct, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("delete schedule failed: %w", err)
		}
		if ct.RowsAffected() == 0 {
			return ErrNotFound
		}

		return r.record(ctx, tx, s, event.TypeScheduleDeleted)
	})
}

type eventPayload struct {
	ID           string `json:"id"`
	DepartmentID string `json:"department_id"`
	StadiumID    string `json:"stadium_id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	IsActive     bool   `json:"is_active"`
}

func (r *pgxRepository) record(ctx context.Context, tx pgx.Tx, s *Schedule, eventType string) error {
	evt, err := event.New("schedule", s.ID, eventType, eventPayload{
		ID:           s.ID,
		DepartmentID: s.DepartmentID,
		StadiumID:    s.StadiumID,
		Date:         s.Date.Format(DateLayout),
		StartTime:    s.StartTime.Long(),
		EndTime:      s.EndTime.Long(),
		IsActive:     s.IsActive,
	})
	if err != nil {
		return err
	}
	return r.events.Insert(ctx, tx, evt)
}

// mapWriteError translates constraint violations into domain errors.
func mapWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ExclusionViolation:
			return &ConflictError{}
		case pgerrcode.CheckViolation:
			return ErrInvalidTimeRange
		case pgerrcode.ForeignKeyViolation:
			switch pgErr.ConstraintName {
			case "schedules_department_id_fkey":
				return ErrDepartmentNotFound
			case "schedules_stadium_id_fkey":
				return ErrStadiumNotFound
			}
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
