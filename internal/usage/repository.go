package usage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/db"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/event"
)

type Repository interface {
	// Increment creates the pair's counter at 1 or adds 1 to it, atomically.
	Increment(ctx context.Context, departmentID, stadiumID string) (*Counter, error)
	GetByID(ctx context.Context, id string) (*Counter, error)
	List(ctx context.Context, filter Filter) ([]*Counter, error)
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

func selectCounters() squirrel.SelectBuilder {
	return psql.Select("u.id", "u.department_id", "d.name", "u.stadium_id", "st.name", "u.counter").
		From("public.usage_counters u").
		Join("public.departments d ON u.department_id = d.id").
		Join("public.stadiums st ON u.stadium_id = st.id")
}

func scanCounter(row pgx.Row) (*Counter, error) {
	var c Counter
	if err := row.Scan(&c.ID, &c.DepartmentID, &c.DepartmentName, &c.StadiumID, &c.StadiumName, &c.Count); err != nil {
		return nil, err
	}
	return &c, nil
}

// The upsert is a single statement, so concurrent increments of one pair
// serialize on the unique index and none are lost.
const incrementSQL = `
	INSERT INTO public.usage_counters (department_id, stadium_id, counter)
	VALUES ($1, $2, 1)
	ON CONFLICT (department_id, stadium_id)
	DO UPDATE SET counter = usage_counters.counter + 1
	RETURNING id`

func (r *pgxRepository) Increment(ctx context.Context, departmentID, stadiumID string) (*Counter, error) {
	var out *Counter
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var id string
		if err := tx.QueryRow(ctx, incrementSQL, departmentID, stadiumID).Scan(&id); err != nil {
			return mapWriteError(err)
		}

		c, err := getByID(ctx, tx, id)
		if err != nil {
			return err
		}

		evt, err := event.New("usage_counter", c.ID, event.TypeUsageIncremented, map[string]any{
			"id":            c.ID,
			"department_id": c.DepartmentID,
			"stadium_id":    c.StadiumID,
			"counter":       c.Count,
		})
		if err != nil {
			return err
		}
		if err := r.events.Insert(ctx, tx, evt); err != nil {
			return err
		}

		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Counter, error) {
	return getByID(ctx, r.pool, id)
}

func getByID(ctx context.Context, q db.DBTX, id string) (*Counter, error) {
	query, args, err := selectCounters().Where(squirrel.Eq{"u.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get usage counter query failed: %w", err)
	}

	c, err := scanCounter(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get usage counter failed: %w", err)
	}
	return c, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Counter, error) {
	query := selectCounters()
	if filter.DepartmentID != "" {
		query = query.Where(squirrel.Eq{"u.department_id": filter.DepartmentID})
	}
	if filter.StadiumID != "" {
		query = query.Where(squirrel.Eq{"u.stadium_id": filter.StadiumID})
	}
	query = query.OrderBy("d.name ASC", "st.name ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list usage counters query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list usage counters failed: %w", err)
	}
	defer rows.Close()

	var list []*Counter
	for rows.Next() {
		c, err := scanCounter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usage counter failed: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate usage counters failed: %w", err)
	}
	return list, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.usage_counters").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete usage counter query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete usage counter failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		switch pgErr.ConstraintName {
		case "usage_counters_department_id_fkey":
			return ErrDepartmentNotFound
		case "usage_counters_stadium_id_fkey":
			return ErrStadiumNotFound
		}
	}
	return fmt.Errorf("increment usage counter failed: %w", err)
}
