package studyplan

import (
	"context"
	c "edumentor/internal/core/domain/common"
	e "edumentor/internal/core/domain/errors"
	"edumentor/internal/core/domain/studyplan"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const selectColumns = `id, owner_email, name, goal, duration_weeks, hours_per_day, topics, created_at`

type PgxPlanRepository struct {
	db *pgxpool.Pool
}

func NewPgxPlanRepository(db *pgxpool.Pool) *PgxPlanRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxPlanRepository{db: db}
}

func (r *PgxPlanRepository) Create(ctx context.Context, input studyplan.CreateInput) (p studyplan.Plan, err error) {
	var topics pgtype.JSONB
	if err = topics.Set(input.Topics); err != nil {
		return p, err
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO study_plans (owner_email, name, goal, duration_weeks, hours_per_day, topics, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+selectColumns,
		string(input.OwnerEmail),
		input.Name,
		input.Goal,
		input.DurationWeeks,
		input.HoursPerDay,
		topics,
		input.CreatedAt,
	)
	return scanPlan(row)
}

func (r *PgxPlanRepository) ListByOwner(ctx context.Context, owner c.Email) ([]studyplan.Plan, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+selectColumns+` FROM study_plans WHERE owner_email = $1 ORDER BY id`,
		string(owner),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]studyplan.Plan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func scanPlan(row pgx.Row) (p studyplan.Plan, err error) {
	var (
		id            int64
		ownerEmail    string
		name          string
		goal          string
		durationWeeks int32
		hoursPerDay   int32
		topics        pgtype.JSONB
		createdAt     time.Time
	)
	err = row.Scan(&id, &ownerEmail, &name, &goal, &durationWeeks, &hoursPerDay, &topics, &createdAt)
	if err != nil {
		return p, err
	}
	allocations := make([]studyplan.TopicAllocation, 0)
	if err = topics.AssignTo(&allocations); err != nil {
		return p, err
	}
	return studyplan.Plan{
		ID:            studyplan.ID(id),
		OwnerEmail:    c.Email(ownerEmail),
		Name:          name,
		Goal:          goal,
		DurationWeeks: int(durationWeeks),
		HoursPerDay:   int(hoursPerDay),
		Topics:        allocations,
		CreatedAt:     createdAt,
	}, nil
}
