package reminder

import (
	"context"
	"database/sql"
	c "edumentor/internal/core/domain/common"
	e "edumentor/internal/core/domain/errors"
	"edumentor/internal/core/domain/reminder"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const selectColumns = `id, owner_email, trigger_at, message, delivered, delivered_at, last_error, attempts, created_at`

type PgxEntryRepository struct {
	db *pgxpool.Pool
}

func NewPgxEntryRepository(db *pgxpool.Pool) *PgxEntryRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxEntryRepository{db: db}
}

func (r *PgxEntryRepository) Create(ctx context.Context, input reminder.CreateInput) (entry reminder.Entry, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO reminder_entries (owner_email, trigger_at, message, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+selectColumns,
		string(input.OwnerEmail),
		input.At.String(),
		input.Message,
		input.CreatedAt,
	)
	return scanEntry(row)
}

func (r *PgxEntryRepository) ListByOwner(ctx context.Context, owner c.Email) ([]reminder.Entry, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+selectColumns+` FROM reminder_entries WHERE owner_email = $1 ORDER BY id`,
		string(owner),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *PgxEntryRepository) ListPending(ctx context.Context) ([]reminder.Entry, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+selectColumns+` FROM reminder_entries WHERE NOT delivered ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *PgxEntryRepository) MarkDelivered(
	ctx context.Context,
	input reminder.MarkDeliveredInput,
) (entry reminder.Entry, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE reminder_entries
		 SET delivered = TRUE,
		     delivered_at = $2,
		     last_error = COALESCE($3, last_error),
		     attempts = attempts + 1
		 WHERE id = $1 AND NOT delivered
		 RETURNING `+selectColumns,
		int64(input.ID),
		input.At,
		encodeOptionalString(input.Error),
	)
	entry, err = scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entry, r.missingOrDelivered(ctx, input.ID)
	}
	return entry, err
}

func (r *PgxEntryRepository) MarkFailed(ctx context.Context, id reminder.ID, errText string) (entry reminder.Entry, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE reminder_entries
		 SET last_error = $2, attempts = attempts + 1
		 WHERE id = $1
		 RETURNING `+selectColumns,
		int64(id),
		errText,
	)
	entry, err = scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entry, reminder.ErrEntryDoesNotExist
	}
	return entry, err
}

// missingOrDelivered disambiguates an empty MarkDelivered update: the row
// either never existed or has already been consumed.
func (r *PgxEntryRepository) missingOrDelivered(ctx context.Context, id reminder.ID) error {
	var delivered bool
	err := r.db.QueryRow(
		ctx,
		`SELECT delivered FROM reminder_entries WHERE id = $1`,
		int64(id),
	).Scan(&delivered)
	if errors.Is(err, pgx.ErrNoRows) {
		return reminder.ErrEntryDoesNotExist
	}
	if err != nil {
		return err
	}
	if delivered {
		return reminder.ErrAlreadyDelivered
	}
	return reminder.ErrEntryDoesNotExist
}

func encodeOptionalString(v c.Optional[string]) sql.NullString {
	return sql.NullString{String: v.Value, Valid: v.IsPresent}
}

func scanEntries(rows pgx.Rows) ([]reminder.Entry, error) {
	entries := make([]reminder.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanEntry(row pgx.Row) (entry reminder.Entry, err error) {
	var (
		id          int64
		ownerEmail  string
		triggerAt   string
		message     string
		delivered   bool
		deliveredAt sql.NullTime
		lastError   sql.NullString
		attempts    int32
		createdAt   time.Time
	)
	err = row.Scan(
		&id, &ownerEmail, &triggerAt, &message,
		&delivered, &deliveredAt, &lastError, &attempts, &createdAt,
	)
	if err != nil {
		return entry, err
	}
	at, err := reminder.ParseTimeOfDay(triggerAt)
	if err != nil {
		return entry, err
	}
	return reminder.Entry{
		ID:          reminder.ID(id),
		OwnerEmail:  c.Email(ownerEmail),
		At:          at,
		Message:     message,
		Delivered:   delivered,
		DeliveredAt: c.NewOptional(deliveredAt.Time, deliveredAt.Valid),
		LastError:   c.NewOptional(lastError.String, lastError.Valid),
		Attempts:    uint(attempts),
		CreatedAt:   createdAt,
	}, nil
}
