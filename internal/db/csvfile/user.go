// Package csvfile keeps user credentials in a plain CSV file. It is meant
// for single-node setups without PostgreSQL; sessions and reminders still
// need a real database.
package csvfile

import (
	"context"
	c "edumentor/internal/core/domain/common"
	"edumentor/internal/core/domain/user"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

var header = []string{"email", "password_hash", "created_at"}

// UserRepository implements user.UserRepository over a CSV file.
// The whole file is rewritten on every Create, guarded by a mutex,
// so concurrent sign-ups never interleave writes.
type UserRepository struct {
	mu   sync.Mutex
	path string
}

func NewUserRepository(path string) *UserRepository {
	return &UserRepository{path: path}
}

func (r *UserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.readAll()
	if err != nil {
		return u, err
	}
	for _, existing := range users {
		if existing.Email == input.Email {
			return u, user.ErrEmailAlreadyExists
		}
	}
	u = user.User{
		ID:           user.ID(len(users) + 1),
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	users = append(users, u)
	if err := r.writeAll(users); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.readAll()
	if err != nil {
		return u, err
	}
	for _, existing := range users {
		if existing.ID == id {
			return existing, nil
		}
	}
	return u, user.ErrUserDoesNotExist
}

func (r *UserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.readAll()
	if err != nil {
		return u, err
	}
	for _, existing := range users {
		if existing.Email == email {
			return existing, nil
		}
	}
	return u, user.ErrUserDoesNotExist
}

// readAll loads every record. A missing file is an empty store, any other
// I/O or parse problem is reported as user.ErrStoreUnavailable so callers
// can tell infrastructure failures apart from lookup misses.
func (r *UserRepository) readAll() ([]user.User, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", user.ErrStoreUnavailable, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrStoreUnavailable, err)
	}
	users := make([]user.User, 0, len(records))
	for ix, record := range records {
		if ix == 0 && len(record) > 0 && record[0] == header[0] {
			continue
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("%w: malformed record on line %d", user.ErrStoreUnavailable, ix+1)
		}
		createdAt, err := time.Parse(time.RFC3339, record[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", user.ErrStoreUnavailable, err)
		}
		users = append(users, user.User{
			ID:           user.ID(len(users) + 1),
			Email:        c.Email(record[0]),
			PasswordHash: user.PasswordHash(record[1]),
			CreatedAt:    createdAt,
		})
	}
	return users, nil
}

func (r *UserRepository) writeAll(users []user.User) error {
	tmp := r.path + ".tmp." + strconv.Itoa(os.Getpid())
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: %v", user.ErrStoreUnavailable, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", user.ErrStoreUnavailable, err)
	}
	for _, u := range users {
		record := []string{
			string(u.Email),
			string(u.PasswordHash),
			u.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("%w: %v", user.ErrStoreUnavailable, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", user.ErrStoreUnavailable, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", user.ErrStoreUnavailable, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("%w: %v", user.ErrStoreUnavailable, err)
	}
	return nil
}
