package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/accountkit/user-service/internal/domain"
)

const uniqueViolation = "23505"

// UserRepo persists accounts in Postgres. Emails are kept unique by a
// unique index; a violation at insert maps to the conflict error.
// All operations are single statements, so the row write is the only
// consistency boundary for concurrent updates.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userCols = "id, name, email, password_hash, current_token, created_at, updated_at"

func scanUserRow(row *sql.Row) (userRow, error) {
	var ur userRow
	err := row.Scan(
		&ur.ID,
		&ur.Name,
		&ur.Email,
		&ur.PasswordHash,
		&ur.CurrentToken,
		&ur.CreatedAt,
		&ur.UpdatedAt,
	)
	return ur, err
}

func toDomainUser(ur userRow) domain.User {
	return domain.User{
		ID:           ur.ID,
		Name:         ur.Name,
		Email:        ur.Email,
		PasswordHash: ur.PasswordHash,
		CurrentToken: ur.CurrentToken,
	}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}

	const q = `
SELECT ` + userCols + `
FROM users
WHERE email = $1
LIMIT 1;
`
	ur, err := scanUserRow(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT ` + userCols + `
FROM users
WHERE id = $1
LIMIT 1;
`
	ur, err := scanUserRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	const q = `
INSERT INTO users (id, name, email, password_hash, current_token, created_at, updated_at)
VALUES ($1, $2, $3, $4, '', now(), now())
RETURNING ` + userCols + `;
`
	ur, err := scanUserRow(r.db.QueryRowContext(ctx, q, u.ID, u.Name, u.Email, u.PasswordHash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.User{}, domain.ErrEmailAlreadyExists()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

// UpdateFields merges non-nil fields in a single UPDATE. Email
// uniqueness is deliberately not re-checked beyond what the index
// enforces at write time.
func (r *UserRepo) UpdateFields(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	const q = `
UPDATE users
SET name       = COALESCE($2, name),
    email      = COALESCE($3, email),
    updated_at = now()
WHERE id = $1
RETURNING ` + userCols + `;
`
	ur, err := scanUserRow(r.db.QueryRowContext(ctx, q, id, upd.Name, upd.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.User{}, domain.ErrEmailAlreadyExists()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) UpdateToken(ctx context.Context, id, token string) error {
	return r.setToken(ctx, id, token)
}

func (r *UserRepo) ClearToken(ctx context.Context, id string) error {
	return r.setToken(ctx, id, "")
}

func (r *UserRepo) setToken(ctx context.Context, id, token string) error {
	const q = `
UPDATE users
SET current_token = $2,
    updated_at    = now()
WHERE id = $1;
`
	res, err := r.db.ExecContext(ctx, q, id, token)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	if n == 0 {
		return domain.ErrUserNotFound()
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM users WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	if n == 0 {
		return domain.ErrUserNotFound()
	}
	return nil
}
