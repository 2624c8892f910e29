package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/vaughan-dsouza/shoply/internal/models"
)

const pgUniqueViolation = "23505"

// UserStore is the user persistence boundary the auth flow depends on.
// Save never touches the password hash; UpdatePassword is the only write
// path for it, so profile updates can never re-trigger hashing.
type UserStore interface {
	// FindByEmail returns (nil, nil) when no user has the email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Save(ctx context.Context, u *models.User) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
}

type SQLUserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *SQLUserStore {
	return &SQLUserStore{db: db}
}

func (s *SQLUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User

	err := s.db.GetContext(ctx, &u, `
		SELECT id, name, email, phone, password_hash, gender, created_at
		FROM users
		WHERE email=$1
	`, email)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *SQLUserStore) Create(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (name, email, phone, password_hash, gender)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := s.db.QueryRowxContext(ctx, query, u.Name, u.Email, u.Phone, u.Password, u.Gender).
		Scan(&u.ID, &u.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateEmail
	}

	return err
}

// Save persists profile fields only. The password column is deliberately
// excluded; see UpdatePassword.
func (s *SQLUserStore) Save(ctx context.Context, u *models.User) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET name=$1, phone=$2, gender=$3
		WHERE id=$4
	`, u.Name, u.Phone, u.Gender, u.ID)
	return err
}

func (s *SQLUserStore) UpdatePassword(ctx context.Context, id int64, hash string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE users SET password_hash=$1 WHERE id=$2
	`, hash, id)
	return err
}
