package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/vaughan-dsouza/shoply/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestFindByEmailFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStore(db)

	created := time.Now()
	mock.ExpectQuery(`SELECT id, name, email, phone, password_hash, gender, created_at`).
		WithArgs("user@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "password_hash", "gender", "created_at"}).
			AddRow(int64(1), "Test User", "user@example.com", "0123456789", "hash", "female", created))

	u, err := s.FindByEmail(context.Background(), "user@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, "hash", u.Password)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmailAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStore(db)

	mock.ExpectQuery(`SELECT id, name, email, phone, password_hash, gender, created_at`).
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	u, err := s.FindByEmail(context.Background(), "missing@example.com")
	require.NoError(t, err)
	require.Nil(t, u)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStore(db)

	created := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Test User", "user@example.com", "0123456789", "hash", "female").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created))

	u := &models.User{
		Name:     "Test User",
		Email:    "user@example.com",
		Phone:    "0123456789",
		Password: "hash",
		Gender:   "female",
	}
	require.NoError(t, s.Create(context.Background(), u))
	require.Equal(t, int64(7), u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStore(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := s.Create(context.Background(), &models.User{Email: "user@example.com"})
	require.ErrorIs(t, err, ErrDuplicateEmail)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveTouchesProfileColumnsOnly(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStore(db)

	// The expected statement names the full SET list: a password_hash
	// write here would fail the match.
	mock.ExpectExec(`UPDATE users\s+SET name=\$1, phone=\$2, gender=\$3\s+WHERE id=\$4`).
		WithArgs("Renamed", "0123456789", "female", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Save(context.Background(), &models.User{
		ID:       1,
		Name:     "Renamed",
		Phone:    "0123456789",
		Gender:   "female",
		Password: "hash",
	}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePassword(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStore(db)

	mock.ExpectExec(`UPDATE users SET password_hash=\$1 WHERE id=\$2`).
		WithArgs("newhash", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.UpdatePassword(context.Background(), 1, "newhash"))
	require.NoError(t, mock.ExpectationsWereMet())
}
