package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffloop/identity/internal/pkg/apperr"
	"github.com/staffloop/identity/internal/pkg/database"
	"github.com/staffloop/identity/internal/pkg/models"
)

func setupUserRepo(t *testing.T) (*AuthRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "pgx")
	repo := NewAuthRepo(&models.Config{}, sqlxDB, &database.RedisClient{})
	return repo, mock
}

func sampleUser() *models.User {
	now := time.Now()
	return &models.User{
		ID:           "11111111-1111-1111-1111-111111111111",
		FirstName:    "Asha",
		LastName:     "Nair",
		Email:        "a@x.com",
		Mobile:       "9990001111",
		PasswordHash: "bcrypt-hash",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := setupUserRepo(t)
	user := sampleUser()

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateUser(context.Background(), user)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := setupUserRepo(t)
	user := sampleUser()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"})

	err := repo.CreateUser(context.Background(), user)
	assert.True(t, apperr.Is(err, apperr.CodeConflict))
}

func TestCreateUser_StorageError(t *testing.T) {
	repo, mock := setupUserRepo(t)
	user := sampleUser()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(assert.AnError)

	err := repo.CreateUser(context.Background(), user)
	assert.True(t, apperr.Is(err, apperr.CodeStorage))
}

func TestGetUserByID_Success(t *testing.T) {
	repo, mock := setupUserRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "first_name", "last_name", "date_of_birth", "email", "mobile",
		"avatar_url", "password_hash", "role_id", "institute_id", "is_active",
		"created_at", "updated_at",
	}).AddRow(
		"11111111-1111-1111-1111-111111111111", "Asha", "Nair", "", "a@x.com",
		"9990001111", "", "bcrypt-hash", "role-1", "inst-1", true, now, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("11111111-1111-1111-1111-111111111111").
		WillReturnRows(rows)

	user, err := repo.GetUserByID(context.Background(), "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "role-1", user.RoleID)
	assert.True(t, user.IsActive)
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock := setupUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetUserByID(context.Background(), "missing")
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestActiveAccountExists(t *testing.T) {
	repo, mock := setupUserRepo(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("a@x.com", "9990001111").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ActiveAccountExists(context.Background(), "a@x.com", "9990001111")
	require.NoError(t, err)
	assert.True(t, exists)
}
