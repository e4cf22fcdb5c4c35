package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestUserRepoCreate_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("alice", "alice@example.com", sqlmock.AnyArg(), "Admin").
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := repo.Create(context.Background(), "alice", "Alice@Example.com", "pw", "Admin", bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoCreate_DuplicateIdentity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'alice' for key 'uq_users_username'"))

	_, err := repo.Create(context.Background(), "alice", "alice@example.com", "pw", "User", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrIdentityExists)
}

func TestUserRepoCreate_UnexpectedError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Create(context.Background(), "alice", "alice@example.com", "pw", "User", bcrypt.MinCost)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrIdentityExists)
}

func TestUserRepoGetByUsername_RolePreserved(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "created_at"}).
		AddRow(3, "alice", "alice@example.com", "$2a$04$hash", "Admin", created)

	mock.ExpectQuery("SELECT id,username,email,password_hash,role,created_at FROM users WHERE username=").
		WithArgs("alice").
		WillReturnRows(rows)

	u, err := repo.GetByUsername(context.Background(), " alice ")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), u.ID)
	assert.Equal(t, "Admin", u.Role)
	assert.Equal(t, created, u.CreatedAt)
}

func TestUserRepoGetByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery("SELECT id,username,email,password_hash,role,created_at FROM users WHERE username=").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserRepoGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "created_at"}).
		AddRow(9, "bob", "bob@example.com", "hash", "User", time.Now())

	mock.ExpectQuery("SELECT id,username,email,password_hash,role,created_at FROM users WHERE id=").
		WithArgs(uint64(9)).
		WillReturnRows(rows)

	u, err := repo.GetByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
}
