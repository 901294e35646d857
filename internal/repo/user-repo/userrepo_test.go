package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("ReturnsUser", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, password_hash FROM users WHERE login = $1")).
			WithArgs("0712345678").
			WillReturnRows(pgxmock.NewRows([]string{"id", "login", "password_hash"}).AddRow(1, "0712345678", "hash"))

		user, err := repo.FindByLogin(ctx, "0712345678")
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "0712345678", user.Login)
	})

	t.Run("UnknownLoginYieldsNil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, password_hash FROM users WHERE login = $1")).
			WithArgs("0700000000").
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.FindByLogin(ctx, "0700000000")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("DatabaseError", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, password_hash FROM users WHERE login = $1")).
			WithArgs("0712345678").
			WillReturnError(errors.New("connection lost"))

		user, err := repo.FindByLogin(ctx, "0712345678")
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("InsertsAndReturnsID", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login, password_hash)")).
			WithArgs("0712345678", "hash").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))

		user, err := repo.Create(ctx, &domain.User{Login: "0712345678", PasswordHash: "hash"})
		assert.NoError(t, err)
		assert.Equal(t, 5, user.ID)
	})

	t.Run("DuplicateLogin", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login, password_hash)")).
			WithArgs("0712345678", "hash").
			WillReturnError(errors.New("unique violation"))

		user, err := repo.Create(ctx, &domain.User{Login: "0712345678", PasswordHash: "hash"})
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_UpdatePassword(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET password_hash = $1 WHERE id = $2")).
		WithArgs("newhash", 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdatePassword(ctx, 1, "newhash"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AssignRole(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role")).
		WithArgs(1, domain.RoleAdmin).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.AssignRole(ctx, 1, domain.RoleAdmin))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindRole(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("ReturnsStoredRole", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT role FROM user_roles WHERE user_id = $1")).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows([]string{"role"}).AddRow(domain.RoleAdmin))

		role, err := repo.FindRole(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, role)
	})

	t.Run("MissingRowDefaultsToUser", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT role FROM user_roles WHERE user_id = $1")).
			WithArgs(2).
			WillReturnError(pgx.ErrNoRows)

		role, err := repo.FindRole(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleUser, role)
	})
}
