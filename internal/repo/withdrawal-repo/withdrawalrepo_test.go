package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_CreateWithdrawal(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	now := time.Now()

	t.Run("InsertsAndReturnsID", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO withdrawals (user_id, amount, phone_number, status)")).
			WithArgs(1, 1500.0, "0712345678", domain.WithdrawalPending).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(4, now))

		wd, err := repo.CreateWithdrawal(ctx, &domain.Withdrawal{
			UserID:      1,
			Amount:      1500,
			PhoneNumber: "0712345678",
			Status:      domain.WithdrawalPending,
		})
		assert.NoError(t, err)
		assert.Equal(t, 4, wd.ID)
		assert.Equal(t, now, wd.CreatedAt)
	})

	t.Run("DatabaseError", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO withdrawals")).
			WillReturnError(errors.New("insert failed"))

		wd, err := repo.CreateWithdrawal(ctx, &domain.Withdrawal{UserID: 1, Amount: 1500})
		assert.Error(t, err)
		assert.Nil(t, wd)
	})
}

func TestRepository_GetWithdrawalsByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "phone_number", "status", "created_at"}).
		AddRow(2, 1, 800.0, "0712345678", domain.WithdrawalPending, time.Now()).
		AddRow(1, 1, 500.0, "0712345678", domain.WithdrawalCompleted, time.Now().Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("FROM withdrawals")).
		WithArgs(1).
		WillReturnRows(rows)

	withdrawals, err := repo.GetWithdrawalsByUserID(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, withdrawals, 2)
	assert.Equal(t, domain.WithdrawalPending, withdrawals[0].Status)
	assert.Equal(t, 500.0, withdrawals[1].Amount)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("ReturnsWithdrawal", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(4).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "amount", "phone_number", "status", "created_at"}).
				AddRow(4, 1, 1500.0, "0712345678", domain.WithdrawalPending, time.Now()))

		wd, err := repo.GetByID(ctx, 4)
		assert.NoError(t, err)
		assert.Equal(t, 4, wd.ID)
		assert.Equal(t, 1500.0, wd.Amount)
	})

	t.Run("UnknownIDYieldsNil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		wd, err := repo.GetByID(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, wd)
	})

	t.Run("DatabaseError", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(99).
			WillReturnError(errors.New("connection lost"))

		wd, err := repo.GetByID(ctx, 99)
		assert.Error(t, err)
		assert.Nil(t, wd)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("PendingWithdrawalDecided", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status = 'pending'")).
			WithArgs(4, domain.WithdrawalCompleted).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.UpdateStatus(ctx, 4, domain.WithdrawalCompleted)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("AlreadyDecided", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status = 'pending'")).
			WithArgs(4, domain.WithdrawalRejected).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.UpdateStatus(ctx, 4, domain.WithdrawalRejected)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
