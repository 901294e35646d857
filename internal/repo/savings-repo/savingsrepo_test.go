package savingsrepo

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

func TestRepository_CreateDeposit(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	now := time.Now()

	t.Run("InsertsAndReturnsID", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO savings_deposits (user_id, amount, mpesa_message, transaction_code, verified)`)).
			WithArgs(1, 500.0, "QGH7TY45KL Confirmed.", "QGH7TY45KL", false).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))

		deposit, err := repo.CreateDeposit(ctx, &domain.SavingsDeposit{
			UserID:          1,
			Amount:          500,
			MpesaMessage:    "QGH7TY45KL Confirmed.",
			TransactionCode: "QGH7TY45KL",
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, deposit.ID)
		assert.Equal(t, now, deposit.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO savings_deposits`)).
			WithArgs(1, 500.0, "msg", "CODE", false).
			WillReturnError(errors.New("insert failed"))

		deposit, err := repo.CreateDeposit(ctx, &domain.SavingsDeposit{
			UserID: 1, Amount: 500, MpesaMessage: "msg", TransactionCode: "CODE",
		})
		assert.Error(t, err)
		assert.Nil(t, deposit)
	})
}

func TestRepository_MarkVerifiedByID(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("FirstCallVerifies", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND verified = FALSE`)).
			WithArgs(12).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "amount"}).AddRow(3, 750.0))

		userID, amount, ok, err := repo.MarkVerifiedByID(ctx, 12)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 3, userID)
		assert.Equal(t, 750.0, amount)
	})

	t.Run("SecondCallFindsNothing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND verified = FALSE`)).
			WithArgs(12).
			WillReturnError(pgx.ErrNoRows)

		_, _, ok, err := repo.MarkVerifiedByID(ctx, 12)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_MarkVerifiedByCode(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("VerifiesByReference", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE transaction_code = $1 AND verified = FALSE`)).
			WithArgs("hela_savings_3_ref").
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "amount"}).AddRow(3, 500.0))

		userID, amount, ok, err := repo.MarkVerifiedByCode(ctx, "hela_savings_3_ref")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 3, userID)
		assert.Equal(t, 500.0, amount)
	})

	t.Run("UnknownReference", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE transaction_code = $1 AND verified = FALSE`)).
			WithArgs("unknown").
			WillReturnError(pgx.ErrNoRows)

		_, _, ok, err := repo.MarkVerifiedByCode(ctx, "unknown")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_MarkFailedByCode(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("PendingDepositMarked", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET verified = FALSE WHERE transaction_code = $1 AND verified = FALSE`)).
			WithArgs("hela_savings_3_ref").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.MarkFailedByCode(ctx, "hela_savings_3_ref"))
	})

	t.Run("VerifiedDepositUntouched", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET verified = FALSE WHERE transaction_code = $1 AND verified = FALSE`)).
			WithArgs("hela_savings_3_ref").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.NoError(t, repo.MarkFailedByCode(ctx, "hela_savings_3_ref"))
	})
}

func TestRepository_GetBalance(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("ReturnsRow", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, balance FROM user_savings WHERE user_id = $1`)).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "balance"}).AddRow(1, 1, 1200.0))

		savings, err := repo.GetBalance(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 1200.0, savings.Balance)
	})

	t.Run("NoRowYieldsNil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, balance FROM user_savings WHERE user_id = $1`)).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		savings, err := repo.GetBalance(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, savings)
	})
}

func TestRepository_CreditBalance(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (user_id) DO UPDATE SET balance = user_savings.balance + EXCLUDED.balance`)).
		WithArgs(3, 750.0).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.CreditBalance(ctx, 3, 750.0))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DebitBalance(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("Debited", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`WHERE user_id = $1 AND balance >= $2`)).
			WithArgs(4, 1500.0).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.DebitBalance(ctx, 4, 1500.0)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("BalanceTooLow", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`WHERE user_id = $1 AND balance >= $2`)).
			WithArgs(4, 1500.0).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.DebitBalance(ctx, 4, 1500.0)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_GetDepositsByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "mpesa_message", "transaction_code", "verified", "created_at"}).
		AddRow(1, 1, 500.0, "msg one", "CODE1", true, now).
		AddRow(2, 1, 300.0, "msg two", "CODE2", false, now)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM savings_deposits WHERE user_id = $1 ORDER BY created_at DESC`)).
		WithArgs(1).
		WillReturnRows(rows)

	deposits, err := repo.GetDepositsByUserID(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, deposits, 2)
	assert.Equal(t, "CODE1", deposits[0].TransactionCode)
	assert.False(t, deposits[1].Verified)
}
