package disbursementrepo

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

var disbursementColumnNames = []string{
	"id", "application_id", "loan_amount", "processing_fee", "transaction_code", "payment_verified", "disbursed", "created_at",
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	now := time.Now()

	t.Run("InsertsAndReturnsID", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loan_disbursements")).
			WithArgs(8, 10000.0, 350.0, "LOAN-8-1", true, false).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(21, now))

		d, err := repo.Create(ctx, &domain.LoanDisbursement{
			ApplicationID:   8,
			LoanAmount:      10000,
			ProcessingFee:   350,
			TransactionCode: "LOAN-8-1",
			PaymentVerified: true,
		})
		assert.NoError(t, err)
		assert.Equal(t, 21, d.ID)
		assert.Equal(t, now, d.CreatedAt)
	})

	t.Run("DatabaseError", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loan_disbursements")).
			WillReturnError(errors.New("insert failed"))

		d, err := repo.Create(ctx, &domain.LoanDisbursement{ApplicationID: 8})
		assert.Error(t, err)
		assert.Nil(t, d)
	})
}

func TestRepository_GetByTransactionCode(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("ReturnsDisbursement", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM loan_disbursements WHERE transaction_code = $1")).
			WithArgs("LOAN-8-1").
			WillReturnRows(pgxmock.NewRows(disbursementColumnNames).
				AddRow(21, 8, 10000.0, 350.0, "LOAN-8-1", false, false, time.Now()))

		d, err := repo.GetByTransactionCode(ctx, "LOAN-8-1")
		assert.NoError(t, err)
		assert.Equal(t, 21, d.ID)
		assert.Equal(t, 10000.0, d.LoanAmount)
	})

	t.Run("UnknownCodeYieldsNil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM loan_disbursements WHERE transaction_code = $1")).
			WithArgs("unknown").
			WillReturnError(pgx.ErrNoRows)

		d, err := repo.GetByTransactionCode(ctx, "unknown")
		assert.NoError(t, err)
		assert.Nil(t, d)
	})
}

func TestRepository_MarkPaymentVerified(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("FirstEventVerifies", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("WHERE transaction_code = $1 AND payment_verified = FALSE")).
			WithArgs("LOAN-8-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.MarkPaymentVerified(ctx, "LOAN-8-1")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("ReplayedEventFindsNothing", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("WHERE transaction_code = $1 AND payment_verified = FALSE")).
			WithArgs("LOAN-8-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.MarkPaymentVerified(ctx, "LOAN-8-1")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_MarkDisbursed(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("VerifiedRowDisbursed", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND payment_verified = TRUE AND disbursed = FALSE")).
			WithArgs(21).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.MarkDisbursed(ctx, 21)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("UnverifiedRowSkipped", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND payment_verified = TRUE AND disbursed = FALSE")).
			WithArgs(22).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.MarkDisbursed(ctx, 22)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_FindPayoutReady(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	rows := pgxmock.NewRows(disbursementColumnNames).
		AddRow(21, 8, 10000.0, 350.0, "LOAN-8-1", true, false, time.Now().Add(-time.Hour)).
		AddRow(22, 9, 6500.0, 350.0, "LOAN-9-1", true, false, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("WHERE payment_verified = TRUE AND disbursed = FALSE")).
		WithArgs(uint32(10)).
		WillReturnRows(rows)

	out, err := repo.FindPayoutReady(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "LOAN-8-1", out[0].TransactionCode)
	assert.True(t, out[1].PaymentVerified)
}
