package supportrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/helapesa/helapesa/internal/domain"
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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	now := time.Now()

	t.Run("InsertsAndReturnsID", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO support_requests (user_id, message, status)")).
			WithArgs(1, "My deposit is missing", domain.SupportPending).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(6, now))

		req, err := repo.Create(ctx, &domain.SupportRequest{
			UserID:  1,
			Message: "My deposit is missing",
			Status:  domain.SupportPending,
		})
		assert.NoError(t, err)
		assert.Equal(t, 6, req.ID)
		assert.Equal(t, now, req.CreatedAt)
	})

	t.Run("DatabaseError", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO support_requests")).
			WillReturnError(errors.New("insert failed"))

		req, err := repo.Create(ctx, &domain.SupportRequest{UserID: 1, Message: "help"})
		assert.Error(t, err)
		assert.Nil(t, req)
	})
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	rows := pgxmock.NewRows([]string{"id", "user_id", "message", "admin_reply", "status", "created_at"}).
		AddRow(2, 1, "Second question", "", domain.SupportPending, time.Now()).
		AddRow(1, 1, "First question", "Sorted, thanks", domain.SupportResolved, time.Now().Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("FROM support_requests")).
		WithArgs(1).
		WillReturnRows(rows)

	requests, err := repo.GetByUserID(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, requests, 2)
	assert.Equal(t, domain.SupportPending, requests[0].Status)
	assert.Equal(t, "Sorted, thanks", requests[1].AdminReply)
}

func TestRepository_Reply(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("ResolvesPendingRequest", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status = 'pending'")).
			WithArgs(6, "We are looking into it").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.Reply(ctx, 6, "We are looking into it")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("AlreadyResolved", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status = 'pending'")).
			WithArgs(6, "Late answer").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.Reply(ctx, 6, "Late answer")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
