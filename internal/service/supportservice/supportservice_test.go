package supportservice

import (
	"context"
	"errors"
	"testing"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockSupportRepo, *MockPublisher) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	supportRepo := NewMockSupportRepo(ctrl)
	publisher := NewMockPublisher(ctrl)
	service := New(supportRepo, publisher)
	return service, supportRepo, publisher
}

func TestService_Create(t *testing.T) {
	service, supportRepo, publisher := NewMock(t)
	ctx := context.Background()

	t.Run("EmptyMessage", func(t *testing.T) {
		req, err := service.Create(ctx, 1, "")
		assert.ErrorIs(t, err, ErrEmptyMessage)
		assert.Nil(t, req)
	})

	t.Run("Created", func(t *testing.T) {
		supportRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.SupportRequest) (*domain.SupportRequest, error) {
				assert.Equal(t, domain.SupportPending, req.Status)
				req.ID = 6
				return req, nil
			})
		publisher.EXPECT().Publish("support_requests", "INSERT", 6)

		req, err := service.Create(ctx, 1, "my deposit is not showing")
		assert.NoError(t, err)
		assert.Equal(t, 6, req.ID)
		assert.Equal(t, domain.SupportPending, req.Status)
	})

	t.Run("RepoError", func(t *testing.T) {
		supportRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("insert failed"))

		req, err := service.Create(ctx, 1, "my deposit is not showing")
		assert.Error(t, err)
		assert.Nil(t, req)
	})
}

func TestService_Reply(t *testing.T) {
	service, supportRepo, publisher := NewMock(t)
	ctx := context.Background()

	t.Run("EmptyReply", func(t *testing.T) {
		assert.ErrorIs(t, service.Reply(ctx, 6, ""), ErrEmptyReply)
	})

	t.Run("Resolved", func(t *testing.T) {
		supportRepo.EXPECT().Reply(ctx, 6, "deposit credited, please refresh").Return(true, nil)
		publisher.EXPECT().Publish("support_requests", "UPDATE", 6)
		assert.NoError(t, service.Reply(ctx, 6, "deposit credited, please refresh"))
	})

	t.Run("AlreadyResolved", func(t *testing.T) {
		supportRepo.EXPECT().Reply(ctx, 6, "again").Return(false, nil)
		assert.ErrorIs(t, service.Reply(ctx, 6, "again"), ErrAlreadyResolved)
	})
}

func TestService_GetRequests(t *testing.T) {
	service, supportRepo, _ := NewMock(t)
	ctx := context.Background()

	requests := []domain.SupportRequest{
		{ID: 1, UserID: 3, Message: "hello", Status: domain.SupportPending},
	}
	supportRepo.EXPECT().GetByUserID(ctx, 3).Return(requests, nil)

	got, err := service.GetRequests(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, requests, got)
}
