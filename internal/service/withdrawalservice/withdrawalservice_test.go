package withdrawalservice

import (
	"context"
	"errors"
	"testing"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/pg"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockWithdrawalRepo, *MockSavingsRepo, *pg.MockTXManager, *MockPublisher) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	savingsRepo := NewMockSavingsRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	publisher := NewMockPublisher(ctrl)
	service := New(withdrawalRepo, savingsRepo, txManager, publisher)
	return service, withdrawalRepo, savingsRepo, txManager, publisher
}

func TestService_Request(t *testing.T) {
	service, withdrawalRepo, savingsRepo, _, publisher := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		amount      float64
		phoneNumber string
		prepareMock func()
		wantErr     error
	}{
		{
			name:        "BelowMinimum",
			amount:      200,
			phoneNumber: "0712345678",
			prepareMock: func() {},
			wantErr:     ErrAmountTooSmall,
		},
		{
			name:        "InvalidPhone",
			amount:      1000,
			phoneNumber: "12345",
			prepareMock: func() {},
			wantErr:     ErrInvalidPhoneNumber,
		},
		{
			name:        "InsufficientBalance",
			amount:      1000,
			phoneNumber: "0712345678",
			prepareMock: func() {
				savingsRepo.EXPECT().GetBalance(ctx, 1).
					Return(&domain.UserSavings{UserID: 1, Balance: 400}, nil)
			},
			wantErr: ErrInsufficientBalance,
		},
		{
			name:        "NoBalanceRow",
			amount:      1000,
			phoneNumber: "0712345678",
			prepareMock: func() {
				savingsRepo.EXPECT().GetBalance(ctx, 1).Return(nil, nil)
			},
			wantErr: ErrInsufficientBalance,
		},
		{
			name:        "Created",
			amount:      1000,
			phoneNumber: "0712345678",
			prepareMock: func() {
				savingsRepo.EXPECT().GetBalance(ctx, 1).
					Return(&domain.UserSavings{UserID: 1, Balance: 2500}, nil)
				withdrawalRepo.EXPECT().
					CreateWithdrawal(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
						assert.Equal(t, domain.WithdrawalPending, w.Status)
						w.ID = 5
						return w, nil
					})
				publisher.EXPECT().Publish("withdrawals", "INSERT", 5)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			withdrawal, err := service.Request(ctx, 1, tt.amount, tt.phoneNumber)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, withdrawal)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.amount, withdrawal.Amount)
			assert.Equal(t, domain.WithdrawalPending, withdrawal.Status)
		})
	}
}

func TestService_Approve(t *testing.T) {
	service, withdrawalRepo, savingsRepo, txManager, publisher := NewMock(t)
	ctx := context.Background()

	pending := &domain.Withdrawal{ID: 9, UserID: 4, Amount: 1500, Status: domain.WithdrawalPending}

	runTx := func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	}

	tests := []struct {
		name        string
		prepareMock func()
		wantErr     error
	}{
		{
			name: "CompletesAndDebits",
			prepareMock: func() {
				withdrawalRepo.EXPECT().GetByID(ctx, 9).Return(pending, nil)
				txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(runTx)
				withdrawalRepo.EXPECT().UpdateStatus(ctx, 9, domain.WithdrawalCompleted).Return(true, nil)
				savingsRepo.EXPECT().DebitBalance(ctx, 4, 1500.0).Return(true, nil)
				publisher.EXPECT().Publish("withdrawals", "UPDATE", 9)
				publisher.EXPECT().Publish("user_savings", "UPDATE", 4)
			},
		},
		{
			name: "Unknown",
			prepareMock: func() {
				withdrawalRepo.EXPECT().GetByID(ctx, 9).Return(nil, nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "AlreadyDecided",
			prepareMock: func() {
				withdrawalRepo.EXPECT().GetByID(ctx, 9).Return(pending, nil)
				txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(runTx)
				withdrawalRepo.EXPECT().UpdateStatus(ctx, 9, domain.WithdrawalCompleted).Return(false, nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "DebitShortRollsBack",
			prepareMock: func() {
				withdrawalRepo.EXPECT().GetByID(ctx, 9).Return(pending, nil)
				txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(runTx)
				withdrawalRepo.EXPECT().UpdateStatus(ctx, 9, domain.WithdrawalCompleted).Return(true, nil)
				savingsRepo.EXPECT().DebitBalance(ctx, 4, 1500.0).Return(false, nil)
			},
			wantErr: ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Approve(ctx, 9)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_Reject(t *testing.T) {
	service, withdrawalRepo, _, _, publisher := NewMock(t)
	ctx := context.Background()

	t.Run("Rejected", func(t *testing.T) {
		withdrawalRepo.EXPECT().UpdateStatus(ctx, 3, domain.WithdrawalRejected).Return(true, nil)
		publisher.EXPECT().Publish("withdrawals", "UPDATE", 3)
		assert.NoError(t, service.Reject(ctx, 3))
	})

	t.Run("AlreadyDecided", func(t *testing.T) {
		withdrawalRepo.EXPECT().UpdateStatus(ctx, 3, domain.WithdrawalRejected).Return(false, nil)
		assert.ErrorIs(t, service.Reject(ctx, 3), ErrInvalidTransition)
	})

	t.Run("RepoError", func(t *testing.T) {
		withdrawalRepo.EXPECT().UpdateStatus(ctx, 3, domain.WithdrawalRejected).
			Return(false, errors.New("update failed"))
		assert.Error(t, service.Reject(ctx, 3))
	})
}

func TestService_GetWithdrawals(t *testing.T) {
	service, withdrawalRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	withdrawals := []domain.Withdrawal{
		{ID: 1, UserID: 2, Amount: 600, Status: domain.WithdrawalPending},
	}
	withdrawalRepo.EXPECT().GetWithdrawalsByUserID(ctx, 2).Return(withdrawals, nil)

	got, err := service.GetWithdrawals(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, withdrawals, got)
}
