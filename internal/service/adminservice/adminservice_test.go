package adminservice

import (
	"context"
	"errors"
	"testing"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockApplicationRepo, *MockSupportRepo, *MockWithdrawalRepo, *MockSavingsRepo, *MockDisbursementRepo) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	applicationRepo := NewMockApplicationRepo(ctrl)
	supportRepo := NewMockSupportRepo(ctrl)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	savingsRepo := NewMockSavingsRepo(ctrl)
	disbursementRepo := NewMockDisbursementRepo(ctrl)
	service := New(applicationRepo, supportRepo, withdrawalRepo, savingsRepo, disbursementRepo)
	return service, applicationRepo, supportRepo, withdrawalRepo, savingsRepo, disbursementRepo
}

func TestService_GetOverview(t *testing.T) {
	service, applicationRepo, supportRepo, withdrawalRepo, savingsRepo, disbursementRepo := NewMock(t)
	ctx := context.Background()

	applications := []domain.LoanApplication{
		{ID: 1, Status: domain.ApplicationPending},
		{ID: 2, Status: domain.ApplicationApproved},
		{ID: 3, Status: domain.ApplicationApproved},
		{ID: 4, Status: domain.ApplicationRejected},
	}
	support := []domain.SupportRequest{
		{ID: 1, Status: domain.SupportPending},
		{ID: 2, Status: domain.SupportResolved},
	}
	withdrawals := []domain.Withdrawal{
		{ID: 1, Status: domain.WithdrawalPending},
		{ID: 2, Status: domain.WithdrawalCompleted},
	}
	deposits := []domain.SavingsDeposit{
		{ID: 1, Verified: false},
		{ID: 2, Verified: false},
		{ID: 3, Verified: true},
	}
	disbursements := []domain.LoanDisbursement{
		{ID: 1, Disbursed: true},
	}

	// The reads run on a derived group context.
	applicationRepo.EXPECT().List(gomock.Any()).Return(applications, nil)
	supportRepo.EXPECT().List(gomock.Any()).Return(support, nil)
	withdrawalRepo.EXPECT().List(gomock.Any()).Return(withdrawals, nil)
	savingsRepo.EXPECT().ListDeposits(gomock.Any()).Return(deposits, nil)
	disbursementRepo.EXPECT().List(gomock.Any()).Return(disbursements, nil)

	overview, err := service.GetOverview(ctx)
	assert.NoError(t, err)
	assert.Equal(t, applications, overview.Applications)
	assert.Equal(t, disbursements, overview.Disbursements)
	assert.Equal(t, 1, overview.PendingApplications)
	assert.Equal(t, 2, overview.ApprovedLoans)
	assert.Equal(t, 1, overview.PendingSupport)
	assert.Equal(t, 1, overview.PendingWithdrawals)
	assert.Equal(t, 2, overview.UnverifiedDeposits)
}

func TestService_GetOverviewError(t *testing.T) {
	service, applicationRepo, supportRepo, withdrawalRepo, savingsRepo, disbursementRepo := NewMock(t)
	ctx := context.Background()

	applicationRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("query failed"))
	supportRepo.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	withdrawalRepo.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	savingsRepo.EXPECT().ListDeposits(gomock.Any()).Return(nil, nil).AnyTimes()
	disbursementRepo.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()

	overview, err := service.GetOverview(ctx)
	assert.Error(t, err)
	assert.Nil(t, overview)
}
