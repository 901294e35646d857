package adminservice

import (
	"context"

	"github.com/helapesa/helapesa/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ApplicationRepo interface {
	List(ctx context.Context) ([]domain.LoanApplication, error)
}

type SupportRepo interface {
	List(ctx context.Context) ([]domain.SupportRequest, error)
}

type WithdrawalRepo interface {
	List(ctx context.Context) ([]domain.Withdrawal, error)
}

type SavingsRepo interface {
	ListDeposits(ctx context.Context) ([]domain.SavingsDeposit, error)
}

type DisbursementRepo interface {
	List(ctx context.Context) ([]domain.LoanDisbursement, error)
}

// Overview is the admin dashboard snapshot: full entity lists plus the
// derived counters shown on top of it.
type Overview struct {
	Applications  []domain.LoanApplication
	Support       []domain.SupportRequest
	Withdrawals   []domain.Withdrawal
	Deposits      []domain.SavingsDeposit
	Disbursements []domain.LoanDisbursement

	PendingApplications int
	ApprovedLoans       int
	PendingSupport      int
	PendingWithdrawals  int
	UnverifiedDeposits  int
}

type Service struct {
	applicationRepo  ApplicationRepo
	supportRepo      SupportRepo
	withdrawalRepo   WithdrawalRepo
	savingsRepo      SavingsRepo
	disbursementRepo DisbursementRepo
}

func New(applicationRepo ApplicationRepo, supportRepo SupportRepo, withdrawalRepo WithdrawalRepo, savingsRepo SavingsRepo, disbursementRepo DisbursementRepo) *Service {
	return &Service{
		applicationRepo:  applicationRepo,
		supportRepo:      supportRepo,
		withdrawalRepo:   withdrawalRepo,
		savingsRepo:      savingsRepo,
		disbursementRepo: disbursementRepo,
	}
}

// GetOverview issues the five reads concurrently and joins them.
func (s *Service) GetOverview(ctx context.Context) (*Overview, error) {
	var overview Overview

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		apps, err := s.applicationRepo.List(gCtx)
		overview.Applications = apps
		return err
	})
	g.Go(func() error {
		support, err := s.supportRepo.List(gCtx)
		overview.Support = support
		return err
	})
	g.Go(func() error {
		withdrawals, err := s.withdrawalRepo.List(gCtx)
		overview.Withdrawals = withdrawals
		return err
	})
	g.Go(func() error {
		deposits, err := s.savingsRepo.ListDeposits(gCtx)
		overview.Deposits = deposits
		return err
	})
	g.Go(func() error {
		disbursements, err := s.disbursementRepo.List(gCtx)
		overview.Disbursements = disbursements
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build admin overview", zap.Error(err))
		return nil, err
	}

	for _, app := range overview.Applications {
		switch app.Status {
		case domain.ApplicationPending:
			overview.PendingApplications++
		case domain.ApplicationApproved:
			overview.ApprovedLoans++
		}
	}
	for _, req := range overview.Support {
		if req.Status == domain.SupportPending {
			overview.PendingSupport++
		}
	}
	for _, w := range overview.Withdrawals {
		if w.Status == domain.WithdrawalPending {
			overview.PendingWithdrawals++
		}
	}
	for _, d := range overview.Deposits {
		if !d.Verified {
			overview.UnverifiedDeposits++
		}
	}

	return &overview, nil
}
