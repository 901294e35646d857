package withdrawalservice

import (
	"context"
	"errors"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/pg"
	"github.com/helapesa/helapesa/pkg/validate"
	"go.uber.org/zap"
)

// MinWithdrawalAmount is the smallest withdrawal accepted, in KES.
const MinWithdrawalAmount = 500

type WithdrawalRepo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	List(ctx context.Context) ([]domain.Withdrawal, error)
	GetByID(ctx context.Context, id int) (*domain.Withdrawal, error)
	UpdateStatus(ctx context.Context, id int, status string) (bool, error)
}

type SavingsRepo interface {
	GetBalance(ctx context.Context, userID int) (*domain.UserSavings, error)
	DebitBalance(ctx context.Context, userID int, amount float64) (bool, error)
}

type Publisher interface {
	Publish(table, action string, id int)
}

type Service struct {
	withdrawalRepo WithdrawalRepo
	savingsRepo    SavingsRepo
	txManager      pg.TXManager
	publisher      Publisher
}

func New(withdrawalRepo WithdrawalRepo, savingsRepo SavingsRepo, txManager pg.TXManager, publisher Publisher) *Service {
	return &Service{
		withdrawalRepo: withdrawalRepo,
		savingsRepo:    savingsRepo,
		txManager:      txManager,
		publisher:      publisher,
	}
}

var (
	ErrAmountTooSmall      = errors.New("withdrawal amount below minimum")
	ErrInvalidPhoneNumber  = errors.New("invalid phone number")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidTransition   = errors.New("withdrawal already decided")
)

func (s *Service) Request(ctx context.Context, userID int, amount float64, phoneNumber string) (*domain.Withdrawal, error) {
	if amount < MinWithdrawalAmount {
		return nil, ErrAmountTooSmall
	}
	if !validate.IsPhone(phoneNumber) {
		return nil, ErrInvalidPhoneNumber
	}

	balance, err := s.savingsRepo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil || balance.Balance < amount {
		return nil, ErrInsufficientBalance
	}

	withdrawal := &domain.Withdrawal{
		UserID:      userID,
		Amount:      amount,
		PhoneNumber: phoneNumber,
		Status:      domain.WithdrawalPending,
	}
	withdrawal, err = s.withdrawalRepo.CreateWithdrawal(ctx, withdrawal)
	if err != nil {
		zap.L().Error("failed to create withdrawal", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish("withdrawals", "INSERT", withdrawal.ID)
	return withdrawal, nil
}

// Approve completes the withdrawal and debits the balance in one
// transaction. The debit is conditional on the balance still covering the
// amount, so an over-balance approval rolls the status change back.
func (s *Service) Approve(ctx context.Context, id int) error {
	withdrawal, err := s.withdrawalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if withdrawal == nil {
		return ErrInvalidTransition
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.withdrawalRepo.UpdateStatus(ctx, id, domain.WithdrawalCompleted)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidTransition
		}
		debited, err := s.savingsRepo.DebitBalance(ctx, withdrawal.UserID, withdrawal.Amount)
		if err != nil {
			return err
		}
		if !debited {
			return ErrInsufficientBalance
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidTransition) && !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to approve withdrawal", zap.Error(err))
		}
		return err
	}

	s.publisher.Publish("withdrawals", "UPDATE", id)
	s.publisher.Publish("user_savings", "UPDATE", withdrawal.UserID)
	return nil
}

func (s *Service) Reject(ctx context.Context, id int) error {
	ok, err := s.withdrawalRepo.UpdateStatus(ctx, id, domain.WithdrawalRejected)
	if err != nil {
		zap.L().Error("failed to reject withdrawal", zap.Error(err))
		return err
	}
	if !ok {
		return ErrInvalidTransition
	}

	s.publisher.Publish("withdrawals", "UPDATE", id)
	return nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
