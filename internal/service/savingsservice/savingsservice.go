package savingsservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/pg"
	"github.com/helapesa/helapesa/pkg/validate"
	"go.uber.org/zap"
)

// MinDepositAmount is the smallest manual deposit accepted, in KES.
const MinDepositAmount = 100

type SavingsRepo interface {
	CreateDeposit(ctx context.Context, d *domain.SavingsDeposit) (*domain.SavingsDeposit, error)
	GetDepositsByUserID(ctx context.Context, userID int) ([]domain.SavingsDeposit, error)
	ListDeposits(ctx context.Context) ([]domain.SavingsDeposit, error)
	MarkVerifiedByID(ctx context.Context, id int) (userID int, amount float64, ok bool, err error)
	GetBalance(ctx context.Context, userID int) (*domain.UserSavings, error)
	CreateBalance(ctx context.Context, userID int) (*domain.UserSavings, error)
	CreditBalance(ctx context.Context, userID int, amount float64) error
}

type Publisher interface {
	Publish(table, action string, id int)
}

type Service struct {
	savingsRepo SavingsRepo
	txManager   pg.TXManager
	publisher   Publisher
}

func New(savingsRepo SavingsRepo, txManager pg.TXManager, publisher Publisher) *Service {
	return &Service{
		savingsRepo: savingsRepo,
		txManager:   txManager,
		publisher:   publisher,
	}
}

var (
	ErrAmountTooSmall      = errors.New("deposit amount below minimum")
	ErrInvalidMpesaMessage = errors.New("invalid mpesa confirmation message")
	ErrAlreadyVerified     = errors.New("deposit already verified")
)

func (s *Service) SubmitDeposit(ctx context.Context, userID int, amount float64, mpesaMessage string) (*domain.SavingsDeposit, error) {
	if amount < MinDepositAmount {
		return nil, ErrAmountTooSmall
	}
	if !validate.LooksLikeMpesaMessage(mpesaMessage) {
		return nil, ErrInvalidMpesaMessage
	}

	code := validate.ExtractTransactionCode(mpesaMessage)
	if code == "" {
		code = fmt.Sprintf("DEP_%s", uuid.NewString())
	}

	deposit := &domain.SavingsDeposit{
		UserID:          userID,
		Amount:          amount,
		MpesaMessage:    mpesaMessage,
		TransactionCode: code,
		Verified:        false,
	}
	deposit, err := s.savingsRepo.CreateDeposit(ctx, deposit)
	if err != nil {
		zap.L().Error("failed to create deposit", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish("savings_deposits", "INSERT", deposit.ID)
	return deposit, nil
}

// VerifyDeposit flips the deposit to verified and credits the balance as one
// transaction. The same rule serves the admin path and the webhook path, so
// a verified deposit is always reflected in the balance exactly once.
func (s *Service) VerifyDeposit(ctx context.Context, depositID int) error {
	var creditedUserID int
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		userID, amount, ok, err := s.savingsRepo.MarkVerifiedByID(ctx, depositID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyVerified
		}
		creditedUserID = userID
		return s.savingsRepo.CreditBalance(ctx, userID, amount)
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyVerified) {
			zap.L().Error("failed to verify deposit", zap.Error(err))
		}
		return err
	}

	s.publisher.Publish("savings_deposits", "UPDATE", depositID)
	s.publisher.Publish("user_savings", "UPDATE", creditedUserID)
	return nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.UserSavings, error) {
	savings, err := s.savingsRepo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get savings balance", zap.Error(err))
		return nil, err
	}
	if savings == nil {
		// The balance row is created lazily on first credit.
		return &domain.UserSavings{UserID: userID, Balance: 0}, nil
	}
	return savings, nil
}

func (s *Service) CreateBalance(ctx context.Context, userID int) (*domain.UserSavings, error) {
	savings, err := s.savingsRepo.CreateBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create savings balance", zap.Error(err))
		return nil, err
	}
	return savings, nil
}

func (s *Service) GetDeposits(ctx context.Context, userID int) ([]domain.SavingsDeposit, error) {
	deposits, err := s.savingsRepo.GetDepositsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}

func (s *Service) ListDeposits(ctx context.Context) ([]domain.SavingsDeposit, error) {
	deposits, err := s.savingsRepo.ListDeposits(ctx)
	if err != nil {
		zap.L().Error("failed to list deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}
