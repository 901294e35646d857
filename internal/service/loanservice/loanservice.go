package loanservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/eligibility"
	"github.com/helapesa/helapesa/internal/pg"
	"github.com/helapesa/helapesa/pkg/validate"
	"go.uber.org/zap"
)

// MinSavingsBalance is the verified savings balance, in KES, required before
// a loan can be disbursed.
const MinSavingsBalance = 500

type ApplicationRepo interface {
	Create(ctx context.Context, app *domain.LoanApplication) (*domain.LoanApplication, error)
	GetByID(ctx context.Context, id int) (*domain.LoanApplication, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.LoanApplication, error)
	List(ctx context.Context) ([]domain.LoanApplication, error)
	UpdateStatus(ctx context.Context, id int, status string) (bool, error)
}

type DisbursementRepo interface {
	Create(ctx context.Context, d *domain.LoanDisbursement) (*domain.LoanDisbursement, error)
}

type SavingsRepo interface {
	GetBalance(ctx context.Context, userID int) (*domain.UserSavings, error)
}

type Publisher interface {
	Publish(table, action string, id int)
}

type Service struct {
	applicationRepo  ApplicationRepo
	disbursementRepo DisbursementRepo
	savingsRepo      SavingsRepo
	txManager        pg.TXManager
	publisher        Publisher
}

func New(applicationRepo ApplicationRepo, disbursementRepo DisbursementRepo, savingsRepo SavingsRepo, txManager pg.TXManager, publisher Publisher) *Service {
	return &Service{
		applicationRepo:  applicationRepo,
		disbursementRepo: disbursementRepo,
		savingsRepo:      savingsRepo,
		txManager:        txManager,
		publisher:        publisher,
	}
}

var (
	ErrValidation          = errors.New("invalid application data")
	ErrApplicationNotFound = errors.New("application not found")
	ErrNotApplicant        = errors.New("application belongs to another user")
	ErrInvalidTransition   = errors.New("application already decided")
	ErrAmountOverLimit     = errors.New("amount exceeds loan limit")
	ErrInsufficientSavings = errors.New("insufficient savings balance")
)

// Apply validates the form, computes the applicant's loan limit and stores
// the application as pending.
func (s *Service) Apply(ctx context.Context, app *domain.LoanApplication) (*domain.LoanApplication, error) {
	if err := validateApplication(app); err != nil {
		return nil, err
	}

	limit, err := eligibility.Calculate(app.IncomeLevel, app.EmploymentStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	app.LoanLimit = limit
	app.Status = domain.ApplicationPending

	app, err = s.applicationRepo.Create(ctx, app)
	if err != nil {
		zap.L().Error("failed to create application", zap.Error(err))
		return nil, err
	}

	zap.L().Info("loan application submitted",
		zap.Int("applicationID", app.ID),
		zap.Int("loanLimit", app.LoanLimit))
	s.publisher.Publish("loan_applications", "INSERT", app.ID)
	return app, nil
}

func (s *Service) GetApplications(ctx context.Context, userID int) ([]domain.LoanApplication, error) {
	apps, err := s.applicationRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch applications", zap.Error(err))
		return nil, err
	}
	return apps, nil
}

func (s *Service) List(ctx context.Context) ([]domain.LoanApplication, error) {
	apps, err := s.applicationRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list applications", zap.Error(err))
		return nil, err
	}
	return apps, nil
}

// Decide is the admin transition; pending applications move to approved or
// rejected, anything else is rejected as an invalid transition.
func (s *Service) Decide(ctx context.Context, id int, approve bool) error {
	status := domain.ApplicationRejected
	if approve {
		status = domain.ApplicationApproved
	}

	ok, err := s.applicationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		zap.L().Error("failed to update application status", zap.Error(err))
		return err
	}
	if !ok {
		return ErrInvalidTransition
	}

	s.publisher.Publish("loan_applications", "UPDATE", id)
	return nil
}

// ProceedDisbursement is the savings-gated step: with the minimum verified
// savings in place it approves the application, unless an admin already has,
// and creates its disbursement record in one transaction.
func (s *Service) ProceedDisbursement(ctx context.Context, userID, applicationID int, amount float64) (*domain.LoanDisbursement, error) {
	app, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	if app.UserID != userID {
		return nil, ErrNotApplicant
	}
	if amount <= 0 || amount > float64(app.LoanLimit) {
		return nil, ErrAmountOverLimit
	}

	balance, err := s.savingsRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance == nil || balance.Balance < MinSavingsBalance {
		return nil, ErrInsufficientSavings
	}

	disbursement := &domain.LoanDisbursement{
		ApplicationID:   applicationID,
		LoanAmount:      amount,
		ProcessingFee:   0,
		TransactionCode: fmt.Sprintf("LOAN-%s", uuid.NewString()),
		PaymentVerified: true,
		Disbursed:       false,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.applicationRepo.UpdateStatus(ctx, applicationID, domain.ApplicationApproved)
		if err != nil {
			return err
		}
		if !ok {
			// An admin may have approved the application already; that
			// still satisfies the gate. Only a rejected application blocks.
			current, err := s.applicationRepo.GetByID(ctx, applicationID)
			if err != nil {
				return err
			}
			if current == nil || current.Status != domain.ApplicationApproved {
				return ErrInvalidTransition
			}
		}
		disbursement, err = s.disbursementRepo.Create(ctx, disbursement)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidTransition) {
			zap.L().Error("failed to proceed with disbursement", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("loan disbursement created",
		zap.Int("applicationID", applicationID),
		zap.Float64("amount", amount))
	s.publisher.Publish("loan_applications", "UPDATE", applicationID)
	s.publisher.Publish("loan_disbursements", "INSERT", disbursement.ID)
	return disbursement, nil
}

func validateApplication(app *domain.LoanApplication) error {
	if app.FullName == "" || app.Occupation == "" || app.NextOfKinName == "" || app.ContactPersonName == "" {
		return fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if !validate.IsIDNumber(app.IDNumber) {
		return fmt.Errorf("%w: invalid id number", ErrValidation)
	}
	for _, phone := range []string{app.WhatsappNumber, app.MpesaNumber, app.NextOfKinContact, app.ContactPersonPhone} {
		if !validate.IsPhone(phone) {
			return fmt.Errorf("%w: invalid phone number", ErrValidation)
		}
	}
	return nil
}
