// Package paystack integrates the Paystack mobile-money gateway: charge
// initiation, the signed webhook reconciler and the payout watcher.
package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/helapesa/helapesa/internal/config"
	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/metrics"
	"github.com/helapesa/helapesa/internal/pg"
	"github.com/helapesa/helapesa/pkg/clients"
	"github.com/helapesa/helapesa/pkg/validate"
	"go.uber.org/zap"
)

// SavingsReferencePrefix routes webhook events to the savings credit path.
const SavingsReferencePrefix = "hela_savings_"

type DisbursementRepo interface {
	Create(ctx context.Context, d *domain.LoanDisbursement) (*domain.LoanDisbursement, error)
	MarkPaymentVerified(ctx context.Context, code string) (bool, error)
	MarkDisbursed(ctx context.Context, id int) (bool, error)
	FindPayoutReady(ctx context.Context, limit uint32) ([]domain.LoanDisbursement, error)
}

type SavingsRepo interface {
	CreateDeposit(ctx context.Context, d *domain.SavingsDeposit) (*domain.SavingsDeposit, error)
	MarkVerifiedByCode(ctx context.Context, code string) (userID int, amount float64, ok bool, err error)
	MarkFailedByCode(ctx context.Context, code string) error
	CreditBalance(ctx context.Context, userID int, amount float64) error
}

type Publisher interface {
	Publish(table, action string, id int)
}

type HTTPClient interface {
	Post(ctx context.Context, url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error)
}

type Service struct {
	url              string
	secretKey        string
	client           HTTPClient
	disbursementRepo DisbursementRepo
	savingsRepo      SavingsRepo
	txManager        pg.TXManager
	publisher        Publisher
}

func New(cfg *config.Config, disbursementRepo DisbursementRepo, savingsRepo SavingsRepo, txManager pg.TXManager, publisher Publisher, client HTTPClient) *Service {
	if client == nil {
		client = clients.NewHTTPClient()
	}
	return &Service{
		url:              cfg.PaystackAddress,
		secretKey:        cfg.PaystackSecretKey,
		client:           client,
		disbursementRepo: disbursementRepo,
		savingsRepo:      savingsRepo,
		txManager:        txManager,
		publisher:        publisher,
	}
}

var (
	ErrChargeRejected = errors.New("gateway rejected charge")
	ErrMissingFields  = errors.New("missing required fields")
)

// ChargeResult is what the caller shows the user after an STK push.
type ChargeResult struct {
	Reference   string
	DisplayText string
}

type chargePayload struct {
	Email       string            `json:"email"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	MobileMoney mobileMoney       `json:"mobile_money"`
	Reference   string            `json:"reference"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type mobileMoney struct {
	Phone    string `json:"phone"`
	Provider string `json:"provider"`
}

type chargeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Reference   string `json:"reference"`
		DisplayText string `json:"display_text"`
	} `json:"data"`
}

// InitiateLoanCharge opens a mobile-money charge for a loan processing fee
// and records the pending disbursement keyed by the generated reference.
func (s *Service) InitiateLoanCharge(ctx context.Context, phoneNumber string, amount float64, applicationID int) (*ChargeResult, error) {
	if phoneNumber == "" || amount <= 0 || applicationID == 0 {
		return nil, ErrMissingFields
	}

	reference := fmt.Sprintf("hela_%d_%s", applicationID, uuid.NewString())
	result, err := s.charge(ctx, phoneNumber, amount, reference)
	if err != nil {
		return nil, err
	}

	disbursement := &domain.LoanDisbursement{
		ApplicationID:   applicationID,
		LoanAmount:      amount,
		ProcessingFee:   amount,
		TransactionCode: reference,
		PaymentVerified: false,
		Disbursed:       false,
	}
	if _, err := s.disbursementRepo.Create(ctx, disbursement); err != nil {
		return nil, err
	}

	return result, nil
}

// InitiateSavingsCharge opens a mobile-money charge for a savings deposit
// and records the pending deposit keyed by the generated reference.
func (s *Service) InitiateSavingsCharge(ctx context.Context, userID int, phoneNumber string, amount float64) (*ChargeResult, error) {
	if phoneNumber == "" || amount <= 0 || userID == 0 {
		return nil, ErrMissingFields
	}

	reference := fmt.Sprintf("%s%d_%s", SavingsReferencePrefix, userID, uuid.NewString())
	result, err := s.charge(ctx, phoneNumber, amount, reference)
	if err != nil {
		return nil, err
	}

	deposit := &domain.SavingsDeposit{
		UserID:          userID,
		Amount:          amount,
		TransactionCode: reference,
		Verified:        false,
	}
	if _, err := s.savingsRepo.CreateDeposit(ctx, deposit); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) charge(ctx context.Context, phoneNumber string, amount float64, reference string) (*ChargeResult, error) {
	formattedPhone := validate.FormatE164(phoneNumber)

	payload := chargePayload{
		// Paystack requires an email address per charge.
		Email:       strings.TrimPrefix(formattedPhone, "+") + "@helapesa.com",
		Amount:      int64(amount * 100), // smallest currency unit
		Currency:    "KES",
		MobileMoney: mobileMoney{Phone: formattedPhone, Provider: "mpesa"},
		Reference:   reference,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+s.secretKey)

	statusCode, respBody, err := s.client.Post(ctx, s.url+"/charge", headers, body)
	if err != nil {
		zap.L().Error("charge request failed", zap.Error(err))
		return nil, err
	}

	var resp chargeResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse charge response: %w", err)
	}
	if statusCode >= http.StatusBadRequest || !resp.Status {
		zap.L().Error("charge rejected",
			zap.Int("status", statusCode),
			zap.String("message", resp.Message))
		metrics.ChargesInitiated.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: %s", ErrChargeRejected, resp.Message)
	}

	metrics.ChargesInitiated.WithLabelValues("ok").Inc()
	displayText := resp.Data.DisplayText
	if displayText == "" {
		displayText = "Please enter your M-Pesa PIN when prompted"
	}
	return &ChargeResult{Reference: reference, DisplayText: displayText}, nil
}
