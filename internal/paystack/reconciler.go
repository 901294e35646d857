package paystack

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"

	"github.com/helapesa/helapesa/internal/metrics"
	"go.uber.org/zap"
)

// SignatureHeader carries the HMAC the gateway computes over the raw body.
const SignatureHeader = "x-paystack-signature"

const (
	eventChargeSuccess = "charge.success"
	eventChargeFailed  = "charge.failed"
)

var ErrBadSignature = errors.New("invalid webhook signature")

type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference       string `json:"reference"`
		Amount          int64  `json:"amount"`
		Status          string `json:"status"`
		GatewayResponse string `json:"gateway_response"`
	} `json:"data"`
}

// VerifySignature checks the HMAC-SHA512 of the raw request body against
// the hex digest supplied in the signature header.
func (s *Service) VerifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(s.secretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// HandleEvent reconciles a verified webhook payload against local state.
// Redelivered events are no-ops: the conditional updates in the repos only
// fire on the first transition, so a deposit is credited exactly once.
func (s *Service) HandleEvent(ctx context.Context, body []byte) error {
	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return err
	}

	reference := event.Data.Reference
	log := zap.L().With(zap.String("event", event.Event), zap.String("reference", reference))

	switch event.Event {
	case eventChargeSuccess:
		if strings.HasPrefix(reference, SavingsReferencePrefix) {
			return s.creditSavings(ctx, reference, float64(event.Data.Amount)/100, log)
		}
		return s.verifyDisbursement(ctx, reference, log)
	case eventChargeFailed:
		log.Info("charge failed", zap.String("reason", event.Data.GatewayResponse))
		metrics.WebhookEvents.WithLabelValues(event.Event).Inc()
		return s.savingsRepo.MarkFailedByCode(ctx, reference)
	default:
		log.Debug("ignoring webhook event")
		return nil
	}
}

func (s *Service) creditSavings(ctx context.Context, reference string, amount float64, log *zap.Logger) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		userID, rowAmount, ok, err := s.savingsRepo.MarkVerifiedByCode(ctx, reference)
		if err != nil {
			return err
		}
		if !ok {
			log.Info("deposit already reconciled, skipping")
			return nil
		}
		// The gateway amount is authoritative; fall back to the recorded
		// row when the payload omits it.
		if amount <= 0 {
			amount = rowAmount
		}
		if err := s.savingsRepo.CreditBalance(ctx, userID, amount); err != nil {
			return err
		}
		log.Info("savings deposit credited", zap.Int("userID", userID), zap.Float64("amount", amount))
		metrics.WebhookEvents.WithLabelValues(eventChargeSuccess).Inc()
		s.publisher.Publish("savings_deposits", "UPDATE", userID)
		s.publisher.Publish("user_savings", "UPDATE", userID)
		return nil
	})
}

func (s *Service) verifyDisbursement(ctx context.Context, reference string, log *zap.Logger) error {
	ok, err := s.disbursementRepo.MarkPaymentVerified(ctx, reference)
	if err != nil {
		return err
	}
	if !ok {
		log.Info("disbursement already reconciled, skipping")
		return nil
	}
	log.Info("processing fee payment verified")
	metrics.WebhookEvents.WithLabelValues(eventChargeSuccess).Inc()
	return nil
}
