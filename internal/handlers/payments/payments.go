package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/helapesa/helapesa/internal/dto"
	"github.com/helapesa/helapesa/internal/metrics"
	"github.com/helapesa/helapesa/internal/paystack"
	"github.com/helapesa/helapesa/pkg/auth"
	"github.com/helapesa/helapesa/pkg/utils"
	"go.uber.org/zap"
)

const maxWebhookBody = 1 << 20

type Service interface {
	InitiateLoanCharge(ctx context.Context, phoneNumber string, amount float64, applicationID int) (*paystack.ChargeResult, error)
	InitiateSavingsCharge(ctx context.Context, userID int, phoneNumber string, amount float64) (*paystack.ChargeResult, error)
	VerifySignature(body []byte, signature string) bool
	HandleEvent(ctx context.Context, body []byte) error
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Charge godoc
//
//	@Summary		Initiate a mobile-money charge
//	@Description	Open an STK push for a savings deposit, or for a loan processing fee when applicationId is set
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.ChargeRequestDTO	true	"Charge body"
//	@Success		200		{object}	dto.ChargeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		502		{object}	utils.Response	"Gateway rejected charge"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/charge [post]
func (h *PaymentHandler) Charge(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.ChargeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var result *paystack.ChargeResult
	var err error
	if req.ApplicationID != 0 {
		result, err = h.paymentService.InitiateLoanCharge(r.Context(), req.PhoneNumber, req.Amount, req.ApplicationID)
	} else {
		result, err = h.paymentService.InitiateSavingsCharge(r.Context(), userID, req.PhoneNumber, req.Amount)
	}
	if err != nil {
		switch {
		case errors.Is(err, paystack.ErrMissingFields):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paystack.ErrChargeRejected):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ChargeResponseDTO{
		Reference:   result.Reference,
		DisplayText: result.DisplayText,
	})
}

// Webhook godoc
//
//	@Summary		Paystack webhook receiver
//	@Description	Verifies the HMAC signature over the raw body and reconciles the event; unsigned deliveries are dropped
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"Invalid signature"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/webhook [post]
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to read body")
		return
	}

	signature := r.Header.Get(paystack.SignatureHeader)
	if signature == "" || !h.paymentService.VerifySignature(body, signature) {
		zap.L().Warn("webhook signature rejected")
		metrics.WebhookRejected.Inc()
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid signature")
		return
	}

	if err := h.paymentService.HandleEvent(r.Context(), body); err != nil {
		zap.L().Error("webhook reconciliation failed", zap.Error(err))
		// Non-2xx makes the gateway redeliver; reconciliation is
		// idempotent so a retry is safe.
		utils.RespondWithError(w, http.StatusInternalServerError, "Reconciliation failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}
