package savings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/dto"
	"github.com/helapesa/helapesa/internal/service/savingsservice"
	"github.com/helapesa/helapesa/internal/service/withdrawalservice"
	"github.com/helapesa/helapesa/pkg/auth"
	"github.com/helapesa/helapesa/pkg/utils"
)

type Service interface {
	SubmitDeposit(ctx context.Context, userID int, amount float64, mpesaMessage string) (*domain.SavingsDeposit, error)
	GetDeposits(ctx context.Context, userID int) ([]domain.SavingsDeposit, error)
	GetBalance(ctx context.Context, userID int) (*domain.UserSavings, error)
}

type WithdrawalService interface {
	Request(ctx context.Context, userID int, amount float64, phoneNumber string) (*domain.Withdrawal, error)
	GetWithdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error)
}

type SavingsHandler struct {
	savingsService    Service
	withdrawalService WithdrawalService
}

func New(savingsService Service, withdrawalService WithdrawalService) *SavingsHandler {
	return &SavingsHandler{
		savingsService:    savingsService,
		withdrawalService: withdrawalService,
	}
}

// SubmitDeposit godoc
//
//	@Summary		Submit a savings deposit
//	@Description	Record a deposit from a pasted M-Pesa confirmation message; it stays unverified until reconciled
//	@Tags			Savings
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit body"
//	@Success		201		{object}	dto.DepositDTO
//	@Failure		400		{object}	utils.Response	"Invalid deposit"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/savings/deposits [post]
func (h *SavingsHandler) SubmitDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	deposit, err := h.savingsService.SubmitDeposit(r.Context(), userID, req.Amount, req.MpesaMessage)
	if err != nil {
		switch {
		case errors.Is(err, savingsservice.ErrAmountTooSmall), errors.Is(err, savingsservice.ErrInvalidMpesaMessage):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewDepositDTO(deposit))
}

// GetDeposits godoc
//
//	@Summary		List own deposits
//	@Tags			Savings
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.DepositDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/savings/deposits [get]
func (h *SavingsHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	deposits, err := h.savingsService.GetDeposits(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDepositListDTO(deposits))
}

// GetBalance godoc
//
//	@Summary		Get verified savings balance
//	@Tags			Savings
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BalanceDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/savings/balance [get]
func (h *SavingsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	balance, err := h.savingsService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceDTO{Balance: balance.Balance})
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Queue a withdrawal for admin review; the balance is held until a decision is made
//	@Tags			Savings
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal body"
//	@Success		201		{object}	dto.WithdrawalDTO
//	@Failure		400		{object}	utils.Response	"Invalid withdrawal"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/savings/withdrawals [post]
func (h *SavingsHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	withdrawal, err := h.withdrawalService.Request(r.Context(), userID, req.Amount, req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrAmountTooSmall), errors.Is(err, withdrawalservice.ErrInvalidPhoneNumber):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewWithdrawalDTO(withdrawal))
}

// GetWithdrawals godoc
//
//	@Summary		List own withdrawals
//	@Tags			Savings
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.WithdrawalDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/savings/withdrawals [get]
func (h *SavingsHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	withdrawals, err := h.withdrawalService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalListDTO(withdrawals))
}
