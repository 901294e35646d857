package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/helapesa/helapesa/internal/dto"
	"github.com/helapesa/helapesa/internal/service/adminservice"
	"github.com/helapesa/helapesa/internal/service/loanservice"
	"github.com/helapesa/helapesa/internal/service/savingsservice"
	"github.com/helapesa/helapesa/internal/service/supportservice"
	"github.com/helapesa/helapesa/internal/service/withdrawalservice"
	"github.com/helapesa/helapesa/pkg/utils"
)

type Service interface {
	GetOverview(ctx context.Context) (*adminservice.Overview, error)
}

type LoanService interface {
	Decide(ctx context.Context, id int, approve bool) error
}

type SavingsService interface {
	VerifyDeposit(ctx context.Context, depositID int) error
}

type WithdrawalService interface {
	Approve(ctx context.Context, id int) error
	Reject(ctx context.Context, id int) error
}

type SupportService interface {
	Reply(ctx context.Context, id int, reply string) error
}

type AdminHandler struct {
	adminService      Service
	loanService       LoanService
	savingsService    SavingsService
	withdrawalService WithdrawalService
	supportService    SupportService
}

func New(adminService Service, loanService LoanService, savingsService SavingsService, withdrawalService WithdrawalService, supportService SupportService) *AdminHandler {
	return &AdminHandler{
		adminService:      adminService,
		loanService:       loanService,
		savingsService:    savingsService,
		withdrawalService: withdrawalService,
		supportService:    supportService,
	}
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

// Overview godoc
//
//	@Summary		Back-office dashboard snapshot
//	@Description	All applications, deposits, withdrawals, support requests and disbursements plus pending counters
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OverviewDTO
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/overview [get]
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.adminService.GetOverview(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOverviewDTO(overview))
}

// DecideApplication godoc
//
//	@Summary		Approve or reject a loan application
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int						true	"Application ID"
//	@Param			request	body		dto.DecideRequestDTO	true	"Decision"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Application not found"
//	@Failure		409		{object}	utils.Response	"Application already decided"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/applications/{id}/decide [post]
func (h *AdminHandler) DecideApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}
	var req dto.DecideRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.loanService.Decide(r.Context(), id, req.Approve); err != nil {
		switch {
		case errors.Is(err, loanservice.ErrApplicationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, loanservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Application decision recorded"})
}

// VerifyDeposit godoc
//
//	@Summary		Verify a savings deposit
//	@Description	Mark a deposit verified and credit the user's balance in one step
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Deposit ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid deposit id"
//	@Failure		409	{object}	utils.Response	"Deposit already verified"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/deposits/{id}/verify [post]
func (h *AdminHandler) VerifyDeposit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deposit id")
		return
	}
	if err := h.savingsService.VerifyDeposit(r.Context(), id); err != nil {
		if errors.Is(err, savingsservice.ErrAlreadyVerified) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Deposit verified and credited"})
}

// ApproveWithdrawal godoc
//
//	@Summary		Approve a withdrawal
//	@Description	Complete the withdrawal and debit the user's balance in one step
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Withdrawal ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid withdrawal id"
//	@Failure		402	{object}	utils.Response	"Insufficient balance"
//	@Failure		409	{object}	utils.Response	"Withdrawal already decided"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/approve [post]
func (h *AdminHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}
	if err := h.withdrawalService.Approve(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Withdrawal approved"})
}

// RejectWithdrawal godoc
//
//	@Summary		Reject a withdrawal
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Withdrawal ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid withdrawal id"
//	@Failure		409	{object}	utils.Response	"Withdrawal already decided"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/reject [post]
func (h *AdminHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}
	if err := h.withdrawalService.Reject(r.Context(), id); err != nil {
		if errors.Is(err, withdrawalservice.ErrInvalidTransition) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Withdrawal rejected"})
}

// ReplySupport godoc
//
//	@Summary		Reply to a support request
//	@Description	Attach the reply and resolve the request in one step
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int					true	"Support request ID"
//	@Param			request	body		dto.SupportReplyDTO	true	"Reply body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		409		{object}	utils.Response	"Support request already resolved"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/support/{id}/reply [post]
func (h *AdminHandler) ReplySupport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid support request id")
		return
	}
	var req dto.SupportReplyDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.supportService.Reply(r.Context(), id, req.Reply); err != nil {
		switch {
		case errors.Is(err, supportservice.ErrEmptyReply):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, supportservice.ErrAlreadyResolved):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Reply sent"})
}
