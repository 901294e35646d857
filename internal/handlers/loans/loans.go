package loans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/dto"
	"github.com/helapesa/helapesa/internal/service/loanservice"
	"github.com/helapesa/helapesa/pkg/auth"
	"github.com/helapesa/helapesa/pkg/utils"
)

type Service interface {
	Apply(ctx context.Context, app *domain.LoanApplication) (*domain.LoanApplication, error)
	GetApplications(ctx context.Context, userID int) ([]domain.LoanApplication, error)
	ProceedDisbursement(ctx context.Context, userID, applicationID int, amount float64) (*domain.LoanDisbursement, error)
}

type LoanHandler struct {
	loanService Service
}

func New(loanService Service) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
	}
}

// Apply godoc
//
//	@Summary		Submit a loan application
//	@Description	Validate the application form and compute the personal loan limit
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.ApplyRequestDTO	true	"Application form"
//	@Success		201		{object}	dto.ApplicationDTO
//	@Failure		400		{object}	utils.Response	"Invalid application data"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/loans/apply [post]
func (h *LoanHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.ApplyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	app := &domain.LoanApplication{
		UserID:             userID,
		FullName:           req.FullName,
		IDNumber:           req.IDNumber,
		WhatsappNumber:     req.WhatsappNumber,
		MpesaNumber:        req.MpesaNumber,
		NextOfKinName:      req.NextOfKinName,
		NextOfKinContact:   req.NextOfKinContact,
		IncomeLevel:        domain.IncomeLevel(req.IncomeLevel),
		EmploymentStatus:   domain.EmploymentStatus(req.EmploymentStatus),
		Occupation:         req.Occupation,
		ContactPersonName:  req.ContactPersonName,
		ContactPersonPhone: req.ContactPersonPhone,
		LoanReason:         req.LoanReason,
	}
	created, err := h.loanService.Apply(r.Context(), app)
	if err != nil {
		if errors.Is(err, loanservice.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewApplicationDTO(created))
}

// GetApplications godoc
//
//	@Summary		List own loan applications
//	@Tags			Loans
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ApplicationDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/loans [get]
func (h *LoanHandler) GetApplications(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	apps, err := h.loanService.GetApplications(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewApplicationListDTO(apps))
}

// Disburse godoc
//
//	@Summary		Proceed to disbursement
//	@Description	Pick the loan amount on an approved application; requires the minimum verified savings balance
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.DisburseRequestDTO	true	"Disbursement request"
//	@Success		201		{object}	dto.DisbursementDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		402		{object}	utils.Response	"Insufficient savings balance"
//	@Failure		403		{object}	utils.Response	"Application belongs to another user"
//	@Failure		404		{object}	utils.Response	"Application not found"
//	@Failure		409		{object}	utils.Response	"Application not approved"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/loans/disburse [post]
func (h *LoanHandler) Disburse(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.DisburseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	disbursement, err := h.loanService.ProceedDisbursement(r.Context(), userID, req.ApplicationID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, loanservice.ErrApplicationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, loanservice.ErrNotApplicant):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, loanservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, loanservice.ErrAmountOverLimit):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, loanservice.ErrInsufficientSavings):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewDisbursementDTO(disbursement))
}
