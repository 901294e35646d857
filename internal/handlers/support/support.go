package support

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/dto"
	"github.com/helapesa/helapesa/internal/service/supportservice"
	"github.com/helapesa/helapesa/pkg/auth"
	"github.com/helapesa/helapesa/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int, message string) (*domain.SupportRequest, error)
	GetRequests(ctx context.Context, userID int) ([]domain.SupportRequest, error)
}

type SupportHandler struct {
	supportService Service
}

func New(supportService Service) *SupportHandler {
	return &SupportHandler{
		supportService: supportService,
	}
}

// Create godoc
//
//	@Summary		Open a support request
//	@Tags			Support
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.SupportRequestDTO	true	"Support request body"
//	@Success		201		{object}	dto.SupportDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/support [post]
func (h *SupportHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.SupportRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.supportService.Create(r.Context(), userID, req.Message)
	if err != nil {
		if errors.Is(err, supportservice.ErrEmptyMessage) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSupportDTO(created))
}

// GetRequests godoc
//
//	@Summary		List own support requests
//	@Tags			Support
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.SupportDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/support [get]
func (h *SupportHandler) GetRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	requests, err := h.supportService.GetRequests(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSupportListDTO(requests))
}
