package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/dto"
	"github.com/helapesa/helapesa/internal/service/authservice"
	"github.com/helapesa/helapesa/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, phone, password string) (*domain.User, error)
	Authenticate(ctx context.Context, phone, password string) (*domain.User, error)
	GenerateToken(ctx context.Context, userID int) (string, error)
	RequestPasswordReset(ctx context.Context, phone string) error
	ResetPassword(ctx context.Context, phone, code, newPassword string) error
	Role(ctx context.Context, userID int) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create an account keyed by phone number
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Phone number already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Register(r.Context(), req.PhoneNumber, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidPhoneNumber), errors.Is(err, authservice.ErrWeakPassword):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, authservice.ErrUserExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	token, err := h.authService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "User successfully registered",
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with phone number and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.PhoneNumber, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	role, err := h.authService.Role(r.Context(), user.ID)
	if err != nil {
		role = domain.RoleUser
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "User successfully authenticated",
		Role:    role,
	})
}

// RequestReset godoc
//
//	@Summary		Request a password reset code
//	@Description	Send a six digit reset code to the user's phone via SMS
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RequestResetDTO	true	"Reset request body"
//	@Success		200		{object}	dto.RequestResetResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/reset/request [post]
func (h *AuthHandler) RequestReset(w http.ResponseWriter, r *http.Request) {
	var req dto.RequestResetDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.authService.RequestPasswordReset(r.Context(), req.PhoneNumber); err != nil {
		if errors.Is(err, authservice.ErrInvalidPhoneNumber) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	// Same response whether or not the phone number is registered.
	utils.RespondWithJSON(w, http.StatusOK, dto.RequestResetResponseDTO{
		Message: "If the number is registered, a reset code has been sent",
	})
}

// ResetPassword godoc
//
//	@Summary		Reset password with a code
//	@Description	Verify the SMS code and set a new password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ResetPasswordDTO	true	"Reset body"
//	@Success		200		{object}	dto.ResetPasswordResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid or expired reset code"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/reset [post]
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	err := h.authService.ResetPassword(r.Context(), req.PhoneNumber, req.Code, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidResetCode):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, authservice.ErrWeakPassword):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ResetPasswordResponseDTO{
		Message: "Password successfully reset",
	})
}
