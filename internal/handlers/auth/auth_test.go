package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/service/authservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
	}{
		{
			name: "SuccessfulRegistration",
			body: `{"phoneNumber":"0712345678","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "0712345678", "secret123").
					Return(&domain.User{ID: 1, Login: "0712345678"}, nil)
				service.EXPECT().GenerateToken(gomock.Any(), 1).Return("token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token",
		},
		{
			name:         "InvalidBody",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "InvalidPhone",
			body: `{"phoneNumber":"12345","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "12345", "secret123").
					Return(nil, authservice.ErrInvalidPhoneNumber)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "UserExists",
			body: `{"phoneNumber":"0712345678","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "0712345678", "secret123").
					Return(nil, authservice.ErrUserExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "TokenFailure",
			body: `{"phoneNumber":"0712345678","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "0712345678", "secret123").
					Return(&domain.User{ID: 1}, nil)
				service.EXPECT().GenerateToken(gomock.Any(), 1).Return("", errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedRole string
	}{
		{
			name: "SuccessfulLogin",
			body: `{"phoneNumber":"0712345678","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "0712345678", "secret123").
					Return(&domain.User{ID: 1}, nil)
				service.EXPECT().GenerateToken(gomock.Any(), 1).Return("token", nil)
				service.EXPECT().Role(gomock.Any(), 1).Return(domain.RoleAdmin, nil)
			},
			expectedCode: http.StatusOK,
			expectedRole: domain.RoleAdmin,
		},
		{
			name: "InvalidCredentials",
			body: `{"phoneNumber":"0712345678","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "0712345678", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "InvalidBody",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedRole != "" {
				assert.Contains(t, w.Body.String(), tt.expectedRole)
			}
		})
	}
}

func TestRequestResetHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("SameResponseEitherWay", func(t *testing.T) {
		service.EXPECT().RequestPasswordReset(gomock.Any(), "0712345678").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/reset/request",
			strings.NewReader(`{"phoneNumber":"0712345678"}`))
		w := httptest.NewRecorder()

		handler.RequestReset(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "If the number is registered")
	})

	t.Run("InvalidPhone", func(t *testing.T) {
		service.EXPECT().RequestPasswordReset(gomock.Any(), "12345").
			Return(authservice.ErrInvalidPhoneNumber)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/reset/request",
			strings.NewReader(`{"phoneNumber":"12345"}`))
		w := httptest.NewRecorder()

		handler.RequestReset(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestResetPasswordHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "SuccessfulReset",
			body: `{"phoneNumber":"0712345678","code":"123456","newPassword":"newsecret"}`,
			prepareMock: func() {
				service.EXPECT().
					ResetPassword(gomock.Any(), "0712345678", "123456", "newsecret").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "BadCode",
			body: `{"phoneNumber":"0712345678","code":"999999","newPassword":"newsecret"}`,
			prepareMock: func() {
				service.EXPECT().
					ResetPassword(gomock.Any(), "0712345678", "999999", "newsecret").
					Return(authservice.ErrInvalidResetCode)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "WeakPassword",
			body: `{"phoneNumber":"0712345678","code":"123456","newPassword":"abc"}`,
			prepareMock: func() {
				service.EXPECT().
					ResetPassword(gomock.Any(), "0712345678", "123456", "abc").
					Return(authservice.ErrWeakPassword)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/reset", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ResetPassword(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
