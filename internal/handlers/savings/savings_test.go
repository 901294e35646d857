package savings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/service/savingsservice"
	"github.com/helapesa/helapesa/internal/service/withdrawalservice"
	"github.com/helapesa/helapesa/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*SavingsHandler, *MockService, *MockWithdrawalService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	withdrawalService := NewMockWithdrawalService(ctrl)
	handler := New(service, withdrawalService)
	defer ctrl.Finish()
	return handler, service, withdrawalService
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
	return req.WithContext(ctx)
}

func TestSubmitDepositHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	body := `{"amount":500,"mpesaMessage":"QGH7TY45KL Confirmed. Ksh500.00 sent to Hela Pesa"}`

	tests := []struct {
		name         string
		request      *http.Request
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Created",
			request: authedRequest(http.MethodPost, "/api/savings/deposits", body),
			prepareMock: func() {
				service.EXPECT().
					SubmitDeposit(gomock.Any(), 1, 500.0, gomock.Any()).
					Return(&domain.SavingsDeposit{ID: 3, UserID: 1, Amount: 500, TransactionCode: "QGH7TY45KL"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "TooSmall",
			request: authedRequest(http.MethodPost, "/api/savings/deposits", `{"amount":50,"mpesaMessage":"mpesa"}`),
			prepareMock: func() {
				service.EXPECT().
					SubmitDeposit(gomock.Any(), 1, 50.0, "mpesa").
					Return(nil, savingsservice.ErrAmountTooSmall)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "MissingUserID",
			request:      httptest.NewRequest(http.MethodPost, "/api/savings/deposits", strings.NewReader(body)),
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.SubmitDeposit(w, tt.request)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().GetBalance(gomock.Any(), 1).
		Return(&domain.UserSavings{UserID: 1, Balance: 1200}, nil)

	w := httptest.NewRecorder()
	handler.GetBalance(w, authedRequest(http.MethodGet, "/api/savings/balance", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1200")
}

func TestWithdrawHandler(t *testing.T) {
	handler, _, withdrawalService := NewMock(t)

	body := `{"amount":1000,"phoneNumber":"0712345678"}`

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			prepareMock: func() {
				withdrawalService.EXPECT().
					Request(gomock.Any(), 1, 1000.0, "0712345678").
					Return(&domain.Withdrawal{ID: 5, UserID: 1, Amount: 1000, Status: domain.WithdrawalPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "InsufficientBalance",
			prepareMock: func() {
				withdrawalService.EXPECT().
					Request(gomock.Any(), 1, 1000.0, "0712345678").
					Return(nil, withdrawalservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "BelowMinimum",
			prepareMock: func() {
				withdrawalService.EXPECT().
					Request(gomock.Any(), 1, 1000.0, "0712345678").
					Return(nil, withdrawalservice.ErrAmountTooSmall)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Withdraw(w, authedRequest(http.MethodPost, "/api/savings/withdrawals", body))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetWithdrawalsHandler(t *testing.T) {
	handler, _, withdrawalService := NewMock(t)

	withdrawalService.EXPECT().GetWithdrawals(gomock.Any(), 1).
		Return([]domain.Withdrawal{{ID: 5, UserID: 1, Amount: 1000}}, nil)

	w := httptest.NewRecorder()
	handler.GetWithdrawals(w, authedRequest(http.MethodGet, "/api/savings/withdrawals", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1000")
}
