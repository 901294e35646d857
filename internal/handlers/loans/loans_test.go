package loans

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/service/loanservice"
	"github.com/helapesa/helapesa/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*LoanHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
	return req.WithContext(ctx)
}

const applyBody = `{
	"fullName":"Wanjiku Kamau",
	"idNumber":"12345678",
	"whatsappNumber":"0712345678",
	"mpesaNumber":"0712345678",
	"nextOfKinName":"James Kamau",
	"nextOfKinContact":"0723456789",
	"incomeLevel":"20k-50k",
	"employmentStatus":"employed",
	"occupation":"Teacher",
	"contactPersonName":"Mary Njeri",
	"contactPersonPhone":"0734567890",
	"loanReason":"school fees"
}`

func TestApplyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		request      *http.Request
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "SuccessfulApplication",
			request: authedRequest(http.MethodPost, "/api/loans/apply", applyBody),
			prepareMock: func() {
				service.EXPECT().
					Apply(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, app *domain.LoanApplication) (*domain.LoanApplication, error) {
						assert.Equal(t, 1, app.UserID)
						assert.Equal(t, domain.Income20Kto50K, app.IncomeLevel)
						app.ID = 9
						app.LoanLimit = 17250
						app.Status = domain.ApplicationPending
						return app, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "MissingUserID",
			request:      httptest.NewRequest(http.MethodPost, "/api/loans/apply", strings.NewReader(applyBody)),
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "InvalidBody",
			request:      authedRequest(http.MethodPost, "/api/loans/apply", `{invalid`),
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "ValidationError",
			request: authedRequest(http.MethodPost, "/api/loans/apply", applyBody),
			prepareMock: func() {
				service.EXPECT().
					Apply(gomock.Any(), gomock.Any()).
					Return(nil, loanservice.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Apply(w, tt.request)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetApplicationsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("ReturnsList", func(t *testing.T) {
		service.EXPECT().GetApplications(gomock.Any(), 1).Return([]domain.LoanApplication{
			{ID: 1, UserID: 1, LoanLimit: 17250, Status: domain.ApplicationApproved},
		}, nil)

		w := httptest.NewRecorder()
		handler.GetApplications(w, authedRequest(http.MethodGet, "/api/loans", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "17250")
	})

	t.Run("MissingUserID", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetApplications(w, httptest.NewRequest(http.MethodGet, "/api/loans", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDisburseHandler(t *testing.T) {
	handler, service := NewMock(t)

	body := `{"applicationId":8,"amount":10000}`

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			prepareMock: func() {
				service.EXPECT().
					ProceedDisbursement(gomock.Any(), 1, 8, 10000.0).
					Return(&domain.LoanDisbursement{ID: 2, ApplicationID: 8, LoanAmount: 10000}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "NotFound",
			prepareMock: func() {
				service.EXPECT().
					ProceedDisbursement(gomock.Any(), 1, 8, 10000.0).
					Return(nil, loanservice.ErrApplicationNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "NotApplicant",
			prepareMock: func() {
				service.EXPECT().
					ProceedDisbursement(gomock.Any(), 1, 8, 10000.0).
					Return(nil, loanservice.ErrNotApplicant)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "OverLimit",
			prepareMock: func() {
				service.EXPECT().
					ProceedDisbursement(gomock.Any(), 1, 8, 10000.0).
					Return(nil, loanservice.ErrAmountOverLimit)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "SavingsGate",
			prepareMock: func() {
				service.EXPECT().
					ProceedDisbursement(gomock.Any(), 1, 8, 10000.0).
					Return(nil, loanservice.ErrInsufficientSavings)
			},
			expectedCode: http.StatusPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Disburse(w, authedRequest(http.MethodPost, "/api/loans/disburse", body))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
