package support

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/service/supportservice"
	"github.com/helapesa/helapesa/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*SupportHandler, *MockService) {
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

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		request      *http.Request
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "SuccessfulRequest",
			request: authedRequest(http.MethodPost, "/api/support", `{"message":"My deposit is missing"}`),
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, "My deposit is missing").
					Return(&domain.SupportRequest{ID: 6, UserID: 1, Message: "My deposit is missing", Status: domain.SupportPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "MissingUserID",
			request:      httptest.NewRequest(http.MethodPost, "/api/support", strings.NewReader(`{"message":"hi"}`)),
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "InvalidBody",
			request:      authedRequest(http.MethodPost, "/api/support", `{invalid`),
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "EmptyMessage",
			request: authedRequest(http.MethodPost, "/api/support", `{"message":""}`),
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, "").
					Return(nil, supportservice.ErrEmptyMessage)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			recorder := httptest.NewRecorder()
			handler.Create(recorder, tt.request)
			assert.Equal(t, tt.expectedCode, recorder.Code)
		})
	}
}

func TestGetRequestsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("ReturnsOwnRequests", func(t *testing.T) {
		service.EXPECT().
			GetRequests(gomock.Any(), 1).
			Return([]domain.SupportRequest{
				{ID: 6, UserID: 1, Message: "My deposit is missing", AdminReply: "Sorted", Status: domain.SupportResolved},
			}, nil)

		recorder := httptest.NewRecorder()
		handler.GetRequests(recorder, authedRequest(http.MethodGet, "/api/support", ""))
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Sorted")
	})

	t.Run("MissingUserID", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.GetRequests(recorder, httptest.NewRequest(http.MethodGet, "/api/support", nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
