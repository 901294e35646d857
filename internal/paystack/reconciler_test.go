package paystack

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/helapesa/helapesa/internal/config"
	"github.com/helapesa/helapesa/internal/pg"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockDisbursementRepo, *MockSavingsRepo, *pg.MockTXManager, *MockPublisher, *MockHTTPClient) {
	cfg := &config.Config{
		PaystackAddress:   "https://api.paystack.co",
		PaystackSecretKey: "sk_test_secret",
	}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	disbursementRepo := NewMockDisbursementRepo(ctrl)
	savingsRepo := NewMockSavingsRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	publisher := NewMockPublisher(ctrl)
	client := NewMockHTTPClient(ctrl)
	service := New(cfg, disbursementRepo, savingsRepo, txManager, publisher, client)
	return service, disbursementRepo, savingsRepo, txManager, publisher, client
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestService_VerifySignature(t *testing.T) {
	service, _, _, _, _, _ := NewMock(t)
	body := []byte(`{"event":"charge.success"}`)

	assert.True(t, service.VerifySignature(body, sign("sk_test_secret", body)))
	assert.False(t, service.VerifySignature(body, sign("wrong_secret", body)))
	assert.False(t, service.VerifySignature(body, "not-a-digest"))
	// Signature is over the exact raw bytes.
	assert.False(t, service.VerifySignature([]byte(`{"event":"charge.success" }`), sign("sk_test_secret", body)))
}

func TestService_HandleEvent_SavingsCredit(t *testing.T) {
	service, _, savingsRepo, txManager, publisher, _ := NewMock(t)
	ctx := context.Background()
	body := []byte(`{"event":"charge.success","data":{"reference":"hela_savings_7_abc","amount":150000,"status":"success"}}`)

	txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
	savingsRepo.EXPECT().MarkVerifiedByCode(ctx, "hela_savings_7_abc").Return(7, 1500.0, true, nil)
	savingsRepo.EXPECT().CreditBalance(ctx, 7, 1500.0)
	publisher.EXPECT().Publish("savings_deposits", "UPDATE", 7)
	publisher.EXPECT().Publish("user_savings", "UPDATE", 7)

	err := service.HandleEvent(ctx, body)
	assert.NoError(t, err)
}

func TestService_HandleEvent_DuplicateDeliveryIsNoop(t *testing.T) {
	service, _, savingsRepo, txManager, _, _ := NewMock(t)
	ctx := context.Background()
	body := []byte(`{"event":"charge.success","data":{"reference":"hela_savings_7_abc","amount":150000}}`)

	txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
	// Already verified: no credit, no publish.
	savingsRepo.EXPECT().MarkVerifiedByCode(ctx, "hela_savings_7_abc").Return(0, 0.0, false, nil)

	err := service.HandleEvent(ctx, body)
	assert.NoError(t, err)
}

func TestService_HandleEvent_MissingAmountFallsBackToRow(t *testing.T) {
	service, _, savingsRepo, txManager, publisher, _ := NewMock(t)
	ctx := context.Background()
	body := []byte(`{"event":"charge.success","data":{"reference":"hela_savings_3_xyz"}}`)

	txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
	savingsRepo.EXPECT().MarkVerifiedByCode(ctx, "hela_savings_3_xyz").Return(3, 800.0, true, nil)
	savingsRepo.EXPECT().CreditBalance(ctx, 3, 800.0)
	publisher.EXPECT().Publish("savings_deposits", "UPDATE", 3)
	publisher.EXPECT().Publish("user_savings", "UPDATE", 3)

	err := service.HandleEvent(ctx, body)
	assert.NoError(t, err)
}

func TestService_HandleEvent_DisbursementVerified(t *testing.T) {
	service, disbursementRepo, _, _, _, _ := NewMock(t)
	ctx := context.Background()
	body := []byte(`{"event":"charge.success","data":{"reference":"hela_12_abc","amount":50000}}`)

	disbursementRepo.EXPECT().MarkPaymentVerified(ctx, "hela_12_abc").Return(true, nil)

	err := service.HandleEvent(ctx, body)
	assert.NoError(t, err)
}

func TestService_HandleEvent_ChargeFailed(t *testing.T) {
	service, _, savingsRepo, _, _, _ := NewMock(t)
	ctx := context.Background()
	body := []byte(`{"event":"charge.failed","data":{"reference":"hela_savings_7_abc","gateway_response":"Declined"}}`)

	savingsRepo.EXPECT().MarkFailedByCode(ctx, "hela_savings_7_abc").Return(nil)

	err := service.HandleEvent(ctx, body)
	assert.NoError(t, err)
}

func TestService_HandleEvent_UnknownEventIgnored(t *testing.T) {
	service, _, _, _, _, _ := NewMock(t)

	err := service.HandleEvent(context.Background(), []byte(`{"event":"transfer.success","data":{"reference":"x"}}`))
	assert.NoError(t, err)
}

func TestService_HandleEvent_MalformedBody(t *testing.T) {
	service, _, _, _, _, _ := NewMock(t)

	err := service.HandleEvent(context.Background(), []byte(`{not json`))
	assert.Error(t, err)
}
