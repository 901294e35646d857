// Package chat proxies the in-app assistant to an upstream AI gateway,
// injecting the product system prompt and streaming the reply through
// unchanged.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/helapesa/helapesa/internal/config"
	"go.uber.org/zap"
)

var (
	ErrRateLimited     = errors.New("rate limits exceeded")
	ErrPaymentRequired = errors.New("payment required")
	ErrGateway         = errors.New("ai gateway error")
)

const model = "google/gemini-2.5-flash"

const systemPrompt = `You are the Hela Pesa assistant - a friendly, professional virtual assistant for Hela Pesa, a mobile loan application service in Kenya.

ABOUT HELA PESA:
- Hela Pesa provides quick mobile loans with personalized limits between KES 6,200 and KES 30,000
- Loans are disbursed directly to M-Pesa after approval
- Loan limits are calculated from the applicant's income level and employment status

LOAN APPLICATION PROCESS:
1. Sign up or log in with a phone number
2. Complete the loan application form (personal details, employment info, next of kin)
3. The system calculates a personalized loan limit
4. Select the desired loan amount
5. Meet the savings requirement (minimum KES 500 verified savings balance)
6. Receive funds via M-Pesa

SAVINGS & DEPOSITS:
- Deposits are made via M-Pesa; paste the confirmation message in the app or pay through the in-app prompt
- Deposits are verified before they count toward the balance
- Minimum deposit is KES 100; minimum withdrawal is KES 500

GUIDELINES:
- Be friendly, professional, and helpful
- Keep answers concise but informative
- For account balances, transaction details, or personal data, direct users to their dashboard or human support
- Never share or ask for passwords, PINs, or OTPs
- For account-specific or urgent issues, tell users to open a support request in the app
- Use Kenyan Shilling (KES or KSh) for currency references`

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Service struct {
	url    string
	apiKey string
	client Doer
}

func New(cfg *config.Config, client Doer) *Service {
	if client == nil {
		// Streaming completions outlive a normal request timeout.
		client = &http.Client{Timeout: 5 * time.Minute}
	}
	return &Service{url: cfg.ChatAddress, apiKey: cfg.ChatAPIKey, client: client}
}

// Stream opens a streaming completion for the conversation and returns the
// upstream event stream for the caller to copy to the client. The caller
// owns closing the returned reader.
func (s *Service) Stream(ctx context.Context, messages []Message) (io.ReadCloser, error) {
	payload := completionRequest{
		Model:    model,
		Messages: append([]Message{{Role: "system", Content: systemPrompt}}, messages...),
		Stream:   true,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, nil
	case http.StatusTooManyRequests:
		resp.Body.Close()
		return nil, ErrRateLimited
	case http.StatusPaymentRequired:
		resp.Body.Close()
		return nil, ErrPaymentRequired
	default:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		zap.L().Error("ai gateway error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", detail))
		return nil, fmt.Errorf("%w: status %d", ErrGateway, resp.StatusCode)
	}
}
