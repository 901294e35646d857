// Package sms sends transactional messages through the Africa's Talking
// bulk messaging API.
package sms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/helapesa/helapesa/internal/config"
	"github.com/helapesa/helapesa/internal/metrics"
	"github.com/helapesa/helapesa/pkg/clients"
	"github.com/helapesa/helapesa/pkg/validate"
	"go.uber.org/zap"
)

var ErrDeliveryFailed = errors.New("sms delivery failed")

type HTTPClient interface {
	PostForm(ctx context.Context, url string, headers http.Header, form url.Values) (statusCode int, respBody []byte, err error)
}

type Client struct {
	url      string
	apiKey   string
	username string
	client   HTTPClient
}

func New(cfg *config.Config, client HTTPClient) *Client {
	if client == nil {
		client = clients.NewHTTPClient()
	}
	return &Client{
		url:      cfg.SMSAddress,
		apiKey:   cfg.SMSAPIKey,
		username: cfg.SMSUsername,
		client:   client,
	}
}

type sendResponse struct {
	SMSMessageData struct {
		Recipients []struct {
			Number     string `json:"number"`
			Status     string `json:"status"`
			StatusCode int    `json:"statusCode"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

// Send delivers a single message to the given phone number. The number is
// normalized to E.164 before it reaches the provider.
func (c *Client) Send(ctx context.Context, to, message string) error {
	form := url.Values{}
	form.Set("username", c.username)
	form.Set("to", validate.FormatE164(to))
	form.Set("message", message)

	headers := http.Header{}
	headers.Set("apiKey", c.apiKey)
	headers.Set("Accept", "application/json")

	statusCode, respBody, err := c.client.PostForm(ctx, c.url+"/version1/messaging", headers, form)
	if err != nil {
		metrics.SMSSent.WithLabelValues("error").Inc()
		return err
	}
	if statusCode >= http.StatusBadRequest {
		metrics.SMSSent.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: status %d", ErrDeliveryFailed, statusCode)
	}

	var resp sendResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("failed to parse sms response: %w", err)
	}
	for _, recipient := range resp.SMSMessageData.Recipients {
		// Africa's Talking reports 101 for accepted messages.
		if recipient.StatusCode >= 400 {
			zap.L().Error("sms rejected for recipient",
				zap.String("status", recipient.Status),
				zap.Int("statusCode", recipient.StatusCode))
			metrics.SMSSent.WithLabelValues("rejected").Inc()
			return fmt.Errorf("%w: %s", ErrDeliveryFailed, recipient.Status)
		}
	}

	metrics.SMSSent.WithLabelValues("ok").Inc()
	return nil
}
