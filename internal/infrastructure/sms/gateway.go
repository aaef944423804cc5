// Package sms implements the reminder SMS transport against an HTTP
// gateway. The gateway speaks a small JSON API: POST {to, from, message}
// with a bearer key, 2xx on acceptance.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lemlem-pharmacy/backend/internal/application/notification"
	"github.com/lemlem-pharmacy/backend/pkg/config"
	"github.com/lemlem-pharmacy/backend/pkg/logger"
)

// Compile-time check that GatewayClient implements the dispatch port.
var _ notification.SMSSender = (*GatewayClient)(nil)

// GatewayClient sends SMS through the configured HTTP gateway. With an
// empty gateway URL the client runs in dry mode: messages are logged and
// dropped, which keeps development setups working without credentials.
type GatewayClient struct {
	cfg        config.SMSConfig
	httpClient *http.Client
	log        *logger.Logger
}

// NewGatewayClient builds the SMS adapter.
func NewGatewayClient(cfg config.SMSConfig, log *logger.Logger) *GatewayClient {
	return &GatewayClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

type sendRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

type sendResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Send delivers one message. Gateway or network failures come back as
// errors so the dispatcher leaves the reminder scheduled for retry.
func (c *GatewayClient) Send(ctx context.Context, phoneNo, message string) error {
	if c.cfg.GatewayURL == "" {
		c.log.Info().Str("to", phoneNo).Msg("sms gateway not configured, message dropped")
		return nil
	}

	body, err := json.Marshal(sendRequest{To: phoneNo, From: c.cfg.Sender, Message: message})
	if err != nil {
		return fmt.Errorf("sms: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sms: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sms: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		var gw sendResponse
		if json.Unmarshal(raw, &gw) == nil && gw.Message != "" {
			return fmt.Errorf("sms: gateway %d: %s", resp.StatusCode, gw.Message)
		}
		return fmt.Errorf("sms: gateway %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
