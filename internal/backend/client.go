package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/medsupply/orderflow/internal/config"
	"github.com/medsupply/orderflow/internal/domain"
)

// Client talks to the distribution backend's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a backend API client
func NewClient(cfg config.BackendConfig, logger *zap.Logger) *Client {
	// Normalize base URL - drop trailing slashes
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// do executes one request against the backend and decodes the JSON response
// into out when out is non-nil. Failures come back as *domain.RequestError
// tagged with op, so the surfaced message names the operation that failed.
func (c *Client) do(ctx context.Context, op, method, path, authToken string, headers map[string]string, body, out interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+authToken)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		kind := domain.KindNetwork
		if errors.Is(err, context.DeadlineExceeded) || (ctx.Err() != nil && errors.Is(ctx.Err(), context.DeadlineExceeded)) {
			kind = domain.KindTimeout
		}
		c.logger.Error("Backend request failed",
			zap.String("op", op),
			zap.String("url", url),
			zap.Error(err),
		)
		return &domain.RequestError{Op: op, Kind: kind, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.RequestError{Op: op, Kind: domain.KindNetwork, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The error body is deliberately not parsed; the status code is the
		// whole message for this flow.
		c.logger.Error("Backend rejected request",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
		)
		return &domain.RequestError{Op: op, Kind: domain.KindServer, Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}
