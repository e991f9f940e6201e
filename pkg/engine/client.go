package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"
)

const (
	// DefaultTimeout bounds a single process call.
	DefaultTimeout = 30 * time.Second
	// DefaultHealthTimeout bounds a health probe, independent of the
	// main send path.
	DefaultHealthTimeout = 5 * time.Second
)

// Client talks to the remote recommendation engine over HTTP. One
// attempt per call, no retries; a timed-out turn is terminal.
type Client struct {
	baseURL       string
	timeout       time.Duration
	healthTimeout time.Duration
	httpClient    *http.Client
}

// NewClient creates a new engine client. A non-positive timeout falls
// back to the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:       baseURL,
		timeout:       timeout,
		healthTimeout: DefaultHealthTimeout,
		httpClient:    &http.Client{},
	}
}

// Process sends one user message plus conversation context to the
// engine. A returned error is always an *Error carrying the failure
// classification.
func (c *Client) Process(ctx context.Context, userID, message string, sess SessionContext) (*Result, error) {
	reqBody := ProcessRequest{
		UserID:    userID,
		Message:   message,
		Session:   sess,
		Timestamp: time.Now().UTC(),
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, NewError(FailureGeneric, fmt.Errorf("failed to marshal process request: %w", err))
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/api/process", c.baseURL)
	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, NewError(FailureGeneric, fmt.Errorf("failed to build process request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-User-ID", userID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, NewError(classifyTransport(err), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, NewError(FailureRateLimited, fmt.Errorf("engine answered %d", resp.StatusCode))
	case resp.StatusCode >= http.StatusInternalServerError:
		raw, _ := io.ReadAll(resp.Body)
		return nil, NewError(FailureServiceDown, fmt.Errorf("engine answered %d: %s", resp.StatusCode, string(raw)))
	case resp.StatusCode != http.StatusOK:
		raw, _ := io.ReadAll(resp.Body)
		return nil, NewError(FailureGeneric, fmt.Errorf("engine answered %d: %s", resp.StatusCode, string(raw)))
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, NewError(FailureGeneric, fmt.Errorf("failed to decode engine response: %w", err))
	}
	return &result, nil
}

// Health probes GET /health with its own short timeout. It never
// returns an error; failures surface as an unhealthy status.
func (c *Client) Health(ctx context.Context) HealthStatus {
	probeCtx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/health", c.baseURL)
	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, url, nil)
	if err != nil {
		return HealthStatus{Status: StatusUnhealthy, Detail: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return HealthStatus{Status: StatusUnhealthy, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return HealthStatus{Status: StatusUnhealthy, Detail: fmt.Sprintf("engine answered %d", resp.StatusCode)}
	}

	return HealthStatus{Status: StatusHealthy}
}

// classifyTransport maps a transport-level error to a failure kind.
// Connection refused wins over timeout per the failure taxonomy.
func classifyTransport(err error) FailureKind {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return FailureServiceDown
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}
	return FailureGeneric
}
