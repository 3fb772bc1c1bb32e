// Package authclient talks to the external authentication service. The
// service owns credential checks and token issuance; this client only
// forwards a login and relays the outcome.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// UserPayload is the user record returned by the auth service. Role is kept
// as a raw string here; enumeration membership is the session manager's
// concern.
type UserPayload struct {
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// LoginResult is the successful login response.
type LoginResult struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

// UpstreamError is a non-2xx answer from the auth service. Message is the
// human-readable reason, surfaced to the user as-is.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("auth service returned %d: %s", e.StatusCode, e.Message)
}

// Client is an HTTP client for the auth service.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a Client with the given base URL and request timeout.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type loginPayload struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// Login posts credentials to the auth service. Any non-2xx status becomes an
// *UpstreamError carrying the service's message; transport failures are
// returned as-is.
func (c *Client) Login(ctx context.Context, employeeID, password string) (*LoginResult, error) {
	body, err := json.Marshal(loginPayload{EmployeeID: employeeID, Password: password})
	if err != nil {
		return nil, fmt.Errorf("marshal login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call auth service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var fail errorPayload
		if err := json.NewDecoder(resp.Body).Decode(&fail); err != nil || fail.Message == "" {
			fail.Message = "authentication failed"
		}
		c.log.Debug().
			Int("status", resp.StatusCode).
			Str("employee_id", employeeID).
			Msg("Auth service rejected login")
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: fail.Message}
	}

	var result LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return &result, nil
}
