package authsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the hirewire authentication service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates an auth service client with sane timeouts.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account and returns the principal plus a freshly
// minted access token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return c.postAuth(ctx, "/auth/register", req)
}

// Login authenticates an existing account.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	return c.postAuth(ctx, "/auth/login", req)
}

// Me resolves the principal behind an access token.
func (c *Client) Me(ctx context.Context, accessToken string) (*Principal, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/auth/me", nil)
	if err != nil {
		return nil, fmt.Errorf("authsdk: create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("authsdk: send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("authsdk: read response: %w", err)
	}

	if err := parseErrorResponse(resp, body); err != nil {
		return nil, err
	}

	var principal Principal
	if err := json.Unmarshal(body, &principal); err != nil {
		return nil, fmt.Errorf("authsdk: decode response: %w", err)
	}
	return &principal, nil
}

func (c *Client) postAuth(ctx context.Context, path string, payload any) (*AuthResponse, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("authsdk: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("authsdk: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("authsdk: send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("authsdk: read response: %w", err)
	}

	if err := parseErrorResponse(resp, body); err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := json.Unmarshal(body, &auth); err != nil {
		return nil, fmt.Errorf("authsdk: decode response: %w", err)
	}
	return &auth, nil
}
