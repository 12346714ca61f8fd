// Package client is the HTTP client for the interview API.
package client

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

const defaultTimeout = 90 * time.Second

// Client talks to a running interview API server.
type Client struct {
	baseURL string
	apiKey  string
	hc      *http.Client
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{timeout: defaultTimeout}
	for _, o := range opts {
		o.apply(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  cfg.apiKey,
		hc:      hc,
	}
}

// StartSession opens a new interview session and returns the opening question.
func (c *Client) StartSession(ctx context.Context) (Turn, error) {
	var out Turn
	err := c.do(ctx, http.MethodPost, "/api/v1/sessions", nil, &out)
	return out, err
}

// SendMessage delivers one human reply and returns the next transition.
func (c *Client) SendMessage(ctx context.Context, sessionID, reply string) (Turn, error) {
	var out Turn
	body := map[string]string{"reply": reply}
	err := c.do(ctx, http.MethodPost, "/api/v1/sessions/"+sessionID+"/messages", body, &out)
	return out, err
}

// StopSession ends the session early and returns the final assessment.
func (c *Client) StopSession(ctx context.Context, sessionID string) (Turn, error) {
	var out Turn
	err := c.do(ctx, http.MethodPost, "/api/v1/sessions/"+sessionID+"/stop", nil, &out)
	return out, err
}

// GetSession fetches the live status of a session.
func (c *Client) GetSession(ctx context.Context, sessionID string) (Session, error) {
	var out Session
	err := c.do(ctx, http.MethodGet, "/api/v1/sessions/"+sessionID, nil, &out)
	return out, err
}

// GetReport fetches the durable record of a finished interview.
func (c *Client) GetReport(ctx context.Context, sessionID string) (Report, error) {
	var out Report
	err := c.do(ctx, http.MethodGet, "/api/v1/sessions/"+sessionID+"/report", nil, &out)
	return out, err
}

// ListSessions fetches the ids of finished interviews.
func (c *Client) ListSessions(ctx context.Context) (SessionList, error) {
	var out SessionList
	err := c.do(ctx, http.MethodGet, "/api/v1/sessions", nil, &out)
	return out, err
}

// SetSelfReport attaches a questionnaire score in [1.0, 5.0] to a
// finished interview.
func (c *Client) SetSelfReport(ctx context.Context, sessionID string, score float64) error {
	body := map[string]float64{"score": score}
	return c.do(ctx, http.MethodPut, "/api/v1/sessions/"+sessionID+"/self-report", body, nil)
}

// HealthCheck fetches the server health report.
func (c *Client) HealthCheck(ctx context.Context) (Health, error) {
	var out Health
	err := c.do(ctx, http.MethodGet, "/health", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.apiError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) apiError(resp *http.Response) error {
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(data, &body)

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthorized, body.Message)
	}

	sentinels := map[string]error{
		"session_not_found":  ErrSessionNotFound,
		"session_terminated": ErrSessionTerminated,
		"session_busy":       ErrSessionBusy,
		"empty_reply":        ErrEmptyReply,
		"reply_too_long":     ErrReplyTooLong,
		"provider_error":     ErrProviderError,
	}
	if sentinel, ok := sentinels[body.Code]; ok {
		return sentinel
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       body.Code,
		Message:    body.Message,
	}
}
