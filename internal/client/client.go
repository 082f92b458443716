// Package client is the Go consumer of the booking API. It is used by the
// kiosk and bot frontends and keeps a local view of the member's bookings.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nicholasmacaskill/east-app-hongkong/internal/domain"
	"github.com/nicholasmacaskill/east-app-hongkong/internal/handler/dto"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Register books the member onto a session. A booking that already exists
// surfaces as domain.ErrAlreadyRegistered so callers can treat it as state,
// not as a failure.
func (c *Client) Register(ctx context.Context, userID string, sessionID int64) error {
	return c.mutate(ctx, http.MethodPost, userID, sessionID)
}

// Cancel removes the member's booking. Cancelling a booking that does not
// exist succeeds.
func (c *Client) Cancel(ctx context.Context, userID string, sessionID int64) error {
	return c.mutate(ctx, http.MethodDelete, userID, sessionID)
}

func (c *Client) mutate(ctx context.Context, method, userID string, sessionID int64) error {
	body, err := json.Marshal(dto.RegisterRequest{UserID: userID, SessionID: sessionID})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/register", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusConflict:
		return domain.ErrAlreadyRegistered
	default:
		return decodeError(resp)
	}
}

// Schedule fetches the member's booked sessions, sorted by start time.
func (c *Client) Schedule(ctx context.Context, userID string) ([]*domain.Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/my-schedule?userId="+userID, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var sessions []*domain.Session
	if err := json.NewDecoder(resp.Body).Decode(&sessions); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}

	return sessions, nil
}

func decodeError(resp *http.Response) error {
	var apiErr dto.ErrorResponse
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, apiErr.Error)
	}
	return fmt.Errorf("api error (status %d)", resp.StatusCode)
}
