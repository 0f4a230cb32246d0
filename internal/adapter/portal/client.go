// Package portal is the HTTP client for the customer portal, the downstream
// source of customer-facing notifications.
package portal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// ErrNotAvailable is returned when the portal does not offer notifications
// for a customer (HTTP 404). It wraps domain.ErrNotFound.
var ErrNotAvailable = fmt.Errorf("portal: notifications endpoint: %w", domain.ErrNotFound)

// Notification is one item of the portal feed.
type Notification struct {
	ExternalID string    `json:"id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Client fetches customer notifications from the portal API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a portal client. An empty baseURL yields a client whose
// every fetch reports ErrNotAvailable.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "portal"),
	}
}

// EndpointKey is the cooldown key for a customer's notification endpoint.
func EndpointKey(customerID uuid.UUID) string {
	return "portal:notifications:" + customerID.String()
}

// FetchNotifications returns the portal feed of a customer.
// A 404 yields ErrNotAvailable; network errors and 5xx are returned as-is.
func (c *Client) FetchNotifications(ctx context.Context, customerID uuid.UUID) ([]Notification, error) {
	if c.baseURL == "" {
		return nil, ErrNotAvailable
	}
	reqURL := c.baseURL + "/customers/" + url.PathEscape(customerID.String()) + "/notifications"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("portal: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "portal request failed",
			slog.String("customer_id", customerID.String()), slog.String("error", err.Error()))
		return nil, fmt.Errorf("portal: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotAvailable
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("portal: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("portal: read body: %w", err)
	}

	var items []Notification
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("portal: decode json: %w", err)
	}

	c.log.DebugContext(ctx, "portal response",
		slog.String("customer_id", customerID.String()),
		slog.Int("items", len(items)),
	)
	return items, nil
}

// IsPermanent reports whether err means the endpoint does not exist rather
// than being temporarily unreachable.
func IsPermanent(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
