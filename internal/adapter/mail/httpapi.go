package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// HTTPAPI sends mail through a JSON mail API authenticated with a bearer key.
type HTTPAPI struct {
	url        string
	key        string
	from       string
	httpClient *http.Client
	log        *slog.Logger
}

// NewHTTPAPI creates an HTTP API transport.
func NewHTTPAPI(url, key, from string, logger *slog.Logger) *HTTPAPI {
	return &HTTPAPI{
		url:        url,
		key:        key,
		from:       from,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.With("adapter", "mailapi"),
	}
}

// Name identifies the transport in logs and delivery errors.
func (h *HTTPAPI) Name() string { return "http-api" }

type apiRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// Send posts one message to the API. Any non-2xx status is a failure.
func (h *HTTPAPI) Send(ctx context.Context, m domain.MailMessage) error {
	body, err := json.Marshal(apiRequest{From: h.from, To: m.To, Subject: m.Subject, Text: m.Text, HTML: m.HTML})
	if err != nil {
		return fmt.Errorf("mailapi: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mailapi: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.key)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mailapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mailapi: unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	h.log.DebugContext(ctx, "mail api message sent", slog.String("to", m.To), slog.Int("status", resp.StatusCode))
	return nil
}
