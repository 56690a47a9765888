package mailchannels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	apperrors "github.com/machao2024/medibridge-api/pkg/errors"
	"github.com/machao2024/medibridge-api/pkg/httpclient"
	"github.com/machao2024/medibridge-api/pkg/logger"
	"github.com/machao2024/medibridge-api/pkg/metrics"
)

// Address is a MailChannels address entry
type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Personalization is a MailChannels recipient group
type Personalization struct {
	To []Address `json:"to"`
}

// Content is one body part of a MailChannels message
type Content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Message is the MailChannels send payload. It is write-only: composed per
// submission, dispatched once, discarded.
type Message struct {
	Personalizations []Personalization `json:"personalizations"`
	From             Address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []Content         `json:"content"`
}

// Client sends messages through the MailChannels transactional API
type Client struct {
	endpoint   string
	httpClient httpclient.Client
}

// NewClient creates a new MailChannels client
func NewClient(endpoint string, httpClient httpclient.Client) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Send dispatches one message to the relay. A non-2xx relay status returns
// apperrors.ErrRelay carrying the relay's response text; that text is for
// server logs only and must never be forwarded to end users.
func (c *Client) Send(msg *Message) error {
	start := time.Now()

	payload, err := json.Marshal(msg)
	if err != nil {
		metrics.MailRelayTotal.WithLabelValues("send", "error").Inc()
		return fmt.Errorf("failed to encode mail message: %w", err)
	}

	resp, err := c.httpClient.Post(c.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		metrics.MailRelayTotal.WithLabelValues("send", "error").Inc()
		metrics.MailRelayDuration.WithLabelValues("send", "error").Observe(metrics.MeasureDuration(start))
		return fmt.Errorf("failed to call mail relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Read the relay's diagnostic text for the operator log
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		if readErr != nil {
			body = []byte(fmt.Sprintf("(unreadable response body: %v)", readErr))
		}

		metrics.MailRelayTotal.WithLabelValues("send", "error").Inc()
		metrics.MailRelayDuration.WithLabelValues("send", "error").Observe(metrics.MeasureDuration(start))
		return apperrors.RelayError(fmt.Sprintf("status %d: %s", resp.StatusCode, string(body)))
	}

	duration := metrics.MeasureDuration(start)
	metrics.MailRelayTotal.WithLabelValues("send", "success").Inc()
	metrics.MailRelayDuration.WithLabelValues("send", "success").Observe(duration)
	logger.LogAPICall("mailchannels", "send", "success", duration)

	return nil
}
