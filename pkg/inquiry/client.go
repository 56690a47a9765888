// Package inquiry provides a client for submitting contact inquiries to the
// MediBridge API. It mirrors the submission rules the server enforces so a
// rejected request never leaves the process: honeypot hits resolve locally
// and validation failures are surfaced before any network call.
package inquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/machao2024/medibridge-api/internal/models"
	apperrors "github.com/machao2024/medibridge-api/pkg/errors"
	"github.com/machao2024/medibridge-api/pkg/httpclient"
	"github.com/machao2024/medibridge-api/pkg/logger"
)

// Form carries the user-entered fields of an inquiry. Metadata fields
// (language, user agent, page URL, timestamp) are attached by the client.
type Form struct {
	Name     string
	Email    string
	Phone    string
	Country  string
	Need     string
	TWOV     bool
	Honeypot string
}

// Metadata describes the context a submission originated from.
type Metadata struct {
	Language  string
	UserAgent string
	PageURL   string
}

// Response is the relay endpoint's answer to a submission.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Client submits inquiries to the relay endpoint. A single in-flight
// submission is allowed at a time; concurrent calls fail fast with ErrBusy
// instead of queueing duplicate inquiries.
type Client struct {
	endpoint   string
	httpClient httpclient.Client
	busy       atomic.Bool
}

// NewClient creates an inquiry client targeting the given relay endpoint,
// e.g. "https://medical2025.2024-996.tech/api/v1/inquiry".
func NewClient(endpoint string, httpClient httpclient.Client) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Submit validates and sends one inquiry. Exactly one network call is made
// per accepted submission; there are no retries, so a failed relay must be
// resubmitted by the caller.
//
// Returns ErrBusy while a previous submission is still in flight.
func (c *Client) Submit(ctx context.Context, form Form, meta Metadata) (*Response, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return nil, apperrors.ErrBusy
	}
	defer c.busy.Store(false)

	req := c.buildRequest(form, meta)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Bots fill the hidden field; resolve as success without touching the
	// network so the sender cannot tell the submission was dropped.
	if req.IsSpam() {
		logger.Debug("inquiry suppressed by honeypot")
		return &Response{Success: true}, nil
	}

	return c.send(ctx, req)
}

func (c *Client) buildRequest(form Form, meta Metadata) *models.InquiryRequest {
	ts := time.Now().UTC().Format(time.RFC3339)

	return &models.InquiryRequest{
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		Country:   form.Country,
		Need:      form.Need,
		TWOV:      form.TWOV,
		Honeypot:  form.Honeypot,
		Language:  meta.Language,
		UserAgent: meta.UserAgent,
		PageURL:   meta.PageURL,
		Timestamp: ts,
	}
}

func (c *Client) send(ctx context.Context, req *models.InquiryRequest) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inquiry: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build inquiry request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("inquiry submission failed", zap.Error(err))
		return nil, apperrors.RelayError(err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return nil, fmt.Errorf("failed to read inquiry response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("inquiry rejected by server",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)))
		return nil, apperrors.RelayError(fmt.Sprintf("status %d: %s", resp.StatusCode, string(respBody)))
	}

	var result Response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode inquiry response: %w", err)
	}

	return &result, nil
}

// Busy reports whether a submission is currently in flight.
func (c *Client) Busy() bool {
	return c.busy.Load()
}
