package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/machao2024/medibridge-api/pkg/errors"
	"github.com/machao2024/medibridge-api/pkg/mailchannels"
)

// validate is shared by every tier so the client-side pre-check and the
// relay endpoint cannot drift apart on what counts as a valid submission.
var validate = validator.New()

// InquiryRequest represents a contact form submission. Honeypot is a hidden
// input that legitimate users never fill; email is required but not strictly
// parsed, matching what the site form enforces.
type InquiryRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone,omitempty"`
	Country  string `json:"country,omitempty"`
	Need     string `json:"need,omitempty"`
	TWOV     bool   `json:"twov,omitempty"`
	Honeypot string `json:"hp,omitempty"`

	// Contextual metadata captured at submission time
	Language  string `json:"lang,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	PageURL   string `json:"url,omitempty"`
	Timestamp string `json:"ts,omitempty"`
}

// Validate applies the shared required-field rule. The returned error wraps
// both apperrors.ErrValidation and the underlying validator errors so
// callers can branch with errors.Is and still extract field details.
func (r *InquiryRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return nil
}

// IsSpam reports whether the honeypot field was populated.
func (r *InquiryRequest) IsSpam() bool {
	return strings.TrimSpace(r.Honeypot) != ""
}

// InquiryResponse represents the response after submitting an inquiry
type InquiryResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

const (
	placeholderNotProvided = "Not provided"
	placeholderUnknown     = "Unknown"
)

// NewMailMessage projects an inquiry into a MailChannels payload. Optional
// fields render a literal placeholder so the operator mailbox always shows
// the full field list.
func NewMailMessage(req *InquiryRequest, to, from, fromName string) *mailchannels.Message {
	return &mailchannels.Message{
		Personalizations: []mailchannels.Personalization{
			{To: []mailchannels.Address{{Email: to}}},
		},
		From: mailchannels.Address{
			Email: from,
			Name:  fromName,
		},
		Subject: fmt.Sprintf("New Inquiry from %s - MediBridge Global", req.Name),
		Content: []mailchannels.Content{
			{Type: "text/plain", Value: buildMailBody(req)},
		},
	}
}

func buildMailBody(req *InquiryRequest) string {
	var b strings.Builder

	b.WriteString("New Inquiry from MediBridge Global\n\n")
	fmt.Fprintf(&b, "Name: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	fmt.Fprintf(&b, "Phone: %s\n", orPlaceholder(req.Phone, placeholderNotProvided))
	fmt.Fprintf(&b, "Country: %s\n", orPlaceholder(req.Country, placeholderNotProvided))
	fmt.Fprintf(&b, "TWOV Assessment: %s\n", yesNo(req.TWOV))
	fmt.Fprintf(&b, "Language: %s\n", orPlaceholder(req.Language, "en"))
	b.WriteString("\nNeeds:\n")
	b.WriteString(orPlaceholder(req.Need, placeholderNotProvided))
	b.WriteString("\n\n---\n")
	fmt.Fprintf(&b, "Submitted at: %s\n", orPlaceholder(req.Timestamp, time.Now().UTC().Format(time.RFC3339)))
	fmt.Fprintf(&b, "User Agent: %s\n", orPlaceholder(req.UserAgent, placeholderUnknown))
	fmt.Fprintf(&b, "Page URL: %s", orPlaceholder(req.PageURL, placeholderUnknown))

	return b.String()
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
