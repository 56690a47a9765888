package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/machao2024/medibridge-api/config"
	"github.com/machao2024/medibridge-api/internal/models"
	"github.com/machao2024/medibridge-api/pkg/httpclient"
	"github.com/machao2024/medibridge-api/pkg/logger"
	"github.com/machao2024/medibridge-api/pkg/mailchannels"
	"github.com/machao2024/medibridge-api/pkg/metrics"
	"github.com/machao2024/medibridge-api/pkg/tracing"
)

// InquiryService relays contact form submissions to the transactional-mail
// API. Each submission is an independent at-most-once relay attempt: no
// persistence, no retries, no dedup.
type InquiryService struct {
	config     *config.Config
	mailClient *mailchannels.Client
}

// NewInquiryService creates a new inquiry service instance
func NewInquiryService(cfg *config.Config, httpClient httpclient.Client) *InquiryService {
	return &InquiryService{
		config:     cfg,
		mailClient: mailchannels.NewClient(cfg.Mail.Endpoint, httpClient),
	}
}

// SubmitInquiry validates a submission, suppresses honeypot spam, and
// dispatches one mail-relay call. Validation and relay failures come back
// as typed errors for the handler to map; a honeypot hit reports success
// without any network call so automated submitters learn nothing.
func (s *InquiryService) SubmitInquiry(ctx context.Context, req *models.InquiryRequest) (*models.InquiryResponse, error) {
	if err := req.Validate(); err != nil {
		metrics.InquirySubmissions.WithLabelValues("validation_failed").Inc()
		logger.Warn("Inquiry submission failed validation", zap.Error(err))
		return nil, err
	}

	if req.IsSpam() {
		metrics.InquirySubmissions.WithLabelValues("spam_suppressed").Inc()
		logger.Info("Inquiry suppressed by honeypot",
			zap.String("lang", req.Language),
			zap.String("user_agent", req.UserAgent))
		return &models.InquiryResponse{Success: true}, nil
	}

	msg := models.NewMailMessage(req, s.config.Mail.To, s.config.Mail.From, s.config.Mail.FromName)

	_, span := tracing.StartSpan(ctx, "mailchannels.send")
	err := s.mailClient.Send(msg)
	span.End()

	if err != nil {
		metrics.InquirySubmissions.WithLabelValues("relay_error").Inc()
		logger.Error("Failed to relay inquiry mail",
			zap.Error(err),
			zap.String("lang", req.Language))
		return nil, err
	}

	metrics.InquirySubmissions.WithLabelValues("accepted").Inc()
	logger.Info("Inquiry relayed",
		zap.String("lang", req.Language),
		zap.Bool("twov", req.TWOV))
	return &models.InquiryResponse{Success: true}, nil
}
