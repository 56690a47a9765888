package services

import (
	"context"

	"github.com/machao2024/medibridge-api/internal/models"
)

// InquiryServiceInterface defines the interface for inquiry submission operations
type InquiryServiceInterface interface {
	SubmitInquiry(ctx context.Context, req *models.InquiryRequest) (*models.InquiryResponse, error)
}
