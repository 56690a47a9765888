package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/machao2024/medibridge-api/internal/models"
	"github.com/machao2024/medibridge-api/internal/services"
	apperrors "github.com/machao2024/medibridge-api/pkg/errors"
)

type InquiryHandler struct {
	service services.InquiryServiceInterface
}

func NewInquiryHandler(service services.InquiryServiceInterface) *InquiryHandler {
	return &InquiryHandler{service: service}
}

// SubmitInquiry handles POST /api/v1/inquiry. Validation failures map to
// 400 with field details; relay failures and anything unexpected map to a
// generic 500 so relay internals never reach the caller.
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var req models.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.service.SubmitInquiry(c.Request.Context(), &req)
	if err != nil {
		switch {
		case apperrors.Is(err, apperrors.ErrValidation):
			respondErrorWithDetails(c, http.StatusBadRequest, "Name and email are required", ParseValidationErrors(err), err)
		case apperrors.Is(err, apperrors.ErrRelay):
			respondError(c, http.StatusInternalServerError, "Failed to send email", err)
		default:
			respondError(c, http.StatusInternalServerError, "Server error", err)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
