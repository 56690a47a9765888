package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/machao2024/medibridge-api/internal/models"
	apperrors "github.com/machao2024/medibridge-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockInquiryService is a mock implementation of services.InquiryServiceInterface
type MockInquiryService struct {
	mock.Mock
}

func (m *MockInquiryService) SubmitInquiry(ctx context.Context, req *models.InquiryRequest) (*models.InquiryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InquiryResponse), args.Error(1)
}

func setupInquiryRouter(service *MockInquiryService) *gin.Engine {
	handler := NewInquiryHandler(service)
	router := gin.New()
	router.POST("/api/v1/inquiry", handler.SubmitInquiry)
	return router
}

func postInquiry(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/inquiry", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestInquiryHandler_SubmitInquiry_Success(t *testing.T) {
	mockService := new(MockInquiryService)
	router := setupInquiryRouter(mockService)

	mockService.On("SubmitInquiry", mock.Anything, mock.AnythingOfType("*models.InquiryRequest")).
		Return(&models.InquiryResponse{Success: true}, nil).Once()

	w := postInquiry(router, `{"name":"Li Wei","email":"li.wei@example.com","need":"screening"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestInquiryHandler_SubmitInquiry_PassesDecodedRequest(t *testing.T) {
	mockService := new(MockInquiryService)
	router := setupInquiryRouter(mockService)

	var got *models.InquiryRequest
	mockService.On("SubmitInquiry", mock.Anything, mock.AnythingOfType("*models.InquiryRequest")).
		Run(func(args mock.Arguments) {
			got = args.Get(1).(*models.InquiryRequest)
		}).
		Return(&models.InquiryResponse{Success: true}, nil).Once()

	w := postInquiry(router, `{"name":"Anna","email":"anna@example.de","hp":"","twov":true,"lang":"en","url":"https://example.com/","ts":"2026-08-28T10:00:00Z"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "Anna", got.Name)
	assert.True(t, got.TWOV)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "https://example.com/", got.PageURL)
	assert.Equal(t, "2026-08-28T10:00:00Z", got.Timestamp)
}

func TestInquiryHandler_SubmitInquiry_InvalidJSON(t *testing.T) {
	mockService := new(MockInquiryService)
	router := setupInquiryRouter(mockService)

	w := postInquiry(router, `{"name": "Li Wei"`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request", resp["error"])
	mockService.AssertNotCalled(t, "SubmitInquiry")
}

func TestInquiryHandler_SubmitInquiry_ValidationError(t *testing.T) {
	mockService := new(MockInquiryService)
	router := setupInquiryRouter(mockService)

	validationErr := (&models.InquiryRequest{}).Validate()
	require.Error(t, validationErr)

	mockService.On("SubmitInquiry", mock.Anything, mock.Anything).
		Return(nil, validationErr).Once()

	w := postInquiry(router, `{"phone":"+86 123"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string `json:"error"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Name and email are required", resp.Error)
	require.Len(t, resp.Details, 2)
	assert.Equal(t, "Name", resp.Details[0].Field)
	assert.Equal(t, "Email", resp.Details[1].Field)
}

func TestInquiryHandler_SubmitInquiry_RelayError(t *testing.T) {
	mockService := new(MockInquiryService)
	router := setupInquiryRouter(mockService)

	mockService.On("SubmitInquiry", mock.Anything, mock.Anything).
		Return(nil, apperrors.RelayError("status 502: upstream unavailable")).Once()

	w := postInquiry(router, `{"name":"Li Wei","email":"li.wei@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// Relay diagnostics stay in server logs; the caller gets a generic message
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to send email", resp["error"])
	assert.NotContains(t, w.Body.String(), "upstream unavailable")
}

func TestInquiryHandler_SubmitInquiry_UnexpectedError(t *testing.T) {
	mockService := new(MockInquiryService)
	router := setupInquiryRouter(mockService)

	mockService.On("SubmitInquiry", mock.Anything, mock.Anything).
		Return(nil, assert.AnError).Once()

	w := postInquiry(router, `{"name":"Li Wei","email":"li.wei@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Server error", resp["error"])
}
