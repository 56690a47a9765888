package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_Healthcheck(t *testing.T) {
	handler := NewHealthHandler(func() bool { return true })
	router := gin.New()
	router.GET("/healthcheck", handler.Healthcheck)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/healthcheck", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-cache, no-store, max-age=0, must-revalidate", w.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Healthcheck_LocalesNotReady(t *testing.T) {
	handler := NewHealthHandler(func() bool { return false })
	router := gin.New()
	router.GET("/healthcheck", handler.Healthcheck)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/healthcheck", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable","reason":"locale table not initialized"}`, w.Body.String())
}
