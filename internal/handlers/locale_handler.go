package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/machao2024/medibridge-api/internal/locale"
	"github.com/machao2024/medibridge-api/pkg/metrics"
)

type LocaleHandler struct {
	table *locale.Table
}

func NewLocaleHandler(table *locale.Table) *LocaleHandler {
	return &LocaleHandler{table: table}
}

// GetLocale handles GET /api/v1/locale/:lang. Unknown codes resolve to the
// default dictionary, so this endpoint never 404s on a language.
func (h *LocaleHandler) GetLocale(c *gin.Context) {
	code, dict, match := h.table.Lookup(c.Param("lang"))

	// Label with the served code, not the raw input, to keep cardinality bounded
	metrics.LocaleResolutions.WithLabelValues(code, string(match)).Inc()

	c.Header("Content-Language", code)
	c.JSON(http.StatusOK, dict)
}

// ListLocales handles GET /api/v1/locales
func (h *LocaleHandler) ListLocales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default": h.table.Default(),
		"locales": h.table.Codes(),
	})
}
