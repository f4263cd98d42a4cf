package api

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/pdf-checker/backend/internal/checker"
	"github.com/pdf-checker/backend/internal/models"
)

// Handler handles API requests.
type Handler struct {
	mu      sync.RWMutex
	checker *checker.Checker
	history History
	version string
}

// NewHandler creates a new API handler. history must be non-nil; the
// check and history routes record into and read from it.
func NewHandler(c *checker.Checker, history History, version string) *Handler {
	if c == nil {
		c = checker.New(nil)
	}
	return &Handler{
		checker: c,
		history: history,
		version: version,
	}
}

// Checker returns the active checker instance.
func (h *Handler) Checker() *checker.Checker {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.checker
}

// HandleHealth returns server health status.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// HandleGetCheckRules returns the active acceptance rules.
func (h *Handler) HandleGetCheckRules(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Checker().Rules())
}

// HandleUpdateCheckRules replaces the acceptance rules. Partial rules
// are filled with the PDF-only defaults.
func (h *Handler) HandleUpdateCheckRules(c echo.Context) error {
	var rules models.CheckRules
	if err := c.Bind(&rules); err != nil {
		return NewBadRequestError("invalid rules body", err)
	}

	h.mu.Lock()
	h.checker = checker.New(&rules)
	updated := h.checker.Rules()
	h.mu.Unlock()

	return c.JSON(http.StatusOK, updated)
}
