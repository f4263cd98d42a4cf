// interfaces.go - Handler and collaborator interfaces for clean separation of concerns
package api

import (
	"github.com/labstack/echo/v4"
	"github.com/pdf-checker/backend/internal/models"
)

// CheckHandler handles file check operations
type CheckHandler interface {
	HandleCheckFile(c echo.Context) error
	HandleRecentChecks(c echo.Context) error
	HandleRecentChecksMsgpack(c echo.Context) error
	HandleGetCheck(c echo.Context) error
	HandleDeleteCheck(c echo.Context) error
	HandleResetChecks(c echo.Context) error
}

// RulesHandler handles acceptance-rule configuration
type RulesHandler interface {
	HandleGetCheckRules(c echo.Context) error
	HandleUpdateCheckRules(c echo.Context) error
}

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}

// History defines the check-history operations the handlers need.
// This allows mocking in tests.
type History interface {
	Record(f models.SelectedFile, o models.Outcome, d *models.FileDetails) *models.CheckRecord
	Get(id string) (*models.CheckRecord, bool)
	Recent(limit int) []*models.CheckRecord
	Delete(id string) bool
	Clear()
}

var (
	_ CheckHandler  = (*Handler)(nil)
	_ RulesHandler  = (*Handler)(nil)
	_ HealthHandler = (*Handler)(nil)
)
