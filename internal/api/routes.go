// routes.go - Route registration helpers
package api

import (
	"github.com/labstack/echo/v4"
	"github.com/pdf-checker/backend/internal/checker"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Checker *checker.Checker
	History History
	Version string
}

// Handlers holds all handler instances
type Handlers struct {
	API *Handler
	WS  *WebSocketHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	h := NewHandler(deps.Checker, deps.History, deps.Version)
	return &Handlers{
		API: h,
		WS:  NewWebSocketHandler(h),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	apiGroup := e.Group("/api")

	// Health check
	apiGroup.GET("/health", handlers.API.HandleHealth)

	// Live checks over WebSocket
	apiGroup.GET("/ws/checks", handlers.WS.HandleWebSocket)

	// File checks (metadata only, no file content)
	apiGroup.POST("/check", handlers.API.HandleCheckFile)

	// Check history
	checksGroup := apiGroup.Group("/checks")
	checksGroup.GET("/recent", handlers.API.HandleRecentChecks)
	checksGroup.GET("/recent/msgpack", handlers.API.HandleRecentChecksMsgpack)
	checksGroup.POST("/reset", handlers.API.HandleResetChecks)
	checksGroup.GET("/:id", handlers.API.HandleGetCheck)
	checksGroup.DELETE("/:id", handlers.API.HandleDeleteCheck)

	// Acceptance rules
	apiGroup.GET("/config/check-rules", handlers.API.HandleGetCheckRules)
	apiGroup.PUT("/config/check-rules", handlers.API.HandleUpdateCheckRules)
}
