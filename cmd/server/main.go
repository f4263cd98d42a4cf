package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pdf-checker/backend/internal/api"
	"github.com/pdf-checker/backend/internal/checker"
	"github.com/pdf-checker/backend/internal/config"
	"github.com/pdf-checker/backend/internal/history"
	"github.com/pdf-checker/backend/internal/models"
	"github.com/pdf-checker/backend/internal/web"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Get the executable's directory for config resolution
	exePath, err := os.Executable()
	if err != nil {
		fmt.Printf("Failed to get executable path: %v\n", err)
		os.Exit(1)
	}
	exeDir := filepath.Dir(exePath)

	// Load XML configuration
	configPath := filepath.Join(exeDir, "PDFChecker.config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Load acceptance rules if a rules file is configured
	var rules *models.CheckRules
	if cfg.Checker.RulesFile != "" {
		rules, err = checker.ParseCheckRules(cfg.Checker.RulesFile)
		if err != nil {
			fmt.Printf("Warning: failed to load rules file, using defaults: %v\n", err)
			rules = nil
		}
	}
	chk := checker.New(rules)

	// In-memory check history
	historyMgr := history.NewManagerWithLimit(cfg.Checker.MaxHistory)

	// Start background history cleanup
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.Checker.CleanupIntervalMinutes) * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			historyMgr.CleanupOld(time.Duration(cfg.Checker.HistoryMaxAgeMinutes) * time.Minute)
		}
	}()

	handlers := api.NewHandlers(&api.Dependencies{
		Checker: chk,
		History: historyMgr,
		Version: Version,
	})

	// Check if running with the widget page built into the binary
	embeddedMode := web.HasEmbeddedFiles()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.ErrorHandler

	// Configure middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			if !cfg.Advanced.EnableRequestLogging {
				return true
			}
			return c.Request().URL.Path == "/api/health"
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1024 * 4,
	}))

	if cfg.Advanced.EnableCompression {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
			Level: cfg.Advanced.CompressionLevel,
			Skipper: func(c echo.Context) bool {
				return strings.Contains(c.Request().URL.Path, "/ws/")
			},
		}))
	}

	// Only metadata crosses the wire, so a small body limit suffices
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	// API routes
	api.RegisterRoutes(e, handlers)

	// Register embedded widget page if available
	if embeddedMode {
		if err := web.RegisterStaticRoutes(e); err != nil {
			fmt.Printf("Warning: failed to register static routes: %v\n", err)
		} else {
			fmt.Println("Serving embedded widget page from binary")
		}
	}

	// Configure server with settings from XML config
	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	fmt.Printf("PDF Checker %s (built %s)\n", Version, BuildTime)
	fmt.Printf("Config: %s\n", configPath)
	fmt.Printf("Listening on http://%s\n", cfg.GetServerAddr())
	if embeddedMode {
		fmt.Printf("Open http://localhost:%d in your browser\n", cfg.Server.Port)
	}

	e.Logger.Fatal(e.StartServer(s))
}
