// handlers_check.go - File check and history operation handlers
package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pdf-checker/backend/internal/checker"
	"github.com/pdf-checker/backend/internal/models"
	"github.com/vmihailenco/msgpack/v5"
)

// maxRecentChecks caps the recent-checks page size.
const maxRecentChecks = 100

type checkRequest struct {
	// File is the selected file's metadata; null means nothing was
	// selected. File bytes never reach the server.
	File *models.SelectedFile `json:"file"`
}

type checkResponse struct {
	Outcome  models.Outcome      `json:"outcome"`
	Details  *models.FileDetails `json:"details,omitempty"`
	RecordID string              `json:"recordId,omitempty"`
}

// check classifies a file and records the result. Shared by the HTTP
// and WebSocket paths.
func (h *Handler) check(file *models.SelectedFile) checkResponse {
	if file == nil {
		return checkResponse{Outcome: checker.NoFileOutcome()}
	}

	chk := h.Checker()
	outcome := chk.Classify(*file)

	var details *models.FileDetails
	if outcome.Success() {
		d := chk.Describe(*file)
		details = &d
	}

	resp := checkResponse{Outcome: outcome, Details: details}
	rec := h.history.Record(*file, outcome, details)
	resp.RecordID = rec.ID
	return resp
}

// HandleCheckFile classifies one selected file's metadata and returns
// the outcome. A null file yields the no-file error outcome, not an
// HTTP error, because that is a rendered state of the widget.
func (h *Handler) HandleCheckFile(c echo.Context) error {
	var req checkRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}

	if req.File != nil && req.File.Size < 0 {
		return NewValidationError("file.size")
	}

	return c.JSON(http.StatusOK, h.check(req.File))
}

// HandleRecentChecks returns the most recent check records.
func (h *Handler) HandleRecentChecks(c echo.Context) error {
	records := h.history.Recent(recentLimit(c))
	if records == nil {
		records = []*models.CheckRecord{}
	}
	return c.JSON(http.StatusOK, records)
}

// HandleRecentChecksMsgpack returns the recent records in MessagePack
// format for clients that poll the history frequently.
func (h *Handler) HandleRecentChecksMsgpack(c echo.Context) error {
	records := h.history.Recent(recentLimit(c))

	data, err := msgpack.Marshal(map[string]interface{}{
		"checks": records,
		"count":  len(records),
	})
	if err != nil {
		return NewInternalError("failed to encode msgpack", err)
	}

	return c.Blob(http.StatusOK, "application/msgpack", data)
}

// HandleGetCheck returns a single check record.
func (h *Handler) HandleGetCheck(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	rec, ok := h.history.Get(id)
	if !ok {
		return NewNotFoundError("check", id)
	}
	return c.JSON(http.StatusOK, rec)
}

// HandleDeleteCheck removes a single check record.
func (h *Handler) HandleDeleteCheck(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	if !h.history.Delete(id) {
		return NewNotFoundError("check", id)
	}
	return c.NoContent(http.StatusNoContent)
}

// HandleResetChecks clears the whole history. This is the server-side
// analogue of the widget's clear control.
func (h *Handler) HandleResetChecks(c echo.Context) error {
	h.history.Clear()
	return c.NoContent(http.StatusNoContent)
}

func recentLimit(c echo.Context) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 20
	}
	if limit > maxRecentChecks {
		limit = maxRecentChecks
	}
	return limit
}
