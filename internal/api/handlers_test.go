package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pdf-checker/backend/internal/checker"
	"github.com/pdf-checker/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	e := echo.New()
	h := NewHandler(checker.New(nil), testutil.NewMockHistory(), "1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.HandleHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
		assert.Contains(t, rec.Body.String(), `"version":"1.2.3"`)
	}
}

func TestCheckRulesFlow(t *testing.T) {
	e := echo.New()
	h := NewHandler(checker.New(nil), testutil.NewMockHistory(), "test")

	// 1. Defaults are PDF-only
	req := httptest.NewRequest(http.MethodGet, "/api/config/check-rules", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if assert.NoError(t, h.HandleGetCheckRules(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"application/pdf"`)
		assert.Contains(t, rec.Body.String(), `".pdf"`)
	}

	// 2. Replace rules to also accept PNG images
	body, _ := json.Marshal(map[string]interface{}{
		"mimeTypes":  []string{"application/pdf", "image/png"},
		"extensions": []string{".pdf", "PNG"},
	})
	req = httptest.NewRequest(http.MethodPut, "/api/config/check-rules", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	if assert.NoError(t, h.HandleUpdateCheckRules(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		// Extensions come back normalized
		assert.Contains(t, rec.Body.String(), `".png"`)
	}

	// 3. A PNG now classifies as a success
	rec = postCheck(t, h, `{"file":{"name":"shot.png","type":"image/png","size":1024}}`)
	var resp checkResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Outcome.Success())
	assert.Equal(t, "1 KB", resp.Details.Size)
}

func TestRecentChecksFlow(t *testing.T) {
	e := echo.New()
	h := NewHandler(checker.New(nil), testutil.NewMockHistory(), "test")

	// Two checks, one accepted and one rejected
	postCheck(t, h, `{"file":{"name":"doc.pdf","type":"application/pdf","size":2048}}`)
	postCheck(t, h, `{"file":{"name":"photo.jpg","type":"image/jpeg","size":1000}}`)

	req := httptest.NewRequest(http.MethodGet, "/api/checks/recent?limit=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if assert.NoError(t, h.HandleRecentChecks(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)

		var records []map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		assert.Len(t, records, 2)
		// Newest first: the rejected jpeg
		file := records[0]["file"].(map[string]interface{})
		assert.Equal(t, "photo.jpg", file["name"])
	}
}
