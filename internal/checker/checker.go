// Package checker implements the file classification and display
// formatting behind the PDF checker widget.
package checker

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pdf-checker/backend/internal/models"
)

// User-facing banner messages. The frontend renders these verbatim.
const (
	SuccessMessage     = "✓ Valid PDF file uploaded!"
	InvalidTypeMessage = "✗ Invalid file type. Please upload a PDF file."
	NoFileMessage      = "No file selected"
)

// sizeUnits are the supported display units, 1024 apart.
var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// Checker classifies selected files against a set of acceptance rules.
type Checker struct {
	rules *models.CheckRules
}

// New creates a checker. A nil rules argument selects the built-in
// PDF-only defaults.
func New(rules *models.CheckRules) *Checker {
	if rules == nil {
		rules = models.DefaultCheckRules()
	}
	rules.Normalize()
	return &Checker{rules: rules}
}

// Rules returns the active acceptance rules.
func (c *Checker) Rules() *models.CheckRules {
	return c.rules
}

// Classify decides whether a file is accepted. A file passes when its
// reported MIME type matches a rule exactly, or its lowercase name ends
// with an accepted extension. File content is never inspected.
func (c *Checker) Classify(f models.SelectedFile) models.Outcome {
	if c.accepts(f) {
		return models.Outcome{Status: models.OutcomeSuccess, Message: SuccessMessage}
	}
	return models.Outcome{Status: models.OutcomeError, Message: InvalidTypeMessage}
}

// NoFileOutcome is the outcome rendered when selection yielded no file.
func NoFileOutcome() models.Outcome {
	return models.Outcome{Status: models.OutcomeError, Message: NoFileMessage}
}

func (c *Checker) accepts(f models.SelectedFile) bool {
	for _, mt := range c.rules.MimeTypes {
		if f.Type == mt {
			return true
		}
	}
	name := strings.ToLower(f.Name)
	for _, ext := range c.rules.Extensions {
		if ext != "" && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Describe builds the display-ready metadata for an accepted file. An
// empty reported MIME type falls back to the configured display type.
func (c *Checker) Describe(f models.SelectedFile) models.FileDetails {
	displayType := f.Type
	if displayType == "" {
		displayType = c.rules.FallbackMimeType
	}
	return models.FileDetails{
		Name:     f.Name,
		Size:     FormatSize(f.Size),
		Type:     displayType,
		Modified: FormatModified(f.LastModified),
	}
}

// FormatSize renders a byte count with the largest unit that keeps the
// scaled value at or above one, shown with up to two decimal places.
// Zero is special-cased as "0 Bytes"; negative counts clamp to it, so a
// hostile size can never reach the log-based unit math.
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(i))
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[i]
}

// FormatModified renders a File API lastModified timestamp (milliseconds
// since the Unix epoch) the way Date.toLocaleString() does.
func FormatModified(ms int64) string {
	return time.UnixMilli(ms).Format("1/2/2006, 3:04:05 PM")
}
