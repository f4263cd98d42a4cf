package models

import "strings"

// CheckRules defines the YAML configuration for file acceptance.
// A file is accepted when its MIME type matches one of MimeTypes or its
// lowercase name ends with one of Extensions.
type CheckRules struct {
	MimeTypes  []string `json:"mimeTypes" yaml:"mime_types"`
	Extensions []string `json:"extensions" yaml:"extensions"`
	// FallbackMimeType is displayed when the browser reports an empty type
	// for an accepted file.
	FallbackMimeType string `json:"fallbackMimeType" yaml:"fallback_mime_type"`
}

// DefaultCheckRules returns the built-in PDF-only rules.
func DefaultCheckRules() *CheckRules {
	return &CheckRules{
		MimeTypes:        []string{"application/pdf"},
		Extensions:       []string{".pdf"},
		FallbackMimeType: "application/pdf",
	}
}

// Normalize lowercases extensions, ensures the dot prefix, and fills in
// defaults for empty fields so uploaded rules can be partial.
func (r *CheckRules) Normalize() {
	defaults := DefaultCheckRules()
	if len(r.MimeTypes) == 0 {
		r.MimeTypes = defaults.MimeTypes
	}
	if len(r.Extensions) == 0 {
		r.Extensions = defaults.Extensions
	}
	if r.FallbackMimeType == "" {
		r.FallbackMimeType = defaults.FallbackMimeType
	}

	for i, ext := range r.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.Extensions[i] = ext
	}
}
