package checker

import (
	"strings"
	"testing"
)

func TestParseCheckRulesFromReader(t *testing.T) {
	yamlData := `
mime_types:
  - application/pdf
  - application/x-pdf
extensions:
  - .pdf
  - PDF
fallback_mime_type: application/pdf
`

	rules, err := ParseCheckRulesFromReader(strings.NewReader(yamlData))
	if err != nil {
		t.Fatalf("failed to parse rules: %v", err)
	}

	if len(rules.MimeTypes) != 2 {
		t.Errorf("expected 2 mime types, got %d", len(rules.MimeTypes))
	}
	// Extensions are normalized: lowercased and dot-prefixed
	if rules.Extensions[1] != ".pdf" {
		t.Errorf("expected normalized extension .pdf, got %q", rules.Extensions[1])
	}
}

func TestParseCheckRulesDefaults(t *testing.T) {
	rules, err := ParseCheckRulesFromReader(strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("failed to parse empty rules: %v", err)
	}

	if len(rules.MimeTypes) != 1 || rules.MimeTypes[0] != "application/pdf" {
		t.Errorf("expected default mime types, got %v", rules.MimeTypes)
	}
	if len(rules.Extensions) != 1 || rules.Extensions[0] != ".pdf" {
		t.Errorf("expected default extensions, got %v", rules.Extensions)
	}
	if rules.FallbackMimeType != "application/pdf" {
		t.Errorf("expected default fallback type, got %q", rules.FallbackMimeType)
	}
}

func TestParseCheckRulesInvalidYAML(t *testing.T) {
	if _, err := ParseCheckRulesFromReader(strings.NewReader("mime_types: [unterminated")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
