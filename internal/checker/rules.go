package checker

import (
	"io"
	"os"

	"github.com/pdf-checker/backend/internal/models"
	"gopkg.in/yaml.v3"
)

// ParseCheckRules parses a YAML acceptance-rules file.
func ParseCheckRules(filePath string) (*models.CheckRules, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseCheckRulesFromReader(file)
}

// ParseCheckRulesFromReader parses rules from an io.Reader. Missing
// fields are filled with the PDF-only defaults.
func ParseCheckRulesFromReader(r io.Reader) (*models.CheckRules, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var rules models.CheckRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, err
	}
	rules.Normalize()

	return &rules, nil
}
