package models

import "time"

// OutcomeStatus is the result class of a file check.
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeError   OutcomeStatus = "error"
)

// SelectedFile carries the browser-reported metadata for one selected file.
// Only metadata crosses the wire; file content never does.
type SelectedFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	// Type is the browser-reported MIME type and may be empty.
	Type string `json:"type"`
	// LastModified is milliseconds since the Unix epoch, as reported
	// by the File API.
	LastModified int64 `json:"lastModified"`
}

// Outcome is the classification result shown in the result banner.
type Outcome struct {
	Status  OutcomeStatus `json:"status"`
	Message string        `json:"message"`
}

// Success reports whether the outcome accepted the file.
func (o Outcome) Success() bool {
	return o.Status == OutcomeSuccess
}

// FileDetails holds the display-ready metadata for the info panel.
type FileDetails struct {
	Name string `json:"name"`
	Size string `json:"size"`
	Type string `json:"type"`
	// Modified is the locale-formatted last-modified date string.
	Modified string `json:"modified"`
}

// CheckRecord is one completed check kept in the in-memory history.
type CheckRecord struct {
	ID        string       `json:"id"`
	File      SelectedFile `json:"file"`
	Outcome   Outcome      `json:"outcome"`
	Details   *FileDetails `json:"details,omitempty"`
	CheckedAt time.Time    `json:"checkedAt"`
}
