// Package widget implements the file checker component. It binds the
// selection and drag-and-drop events of a host page to the classifier
// and renders the outcome through injected UI handles, so the same
// component drives the real page and test doubles alike.
package widget

import "github.com/pdf-checker/backend/internal/models"

// ResultBanner is the element showing the success or error message.
type ResultBanner interface {
	ShowOutcome(o models.Outcome)
	Hide()
}

// InfoPanel is the element showing the accepted file's metadata.
type InfoPanel interface {
	ShowDetails(d models.FileDetails)
	Hide()
}

// FileInput is the hidden input element backing click-to-browse.
type FileInput interface {
	// Open triggers the native file-selection affordance.
	Open()
	// Clear drops the input's stored selection.
	Clear()
}

// ClearButton is the control that resets the widget.
type ClearButton interface {
	Show()
	Hide()
}

// DropZone is the interactive region accepting drag-and-drop.
type DropZone interface {
	SetHover(active bool)
}

// Surface bundles the five host-page handles the widget mutates. The
// widget never creates these elements; the host page owns them.
type Surface struct {
	DropZone DropZone
	Input    FileInput
	Banner   ResultBanner
	Info     InfoPanel
	Clear    ClearButton
}
