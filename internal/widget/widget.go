package widget

import (
	"github.com/pdf-checker/backend/internal/checker"
	"github.com/pdf-checker/backend/internal/models"
)

// Recorder receives completed checks, e.g. for the in-memory history.
type Recorder interface {
	Record(f models.SelectedFile, o models.Outcome, d *models.FileDetails) *models.CheckRecord
}

// FileChecker wires selection events to classification and rendering.
// It is stateless per invocation: every event fully determines the
// resulting UI state.
type FileChecker struct {
	surface  Surface
	checker  *checker.Checker
	recorder Recorder // optional
}

// New creates a file checker bound to the given surface. recorder may
// be nil when no history is kept.
func New(surface Surface, c *checker.Checker, recorder Recorder) *FileChecker {
	return &FileChecker{
		surface:  surface,
		checker:  c,
		recorder: recorder,
	}
}

// ActivateChooser opens the native file-selection dialog. Triggered by
// a click on the drop zone.
func (w *FileChecker) ActivateChooser() {
	w.surface.Input.Open()
}

// OnFilesChosen classifies a selected file and renders the outcome.
// A nil file renders the no-file error. Triggered by the file input's
// change event or by a drop.
func (w *FileChecker) OnFilesChosen(file *models.SelectedFile) models.Outcome {
	if file == nil {
		outcome := checker.NoFileOutcome()
		w.render(outcome, nil)
		return outcome
	}

	outcome := w.checker.Classify(*file)

	var details *models.FileDetails
	if outcome.Success() {
		d := w.checker.Describe(*file)
		details = &d
	}
	w.render(outcome, details)

	if w.recorder != nil {
		w.recorder.Record(*file, outcome, details)
	}
	return outcome
}

// render updates the banner, info panel, and clear control. The info
// panel is visible only after a successful outcome.
func (w *FileChecker) render(outcome models.Outcome, details *models.FileDetails) {
	if details != nil {
		w.surface.Info.ShowDetails(*details)
	} else {
		w.surface.Info.Hide()
	}
	w.surface.Banner.ShowOutcome(outcome)
	w.surface.Clear.Show()
}

// DragOver applies the hover state. The host page is expected to have
// suppressed the browser's default handling before delegating here.
func (w *FileChecker) DragOver() {
	w.surface.DropZone.SetHover(true)
}

// DragLeave clears the hover state.
func (w *FileChecker) DragLeave() {
	w.surface.DropZone.SetHover(false)
}

// Drop clears the hover state and feeds the first dropped file into the
// selection path. An empty drop behaves like an empty selection.
func (w *FileChecker) Drop(files []models.SelectedFile) models.Outcome {
	w.surface.DropZone.SetHover(false)
	if len(files) == 0 {
		return w.OnFilesChosen(nil)
	}
	return w.OnFilesChosen(&files[0])
}

// Reset clears the stored selection and hides the banner, info panel,
// and clear control. Safe to call repeatedly.
func (w *FileChecker) Reset() {
	w.surface.Input.Clear()
	w.surface.Banner.Hide()
	w.surface.Info.Hide()
	w.surface.Clear.Hide()
}
