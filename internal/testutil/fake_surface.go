// fake_surface.go - Fake UI handles for widget testing
package testutil

import (
	"github.com/pdf-checker/backend/internal/models"
	"github.com/pdf-checker/backend/internal/widget"
)

// FakeBanner implements widget.ResultBanner.
type FakeBanner struct {
	Visible bool
	Outcome models.Outcome
}

func (b *FakeBanner) ShowOutcome(o models.Outcome) {
	b.Visible = true
	b.Outcome = o
}

func (b *FakeBanner) Hide() { b.Visible = false }

// FakeInfoPanel implements widget.InfoPanel.
type FakeInfoPanel struct {
	Visible bool
	Details models.FileDetails
}

func (p *FakeInfoPanel) ShowDetails(d models.FileDetails) {
	p.Visible = true
	p.Details = d
}

func (p *FakeInfoPanel) Hide() { p.Visible = false }

// FakeFileInput implements widget.FileInput and counts calls.
type FakeFileInput struct {
	OpenCalls  int
	ClearCalls int
}

func (i *FakeFileInput) Open()  { i.OpenCalls++ }
func (i *FakeFileInput) Clear() { i.ClearCalls++ }

// FakeClearButton implements widget.ClearButton.
type FakeClearButton struct {
	Visible bool
}

func (c *FakeClearButton) Show() { c.Visible = true }
func (c *FakeClearButton) Hide() { c.Visible = false }

// FakeDropZone implements widget.DropZone.
type FakeDropZone struct {
	Hover bool
}

func (z *FakeDropZone) SetHover(active bool) { z.Hover = active }

// FakeSurface bundles fake handles mirroring the five page elements.
type FakeSurface struct {
	Banner FakeBanner
	Info   FakeInfoPanel
	Input  FakeFileInput
	Clear  FakeClearButton
	Zone   FakeDropZone
}

// NewFakeSurface creates a fake surface with everything hidden.
func NewFakeSurface() *FakeSurface {
	return &FakeSurface{}
}

// Surface returns a widget.Surface backed by the fake handles.
func (f *FakeSurface) Surface() widget.Surface {
	return widget.Surface{
		DropZone: &f.Zone,
		Input:    &f.Input,
		Banner:   &f.Banner,
		Info:     &f.Info,
		Clear:    &f.Clear,
	}
}
