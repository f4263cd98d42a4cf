package checker

import (
	"strings"
	"testing"
	"time"

	"github.com/pdf-checker/backend/internal/models"
)

func TestClassify(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name        string
		file        models.SelectedFile
		wantSuccess bool
	}{
		{
			name:        "pdf mime type with pdf name",
			file:        models.SelectedFile{Name: "doc.pdf", Type: "application/pdf", Size: 2048},
			wantSuccess: true,
		},
		{
			name:        "pdf mime type overrides odd name",
			file:        models.SelectedFile{Name: "export.bin", Type: "application/pdf", Size: 10},
			wantSuccess: true,
		},
		{
			name:        "pdf extension overrides missing mime type",
			file:        models.SelectedFile{Name: "report.PDF", Type: "", Size: 0},
			wantSuccess: true,
		},
		{
			name:        "pdf extension overrides wrong mime type",
			file:        models.SelectedFile{Name: "scan.pdf", Type: "application/octet-stream", Size: 512},
			wantSuccess: true,
		},
		{
			name:        "jpeg rejected",
			file:        models.SelectedFile{Name: "photo.jpg", Type: "image/jpeg", Size: 1000},
			wantSuccess: false,
		},
		{
			name:        "empty type and non-pdf name rejected",
			file:        models.SelectedFile{Name: "notes.txt", Type: "", Size: 42},
			wantSuccess: false,
		},
		{
			name:        "pdf substring in name is not enough",
			file:        models.SelectedFile{Name: "my.pdf.exe", Type: "application/x-msdownload", Size: 42},
			wantSuccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := c.Classify(tt.file)
			if outcome.Success() != tt.wantSuccess {
				t.Errorf("Classify(%+v) success = %v, want %v", tt.file, outcome.Success(), tt.wantSuccess)
			}
			if tt.wantSuccess && outcome.Message != SuccessMessage {
				t.Errorf("expected success message, got %q", outcome.Message)
			}
			if !tt.wantSuccess && outcome.Message != InvalidTypeMessage {
				t.Errorf("expected invalid-type message, got %q", outcome.Message)
			}
		})
	}
}

func TestClassifyCustomRules(t *testing.T) {
	c := New(&models.CheckRules{
		MimeTypes:  []string{"text/csv"},
		Extensions: []string{"csv"}, // dot prefix added by Normalize
	})

	if !c.Classify(models.SelectedFile{Name: "data.CSV"}).Success() {
		t.Error("expected csv extension to be accepted")
	}
	if c.Classify(models.SelectedFile{Name: "doc.pdf", Type: "application/pdf"}).Success() {
		t.Error("expected pdf to be rejected under csv-only rules")
	}
}

func TestNoFileOutcome(t *testing.T) {
	outcome := NoFileOutcome()
	if outcome.Success() {
		t.Error("no-file outcome must be an error")
	}
	if outcome.Message != NoFileMessage {
		t.Errorf("expected %q, got %q", NoFileMessage, outcome.Message)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{-1, "0 Bytes"},
		{-1024, "0 Bytes"},
		{0, "0 Bytes"},
		{1, "1 Bytes"},
		{512, "512 Bytes"},
		{1023, "1023 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{2048, "2 KB"},
		{1048576, "1 MB"},
		{5 * 1048576, "5 MB"},
		{1073741824, "1 GB"},
		{3221225472, "3 GB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestFormatSizeAlwaysEndsWithKnownUnit(t *testing.T) {
	units := []string{"Bytes", "KB", "MB", "GB"}
	sizes := []int64{0, 1, 999, 1024, 4096, 1 << 20, 1 << 30, 1 << 40}

	for _, size := range sizes {
		got := FormatSize(size)
		known := false
		for _, u := range units {
			if strings.HasSuffix(got, " "+u) {
				known = true
				break
			}
		}
		if !known {
			t.Errorf("FormatSize(%d) = %q has no known unit suffix", size, got)
		}
	}
}

func TestDescribe(t *testing.T) {
	c := New(nil)
	modified := time.Date(2024, 3, 15, 14, 30, 5, 0, time.Local).UnixMilli()

	t.Run("reported type is kept", func(t *testing.T) {
		d := c.Describe(models.SelectedFile{
			Name: "doc.pdf", Type: "application/pdf", Size: 2048, LastModified: modified,
		})
		if d.Name != "doc.pdf" || d.Size != "2 KB" || d.Type != "application/pdf" {
			t.Errorf("unexpected details: %+v", d)
		}
		if d.Modified != "3/15/2024, 2:30:05 PM" {
			t.Errorf("unexpected modified string: %q", d.Modified)
		}
	})

	t.Run("negative size clamps to zero", func(t *testing.T) {
		d := c.Describe(models.SelectedFile{Name: "x.pdf", Type: "application/pdf", Size: -1})
		if d.Size != "0 Bytes" {
			t.Errorf("expected clamped size string, got %q", d.Size)
		}
	})

	t.Run("empty type falls back", func(t *testing.T) {
		d := c.Describe(models.SelectedFile{Name: "report.PDF", Type: "", Size: 0})
		if d.Type != "application/pdf" {
			t.Errorf("expected fallback type, got %q", d.Type)
		}
		if d.Size != "0 Bytes" {
			t.Errorf("expected zero size string, got %q", d.Size)
		}
	})
}
