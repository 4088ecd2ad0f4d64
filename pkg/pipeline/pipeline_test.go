package pipeline

import (
	"testing"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	for _, f := range Formats {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) error: %v", f, err)
		}
	}
	for _, f := range []string{"pdf", "SVG", ""} {
		if err := ValidateFormat(f); !arcerrors.Is(err, arcerrors.ErrCodeInvalidInput) {
			t.Errorf("ValidateFormat(%q) error = %v, want %s", f, err, arcerrors.ErrCodeInvalidInput)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"all valid", []string{"svg", "png", "tiff"}, false},
		{"one invalid", []string{"svg", "gif"}, true},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateFormats(tt.formats); (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		FormatSVG:  "image/svg+xml",
		FormatPNG:  "image/png",
		FormatTIFF: "image/tiff",
		FormatJSON: "application/json",
		"bin":      "application/octet-stream",
	}
	for format, want := range tests {
		if got := ContentType(format); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", format, got, want)
		}
	}
	if len(Formats) != len(ValidFormats) {
		t.Errorf("Formats has %d entries, ValidFormats %d", len(Formats), len(ValidFormats))
	}
}
