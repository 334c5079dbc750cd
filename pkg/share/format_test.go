package share

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/matzehuels/lovewall/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"WebP", FormatWebP, false},
		{" png ", FormatPNG, false},
		{"jpg", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ParseFormat(%q) code = %s", tt.in, errors.GetCode(err))
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"love.webp", FormatWebP, false},
		{"out/love.PNG", FormatPNG, false},
		{"love", FormatWebP, false},
		{"love.gif", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path, FormatWebP)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestEncodeUnknown(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, solid(1, 1, color.White), "bmp"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Encode(bmp) error = %v", err)
	}
}

func TestFormatExt(t *testing.T) {
	if FormatWebP.Ext() != ".webp" {
		t.Errorf("Ext() = %q", FormatWebP.Ext())
	}
}
