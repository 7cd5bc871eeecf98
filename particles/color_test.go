package particles

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#64c8ff", Color{R: 0x64, G: 0xc8, B: 0xff}, false},
		{"#000000", Color{}, false},
		{"#FFFFFF", Color{R: 255, G: 255, B: 255}, false},
		{"64c8ff", Color{}, true},
		{"#64c8", Color{}, true},
		{"", Color{}, true},
		{"#zzzzzz", Color{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatColorRoundTrip(t *testing.T) {
	c := Color{R: 0x64, G: 0xc8, B: 0xff}
	s := FormatColor(c)
	if s != "#64c8ff" {
		t.Errorf("FormatColor() = %q, want %q", s, "#64c8ff")
	}

	back, err := ParseColor(s)
	if err != nil {
		t.Fatalf("ParseColor() error = %v", err)
	}
	if back != c {
		t.Errorf("round trip = %v, want %v", back, c)
	}
}
