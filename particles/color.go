package particles

import "fmt"

// ParseColor parses a "#rrggbb" hex color string.
func ParseColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("particles: color %q is not #rrggbb", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("particles: color %q is not #rrggbb", s)
	}
	return Color{R: r, G: g, B: b}, nil
}

// FormatColor renders a color as a "#rrggbb" hex string.
func FormatColor(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
