package color

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrSyntax is returned when a string is in neither canonical form.
var ErrSyntax = errors.New("invalid color syntax")

var canonicalPattern = regexp.MustCompile(`^(rgba?)\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*(\d*\.?\d+)\s*)?\)$`)

// Parse reads the "rgb(R, G, B)" and "rgba(R, G, B, A)" forms produced by
// Format. Whitespace around components is ignored.
func Parse(s string) (Color, error) {
	m := canonicalPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, ErrSyntax)
	}

	fn, alpha := m[1], m[5]
	if fn == "rgb" && alpha != "" {
		return Color{}, fmt.Errorf("parse color %q: rgb() takes 3 components: %w", s, ErrSyntax)
	}
	if fn == "rgba" && alpha == "" {
		return Color{}, fmt.Errorf("parse color %q: rgba() takes 4 components: %w", s, ErrSyntax)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.Atoi(m[i+2])
		if err != nil || v > 255 {
			return Color{}, fmt.Errorf("parse color %q: channel %q out of range: %w", s, m[i+2], ErrSyntax)
		}
		channels[i] = uint8(v)
	}

	c := RGB(channels[0], channels[1], channels[2])
	if alpha == "" {
		return c, nil
	}

	a, err := strconv.ParseFloat(alpha, 64)
	if err != nil || a > 1 {
		return Color{}, fmt.Errorf("parse color %q: alpha %q out of range: %w", s, alpha, ErrSyntax)
	}
	return c.WithAlpha(AlphaOf(a)), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
