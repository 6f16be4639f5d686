package imaging

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Color string parse errors, distinguishable with errors.Is.
var (
	// ErrInvalidColorFormat indicates a string that is neither 6-digit hex
	// nor exactly three comma- or whitespace-separated tokens.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrInvalidColorRange indicates a token that is not an integer or a
	// component outside 0-255.
	ErrInvalidColorRange = errors.New("invalid color range")
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Default parameter values used by the CLI when flags are omitted.
// These are constants in spirit; do not mutate them.
var (
	DefaultSourceColor = RGBColor{R: 0, G: 0, B: 0}
	DefaultTargetColor = RGBColor{R: 6, G: 145, B: 15}
)

// DefaultTolerance is the similarity threshold applied when none is given.
const DefaultTolerance = 0.30

// Hex returns the color in "#RRGGBB" format (uppercase, no alpha).
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the color in "R,G,B" decimal format, the same form
// ParseColor accepts.
func (c RGBColor) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// ParseColor converts a user-supplied color string into an RGBColor.
//
// Two forms are accepted:
//   - "#RRGGBB" hex, with the "#" optional
//   - "R,G,B" decimal, separated by commas or whitespace
//
// Hex takes precedence: if the string (after stripping one leading "#") is
// exactly 6 hexadecimal characters, it is always interpreted as hex, never
// as a malformed token list.
//
// Returns ErrInvalidColorFormat for anything that is neither form, and
// ErrInvalidColorRange when a token is not an integer or a component falls
// outside 0-255.
func ParseColor(input string) (RGBColor, error) {
	s := strings.TrimPrefix(strings.TrimSpace(input), "#")

	if len(s) == 6 {
		if v, err := strconv.ParseUint(s, 16, 32); err == nil {
			return RGBColor{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
		}
	}

	var tokens []string
	if strings.Contains(s, ",") {
		tokens = strings.Split(s, ",")
		for i := range tokens {
			tokens[i] = strings.TrimSpace(tokens[i])
		}
	} else {
		tokens = strings.Fields(s)
	}
	if len(tokens) != 3 {
		return RGBColor{}, fmt.Errorf("%w: %q must be #RRGGBB or \"R,G,B\"", ErrInvalidColorFormat, input)
	}

	var comps [3]uint8
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 || n > 255 {
			return RGBColor{}, fmt.Errorf("%w: component %q must be an integer between 0 and 255", ErrInvalidColorRange, tok)
		}
		comps[i] = uint8(n)
	}

	return RGBColor{R: comps[0], G: comps[1], B: comps[2]}, nil
}
