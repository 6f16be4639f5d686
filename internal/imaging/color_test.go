package imaging

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGBColor
	}{
		{"hex with hash", "#06910F", RGBColor{6, 145, 15}},
		{"hex without hash", "06910F", RGBColor{6, 145, 15}},
		{"hex lowercase", "#06910f", RGBColor{6, 145, 15}},
		{"hex white", "#FFFFFF", RGBColor{255, 255, 255}},
		{"hex black", "#000000", RGBColor{0, 0, 0}},
		{"decimal commas", "6,145,15", RGBColor{6, 145, 15}},
		{"decimal commas with spaces", " 6, 145, 15 ", RGBColor{6, 145, 15}},
		{"decimal whitespace", "6 145 15", RGBColor{6, 145, 15}},
		{"gray", "12,12,12", RGBColor{12, 12, 12}},
		{"channel extremes", "0,255,0", RGBColor{0, 255, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColor_HexAndDecimalAgree(t *testing.T) {
	hex, err := ParseColor("#06910F")
	if err != nil {
		t.Fatalf("ParseColor hex failed: %v", err)
	}
	dec, err := ParseColor("6,145,15")
	if err != nil {
		t.Fatalf("ParseColor decimal failed: %v", err)
	}
	if hex != dec {
		t.Errorf("hex %v and decimal %v should parse to the same color", hex, dec)
	}
}

func TestParseColor_HexPrecedence(t *testing.T) {
	// Six hex digits are always hex, never a malformed token list.
	got, err := ParseColor("112233")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	want := RGBColor{0x11, 0x22, 0x33}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseColor_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"too few tokens", "1,2", ErrInvalidColorFormat},
		{"too many tokens", "1,2,3,4", ErrInvalidColorFormat},
		{"empty string", "", ErrInvalidColorFormat},
		{"short hex", "#FFF", ErrInvalidColorFormat},
		{"long hex", "#AABBCCDD", ErrInvalidColorFormat},
		{"single word", "green", ErrInvalidColorFormat},
		{"out of range high", "300,0,0", ErrInvalidColorRange},
		{"out of range negative", "-1,0,0", ErrInvalidColorRange},
		{"non-integer token", "a,b,c", ErrInvalidColorRange},
		{"float token", "1.5,2,3", ErrInvalidColorRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseColor(tt.input)
			if err == nil {
				t.Fatalf("ParseColor(%q) should fail", tt.input)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseColor(%q): got %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestRGBColorHex(t *testing.T) {
	tests := []struct {
		name  string
		color RGBColor
		want  string
	}{
		{"black", RGBColor{0, 0, 0}, "#000000"},
		{"white", RGBColor{255, 255, 255}, "#FFFFFF"},
		{"default target", RGBColor{6, 145, 15}, "#06910F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("Hex: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBColorString_RoundTrip(t *testing.T) {
	for _, c := range []RGBColor{DefaultSourceColor, DefaultTargetColor, {12, 12, 12}} {
		got, err := ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", c.String(), err)
		}
		if got != c {
			t.Errorf("round trip of %v via %q gave %v", c, c.String(), got)
		}
	}
}
