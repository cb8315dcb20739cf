// Package font describes column-packed bitmap fonts for page-addressed
// monochrome displays.
//
// A glyph is Width bytes, one per column, left to right. Bit 0 of each byte
// is the top row of the glyph.
package font

import (
	"errors"
	"fmt"
)

// ErrUndefinedGlyph is returned when a character has no glyph in the font.
var ErrUndefinedGlyph = errors.New("font: undefined glyph")

// Font is a fixed width bitmap font.
type Font struct {
	Width  int    // Glyph width in columns
	Height int    // Glyph height in rows, at most 8
	Lookup string // Characters in the same order as their glyphs in Data
	Data   []byte // Width bytes per glyph
}

// Validate checks the font metrics and that Data covers every character in
// Lookup.
func (f *Font) Validate() error {
	if f == nil {
		return errors.New("font: nil font")
	}
	if f.Width <= 0 {
		return fmt.Errorf("font: invalid width %d", f.Width)
	}
	if f.Height <= 0 || f.Height > 8 {
		return fmt.Errorf("font: invalid height %d", f.Height)
	}
	n := 0
	for range f.Lookup {
		n++
	}
	if len(f.Data) < n*f.Width {
		return fmt.Errorf("font: %d glyphs need %d bytes, have %d", n, n*f.Width, len(f.Data))
	}
	return nil
}

// Glyph returns the column bytes of r. The returned slice aliases Data.
func (f *Font) Glyph(r rune) ([]byte, error) {
	i := 0
	for _, c := range f.Lookup {
		if c == r {
			start := i * f.Width
			if start+f.Width > len(f.Data) {
				break
			}
			return f.Data[start : start+f.Width], nil
		}
		i++
	}
	return nil, fmt.Errorf("%w %q", ErrUndefinedGlyph, r)
}

// Has reports whether r has a glyph.
func (f *Font) Has(r rune) bool {
	_, err := f.Glyph(r)
	return err == nil
}
