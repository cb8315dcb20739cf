package ssd1306

import (
	"fmt"
	"strings"

	"github.com/flavioheleno/ssd1306/font"
	"github.com/flavioheleno/ssd1306/image1bit"
)

// SetCursor moves the text cursor. The cursor may lie outside the display;
// glyphs are clipped.
func (d *Dev) SetCursor(x, y int) {
	d.cursorX = x
	d.cursorY = y
}

// Cursor returns the position where the next glyph will be drawn.
func (d *Dev) Cursor() (x, y int) {
	return d.cursorX, d.cursorY
}

// WriteString draws s at the cursor with f, every glyph pixel scaled to a
// size×size block, and advances the cursor.
//
// '\n' always starts a new line. With wrap set, a word that does not fit in
// the rest of the line moves to the next one, and a line is also broken
// when the next glyph would run past the right edge.
//
// Every character is looked up before anything is drawn; a character missing
// from the font fails the whole call with an error wrapping ErrConfig and
// font.ErrUndefinedGlyph. Call Display to send the result.
func (d *Dev) WriteString(f *font.Font, size int, s string, wrap bool) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if size < 1 {
		return fmt.Errorf("%w: invalid text size %d", ErrConfig, size)
	}
	for _, r := range s {
		if r == '\n' {
			continue
		}
		if _, err := f.Glyph(r); err != nil {
			return fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}

	w := d.rect.Dx()
	words := strings.Split(s, " ")
	for i, word := range words {
		if i < len(words)-1 || word == "" {
			word += " "
		}
		chars := []rune(word)
		wordWidth := f.Width*size*len(chars) + size*(len(words)-1)
		if wrap && len(words) > 1 && d.cursorX >= w-wordWidth {
			d.newLine(f, size)
		}

		for _, r := range chars {
			if r == '\n' {
				d.newLine(f, size)
				continue
			}
			glyph, _ := f.Glyph(r)
			d.drawGlyph(glyph, size)
			d.cursorX += f.Width*size + d.letterSpacing
			if wrap && d.cursorX >= w-f.Width-d.letterSpacing {
				d.newLine(f, size)
			}
		}
	}
	return nil
}

// newLine moves the cursor to the start of the next text line.
func (d *Dev) newLine(f *font.Font, size int) {
	d.cursorX = 0
	d.cursorY += f.Height*size + d.lineSpacing
}

// drawGlyph blits the column bytes of a glyph at the cursor. Every bit is
// written, so the glyph cell background is cleared too.
func (d *Dev) drawGlyph(glyph []byte, size int) {
	for i, col := range glyph {
		for j := 0; j < 8; j++ {
			c := image1bit.Bit(col>>uint(j)&1 == 1)
			if size == 1 {
				d.SetPixel(d.cursorX+i, d.cursorY+j, c)
			} else {
				d.FillRect(d.cursorX+i*size, d.cursorY+j*size, size, size, c)
			}
		}
	}
}
