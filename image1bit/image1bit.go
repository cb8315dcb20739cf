// Package image1bit provides a 1-bit image format for page-addressed
// monochrome display controllers such as the SSD1306.
//
// Pixels are stored in vertical bytes: each byte holds 8 pixels of one column
// inside a page (a horizontal band 8 pixels high). The least significant bit
// is the top pixel of the band.
package image1bit

import (
	"image"
	"image/color"
)

// Bit is a two-state pixel color.
type Bit bool

const (
	// Off is an unlit pixel.
	Off Bit = false
	// On is a lit pixel.
	On Bit = true
)

// RGBA implements color.Color.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit using a luminance threshold at half
// intensity.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image laid out in pages of 8 rows. Byte i covers
// column i%Stride of page i/Stride.
type VerticalLSB struct {
	Pix    []byte          // One byte per column per page
	Stride int             // Bytes per page, equal to the image width
	Rect   image.Rectangle // Image bounds
}

// NewVerticalLSB creates a blank VerticalLSB image with the given bounds.
// The height must be a multiple of 8.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	if h%8 != 0 {
		panic("image1bit: height must be a multiple of 8")
	}
	return &VerticalLSB{
		Pix:    make([]byte, w*h/8),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the pixel at (x, y). Pixels outside the bounds are Off.
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.PixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set implements draw.Image.
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the pixel at (x, y) and reports which byte holds it and
// whether that byte changed. Writes outside the bounds are dropped and
// reported as (-1, false).
func (p *VerticalLSB) SetBit(x, y int, b Bit) (offset int, changed bool) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return -1, false
	}
	offset, mask := p.PixOffset(x, y)
	old := p.Pix[offset]
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
	return offset, p.Pix[offset] != old
}

// Clear turns every pixel off and returns the offsets of the bytes that were
// not already zero.
func (p *VerticalLSB) Clear() []int {
	var changed []int
	for i, v := range p.Pix {
		if v != 0 {
			p.Pix[i] = 0
			changed = append(changed, i)
		}
	}
	return changed
}

// PixOffset returns the byte offset and bit mask for the pixel at (x, y).
//
//	page   = y / 8
//	offset = x + Stride*page
//	mask   = 1 << (y % 8)
func (p *VerticalLSB) PixOffset(x, y int) (offset int, mask byte) {
	x -= p.Rect.Min.X
	y -= p.Rect.Min.Y
	page := y / 8
	offset = x + p.Stride*page
	mask = 1 << uint(y-8*page)
	return
}
