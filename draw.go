package ssd1306

import (
	"fmt"
	"image"

	"github.com/flavioheleno/ssd1306/image1bit"
)

// Pixel is a single pixel write.
type Pixel struct {
	X, Y int
	C    image1bit.Bit
}

// SetPixel sets one pixel in the framebuffer. Pixels outside the display are
// ignored. Call Display to send the change.
func (d *Dev) SetPixel(x, y int, c image1bit.Bit) {
	if i, changed := d.fb.SetBit(x, y, c); changed {
		d.dirty.mark(i)
	}
}

// DrawPixels sets several pixels.
func (d *Dev) DrawPixels(px ...Pixel) {
	for _, p := range px {
		d.SetPixel(p.X, p.Y, p.C)
	}
}

// Pixel returns the framebuffer value at (x, y).
func (d *Dev) Pixel(x, y int) image1bit.Bit {
	return d.fb.BitAt(x, y)
}

// Clear turns every pixel off.
func (d *Dev) Clear() {
	for _, i := range d.fb.Clear() {
		d.dirty.mark(i)
	}
}

// DrawLine draws a line from (x0, y0) to (x1, y1) inclusive using
// Bresenham's algorithm.
func (d *Dev) DrawLine(x0, y0, x1, y1 int, c image1bit.Bit) {
	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := abs(y1-y0), sign(y1-y0)
	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}
	for {
		d.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x0 += sx
		}
		if e2 < dy {
			err += dx
			y0 += sy
		}
	}
}

// FillRect fills the w×h rectangle whose top left corner is (x, y), one
// column at a time. Empty rectangles draw nothing.
func (d *Dev) FillRect(x, y, w, h int, c image1bit.Bit) {
	if w <= 0 || h <= 0 {
		return
	}
	for i := x; i < x+w; i++ {
		d.DrawLine(i, y, i, y+h-1, c)
	}
}

// DrawBitmap draws a row-major bitmap the width of the display, starting at
// the top left corner. Rows past the bottom of the display are ignored.
func (d *Dev) DrawBitmap(pixels []image1bit.Bit) {
	w := d.rect.Dx()
	for i, c := range pixels {
		d.SetPixel(i%w, i/w, c)
	}
}

// Write replaces the whole framebuffer with pixels, in controller layout (see
// image1bit.VerticalLSB), and sends it to the display.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.fb.Pix) {
		return 0, fmt.Errorf("ssd1306: invalid pixel stream length; expected %d bytes, got %d bytes", len(d.fb.Pix), len(pixels))
	}
	for i, b := range pixels {
		if d.fb.Pix[i] != b {
			d.fb.Pix[i] = b
			d.dirty.mark(i)
		}
	}
	if err := d.Update(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw implements display.Drawer.
//
// The source image is converted with image1bit.BitModel into the dst
// rectangle and the changes are sent right away.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	r := dst.Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(dst.Min))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := image1bit.BitModel.Convert(src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y)).(image1bit.Bit)
			d.SetPixel(x, y, c)
		}
	}
	return d.Display()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sign returns 1 for positive v and -1 otherwise, matching the step
// direction Bresenham expects when v is zero.
func sign(v int) int {
	if v > 0 {
		return 1
	}
	return -1
}
