package ssd1306

import (
	"image/color"

	"github.com/flavioheleno/ssd1306/image1bit"
	"tinygo.org/x/drivers"
)

// Displayer returns a view of the device implementing drivers.Displayer, so
// TinyGo graphics packages such as tinyfont and tinydraw can render into the
// framebuffer.
func (d *Dev) Displayer() drivers.Displayer {
	return &tinyDisplay{d: d}
}

type tinyDisplay struct {
	d *Dev
}

func (t *tinyDisplay) Size() (x, y int16) {
	return int16(t.d.rect.Dx()), int16(t.d.rect.Dy())
}

func (t *tinyDisplay) SetPixel(x, y int16, c color.RGBA) {
	t.d.SetPixel(int(x), int(y), image1bit.BitModel.Convert(c).(image1bit.Bit))
}

func (t *tinyDisplay) Display() error {
	return t.d.Display()
}
