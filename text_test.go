package ssd1306

import (
	"errors"
	"testing"

	"github.com/flavioheleno/ssd1306/font"
	"github.com/flavioheleno/ssd1306/image1bit"
)

func wantCursor(t *testing.T, d *Dev, x, y int) {
	t.Helper()
	if gx, gy := d.Cursor(); gx != x || gy != y {
		t.Errorf("Cursor() = (%d, %d), want (%d, %d)", gx, gy, x, y)
	}
}

func TestWriteStringNewline(t *testing.T) {
	for _, wrap := range []bool{false, true} {
		dev, _ := newTestDev(t, 128, 32)
		if err := dev.WriteString(font.Oled5x7, 1, "a\nb", wrap); err != nil {
			t.Fatalf("WriteString(wrap=%v) error: %v", wrap, err)
		}
		wantCursor(t, dev, 6, 8)
	}
}

func TestWriteStringGlyphPixels(t *testing.T) {
	dev, bus := newTestDev(t, 128, 32)
	if err := dev.WriteString(font.Oled5x7, 1, "a", false); err != nil {
		t.Fatalf("WriteString() error: %v", err)
	}
	want := []byte{0x20, 0x54, 0x54, 0x54, 0x78}
	if !equalBytes(dev.Buffer()[:5], want) {
		t.Errorf("Buffer()[:5] = %X, want %X", dev.Buffer()[:5], want)
	}
	if len(bus.writes) != 0 {
		t.Error("WriteString sent data without Display")
	}
}

func TestWriteStringWordWrap(t *testing.T) {
	dev, _ := newTestDev(t, 128, 32)
	dev.SetCursor(120, 0)
	if err := dev.WriteString(font.Oled5x7, 1, "ab cd", true); err != nil {
		t.Fatalf("WriteString() error: %v", err)
	}
	wantCursor(t, dev, 30, 8)
	if dev.Pixel(0, 13) != image1bit.On {
		t.Error("first glyph was not moved to the next line")
	}
	for i, b := range dev.Buffer()[:128] {
		if b != 0 {
			t.Fatalf("page 0 byte %d = 0x%02X, want empty", i, b)
		}
	}
}

func TestWriteStringNoWrap(t *testing.T) {
	dev, _ := newTestDev(t, 128, 32)
	dev.SetCursor(120, 0)
	if err := dev.WriteString(font.Oled5x7, 1, "ab cd", false); err != nil {
		t.Fatalf("WriteString() error: %v", err)
	}
	wantCursor(t, dev, 150, 0)
	if dev.Pixel(120, 5) != image1bit.On {
		t.Error("first glyph not drawn at the cursor")
	}
}

func TestWriteStringLetterWrap(t *testing.T) {
	dev, _ := newTestDev(t, 96, 16)
	if err := dev.WriteString(font.Oled5x7, 1, "aaaaaaaaaaaaaaaa", true); err != nil {
		t.Fatalf("WriteString() error: %v", err)
	}
	wantCursor(t, dev, 6, 8)
}

func TestWriteStringEmptyWords(t *testing.T) {
	tests := []struct {
		s     string
		wantX int
	}{
		{"a  b", 24},
		{"a ", 18},
		{"", 6},
		{"ab", 12},
	}

	for _, tt := range tests {
		dev, _ := newTestDev(t, 128, 32)
		if err := dev.WriteString(font.Oled5x7, 1, tt.s, false); err != nil {
			t.Fatalf("WriteString(%q) error: %v", tt.s, err)
		}
		wantCursor(t, dev, tt.wantX, 0)
	}
}

func TestWriteStringScaled(t *testing.T) {
	dev, _ := newTestDev(t, 128, 32)
	if err := dev.WriteString(font.Oled5x7, 2, "!", false); err != nil {
		t.Fatalf("WriteString() error: %v", err)
	}
	for _, x := range []int{4, 5} {
		for _, y := range []int{0, 1} {
			if dev.Pixel(x, y) != image1bit.On {
				t.Errorf("pixel (%d, %d) off, want on", x, y)
			}
		}
	}
	if dev.Pixel(4, 10) != image1bit.Off {
		t.Error("pixel (4, 10) on, want off")
	}
	if dev.Pixel(4, 12) != image1bit.On {
		t.Error("pixel (4, 12) off, want on")
	}
	if dev.Pixel(3, 0) != image1bit.Off {
		t.Error("pixel (3, 0) on, want off")
	}
	wantCursor(t, dev, 11, 0)
}

func TestWriteStringUndefinedGlyph(t *testing.T) {
	dev, _ := newTestDev(t, 128, 32)
	dev.SetCursor(10, 4)
	err := dev.WriteString(font.Oled5x7, 1, "héllo", true)
	if !errors.Is(err, ErrConfig) || !errors.Is(err, font.ErrUndefinedGlyph) {
		t.Fatalf("WriteString() error = %v, want ErrConfig and ErrUndefinedGlyph", err)
	}
	wantCursor(t, dev, 10, 4)
	if dev.dirty.len() != 0 {
		t.Errorf("%d bytes changed before the error", dev.dirty.len())
	}
}

func TestWriteStringInvalidArgs(t *testing.T) {
	dev, _ := newTestDev(t, 128, 32)
	if err := dev.WriteString(font.Oled5x7, 0, "a", false); !errors.Is(err, ErrConfig) {
		t.Errorf("size 0 error = %v, want ErrConfig", err)
	}
	if err := dev.WriteString(nil, 1, "a", false); !errors.Is(err, ErrConfig) {
		t.Errorf("nil font error = %v, want ErrConfig", err)
	}
	bad := &font.Font{Width: 5, Height: 9, Lookup: "a", Data: make([]byte, 5)}
	if err := dev.WriteString(bad, 1, "a", false); !errors.Is(err, ErrConfig) {
		t.Errorf("tall font error = %v, want ErrConfig", err)
	}
	wantCursor(t, dev, 0, 0)
}

func TestWriteStringLetterWrapScaled(t *testing.T) {
	// The right edge check uses the unscaled glyph width.
	dev, _ := newTestDev(t, 96, 16)
	if err := dev.WriteString(font.Oled5x7, 2, "aaaaaaaaa", true); err != nil {
		t.Fatalf("WriteString() error: %v", err)
	}
	wantCursor(t, dev, 0, 15)

	if err := dev.WriteString(font.Oled5x7, 2, "a", true); err != nil {
		t.Fatalf("WriteString() error: %v", err)
	}
	wantCursor(t, dev, 11, 15)
}
