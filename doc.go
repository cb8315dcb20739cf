// Package ssd1306 controls a SSD1306 monochrome OLED display over I²C.
//
// The SSD1306 is a 1-bit OLED controller with page-addressed display RAM: the
// panel is split into horizontal pages 8 pixels high, and every RAM byte holds
// 8 vertically stacked pixels of one column of a page.
// This driver implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - Strictly two-state pixels (image1bit.On / image1bit.Off)
// - Supported resolutions: 128×32, 128×64 and 96×16
// - Hardware horizontal scrolling (left and right)
// - Adjustable contrast (0-255), dimming, inversion and power control
// - Busy flag polling before every bulk transfer
//
// # Hardware Connection
//
// Connect the display to an I²C bus:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C SCL
//	SDA         → I²C SDA
//
// The default 7-bit address is 0x3C. Some modules strap it to 0x3D.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"github.com/flavioheleno/ssd1306"
//		"github.com/flavioheleno/ssd1306/font"
//		"github.com/flavioheleno/ssd1306/image1bit"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open the first available I²C bus
//		b, _ := i2creg.Open("")
//		defer b.Close()
//
//		// Create device
//		dev, _ := ssd1306.NewI2C(b, &ssd1306.Opts{
//			W:             128,
//			H:             64,
//			LineSpacing:   1,
//			LetterSpacing: 1,
//		})
//		defer dev.Halt()
//
//		// Draw into the framebuffer
//		dev.DrawLine(0, 0, 127, 63, image1bit.On)
//		dev.FillRect(100, 2, 20, 10, image1bit.On)
//		dev.SetCursor(0, 16)
//		dev.WriteString(font.Oled5x7, 1, "Hello from periph!", true)
//
//		// Send the changes
//		dev.Display()
//	}
//
// # Updates
//
// Drawing calls only change the in-memory framebuffer and remember which
// bytes changed. Display sends them. For each changed byte a partial update
// costs 7 transferred bytes (a 6 byte address window plus the data byte),
// so once more than 1/7th of the framebuffer changed the driver resends the
// whole frame instead:
//
//	dev.SetPixel(3, 4, image1bit.On) // one byte changed
//	dev.Display()                    // partial update, 7 bytes
//
//	dev.Clear()                      // many bytes changed
//	dev.Display()                    // full update
//
// Update always resends the whole frame. Write replaces the framebuffer with
// raw bytes in controller layout and sends it.
//
// # Text
//
// WriteString draws text at the cursor with a column-packed bitmap font
// (see package font), optionally scaled and word wrapped. Every glyph is
// looked up before drawing; an unknown character is an error.
//
// The Displayer method exposes the device as a tinygo.org/x/drivers Displayer
// so that tinyfont can draw proportional fonts into the framebuffer too.
//
// # Hardware Scrolling
//
//	// Scroll the top two pages to the left
//	dev.StartScroll(ssd1306.ScrollLeft, 0, 1)
//	time.Sleep(5 * time.Second)
//
//	// Stop and rewrite display RAM
//	dev.StopScroll()
//	dev.Update()
//
// # Errors
//
// Unsupported geometries and unknown glyphs wrap ErrConfig. Bus failures are
// returned as *TransportError and never retried. A controller that stays
// busy past the polling budget (Opts.PollTimeout, Opts.MaxPolls) yields
// ErrTimeout; the device stays usable and pending changes are kept.
// Pixels outside the display are silently ignored.
//
// # Concurrency
//
// A Dev is not safe for concurrent use. Callers sharing one across goroutines
// must serialize access.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
