// Package ssd1306 controls a SSD1306 monochrome OLED display over I²C.
//
// The driver keeps a page-addressed framebuffer in memory, draws pixels,
// lines, rectangles and wrapped text into it, and sends only the changed
// bytes to the controller when Display is called.
//
// See the examples for how to use this package.
package ssd1306

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/flavioheleno/ssd1306/image1bit"
	"github.com/flavioheleno/ssd1306/internal/log"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
)

// Polling defaults used when the matching Opts field is zero.
const (
	DefaultPollInterval = 500 * time.Microsecond
	DefaultPollTimeout  = 250 * time.Millisecond
	DefaultMaxPolls     = 500
)

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels. Supported: 128x32, 128x64, 96x16.
	W int
	H int

	// I²C address of the display (0 selects 0x3C).
	Addr uint16

	// Extra pixels between text lines and between characters.
	LineSpacing   int
	LetterSpacing int

	// Busy polling budget before each flush. Zero values select the defaults.
	PollInterval time.Duration
	PollTimeout  time.Duration
	MaxPolls     int
}

// DefaultOpts is the configuration used when nil Opts are passed.
var DefaultOpts = Opts{
	W:             128,
	H:             32,
	Addr:          0x3C,
	LineSpacing:   1,
	LetterSpacing: 1,
}

// Dev is the device handle for the SSD1306 display.
//
// Drawing methods (SetPixel, DrawLine, FillRect, DrawBitmap, WriteString,
// Clear) only change the framebuffer; call Display to send the changes.
// Draw and Write send immediately.
//
// A Dev is not safe for concurrent use.
type Dev struct {
	// Communication
	bus  Bus
	addr uint16

	// Display geometry
	rect image.Rectangle
	geom Geometry

	// Pixel buffer and the bytes changed since the last flush
	fb    *image1bit.VerticalLSB
	dirty *dirtyTracker

	// Text layout
	cursorX, cursorY int
	lineSpacing      int
	letterSpacing    int

	// Busy polling
	pollInterval time.Duration
	pollTimeout  time.Duration
	maxPolls     int
	sleep        func(time.Duration)
	now          func() time.Time
}

// NewI2C creates a new SSD1306 device on an I²C bus.
//
// opts can be nil to use DefaultOpts.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	return New(&i2cBus{b: b}, opts)
}

// New creates a new SSD1306 device on any Bus and runs the controller
// initialization sequence.
//
// An unsupported geometry is reported before anything is sent to the bus.
func New(bus Bus, opts *Opts) (*Dev, error) {
	d, err := newDev(bus, opts)
	if err != nil {
		return nil, err
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	log.Debug("ssd1306 initialized", "w", d.rect.Dx(), "h", d.rect.Dy(), "addr", fmt.Sprintf("0x%02X", d.addr))
	return d, nil
}

// newDev validates opts and allocates the device state without touching the
// bus.
func newDev(bus Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if bus == nil {
		return nil, fmt.Errorf("%w: nil bus", ErrConfig)
	}
	geom, err := lookupGeometry(opts.W, opts.H)
	if err != nil {
		return nil, err
	}
	if opts.LineSpacing < 0 || opts.LetterSpacing < 0 {
		return nil, fmt.Errorf("%w: spacing must not be negative", ErrConfig)
	}

	d := &Dev{
		bus:           bus,
		addr:          opts.Addr,
		rect:          image.Rect(0, 0, opts.W, opts.H),
		geom:          geom,
		fb:            image1bit.NewVerticalLSB(image.Rect(0, 0, opts.W, opts.H)),
		dirty:         newDirtyTracker(opts.W * opts.H / 8),
		lineSpacing:   opts.LineSpacing,
		letterSpacing: opts.LetterSpacing,
		pollInterval:  opts.PollInterval,
		pollTimeout:   opts.PollTimeout,
		maxPolls:      opts.MaxPolls,
		sleep:         time.Sleep,
		now:           time.Now,
	}
	if d.addr == 0 {
		d.addr = DefaultOpts.Addr
	}
	if d.pollInterval <= 0 {
		d.pollInterval = DefaultPollInterval
	}
	if d.pollTimeout <= 0 {
		d.pollTimeout = DefaultPollTimeout
	}
	if d.maxPolls <= 0 {
		d.maxPolls = DefaultMaxPolls
	}
	return d, nil
}

// init sends the bring-up sequence. The order is fixed by the controller.
func (d *Dev) init() error {
	return d.sendCommands(initSequence(d.geom)...)
}

func initSequence(g Geometry) []byte {
	return []byte{
		cmdDisplayOff,
		cmdSetDisplayClockDiv, 0x80,
		cmdSetMultiplex, g.Multiplex,
		cmdSetDisplayOffset, 0x00,
		cmdSetStartLine,
		cmdChargePump, 0x14, // Internal DC/DC
		cmdMemoryMode, 0x00,
		cmdSegRemap,
		cmdComScanDec,
		cmdSetComPins, g.ComPins,
		cmdSetContrast, 0x8F,
		cmdSetPrecharge, 0xF1,
		cmdSetVcomDetect, 0x40,
		cmdDisplayAllOnResume,
		cmdNormalDisplay,
		cmdDisplayOn,
	}
}

// transfer sends a single byte framed by its control byte.
func (d *Dev) transfer(control, v byte) error {
	if _, err := d.bus.WriteBytes(d.addr, []byte{control, v}); err != nil {
		op := "write command"
		if control == controlData {
			op = "write data"
		}
		return &TransportError{Op: op, Err: err}
	}
	return nil
}

// sendCommands sends each command byte as its own transfer.
func (d *Dev) sendCommands(cmds ...byte) error {
	for _, c := range cmds {
		if err := d.transfer(controlCommand, c); err != nil {
			return err
		}
	}
	return nil
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is always {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d, 0x%02X}", d.rect.Dx(), d.rect.Dy(), d.addr)
}

// Buffer returns a copy of the framebuffer in controller layout.
func (d *Dev) Buffer() []byte {
	out := make([]byte, len(d.fb.Pix))
	copy(out, d.fb.Pix)
	return out
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(level byte) error {
	return d.sendCommands(cmdSetContrast, level)
}

// Dim lowers the contrast to its minimum, or restores the bright level.
func (d *Dev) Dim(dim bool) error {
	level := byte(0xCF)
	if dim {
		level = 0x00
	}
	return d.SetContrast(level)
}

// Invert inverts the display colors (lit pixels go dark and vice versa).
func (d *Dev) Invert(invert bool) error {
	mode := byte(cmdNormalDisplay)
	if invert {
		mode = cmdInvertDisplay
	}
	return d.sendCommands(mode)
}

// SetPower turns the panel on or off. Display RAM is kept while off.
func (d *Dev) SetPower(on bool) error {
	cmd := byte(cmdDisplayOff)
	if on {
		cmd = cmdDisplayOn
	}
	return d.sendCommands(cmd)
}

// Halt turns the display off. SetPower(true) turns it back on.
func (d *Dev) Halt() error {
	return d.SetPower(false)
}

var (
	_ conn.Resource  = &Dev{}
	_ display.Drawer = &Dev{}
)
