package ssd1306

import "fmt"

// ScrollDirection selects the hardware scroll direction.
type ScrollDirection byte

// Supported scroll directions. Diagonal scrolling is not supported.
const (
	ScrollRight ScrollDirection = cmdRightHorizontalScroll
	ScrollLeft  ScrollDirection = cmdLeftHorizontalScroll
)

func (s ScrollDirection) String() string {
	switch s {
	case ScrollRight:
		return "right"
	case ScrollLeft:
		return "left"
	default:
		return fmt.Sprintf("ScrollDirection(0x%02X)", byte(s))
	}
}

// ScrollSpeed is the number of frames between two scroll steps, in the
// controller's 3-bit encoding.
type ScrollSpeed byte

const (
	// Frames between scroll steps
	Speed2Frames   ScrollSpeed = 0x07
	Speed3Frames   ScrollSpeed = 0x04
	Speed4Frames   ScrollSpeed = 0x05
	Speed5Frames   ScrollSpeed = 0x00
	Speed25Frames  ScrollSpeed = 0x06
	Speed64Frames  ScrollSpeed = 0x01
	Speed128Frames ScrollSpeed = 0x02
	Speed256Frames ScrollSpeed = 0x03
)

// StartScroll scrolls pages startPage through stopPage continuously in the
// given direction, one step every 5 frames. Pages are 8 pixel bands,
// numbered from the top.
func (d *Dev) StartScroll(dir ScrollDirection, startPage, stopPage byte) error {
	return d.StartScrollSpeed(dir, startPage, stopPage, Speed5Frames)
}

// StartScrollSpeed is StartScroll with an explicit step interval.
func (d *Dev) StartScrollSpeed(dir ScrollDirection, startPage, stopPage byte, speed ScrollSpeed) error {
	if dir != ScrollRight && dir != ScrollLeft {
		return fmt.Errorf("ssd1306: unsupported scroll direction %s", dir)
	}
	if speed > 0x07 {
		return fmt.Errorf("ssd1306: invalid scroll speed 0x%02X", byte(speed))
	}
	pages := byte(d.rect.Dy() / 8)
	if startPage > stopPage || stopPage >= pages {
		return fmt.Errorf("ssd1306: invalid scroll pages %d-%d for %d pages", startPage, stopPage, pages)
	}
	if err := d.waitUntilReady(); err != nil {
		return err
	}
	return d.sendCommands(
		byte(dir),
		0x00, // Dummy
		startPage,
		byte(speed),
		stopPage,
		0x00, 0xFF, // Dummy
		cmdActivateScroll,
	)
}

// StopScroll stops scrolling. The controller RAM must be rewritten afterwards
// for the content to line up again; Update does that.
func (d *Dev) StopScroll() error {
	return d.sendCommands(cmdDeactivateScroll)
}
