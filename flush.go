package ssd1306

import (
	"fmt"

	"github.com/flavioheleno/ssd1306/internal/log"
)

// Display sends the bytes changed since the last flush to the controller.
//
// When many bytes changed the whole framebuffer is resent instead, whichever
// moves fewer bytes over the bus. With nothing to send Display does not touch
// the bus.
//
// If the controller stays busy past the polling budget, ErrTimeout is
// returned and the pending changes are kept for the next call. Once a
// transfer has started it runs to completion or fails with a
// *TransportError; after a transport failure call Update to resynchronise.
func (d *Dev) Display() error {
	if d.dirty.len() == 0 {
		return nil
	}
	if err := d.waitUntilReady(); err != nil {
		return err
	}
	dirty := d.dirty.drain()
	if shouldFlushFull(len(dirty), len(d.fb.Pix)) {
		log.Debug("ssd1306 flush", "mode", "full", "dirty", len(dirty))
		return d.flushFull()
	}
	log.Debug("ssd1306 flush", "mode", "partial", "dirty", len(dirty))
	return d.flushPartial(dirty)
}

// Update resends the whole framebuffer and forgets pending changes.
func (d *Dev) Update() error {
	if err := d.waitUntilReady(); err != nil {
		return err
	}
	d.dirty.drain()
	return d.flushFull()
}

// waitUntilReady polls the status byte until the busy flag clears. The loop
// is bounded by maxPolls reads and pollTimeout of wall time.
func (d *Dev) waitUntilReady() error {
	start := d.now()
	for polls := 1; ; polls++ {
		status, err := d.bus.ReadStatus(d.addr)
		if err != nil {
			return &TransportError{Op: "read status", Err: err}
		}
		if status&busyFlag == 0 {
			return nil
		}
		if polls >= d.maxPolls || d.now().Sub(start) >= d.pollTimeout {
			log.Debug("ssd1306 busy", "polls", polls, "elapsed", d.now().Sub(start))
			return fmt.Errorf("%w (%d polls)", ErrTimeout, polls)
		}
		d.sleep(d.pollInterval)
	}
}

// flushFull opens an address window over the whole panel and streams the
// framebuffer into it.
func (d *Dev) flushFull() error {
	off := d.geom.ColumnOffset
	err := d.sendCommands(
		cmdColumnAddr, off, off+byte(d.rect.Dx()-1),
		cmdPageAddr, 0, byte(d.rect.Dy()/8-1),
	)
	if err != nil {
		return err
	}
	for _, b := range d.fb.Pix {
		if err := d.transfer(controlData, b); err != nil {
			return err
		}
	}
	return nil
}

// flushPartial sends each dirty byte through a one column, one page window.
func (d *Dev) flushPartial(dirty []int) error {
	w := d.rect.Dx()
	for _, i := range dirty {
		page := byte(i / w)
		col := d.geom.ColumnOffset + byte(i%w)
		if err := d.sendCommands(cmdColumnAddr, col, col, cmdPageAddr, page, page); err != nil {
			return err
		}
		if err := d.transfer(controlData, d.fb.Pix[i]); err != nil {
			return err
		}
	}
	return nil
}
