package ssd1306

import (
	"periph.io/x/conn/v3/i2c"
)

// Bus is the byte transport the controller is reached through.
type Bus interface {
	// WriteBytes writes p to the device at addr.
	WriteBytes(addr uint16, p []byte) (int, error)
	// ReadStatus reads the controller status byte from the device at addr.
	ReadStatus(addr uint16) (byte, error)
}

// i2cBus adapts a periph.io I²C bus.
type i2cBus struct {
	b i2c.Bus
}

func (b *i2cBus) WriteBytes(addr uint16, p []byte) (int, error) {
	if err := b.b.Tx(addr, p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (b *i2cBus) ReadStatus(addr uint16) (byte, error) {
	var r [1]byte
	if err := b.b.Tx(addr, nil, r[:]); err != nil {
		return 0, err
	}
	return r[0], nil
}

var _ Bus = &i2cBus{}
