package ssd1306

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is wrapped by every configuration error: unsupported panel
	// geometry, invalid options, glyphs missing from a font.
	ErrConfig = errors.New("ssd1306: configuration error")

	// ErrTimeout is returned when the controller stays busy longer than the
	// polling budget. The device remains usable afterwards.
	ErrTimeout = errors.New("ssd1306: timed out waiting for controller")
)

// TransportError reports a failed bus transfer. Transfers are never retried.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ssd1306: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
