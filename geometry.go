package ssd1306

import "fmt"

// Geometry holds the controller parameters that depend on the panel size.
type Geometry struct {
	Multiplex    byte // Multiplex ratio, height-1
	ComPins      byte // COM pins hardware configuration
	ColumnOffset byte // First RAM column wired to the panel
}

type panelSize struct{ w, h int }

var geometries = map[panelSize]Geometry{
	{128, 32}: {Multiplex: 0x1F, ComPins: 0x02, ColumnOffset: 0},
	{128, 64}: {Multiplex: 0x3F, ComPins: 0x12, ColumnOffset: 0},
	{96, 16}:  {Multiplex: 0x0F, ComPins: 0x02, ColumnOffset: 0},
}

// lookupGeometry returns the parameters for a w×h panel.
func lookupGeometry(w, h int) (Geometry, error) {
	g, ok := geometries[panelSize{w, h}]
	if !ok {
		return Geometry{}, fmt.Errorf("%w: unsupported geometry %dx%d", ErrConfig, w, h)
	}
	return g, nil
}
