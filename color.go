package termtrack

// Color is a terminal color. The zero value represents the default foreground
// or background color
type Color uint32

const indexed Color = 1 << 24

// IndexColor returns the palette color at index
func IndexColor(index uint8) Color {
	color := Color(index)
	return color | indexed
}

// PairColor converts a color number as passed to Terminal.InitPair. -1 is
// the default color. ok is false for numbers outside -1 to 255
func PairColor(c int) (Color, bool) {
	switch {
	case c == -1:
		return 0, true
	case c < -1 || c > 255:
		return 0, false
	}
	return IndexColor(uint8(c)), true
}

// Params returns the SGR parameters for the color, or an empty slice if the
// color is the default color
func (c Color) Params() []uint8 {
	if c&indexed != 0 {
		return []uint8{uint8(c)}
	}
	return []uint8{}
}

// Index returns the palette index of an indexed color
func (c Color) Index() (uint8, bool) {
	if c&indexed == 0 {
		return 0, false
	}
	return uint8(c), true
}
