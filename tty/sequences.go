package tty

import (
	"fmt"
	"strconv"
	"strings"

	"git.sr.ht/~rockorager/termtrack"
)

const (
	// These have no terminfo entry but they work everywhere so we hardcode
	// them
	setfDefault = "\x1b[39m"
	setbDefault = "\x1b[49m"
	sgrReset    = "\x1b[m"

	// DECTCEM, used when terminfo has no civis / cnorm
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"

	cup         = "\x1b[%d;%dH"
	clearScreen = "\x1b[H\x1b[2J"
)

// sgrColors returns the SGR sequence selecting fg and bg
func sgrColors(fg termtrack.Color, bg termtrack.Color) string {
	ps := make([]string, 0, 2)
	ps = append(ps, sgrParam(fg, 30, 90, 38, 39))
	ps = append(ps, sgrParam(bg, 40, 100, 48, 49))
	return "\x1b[" + strings.Join(ps, ";") + "m"
}

func sgrParam(c termtrack.Color, base int, bright int, extended int, reset int) string {
	params := c.Params()
	if len(params) == 0 {
		return strconv.Itoa(reset)
	}
	idx := int(params[0])
	switch {
	case idx < 8:
		return strconv.Itoa(base + idx)
	case idx < 16:
		return strconv.Itoa(bright + idx - 8)
	default:
		return fmt.Sprintf("%d;5;%d", extended, idx)
	}
}
