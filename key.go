package termtrack

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
)

// Key is a key press read from the terminal
type Key struct {
	// Codepoint is the first codepoint of the key, or one of the Key*
	// constants for keys which do not produce text
	Codepoint rune
	// Text is the full grapheme cluster produced by the key, if any
	Text      string
	Modifiers ModifierMask
}

type ModifierMask int

const (
	ModShift ModifierMask = 1 << iota
	ModAlt
	ModCtrl
)

// Modified keys will always have prefixes in this order:
//
//	<c-a-s-{key}>
func (k Key) String() string {
	buf := &bytes.Buffer{}
	special := k.Codepoint > unicode.MaxRune ||
		k.Codepoint == KeyTab ||
		k.Codepoint == KeySpace ||
		k.Codepoint == KeyEsc ||
		k.Codepoint == KeyBackspace
	if k.Modifiers != 0 || special {
		buf.WriteRune('<')
	}
	if k.Modifiers&ModCtrl != 0 {
		buf.WriteString("c-")
	}
	if k.Modifiers&ModAlt != 0 {
		buf.WriteString("a-")
	}
	if k.Modifiers&ModShift != 0 {
		buf.WriteString("s-")
	}

	switch {
	case k.Codepoint < 0:
		return "<invalid>"
	case special:
		buf.WriteString(keyNames[k.Codepoint])
	case k.Codepoint < 0x20:
		ch := fmt.Sprintf("%c", k.Codepoint+0x40)
		return fmt.Sprintf("<c-%s>", strings.ToLower(ch))
	case k.Text != "":
		buf.WriteString(k.Text)
	default:
		buf.WriteRune(k.Codepoint)
	}

	if strings.HasPrefix(buf.String(), "<") {
		buf.WriteRune('>')
	}
	return buf.String()
}

const (
	extended rune = 1 << 30
)

const (
	KeyUp rune = extended + 1 + iota
	KeyRight
	KeyDown
	KeyLeft
	KeyInsert
	KeyDelete
	KeyPgDown
	KeyPgUp
	KeyHome
	KeyEnd
	KeyF01
	KeyF02
	KeyF03
	KeyF04
	KeyF05
	KeyF06
	KeyF07
	KeyF08
	KeyF09
	KeyF10
	KeyF11
	KeyF12
	KeyEnter

	// Aliases
	KeyReturn    = KeyEnter
	KeyTab       = 0x09
	KeyEsc       = 0x1B
	KeySpace     = 0x20
	KeyBackspace = 0x7F
)

var keyNames = map[rune]string{
	KeyUp:        "up",
	KeyRight:     "right",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyPgDown:    "pgdown",
	KeyPgUp:      "pgup",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyF01:       "f1",
	KeyF02:       "f2",
	KeyF03:       "f3",
	KeyF04:       "f4",
	KeyF05:       "f5",
	KeyF06:       "f6",
	KeyF07:       "f7",
	KeyF08:       "f8",
	KeyF09:       "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyEsc:       "esc",
	KeySpace:     "space",
	KeyBackspace: "bs",
}
