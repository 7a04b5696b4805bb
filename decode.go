package termtrack

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// csiKeys maps the final byte of an unparameterized CSI or SS3 sequence
var csiKeys = map[byte]rune{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'F': KeyEnd,
	'H': KeyHome,
	'P': KeyF01,
	'Q': KeyF02,
	'R': KeyF03,
	'S': KeyF04,
}

// tildeKeys maps the parameter of a "CSI n ~" sequence
var tildeKeys = map[int]rune{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPgUp,
	6:  KeyPgDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF01,
	12: KeyF02,
	13: KeyF03,
	14: KeyF04,
	15: KeyF05,
	17: KeyF06,
	18: KeyF07,
	19: KeyF08,
	20: KeyF09,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// DecodeKey decodes the first key in b, returning the key and the number of
// bytes it occupied. n is 0 only when b is empty. Unrecognized escape
// sequences are consumed whole and reported as a Key with Codepoint -1
func DecodeKey(b []byte) (Key, int) {
	if len(b) == 0 {
		return Key{}, 0
	}
	switch c := b[0]; {
	case c == 0x1b:
		if len(b) == 1 {
			return Key{Codepoint: KeyEsc}, 1
		}
		switch b[1] {
		case '[':
			return decodeCSI(b)
		case 'O':
			if len(b) > 2 {
				if r, ok := csiKeys[b[2]]; ok {
					return Key{Codepoint: r}, 3
				}
			}
			return Key{Codepoint: 'O', Text: "O", Modifiers: ModAlt}, 2
		case 0x1b:
			return Key{Codepoint: KeyEsc}, 1
		}
		key, n := DecodeKey(b[1:])
		key.Modifiers |= ModAlt
		return key, n + 1
	case c == '\r' || c == '\n':
		return Key{Codepoint: KeyEnter}, 1
	case c == KeyTab || c == KeyBackspace:
		return Key{Codepoint: rune(c)}, 1
	case c == 0x08:
		return Key{Codepoint: KeyBackspace}, 1
	case c == 0x00:
		return Key{Codepoint: KeySpace, Modifiers: ModCtrl}, 1
	case c < 0x1b:
		return Key{Codepoint: rune(c) + 0x60, Modifiers: ModCtrl}, 1
	case c < 0x20:
		return Key{Codepoint: rune(c)}, 1
	case c == ' ':
		return Key{Codepoint: KeySpace, Text: " "}, 1
	}

	cluster, _, _, _ := uniseg.FirstGraphemeCluster(b, -1)
	r, size := utf8.DecodeRune(cluster)
	if r == utf8.RuneError && size <= 1 {
		return Key{Codepoint: -1}, len(cluster)
	}
	return Key{Codepoint: r, Text: string(cluster)}, len(cluster)
}

// decodeCSI decodes "ESC [ params final". b starts with the ESC
func decodeCSI(b []byte) (Key, int) {
	var (
		params []int
		cur    = -1
	)
	for i := 2; i < len(b); i += 1 {
		c := b[i]
		switch {
		case c >= '0' && c <= '9':
			if cur < 0 {
				cur = 0
			}
			cur = cur*10 + int(c-'0')
			continue
		case c == ';':
			params = append(params, max(cur, 0))
			cur = -1
			continue
		case c < 0x40 || c > 0x7e:
			// intermediate or private bytes
			continue
		}
		if cur >= 0 {
			params = append(params, cur)
		}
		n := i + 1
		key := Key{Codepoint: -1}
		switch c {
		case '~':
			if len(params) > 0 {
				if r, ok := tildeKeys[params[0]]; ok {
					key.Codepoint = r
				}
			}
		case 'Z':
			key.Codepoint = KeyTab
			key.Modifiers = ModShift
		default:
			if r, ok := csiKeys[c]; ok {
				key.Codepoint = r
			}
		}
		// xterm encodes modifiers as the second parameter, plus one
		if len(params) > 1 && params[1] > 1 {
			key.Modifiers |= decodeModifiers(params[1] - 1)
		}
		return key, n
	}
	// Incomplete sequence: report the escape alone
	return Key{Codepoint: KeyEsc}, 1
}

func decodeModifiers(m int) ModifierMask {
	var mods ModifierMask
	if m&1 != 0 {
		mods |= ModShift
	}
	if m&2 != 0 {
		mods |= ModAlt
	}
	if m&4 != 0 {
		mods |= ModCtrl
	}
	return mods
}
