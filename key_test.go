package termtrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		key  Key
	}{
		{
			name: "j",
			key:  Key{Codepoint: 'j'},
		},
		{
			name: "Q",
			key:  Key{Codepoint: 'Q', Text: "Q"},
		},
		{
			name: "<c-@>",
			key:  Key{Codepoint: 0x00},
		},
		{
			name: "<c-c>",
			key:  Key{Codepoint: 'c', Modifiers: ModCtrl},
		},
		{
			name: "<a-a>",
			key:  Key{Codepoint: 'a', Modifiers: ModAlt},
		},
		{
			name: "<f1>",
			key:  Key{Codepoint: KeyF01},
		},
		{
			name: "<s-f1>",
			key:  Key{Codepoint: KeyF01, Modifiers: ModShift},
		},
		{
			name: "<s-tab>",
			key:  Key{Codepoint: KeyTab, Modifiers: ModShift},
		},
		{
			name: "<esc>",
			key:  Key{Codepoint: KeyEsc},
		},
		{
			name: "<space>",
			key:  Key{Codepoint: KeySpace},
		},
		{
			name: "<invalid>",
			key:  Key{Codepoint: -1},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := test.key.String()
			assert.Equal(t, test.name, actual)
		})
	}
}

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		key   Key
		n     int
	}{
		{
			name:  "empty",
			input: "",
			key:   Key{},
			n:     0,
		},
		{
			name:  "lowercase",
			input: "q",
			key:   Key{Codepoint: 'q', Text: "q"},
			n:     1,
		},
		{
			name:  "uppercase",
			input: "Qi",
			key:   Key{Codepoint: 'Q', Text: "Q"},
			n:     1,
		},
		{
			name:  "multibyte",
			input: "\u00e9",
			key:   Key{Codepoint: '\u00e9', Text: "\u00e9"},
			n:     2,
		},
		{
			name:  "grapheme cluster",
			input: "e\u0301x",
			key:   Key{Codepoint: 'e', Text: "e\u0301"},
			n:     3,
		},
		{
			name:  "ctrl-c",
			input: "\x03",
			key:   Key{Codepoint: 'c', Modifiers: ModCtrl},
			n:     1,
		},
		{
			name:  "enter",
			input: "\r",
			key:   Key{Codepoint: KeyEnter},
			n:     1,
		},
		{
			name:  "backspace",
			input: "\x7f",
			key:   Key{Codepoint: KeyBackspace},
			n:     1,
		},
		{
			name:  "escape",
			input: "\x1b",
			key:   Key{Codepoint: KeyEsc},
			n:     1,
		},
		{
			name:  "alt",
			input: "\x1bq",
			key:   Key{Codepoint: 'q', Text: "q", Modifiers: ModAlt},
			n:     2,
		},
		{
			name:  "up",
			input: "\x1b[A",
			key:   Key{Codepoint: KeyUp},
			n:     3,
		},
		{
			name:  "ss3 f1",
			input: "\x1bOP",
			key:   Key{Codepoint: KeyF01},
			n:     3,
		},
		{
			name:  "ctrl-right",
			input: "\x1b[1;5C",
			key:   Key{Codepoint: KeyRight, Modifiers: ModCtrl},
			n:     6,
		},
		{
			name:  "delete",
			input: "\x1b[3~q",
			key:   Key{Codepoint: KeyDelete},
			n:     4,
		},
		{
			name:  "f12",
			input: "\x1b[24~",
			key:   Key{Codepoint: KeyF12},
			n:     5,
		},
		{
			name:  "shift-tab",
			input: "\x1b[Z",
			key:   Key{Codepoint: KeyTab, Modifiers: ModShift},
			n:     3,
		},
		{
			name:  "unknown csi",
			input: "\x1b[99~",
			key:   Key{Codepoint: -1},
			n:     5,
		},
		{
			name:  "invalid utf8",
			input: "\xff",
			key:   Key{Codepoint: -1},
			n:     1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key, n := DecodeKey([]byte(test.input))
			assert.Equal(t, test.key, key)
			assert.Equal(t, test.n, n)
		})
	}
}
