package tcellterm

import (
	"github.com/gdamore/tcell/v2"

	"git.sr.ht/~rockorager/termtrack"
)

var keyMap = map[tcell.Key]rune{
	tcell.KeyUp:         termtrack.KeyUp,
	tcell.KeyDown:       termtrack.KeyDown,
	tcell.KeyLeft:       termtrack.KeyLeft,
	tcell.KeyRight:      termtrack.KeyRight,
	tcell.KeyHome:       termtrack.KeyHome,
	tcell.KeyEnd:        termtrack.KeyEnd,
	tcell.KeyInsert:     termtrack.KeyInsert,
	tcell.KeyDelete:     termtrack.KeyDelete,
	tcell.KeyPgUp:       termtrack.KeyPgUp,
	tcell.KeyPgDn:       termtrack.KeyPgDown,
	tcell.KeyF1:         termtrack.KeyF01,
	tcell.KeyF2:         termtrack.KeyF02,
	tcell.KeyF3:         termtrack.KeyF03,
	tcell.KeyF4:         termtrack.KeyF04,
	tcell.KeyF5:         termtrack.KeyF05,
	tcell.KeyF6:         termtrack.KeyF06,
	tcell.KeyF7:         termtrack.KeyF07,
	tcell.KeyF8:         termtrack.KeyF08,
	tcell.KeyF9:         termtrack.KeyF09,
	tcell.KeyF10:        termtrack.KeyF10,
	tcell.KeyF11:        termtrack.KeyF11,
	tcell.KeyF12:        termtrack.KeyF12,
	tcell.KeyEnter:      termtrack.KeyEnter,
	tcell.KeyTab:        termtrack.KeyTab,
	tcell.KeyEsc:        termtrack.KeyEsc,
	tcell.KeyBackspace:  termtrack.KeyBackspace,
	tcell.KeyBackspace2: termtrack.KeyBackspace,
}

// convertKey translates a tcell key event. Shift is dropped from printable
// keys, it is already part of the rune
func convertKey(ev *tcell.EventKey) (termtrack.Key, bool) {
	var mods termtrack.ModifierMask
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= termtrack.ModShift
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= termtrack.ModAlt
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= termtrack.ModCtrl
	}

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r := ev.Rune()
		mods &^= termtrack.ModShift
		if r == ' ' {
			return termtrack.Key{Codepoint: termtrack.KeySpace, Text: " ", Modifiers: mods}, true
		}
		return termtrack.Key{Codepoint: r, Text: string(r), Modifiers: mods}, true
	case k == tcell.KeyBacktab:
		return termtrack.Key{Codepoint: termtrack.KeyTab, Modifiers: mods | termtrack.ModShift}, true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		if r, ok := keyMap[k]; ok {
			return termtrack.Key{Codepoint: r, Modifiers: mods &^ termtrack.ModCtrl}, true
		}
		return termtrack.Key{Codepoint: 'a' + rune(k-tcell.KeyCtrlA), Modifiers: mods | termtrack.ModCtrl}, true
	}
	if r, ok := keyMap[ev.Key()]; ok {
		return termtrack.Key{Codepoint: r, Modifiers: mods}, true
	}
	return termtrack.Key{}, false
}
