package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/johnconnor-sec/autocomplete-go/internal/autocomplete"
)

// Key codes reported with each key, as a browser would.
const (
	codeTab       = 9
	codeLineFeed  = 10
	codeEscape    = 27
	codeArrowUp   = 38
	codeArrowDown = 40
)

// keyEvent translates a terminal key into the widget's key event.
// Ctrl+J arrives as a line feed and is reported as Enter with code 10,
// which the widget treats as a confirmation that must not select.
func keyEvent(ev *tcell.EventKey) autocomplete.KeyEvent {
	mods := ev.Modifiers()
	ke := autocomplete.KeyEvent{
		Alt:  mods&tcell.ModAlt != 0,
		Ctrl: mods&tcell.ModCtrl != 0,
	}
	switch ev.Key() {
	case tcell.KeyDown:
		ke.Key, ke.Code = autocomplete.KeyArrowDown, codeArrowDown
	case tcell.KeyUp:
		ke.Key, ke.Code = autocomplete.KeyArrowUp, codeArrowUp
	case tcell.KeyEnter:
		ke.Key, ke.Code = autocomplete.KeyEnter, autocomplete.KeyCodeEnter
	case tcell.KeyLF:
		ke.Key, ke.Code = autocomplete.KeyEnter, codeLineFeed
	case tcell.KeyEsc:
		ke.Key, ke.Code = autocomplete.KeyEscape, codeEscape
	case tcell.KeyTab, tcell.KeyBacktab:
		ke.Key, ke.Code = autocomplete.KeyTab, codeTab
	case tcell.KeyRune:
		ke.Rune = ev.Rune()
		ke.Code = int(ev.Rune())
	default:
		ke.Code = int(ev.Key())
	}
	return ke
}
