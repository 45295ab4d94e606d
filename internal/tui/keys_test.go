package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/johnconnor-sec/autocomplete-go/internal/autocomplete"
)

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		wantKey  autocomplete.Key
		wantCode int
	}{
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), autocomplete.KeyArrowDown, 40},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), autocomplete.KeyArrowUp, 38},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), autocomplete.KeyEnter, 13},
		{"ctrl+j confirms", tcell.NewEventKey(tcell.KeyLF, 0, tcell.ModNone), autocomplete.KeyEnter, 10},
		{"escape", tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone), autocomplete.KeyEscape, 27},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), autocomplete.KeyTab, 9},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), autocomplete.KeyTab, 9},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), autocomplete.KeyOther, 'a'},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), autocomplete.KeyOther, int(tcell.KeyLeft)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ke := keyEvent(tt.ev)
			if ke.Key != tt.wantKey {
				t.Errorf("key = %v, want %v", ke.Key, tt.wantKey)
			}
			if ke.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", ke.Code, tt.wantCode)
			}
		})
	}
}

func TestKeyEvent_Modifiers(t *testing.T) {
	ke := keyEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt|tcell.ModCtrl))
	if !ke.Alt || !ke.Ctrl {
		t.Errorf("modifiers lost: %+v", ke)
	}
	if ke.Rune != 'x' {
		t.Errorf("rune = %q, want 'x'", ke.Rune)
	}
}
