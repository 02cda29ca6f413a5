package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func keyEvent(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		dx, dy int
		ok     bool
	}{
		{"arrow up", keyEvent(tcell.KeyUp), 0, -1, true},
		{"arrow right", keyEvent(tcell.KeyRight), 1, 0, true},
		{"home", keyEvent(tcell.KeyHome), -1, -1, true},
		{"page down", keyEvent(tcell.KeyPgDn), 1, 1, true},
		{"vi h", runeEvent('h'), -1, 0, true},
		{"vi u", runeEvent('u'), 1, -1, true},
		{"numpad 1", runeEvent('1'), -1, 1, true},
		{"numpad 5", runeEvent('5'), 0, 0, false},
		{"letter g", runeEvent('g'), 0, 0, false},
		{"enter", keyEvent(tcell.KeyEnter), 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy, ok := direction(tt.ev)
			if dx != tt.dx || dy != tt.dy || ok != tt.ok {
				t.Errorf("direction() = %d, %d, %v, want %d, %d, %v", dx, dy, ok, tt.dx, tt.dy, tt.ok)
			}
		})
	}
}

func TestKeyPredicates(t *testing.T) {
	if !isWait(runeEvent('.')) || !isWait(runeEvent('5')) || isWait(runeEvent('g')) {
		t.Error("isWait() mismatch")
	}
	if !isConfirm(keyEvent(tcell.KeyEnter)) || isConfirm(runeEvent('e')) {
		t.Error("isConfirm() mismatch")
	}
	if !isCancel(keyEvent(tcell.KeyEscape)) || isCancel(runeEvent('q')) {
		t.Error("isCancel() mismatch")
	}
	if runeKey(keyEvent(tcell.KeyUp)) != 0 || runeKey(runeEvent('>')) != '>' {
		t.Error("runeKey() mismatch")
	}
}

func TestLetterIndex(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want int
		ok   bool
	}{
		{runeEvent('a'), 0, true},
		{runeEvent('z'), 25, true},
		{runeEvent('A'), 0, false},
		{runeEvent('1'), 0, false},
		{keyEvent(tcell.KeyEnter), 0, false},
	}
	for _, tt := range tests {
		got, ok := letterIndex(tt.ev)
		if got != tt.want || ok != tt.ok {
			t.Errorf("letterIndex(%q) = %d, %v, want %d, %v", tt.ev.Rune(), got, ok, tt.want, tt.ok)
		}
	}
}
