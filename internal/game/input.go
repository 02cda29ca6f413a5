package game

import "github.com/gdamore/tcell/v2"

// Movement keys: arrows and Home/End/PgUp/PgDn for diagonals.
var moveKeys = map[tcell.Key][2]int{
	tcell.KeyUp:    {0, -1},
	tcell.KeyDown:  {0, 1},
	tcell.KeyLeft:  {-1, 0},
	tcell.KeyRight: {1, 0},
	tcell.KeyHome:  {-1, -1},
	tcell.KeyPgUp:  {1, -1},
	tcell.KeyEnd:   {-1, 1},
	tcell.KeyPgDn:  {1, 1},
}

// Movement runes: vi keys and the numpad digits.
var moveRunes = map[rune][2]int{
	'k': {0, -1}, 'j': {0, 1}, 'h': {-1, 0}, 'l': {1, 0},
	'y': {-1, -1}, 'u': {1, -1}, 'b': {-1, 1}, 'n': {1, 1},
	'8': {0, -1}, '2': {0, 1}, '4': {-1, 0}, '6': {1, 0},
	'7': {-1, -1}, '9': {1, -1}, '1': {-1, 1}, '3': {1, 1},
}

// direction decodes a movement key.
func direction(ev *tcell.EventKey) (dx, dy int, ok bool) {
	var d [2]int
	if ev.Key() == tcell.KeyRune {
		d, ok = moveRunes[ev.Rune()]
	} else {
		d, ok = moveKeys[ev.Key()]
	}
	return d[0], d[1], ok
}

// isWait reports whether the key passes the turn.
func isWait(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && (ev.Rune() == '.' || ev.Rune() == '5')
}

// isConfirm reports whether the key accepts a selection.
func isConfirm(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnter
}

// isCancel reports whether the key backs out of the current mode.
func isCancel(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape
}

// letterIndex maps 'a'..'z' to 0..25.
func letterIndex(ev *tcell.EventKey) (int, bool) {
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	r := ev.Rune()
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return int(r - 'a'), true
}

// runeKey returns the typed rune, or 0 for special keys.
func runeKey(ev *tcell.EventKey) rune {
	if ev.Key() != tcell.KeyRune {
		return 0
	}
	return ev.Rune()
}
