package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/embercrypt/internal/view"
)

var (
	colorWhite     = tcell.NewRGBColor(255, 255, 255)
	colorBarFilled = tcell.NewRGBColor(0, 96, 0)
	colorBarEmpty  = tcell.NewRGBColor(64, 16, 16)
	colorMenuTitle = tcell.NewRGBColor(255, 255, 63)
	colorCursor    = tcell.NewRGBColor(200, 200, 200)
	colorDimmed    = tcell.NewRGBColor(96, 96, 96)
)

// tonePalette maps message tones to foreground colors.
var tonePalette = map[view.Tone]tcell.Color{
	view.ToneNormal:       colorWhite,
	view.ToneWelcome:      tcell.NewRGBColor(32, 160, 255),
	view.ToneImpossible:   tcell.NewRGBColor(128, 128, 128),
	view.ToneError:        tcell.NewRGBColor(255, 64, 64),
	view.TonePlayerAttack: tcell.NewRGBColor(224, 224, 224),
	view.ToneEnemyAttack:  tcell.NewRGBColor(255, 192, 192),
	view.TonePlayerDeath:  tcell.NewRGBColor(255, 48, 48),
	view.ToneEnemyDeath:   tcell.NewRGBColor(255, 160, 48),
	view.ToneHeal:         tcell.NewRGBColor(0, 255, 0),
	view.ToneStatus:       tcell.NewRGBColor(63, 255, 63),
	view.ToneDescend:      tcell.NewRGBColor(159, 63, 255),
	view.ToneLevelUp:      tcell.NewRGBColor(255, 215, 0),
	view.ToneVictory:      tcell.NewRGBColor(255, 200, 40),
}

// ToneColor returns the color for a message tone.
func ToneColor(t view.Tone) tcell.Color {
	if c, ok := tonePalette[t]; ok {
		return c
	}
	return colorWhite
}
