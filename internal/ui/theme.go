package ui

import "github.com/gdamore/tcell/v2"

// Theme defines the viewer's styles.
type Theme struct {
	Text           tcell.Style
	LineNumber     tcell.Style
	Selection      tcell.Style
	SelectionBlink tcell.Style
	Match          tcell.Style
	Status         tcell.Style
}

// DefaultTheme returns the default color scheme.
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Text:           base,
		LineNumber:     base.Foreground(tcell.ColorLightSlateGray),
		Selection:      base.Background(tcell.Color33).Foreground(tcell.ColorWhite),
		SelectionBlink: base.Background(tcell.Color39).Foreground(tcell.ColorBlack),
		Match:          base.Background(tcell.Color58).Foreground(tcell.ColorWhite),
		Status:         base.Reverse(true),
	}
}
