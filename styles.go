package strip

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	BorderColor              tcell.Color // Box borders.
	FocusBorderColor         tcell.Color // Borders of the focused box.
	TitleColor               tcell.Color // Box titles.
	PrimaryTextColor         tcell.Color // Primary text.
	SecondaryTextColor       tcell.Color // Secondary text (e.g. labels).
	TertiaryTextColor        tcell.Color // Tertiary text (e.g. subtitles, notes).
	CenteredColor            tcell.Color // Highlight of the centered strip item.
	IndicatorColor           tcell.Color // Position indicator thumb.
}

// Styles defines the theme for applications.
var Styles = Theme{
	PrimitiveBackgroundColor: color.Black,
	BorderColor:              color.White,
	FocusBorderColor:         color.Yellow,
	TitleColor:               color.White,
	PrimaryTextColor:         color.White,
	SecondaryTextColor:       color.Yellow,
	TertiaryTextColor:        color.Green,
	CenteredColor:            color.Aqua,
	IndicatorColor:           color.Silver,
}
