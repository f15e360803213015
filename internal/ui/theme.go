package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Dracula palette
var (
	draculaBackground  = color.NRGBA{R: 0x28, G: 0x2a, B: 0x36, A: 0xff}
	draculaCurrentLine = color.NRGBA{R: 0x44, G: 0x47, B: 0x5a, A: 0xff}
	draculaForeground  = color.NRGBA{R: 0xf8, G: 0xf8, B: 0xf2, A: 0xff}
	draculaComment     = color.NRGBA{R: 0x62, G: 0x72, B: 0xa4, A: 0xff}
	draculaPurple      = color.NRGBA{R: 0xbd, G: 0x93, B: 0xf9, A: 0xff}
	draculaPink        = color.NRGBA{R: 0xff, G: 0x79, B: 0xc6, A: 0xff}
	draculaGreen       = color.NRGBA{R: 0x50, G: 0xfa, B: 0x7b, A: 0xff}
	draculaRed         = color.NRGBA{R: 0xff, G: 0x55, B: 0x55, A: 0xff}
	draculaYellow      = color.NRGBA{R: 0xf1, G: 0xfa, B: 0x8c, A: 0xff}

	draculaCard    = color.NRGBA{R: 0x21, G: 0x22, B: 0x2c, A: 0xff}
	draculaHover   = color.NRGBA{R: 0x44, G: 0x47, B: 0x5a, A: 0x99}
	draculaPressed = color.NRGBA{R: 0xbd, G: 0x93, B: 0xf9, A: 0x66}
)

// DraculaTheme is a dark theme based on the Dracula palette. It ignores the
// requested variant.
type DraculaTheme struct{}

// NewDraculaTheme creates a new Dracula theme
func NewDraculaTheme() fyne.Theme {
	return &DraculaTheme{}
}

// Color returns theme colors
func (t *DraculaTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return draculaBackground
	case theme.ColorNameHeaderBackground, theme.ColorNameInputBackground, theme.ColorNameButton:
		return draculaCard
	case theme.ColorNameForeground:
		return draculaForeground
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return draculaComment
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return draculaPurple
	case theme.ColorNameHyperlink:
		return draculaPink
	case theme.ColorNameSelection, theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return draculaCurrentLine
	case theme.ColorNameHover:
		return draculaHover
	case theme.ColorNamePressed:
		return draculaPressed
	case theme.ColorNameSuccess:
		return draculaGreen
	case theme.ColorNameError:
		return draculaRed
	case theme.ColorNameWarning:
		return draculaYellow
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *DraculaTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DraculaTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *DraculaTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 24
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
