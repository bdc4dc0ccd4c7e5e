package render

import (
	"github.com/gdamore/tcell/v2"
)

// HUD colors
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)
	RgbTitle      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(255, 255, 255)
	RgbHelpText   = tcell.NewRGBColor(140, 140, 140)
	RgbRejectBg   = tcell.NewRGBColor(200, 50, 50) // Red flash on rejected input
)

// Styles built from the HUD colors
var (
	StyleTitle  = tcell.StyleDefault.Foreground(RgbTitle).Background(RgbBackground).Bold(true)
	StyleStatus = tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbBackground)
	StyleReject = tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbRejectBg)
	StyleHelp   = tcell.StyleDefault.Foreground(RgbHelpText).Background(RgbBackground)
)
