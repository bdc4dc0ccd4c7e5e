package parameter

import "time"

// Layout
const (
	// HUDRows is the number of text rows reserved under the field panel
	HUDRows = 2

	// TitleRows is the header row above the field panel
	TitleRows = 1

	// PixelRowsPerCell is the vertical pixel density of the half-block painter
	PixelRowsPerCell = 2
)

// Frame pacing
const (
	// FrameInterval caps redraw rate; renders only happen when state changed
	FrameInterval = 33 * time.Millisecond

	// RejectFlashDuration is how long the HUD stays red after a rejected change
	RejectFlashDuration = 400 * time.Millisecond
)

// Quantum number input range offered by the viewer
// States with n+l above 20 exceed the factorial table and render as an empty field
const (
	MinPrincipal = 1
	MaxPrincipal = 20
)

// Sampling resolution
const (
	// RadialPoints is the sample count of the radial profile
	RadialPoints = 1000
)

// KeyHelp is the second HUD row
const KeyHelp = "n/N l/L m/M quantum  d density  tab panel  r reset view  drag move  right-drag rotate  q quit"
