package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orbital/parameter"
)

// Palette maps a normalized sample to RGB by per-channel gain
type Palette struct {
	R, G, B float64
}

var (
	// Section colors the planar section, black to orange
	Section = Palette{parameter.SectionGainR, parameter.SectionGainG, parameter.SectionGainB}

	// Projected colors the camera field, black to violet
	Projected = Palette{parameter.ProjectedGainR, parameter.ProjectedGainG, parameter.ProjectedGainB}

	// Profile colors the radial profile bars
	Profile = Palette{parameter.ProfileGainR, parameter.ProfileGainG, parameter.ProfileGainB}
)

// Color returns the palette color for v; each channel is clamped to [0, 255]
func (p Palette) Color(v float64) tcell.Color {
	return tcell.NewRGBColor(channel(p.R*v), channel(p.G*v), channel(p.B*v))
}

func channel(c float64) int32 {
	if math.IsNaN(c) || c <= 0 {
		return 0
	}
	if c >= 255 {
		return 255
	}
	return int32(c)
}
