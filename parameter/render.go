package parameter

// Channel gains for mapping a normalized sample to 8-bit RGB
const (
	SectionGainR = 255
	SectionGainG = 128
	SectionGainB = 0

	ProjectedGainR = 128
	ProjectedGainG = 10
	ProjectedGainB = 255

	ProfileGainR = 80
	ProfileGainG = 220
	ProfileGainB = 120
)

// Static renderer shading ramp, darkest first
const ShadeRamp = " .:-=+*#%@"
