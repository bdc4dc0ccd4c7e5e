// Package plot renders orbital samples as static text
package plot

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lixenwraith/orbital/orbital"
	"github.com/lixenwraith/orbital/parameter"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	fieldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Header summarizes the model state
func Header(m *orbital.Model) string {
	mode := "radial probability r²|Ψ|²"
	if m.DensityMode() {
		mode = "density |Ψ|²"
	}
	rows := []string{
		headerStyle.Render(fmt.Sprintf("Hydrogen %s orbital", m.StateLabel())),
		labelStyle.Render("n l m") + valueStyle.Render(fmt.Sprintf("%d %d %d", m.Principal(), m.Orbital(), m.Magnetic())),
		labelStyle.Render("radius") + valueStyle.Render(fmt.Sprintf("%.2f a0", m.MaxRelativeRadius())),
		labelStyle.Render("mode") + valueStyle.Render(mode),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Profile plots the normalized radial profile as a line chart
func Profile(m *orbital.Model, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("profile %dx%d: %w", width, height, orbital.ErrDimensions)
	}
	buf := make([]float64, parameter.RadialPoints)
	m.RadialProfile(buf)

	chart := asciigraph.Plot(buf,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("r = 0 .. %.1f a0", m.MaxRelativeRadius())),
	)
	return graphStyle.Render(chart), nil
}

// Section renders the planar section as a shaded character grid
func Section(m *orbital.Model, width, height int) (string, error) {
	buf := make([]float64, width*height)
	if err := m.PlanarSection(buf, width, height); err != nil {
		return "", err
	}
	return fieldStyle.Render(Shade(buf, width, height)), nil
}

// Shade maps each normalized sample in a w×h grid to a ramp character, one line per row
func Shade(buf []float64, w, h int) string {
	ramp := []rune(parameter.ShadeRamp)
	top := len(ramp) - 1

	var sb strings.Builder
	sb.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range buf[y*w : (y+1)*w] {
			i := int(v*float64(top) + 0.5)
			i = min(max(i, 0), top)
			sb.WriteRune(ramp[i])
		}
	}
	return sb.String()
}

// Render joins header, profile and section into one report
func Render(m *orbital.Model, width, height int) (string, error) {
	profile, err := Profile(m, width, max(height/3, 4))
	if err != nil {
		return "", err
	}
	section, err := Section(m, width, height)
	if err != nil {
		return "", err
	}
	return lipgloss.JoinVertical(lipgloss.Left, Header(m), profile, section), nil
}
