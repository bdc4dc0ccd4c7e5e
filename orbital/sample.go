package orbital

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrDimensions = errors.New("grid dimensions must be positive")
	ErrBufferSize = errors.New("buffer length does not match grid")
)

// RadialProfile fills buf with len(buf) samples at r = i·a0·MaxRelativeRadius()/len(buf)
// R(r)² in density mode, R(r)²·r² otherwise; normalized to a peak of 1
func (m *Model) RadialProfile(buf []float64) {
	start := time.Now()
	k := m.kernel()
	count := len(buf)
	if count == 0 {
		return
	}

	dr := BohrRadius * k.maxRelativeRadius() / float64(count)
	for i := range buf {
		r := dr * float64(i)
		buf[i] = k.weight(k.squareRadial(r), r*r)
	}

	normalize(buf)
	m.observe(KindProfile, count, start)
}

// PlanarSection fills a width×height grid with the φ=0 half-plane section
// Pixel offsets from the grid center give the radius and θ = acos(Δy/ρ); the grid
// diagonal spans twice the characteristic radius
func (m *Model) PlanarSection(buf []float64, width, height int) error {
	if err := checkGrid(buf, width, height); err != nil {
		return err
	}
	start := time.Now()
	k := m.kernel()

	dr := k.maxRelativeRadius() * BohrRadius / math.Sqrt(float64(height*height+width*width)) * 2
	halfW, halfH := width/2, height/2

	m.forRows(height, func(yy int) {
		row := buf[yy*width : (yy+1)*width]
		z := float64(halfH - yy)
		for xx := range row {
			xy := float64(xx - halfW)
			rho := math.Sqrt(z*z + xy*xy)
			theta := polarAngle(z, rho)
			r := rho * dr
			row[xx] = k.weight(k.squareSpherical(r, theta), r*r)
		}
	})

	normalize(buf)
	m.observe(KindSection, len(buf), start)
	return nil
}

// ProjectedField fills a width×height grid with the field seen through the camera
// described by v; the view plane passes through the origin and spans the
// characteristic radius along the grid diagonal
func (m *Model) ProjectedField(buf []float64, width, height int, v View) error {
	if err := checkGrid(buf, width, height); err != nil {
		return err
	}
	start := time.Now()
	k := m.kernel()
	pose := NewCameraPose(v)

	dr := k.maxRelativeRadius() * BohrRadius
	scale := 2.0 / math.Sqrt(float64(height*height+width*width))
	halfW, halfH := width/2, height/2

	m.forRows(height, func(yy int) {
		row := buf[yy*width : (yy+1)*width]
		cy := float64(halfH-yy) * scale
		for xx := range row {
			cx := float64(xx-halfW) * scale
			p := pose.ToModel(cx, cy)
			x, y, z := p.X*dr, p.Y*dr, p.Z*dr
			row[xx] = k.weight(k.squareCartesian(x, y, z), x*x+y*y+z*z)
		}
	})

	normalize(buf)
	m.observe(KindProjected, len(buf), start)
	return nil
}

func checkGrid(buf []float64, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrDimensions)
	}
	if len(buf) != width*height {
		return fmt.Errorf("len %d, want %dx%d=%d: %w", len(buf), width, height, width*height, ErrBufferSize)
	}
	return nil
}

// forRows evaluates fn for every row, at most m.workers rows at a time
// Rows write disjoint slices of the caller's buffer
func (m *Model) forRows(height int, fn func(y int)) {
	if m.workers <= 1 || height == 1 {
		for y := 0; y < height; y++ {
			fn(y)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(m.workers)
	for y := 0; y < height; y++ {
		y := y
		g.Go(func() error {
			fn(y)
			return nil
		})
	}
	_ = g.Wait()
}

// normalize divides every sample by the buffer maximum
// Non-finite or negative samples become 0; an all-zero buffer stays zero
func normalize(buf []float64) {
	if len(buf) == 0 {
		return
	}
	for i, v := range buf {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			buf[i] = 0
		}
	}

	peak := floats.Max(buf)
	if peak == 0 {
		return
	}
	for i := range buf {
		buf[i] /= peak
	}
}
