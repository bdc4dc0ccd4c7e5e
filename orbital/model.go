// Package orbital evaluates squared hydrogen wavefunctions and samples them into
// normalized scalar fields: a radial profile, a planar cross-section and a
// camera-projected volume.
//
// A Model is not synchronized. Callers serialize mutation and sampling; a sampler
// may fan out internally but only reads the state captured at call entry.
package orbital

import (
	"runtime"
	"time"
)

// Kind identifies a sampler for observers
type Kind uint8

const (
	KindProfile Kind = iota
	KindSection
	KindProjected
)

func (k Kind) String() string {
	switch k {
	case KindProfile:
		return "profile"
	case KindSection:
		return "section"
	case KindProjected:
		return "projected"
	default:
		return "unknown"
	}
}

// Observer receives one call per completed sampling pass
type Observer interface {
	ObserveSample(kind Kind, points int, elapsed time.Duration)
}

// Model holds the quantum numbers and model type
// Mutators validate against the current values; shrinking n does not clamp l or m
type Model struct {
	n, l, m int
	density bool

	workers  int
	observer Observer
}

// New returns a model in the 1s state, amplitude mode
func New() *Model {
	return &Model{
		n:       1,
		workers: runtime.GOMAXPROCS(0),
	}
}

// SetPrincipal accepts n ≥ 1
func (m *Model) SetPrincipal(n int) bool {
	if n < 1 {
		return false
	}
	m.n = n
	return true
}

// SetOrbital accepts 0 ≤ l ≤ n-1 for the current n
func (m *Model) SetOrbital(l int) bool {
	if l < 0 || l > m.n-1 {
		return false
	}
	m.l = l
	return true
}

// SetMagnetic accepts -l ≤ m ≤ l for the current l
func (m *Model) SetMagnetic(mm int) bool {
	if mm < -m.l || mm > m.l {
		return false
	}
	m.m = mm
	return true
}

// SetQuantumNumbers replaces the whole triple, rejecting an invalid one
func (m *Model) SetQuantumNumbers(q QuantumNumbers) bool {
	if q.Validate() != nil {
		return false
	}
	m.n, m.l, m.m = q.n, q.l, q.m
	return true
}

func (m *Model) SetDensityMode(density bool) {
	m.density = density
}

func (m *Model) Principal() int    { return m.n }
func (m *Model) Orbital() int      { return m.l }
func (m *Model) Magnetic() int     { return m.m }
func (m *Model) DensityMode() bool { return m.density }

// QuantumNumbers returns the current triple, or an error when a stale l/m was left
// behind by SetPrincipal
func (m *Model) QuantumNumbers() (QuantumNumbers, error) {
	return NewQuantumNumbers(m.n, m.l, m.m)
}

// Consistent reports whether the current triple satisfies all constraints
func (m *Model) Consistent() bool {
	_, err := m.QuantumNumbers()
	return err == nil
}

// StateLabel returns n followed by the orbital letter, e.g. "2p"
func (m *Model) StateLabel() string {
	return stateLabel(m.n, m.l)
}

// SetWorkers bounds row-parallel evaluation, values below 1 mean serial
func (m *Model) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	m.workers = n
}

// SetObserver installs a sampling observer, nil removes it
func (m *Model) SetObserver(o Observer) {
	m.observer = o
}

// MaxRelativeRadius returns the framing radius in Bohr radii
// Heuristic n²·10/ln(n+7), halved in density mode
func (m *Model) MaxRelativeRadius() float64 {
	return m.kernel().maxRelativeRadius()
}

// SquareRadial returns R(r)² for the current state, r in meters
func (m *Model) SquareRadial(r float64) float64 {
	return m.kernel().squareRadial(r)
}

// SquareAngular returns |Y_l^m(θ)|²; the azimuth does not enter the closed form
func (m *Model) SquareAngular(theta float64) float64 {
	return m.kernel().squareAngular(theta)
}

// SquareSpherical returns |Ψ|² at (r, θ)
func (m *Model) SquareSpherical(r, theta float64) float64 {
	return m.kernel().squareSpherical(r, theta)
}

// SquareCartesian returns |Ψ|² at (x, y, z), meters
func (m *Model) SquareCartesian(x, y, z float64) float64 {
	return m.kernel().squareCartesian(x, y, z)
}

func (m *Model) kernel() kernel {
	return newKernel(m.n, m.l, m.m, m.density)
}

func (m *Model) observe(kind Kind, points int, start time.Time) {
	if m.observer != nil {
		m.observer.ObserveSample(kind, points, time.Since(start))
	}
}
