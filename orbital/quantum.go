package orbital

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrPrincipal = errors.New("principal quantum number must be at least 1")
	ErrOrbital   = errors.New("orbital quantum number must be in [0, n-1]")
	ErrMagnetic  = errors.New("magnetic quantum number must be in [-l, l]")
)

// orbitalLetters are the spectroscopic letters for l = 0..5
const orbitalLetters = "spdfgh"

// QuantumNumbers is a validated (n, l, m) triple
// Only NewQuantumNumbers produces a valid value; the zero value is invalid (n = 0)
type QuantumNumbers struct {
	n, l, m int
}

// NewQuantumNumbers validates the whole triple at once
func NewQuantumNumbers(n, l, m int) (QuantumNumbers, error) {
	q := QuantumNumbers{n: n, l: l, m: m}
	if err := q.Validate(); err != nil {
		return QuantumNumbers{}, err
	}
	return q, nil
}

// GroundState returns 1s (n=1, l=0, m=0)
func GroundState() QuantumNumbers {
	return QuantumNumbers{n: 1}
}

func (q QuantumNumbers) N() int { return q.n }
func (q QuantumNumbers) L() int { return q.l }
func (q QuantumNumbers) M() int { return q.m }

// Validate checks n ≥ 1, 0 ≤ l ≤ n-1, -l ≤ m ≤ l
func (q QuantumNumbers) Validate() error {
	if q.n < 1 {
		return fmt.Errorf("n=%d: %w", q.n, ErrPrincipal)
	}
	if q.l < 0 || q.l > q.n-1 {
		return fmt.Errorf("n=%d l=%d: %w", q.n, q.l, ErrOrbital)
	}
	if q.m < -q.l || q.m > q.l {
		return fmt.Errorf("l=%d m=%d: %w", q.l, q.m, ErrMagnetic)
	}
	return nil
}

// Label returns n followed by the orbital letter, e.g. "3d"
// No letter is appended for l ≥ 6
func (q QuantumNumbers) Label() string {
	return stateLabel(q.n, q.l)
}

func (q QuantumNumbers) String() string {
	return fmt.Sprintf("%s (n=%d l=%d m=%d)", q.Label(), q.n, q.l, q.m)
}

func stateLabel(n, l int) string {
	s := strconv.Itoa(n)
	if l >= 0 && l < len(orbitalLetters) {
		s += orbitalLetters[l : l+1]
	}
	return s
}
