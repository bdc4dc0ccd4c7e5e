package orbital

import (
	"math"
)

// BohrRadius in meters
const BohrRadius = 0.52917720859e-10

// factorials holds 0!..20!, the last value that fits int64
var factorials = [...]int64{
	1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800,
	39916800, 479001600, 6227020800, 87178291200, 1307674368000, 20922789888000,
	355687428096000, 6402373705728000, 121645100408832000, 2432902008176640000,
}

// Factorial returns n! for 0 ≤ n ≤ 20 and 0 otherwise
// A zero silently propagates through the kernel; states with n+l > 20 therefore
// render as degenerate (all-zero) fields rather than failing
func Factorial(n int) int64 {
	if n < 0 || n >= len(factorials) {
		return 0
	}
	return factorials[n]
}

// Binpow returns x^n by squaring; negative n yields 1/x^-n
func Binpow(x float64, n int) float64 {
	if n < 0 {
		return 1 / Binpow(x, -n)
	}
	y := 1.0
	for n > 0 {
		if n&1 != 0 {
			y *= x
		}
		x *= x
		n >>= 1
	}
	return y
}

// intRatio returns a/b in integer arithmetic, 0 when b is 0
func intRatio(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Legendre evaluates the associated Legendre polynomial P_n^m(x), 0 ≤ m ≤ n, as the
// Leibniz expansion of d^(n+m)/dx^(n+m) [(x-1)^n (x+1)^n]:
//
//	P_n^m(x) = (1-x²)^(m/2) / (2^n n!) · Σ_{i=m..n} C(n+m, i) · n!/(i-m)! (x-1)^(i-m) · n!/(n-i)! (x+1)^(n-i)
//
// No Condon-Shortley phase is applied
func Legendre(n, m int, x float64) float64 {
	if m < 0 || m > n {
		return 0
	}

	fn := Factorial(n)
	var p float64
	for i := m; i <= n; i++ {
		den := float64(Factorial(i)) * float64(Factorial(n+m-i))
		if den == 0 {
			continue
		}
		cur := float64(Factorial(n+m)) / den
		cur *= float64(intRatio(fn, Factorial(i-m))) * Binpow(x-1, i-m)
		cur *= float64(intRatio(fn, Factorial(n-i))) * Binpow(x+1, n-i)
		p += cur
	}

	if fn == 0 {
		return 0
	}
	// 1-x² can dip below zero by rounding when |x| = 1
	w := math.Max(1-x*x, 0)
	return p * math.Pow(w, 0.5*float64(m)) / math.Pow(2, float64(n)) / float64(fn)
}

// Laguerre evaluates the associated Laguerre polynomial L_n^a(x) by the recurrence
// L0 = 1, L1 = 1+a-x, L(i+1) = ((2i+1+a-x)·Li - (i+a)·L(i-1)) / (i+1)
// Negative degree returns 0
func Laguerre(n, a int, x float64) float64 {
	if n < 0 {
		return 0
	}
	if n == 0 {
		return 1
	}

	fa := float64(a)
	prev, cur := 1.0, 1+fa-x
	for i := 1; i < n; i++ {
		fi := float64(i)
		next := ((2*fi+1+fa-x)*cur - (fi+fa)*prev) / (fi + 1)
		prev, cur = cur, next
	}
	return cur
}

// kernel is an immutable snapshot of the model evaluated by samplers
// Safe for concurrent use
type kernel struct {
	n, l, m int
	density bool

	radialNorm  float64 // sqrt((n-l-1)!/(2n)/(n+l)!) · (2/(a0·n))^(l+1.5)
	radialScale float64 // 2/(a0·n)
	angularNorm float64 // (2l+1)(l-|m|)! / (4π(l+|m|)!)
}

func newKernel(n, l, m int, density bool) kernel {
	k := kernel{n: n, l: l, m: m, density: density}
	if n < 1 {
		return k
	}

	fn := float64(n)
	k.radialScale = 2 / BohrRadius / fn
	if den := float64(Factorial(n + l)); den != 0 {
		k.radialNorm = math.Sqrt(float64(Factorial(n-l-1))/(2*fn)/den) * math.Pow(k.radialScale, 1.5+float64(l))
	}

	am := absInt(m)
	if den := 4 * math.Pi * float64(Factorial(l+am)); den != 0 {
		k.angularNorm = float64(2*l+1) * float64(Factorial(l-am)) / den
	}
	return k
}

// maxRelativeRadius is n²·10/ln(n+7) Bohr radii, with n² halved in density mode
func (k kernel) maxRelativeRadius() float64 {
	rr := float64(k.n * k.n)
	if k.density {
		rr /= 2
	}
	return rr * 10 / math.Log(float64(k.n+7))
}

// squareRadial returns R(r)², r in meters
func (k kernel) squareRadial(r float64) float64 {
	q := k.radialScale * r
	R := k.radialNorm
	R *= math.Pow(r, float64(k.l))
	R *= math.Exp(-q * 0.5)
	R *= Laguerre(k.n-k.l-1, 2*k.l+1, q)
	return R * R
}

// squareAngular returns |Y_l^m(θ)|², independent of azimuth
func (k kernel) squareAngular(theta float64) float64 {
	return k.angularNorm * square(Legendre(k.l, absInt(k.m), math.Cos(theta)))
}

func (k kernel) squareSpherical(r, theta float64) float64 {
	return k.squareRadial(r) * k.squareAngular(theta)
}

func (k kernel) squareCartesian(x, y, z float64) float64 {
	r := math.Sqrt(x*x + y*y + z*z)
	return k.squareSpherical(r, polarAngle(z, r))
}

// weight applies the r² factor outside density mode
func (k kernel) weight(v, rSq float64) float64 {
	if k.density {
		return v
	}
	return v * rSq
}

// polarAngle returns acos(z/r), 0 at the origin
func polarAngle(z, r float64) float64 {
	if r == 0 {
		return 0
	}
	c := z / r
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func square(x float64) float64 { return x * x }
