package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector
// Value type, copied freely; no operation mutates its arguments
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FNeg(v Vec3F) Vec3F {
	return Vec3F{-v.X, -v.Y, -v.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

// V3FDiv divides every component by s, no zero guard
func V3FDiv(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X / s, v.Y / s, v.Z / s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// V3FCross returns a × b (right-handed)
func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FAngle returns the angle between a and b in radians, acos(a·b / (|a||b|))
// NaN when either vector is zero
func V3FAngle(a, b Vec3F) float64 {
	return math.Acos(V3FDot(a, b) / (V3FMag(a) * V3FMag(b)))
}

// V3FNormalize returns v scaled to unit length, zero vector stays zero
func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FSpherical converts v to (r, theta, phi): theta from +Z, phi = atan2(y, x)
// Origin maps to (0, 0, 0)
func V3FSpherical(v Vec3F) (r, theta, phi float64) {
	r = V3FMag(v)
	if r == 0 {
		return 0, 0, 0
	}
	return r, math.Acos(clampUnit(v.Z / r)), math.Atan2(v.Y, v.X)
}

// clampUnit keeps acos arguments inside [-1, 1] against rounding
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
