package vmath

import (
	"math"
)

// Mat3F is a row-major 3x3 float64 matrix, A[row][col]
type Mat3F struct {
	A [3][3]float64
}

// M3F builds a matrix from nine row-major entries
func M3F(a11, a12, a13, a21, a22, a23, a31, a32, a33 float64) Mat3F {
	return Mat3F{A: [3][3]float64{
		{a11, a12, a13},
		{a21, a22, a23},
		{a31, a32, a33},
	}}
}

func M3FIdentity() Mat3F {
	return M3F(1, 0, 0, 0, 1, 0, 0, 0, 1)
}

func M3FAdd(a, b Mat3F) Mat3F {
	var r Mat3F
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.A[i][j] = a.A[i][j] + b.A[i][j]
		}
	}
	return r
}

func M3FSub(a, b Mat3F) Mat3F {
	var r Mat3F
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.A[i][j] = a.A[i][j] - b.A[i][j]
		}
	}
	return r
}

func M3FNeg(m Mat3F) Mat3F {
	return M3FScale(m, -1)
}

func M3FScale(m Mat3F, s float64) Mat3F {
	var r Mat3F
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.A[i][j] = m.A[i][j] * s
		}
	}
	return r
}

// M3FDiv divides every entry by s, no zero guard
func M3FDiv(m Mat3F, s float64) Mat3F {
	var r Mat3F
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.A[i][j] = m.A[i][j] / s
		}
	}
	return r
}

// M3FMul returns the row-by-column product a·b
func M3FMul(a, b Mat3F) Mat3F {
	var r Mat3F
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r.A[i][j] += a.A[i][k] * b.A[k][j]
			}
		}
	}
	return r
}

// M3FMulV3 treats v as a column: r[i] = Σj A[i][j]·v[j]
func M3FMulV3(m Mat3F, v Vec3F) Vec3F {
	b := [3]float64{v.X, v.Y, v.Z}
	var r [3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i] += m.A[i][j] * b[j]
		}
	}
	return Vec3F{r[0], r[1], r[2]}
}

// V3FMulM3 treats v as a row: r[i] = Σj v[j]·A[j][i]
func V3FMulM3(v Vec3F, m Mat3F) Vec3F {
	b := [3]float64{v.X, v.Y, v.Z}
	var r [3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i] += b[j] * m.A[j][i]
		}
	}
	return Vec3F{r[0], r[1], r[2]}
}

func M3FTranspose(m Mat3F) Mat3F {
	var r Mat3F
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.A[i][j] = m.A[j][i]
		}
	}
	return r
}

// M3FRotX rotates about the X axis by angle radians
func M3FRotX(angle float64) Mat3F {
	s, c := math.Sincos(angle)
	return M3F(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// M3FRotY rotates about the Y axis by angle radians
func M3FRotY(angle float64) Mat3F {
	s, c := math.Sincos(angle)
	return M3F(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}
