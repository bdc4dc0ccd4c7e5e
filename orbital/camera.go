package orbital

import (
	"github.com/lixenwraith/orbital/vmath"
)

// CameraDamping scales raw move parameters into model units
const CameraDamping = 0.2

// View carries the raw camera parameters of a projected render
// MoveX/MoveY are roughly [-1, 1], RotX/RotY are radians
type View struct {
	MoveX, MoveY float64
	RotX, RotY   float64
}

// CameraPose is a rigid camera: position in view units and orientation
type CameraPose struct {
	Position    vmath.Vec3F
	Orientation vmath.Mat3F
}

// NewCameraPose composes yaw about Y with pitch about X as RotX(rx)·RotY(ry)
// and places the camera at (0, mx, my) damped by CameraDamping
func NewCameraPose(v View) CameraPose {
	return CameraPose{
		Position:    vmath.V3FScale(vmath.Vec3F{X: 0, Y: v.MoveX, Z: v.MoveY}, CameraDamping),
		Orientation: vmath.M3FMul(vmath.M3FRotX(v.RotX), vmath.M3FRotY(v.RotY)),
	}
}

// ToModel maps a canvas point (cx, cy) on the view plane into model space in view units
func (p CameraPose) ToModel(cx, cy float64) vmath.Vec3F {
	canvas := vmath.Vec3F{X: 0, Y: cx, Z: cy}
	return vmath.M3FMulV3(p.Orientation, vmath.V3FSub(canvas, p.Position))
}
