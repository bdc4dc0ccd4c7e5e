// Package camera turns mouse drags into orbital view parameters
package camera

import (
	"github.com/lixenwraith/orbital/orbital"
	"github.com/lixenwraith/orbital/parameter"
)

// Button selects what a drag accumulates
type Button int

const (
	ButtonNone Button = iota
	ButtonMove
	ButtonRotate
)

// axis is a raw accumulator clamped to [min, max]
type axis struct {
	value    int
	min, max int
}

func (a *axis) add(d int) bool {
	v := min(max(a.value+d, a.min), a.max)
	if v == a.value {
		return false
	}
	a.value = v
	return true
}

func (a *axis) setLimit(limit int) {
	a.min, a.max = -limit, limit
	a.value = min(max(a.value, a.min), a.max)
}

// scaled returns span·value/(max-min), 0 for an empty range
func (a *axis) scaled(span float64) float64 {
	r := a.max - a.min
	if r == 0 {
		return 0
	}
	return span * float64(a.value) / float64(r)
}

// Controller accumulates drags into move and rotation offsets
// Not safe for concurrent use; the host event loop owns it
type Controller struct {
	moveX, moveY axis
	rotX, rotY   axis

	button Button

	// OnChange is called with the current view after every effective change
	OnChange func(orbital.View)
}

// New creates a controller whose limits follow the viewport size in cells
func New(width, height int) *Controller {
	c := &Controller{}
	c.Resize(width, height)
	return c
}

// Resize rescales limits and re-clamps the accumulated offsets
func (c *Controller) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	c.moveX.setLimit(width)
	c.moveY.setLimit(height)
	c.rotX.setLimit(width)
	c.rotY.setLimit(height)
}

func (c *Controller) Press(b Button) {
	c.button = b
}

func (c *Controller) Release() {
	c.button = ButtonNone
}

// Pressed reports the active button
func (c *Controller) Pressed() Button {
	return c.button
}

// Drag applies a cell delta to the axes of the pressed button
func (c *Controller) Drag(dx, dy int) {
	var changed bool
	switch c.button {
	case ButtonMove:
		cx := c.moveX.add(dx)
		cy := c.moveY.add(dy)
		changed = cx || cy
	case ButtonRotate:
		cx := c.rotX.add(dx)
		cy := c.rotY.add(dy)
		changed = cx || cy
	default:
		return
	}
	if changed {
		c.notify()
	}
}

// View maps the raw offsets to view parameters
// Screen y grows downward, so vertical moves are negated
func (c *Controller) View() orbital.View {
	return orbital.View{
		MoveX: c.moveX.scaled(parameter.CameraMoveSpan),
		MoveY: -c.moveY.scaled(parameter.CameraMoveSpan),
		RotX:  c.rotX.scaled(parameter.CameraRotXSpan),
		RotY:  c.rotY.scaled(parameter.CameraRotYSpan),
	}
}

// Reset zeroes move and rotation
func (c *Controller) Reset() {
	c.moveX.value, c.moveY.value = 0, 0
	c.rotX.value, c.rotY.value = 0, 0
	c.notify()
}

func (c *Controller) notify() {
	if c.OnChange != nil {
		c.OnChange(c.View())
	}
}
