package parameter

import "math"

// Camera controller mapping from raw drag cells to view parameters
const (
	// CameraMoveSpan maps the full raw move range to this many view units
	CameraMoveSpan = 2.0

	// CameraRotXSpan is the yaw swept by dragging across the full horizontal range
	CameraRotXSpan = 2 * math.Pi

	// CameraRotYSpan is the pitch swept by dragging across the full vertical range
	CameraRotYSpan = math.Pi
)
