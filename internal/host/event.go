package host

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/geom"
)

// PointerEventType classifies the single pointer event delivered per frame.
type PointerEventType int

const (
	PointerHover PointerEventType = iota
	PointerPress
	PointerDrag
	PointerRelease
)

// MouseButton identifies which button a press/drag/release refers to.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonRight
)

// Modifiers are the keyboard modifiers held while the event fired.
type Modifiers struct {
	Shift bool // symmetric creation / axis snap override
	Ctrl  bool // reference-plane toggle
	Alt   bool
}

// PointerEvent is the per-frame input sample consumed once by the tool.
// Ray is the picking ray through the cursor, in world space.
type PointerEvent struct {
	Type   PointerEventType
	Button MouseButton
	Screen rl.Vector2
	Ray    rl.Ray
	Mods   Modifiers

	Cancel    bool // Escape pressed this frame
	CycleMode bool // mode-cycle key pressed this frame
}

// CameraInfo describes the viewport camera for the current frame.
type CameraInfo struct {
	Position     rl.Vector3
	Forward      rl.Vector3
	Up           rl.Vector3
	Orthographic bool
}

// Frame bundles everything the tool consumes during one frame callback.
// Frustum may be nil when no valid camera context exists; dependent steps
// are skipped for that frame.
type Frame struct {
	Event   PointerEvent
	Camera  CameraInfo
	Time    float64
	Frustum *geom.Frustum
}
