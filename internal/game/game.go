package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/host"
	"voltool/internal/tool"
	"voltool/internal/world"
)

// EditorCamera is a free-flying viewport camera.
type EditorCamera struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
}

// Game hosts the volume authoring tool: window, camera, scene and the
// capability implementations the tool consumes.
type Game struct {
	world  *world.World
	undo   *world.UndoLog
	prefs  *world.Prefs
	tool   *tool.Tool
	camera EditorCamera
}

func New() *Game {
	w := world.New()
	undo := world.NewUndoLog(w.Scene)
	prefs := world.LoadPrefs(world.PrefsFile)
	settings := tool.LoadSettings(prefs)

	return &Game{
		world: w,
		undo:  undo,
		prefs: prefs,
		tool:  tool.New(settings, w.VolumeRoot, undo, w, world.NewPainter()),
		camera: EditorCamera{
			Position:  rl.Vector3{X: 10, Y: 10, Z: 10},
			Yaw:       -135,
			Pitch:     -30,
			MoveSpeed: 10.0,
		},
	}
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "voltool - collider volume editor")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	// Escape cancels gestures, it must not close the window.
	rl.SetExitKey(rl.KeyNull)

	for !rl.WindowShouldClose() {
		g.frame()
	}
}

func (g *Game) frame() {
	deltaTime := rl.GetFrameTime()
	g.updateCamera(deltaTime)
	g.handleHotkeys()

	cam := g.raylibCamera()
	frustum := world.ExtractFrustum(cam)
	frame := host.Frame{
		Event: g.sampleEvent(cam),
		Camera: host.CameraInfo{
			Position:     cam.Position,
			Forward:      rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position)),
			Up:           cam.Up,
			Orthographic: cam.Projection == rl.CameraOrthographic,
		},
		Time:    rl.GetTime(),
		Frustum: &frustum,
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(28, 28, 36, 255))

	rl.BeginMode3D(cam)
	rl.DrawGrid(int32(world.FloorSize), 1.0)
	g.tool.Frame(frame)
	g.drawEditGizmo()
	rl.EndMode3D()

	g.drawUI()
	rl.EndDrawing()
}

// sampleEvent builds the single per-frame pointer event the tool consumes.
// Presses over the UI panel are swallowed so 3D interaction does not fight
// the chrome.
func (g *Game) sampleEvent(cam rl.Camera3D) host.PointerEvent {
	mouse := rl.GetMousePosition()
	ev := host.PointerEvent{
		Type:   host.PointerHover,
		Screen: mouse,
		Ray:    rl.GetScreenToWorldRay(mouse, cam),
		Mods: host.Modifiers{
			Shift: rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
			Ctrl:  rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl),
			Alt:   rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt),
		},
		Cancel:    rl.IsKeyPressed(rl.KeyEscape),
		CycleMode: rl.IsKeyPressed(rl.KeyTab),
	}

	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		ev.Type = host.PointerPress
		ev.Button = host.ButtonLeft
	case rl.IsMouseButtonPressed(rl.MouseRightButton):
		ev.Type = host.PointerPress
		ev.Button = host.ButtonRight
	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		ev.Type = host.PointerDrag
		ev.Button = host.ButtonLeft
	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		ev.Type = host.PointerRelease
		ev.Button = host.ButtonLeft
	}

	if ev.Type == host.PointerPress && g.mouseInPanel(mouse) {
		ev.Type = host.PointerHover
		ev.Button = host.ButtonNone
	}
	return ev
}

func (g *Game) handleHotkeys() {
	if (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)) && rl.IsKeyPressed(rl.KeyZ) {
		g.undo.Undo()
	}

	// Handle tool hotkeys, suppressed while flying with WASD.
	if !rl.IsMouseButtonDown(rl.MouseRightButton) {
		if rl.IsKeyPressed(rl.KeyW) {
			g.tool.SetHandleTool(tool.ToolMove)
		}
		if rl.IsKeyPressed(rl.KeyE) {
			g.tool.SetHandleTool(tool.ToolRotate)
		}
		if rl.IsKeyPressed(rl.KeyR) {
			g.tool.SetHandleTool(tool.ToolScale)
		}
		if rl.IsKeyPressed(rl.KeyT) {
			g.tool.SetHandleTool(tool.ToolRect)
		}
	}
}

func (g *Game) updateCamera(deltaTime float32) {
	if !rl.IsMouseButtonDown(rl.MouseRightButton) {
		return
	}

	mouseDelta := rl.GetMouseDelta()
	g.camera.Yaw += mouseDelta.X * 0.1
	g.camera.Pitch -= mouseDelta.Y * 0.1
	if g.camera.Pitch > 89 {
		g.camera.Pitch = 89
	}
	if g.camera.Pitch < -89 {
		g.camera.Pitch = -89
	}

	forward, right := g.getDirections()
	speed := g.camera.MoveSpeed * deltaTime

	if rl.IsKeyDown(rl.KeyW) {
		g.camera.Position = rl.Vector3Add(g.camera.Position, rl.Vector3Scale(forward, speed))
	}
	if rl.IsKeyDown(rl.KeyS) {
		g.camera.Position = rl.Vector3Add(g.camera.Position, rl.Vector3Scale(forward, -speed))
	}
	if rl.IsKeyDown(rl.KeyA) {
		g.camera.Position = rl.Vector3Add(g.camera.Position, rl.Vector3Scale(right, speed))
	}
	if rl.IsKeyDown(rl.KeyD) {
		g.camera.Position = rl.Vector3Add(g.camera.Position, rl.Vector3Scale(right, -speed))
	}
	if rl.IsKeyDown(rl.KeyE) {
		g.camera.Position.Y += speed
	}
	if rl.IsKeyDown(rl.KeyQ) {
		g.camera.Position.Y -= speed
	}

	scroll := rl.GetMouseWheelMove()
	if scroll != 0 {
		g.camera.MoveSpeed += scroll * 2.0
		if g.camera.MoveSpeed < 1.0 {
			g.camera.MoveSpeed = 1.0
		}
		if g.camera.MoveSpeed > 100.0 {
			g.camera.MoveSpeed = 100.0
		}
	}
}

func (g *Game) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(g.camera.Yaw) * math.Pi / 180
	pitchRad := float64(g.camera.Pitch) * math.Pi / 180

	forward = rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

func (g *Game) raylibCamera() rl.Camera3D {
	forward, _ := g.getDirections()
	target := rl.Vector3Add(g.camera.Position, forward)
	return rl.Camera3D{
		Position:   g.camera.Position,
		Target:     target,
		Up:         rl.Vector3{Y: 1},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}
