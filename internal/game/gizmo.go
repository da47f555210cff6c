package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/tool"
)

const (
	gizmoLength    float32 = 2.0
	gizmoTipSize   float32 = 0.2
	gizmoThickness float32 = 0.06
	gizmoRingScale float32 = 0.8
	cornerCubeSize float32 = 0.2
)

var gizmoAxes = [3]rl.Vector3{
	{X: 1, Y: 0, Z: 0}, // X - red
	{X: 0, Y: 1, Z: 0}, // Y - green
	{X: 0, Y: 0, Z: 1}, // Z - blue
}

var gizmoColors = [3]rl.Color{rl.Red, rl.Green, rl.Blue}

// drawEditGizmo draws the handle gizmo for the active volume. Call inside
// BeginMode3D/EndMode3D.
func (g *Game) drawEditGizmo() {
	if g.tool.Settings().Mode != tool.ModeEdit {
		return
	}
	active := g.tool.Volumes().ActiveVolume()
	if active == nil {
		return
	}

	// Disable depth testing so gizmos always draw on top
	rl.DrawRenderBatchActive() // Force flush of previous draw calls
	rl.DisableDepthTest()

	center := active.PivotPosition()
	dragAxis, dragging := g.tool.DraggingAxis()
	hovered := g.tool.HoveredAxis()

	switch g.tool.HandleTool() {
	case tool.ToolMove:
		for i, axis := range gizmoAxes {
			color := g.axisColor(i, hovered, dragAxis, dragging)
			end := rl.Vector3Add(center, rl.Vector3Scale(axis, gizmoLength))
			rl.DrawCylinderEx(center, end, gizmoThickness, gizmoThickness, 8, color)
			tip := rl.Vector3{X: gizmoTipSize, Y: gizmoTipSize, Z: gizmoTipSize}
			rl.DrawCubeV(end, tip, color)
		}

	case tool.ToolRotate:
		for i := range gizmoAxes {
			color := g.axisColor(i, hovered, dragAxis, dragging)
			drawGizmoRing(center, i, gizmoLength*gizmoRingScale, color)
		}

	case tool.ToolScale:
		for i, axis := range gizmoAxes {
			color := g.axisColor(i, hovered, dragAxis, dragging)
			end := rl.Vector3Add(center, rl.Vector3Scale(axis, gizmoLength))
			rl.DrawCylinderEx(center, end, gizmoThickness, gizmoThickness, 8, color)
			cubeSize := rl.Vector3{X: 0.25, Y: 0.25, Z: 0.25}
			rl.DrawCubeV(end, cubeSize, color)
			rl.DrawCubeWiresV(end, cubeSize, color)
		}
		// Uniform scale handle at the origin
		rl.DrawCubeV(center, rl.Vector3{X: 0.3, Y: 0.3, Z: 0.3}, g.axisColor(3, hovered, dragAxis, dragging))

	case tool.ToolRect:
		corners := active.BaseCorners(g.tool.Settings().Pivot)
		size := rl.Vector3{X: cornerCubeSize, Y: cornerCubeSize, Z: cornerCubeSize}
		for _, c := range corners {
			rl.DrawCubeV(c, size, rl.Yellow)
			rl.DrawCubeWiresV(c, size, rl.Orange)
		}
	}

	// Re-enable depth testing
	rl.DrawRenderBatchActive() // Force flush of gizmo draw calls
	rl.EnableDepthTest()
}

func (g *Game) axisColor(i, hovered, dragAxis int, dragging bool) rl.Color {
	if dragging && dragAxis == i {
		return rl.Yellow
	}
	if !dragging && hovered == i {
		return rl.Yellow
	}
	if i < 3 {
		return gizmoColors[i]
	}
	return rl.Gray
}

// drawGizmoRing draws arc segments as thick cylinders to suggest rotation.
func drawGizmoRing(center rl.Vector3, axisIdx int, radius float32, color rl.Color) {
	segments := 16
	for s := range segments {
		t0 := float64(s) / float64(segments) * math.Pi * 2
		t1 := float64(s+1) / float64(segments) * math.Pi * 2
		var p0, p1 rl.Vector3
		switch axisIdx {
		case 0: // X - rotate in YZ plane
			p0 = rl.Vector3{X: center.X, Y: center.Y + radius*float32(math.Cos(t0)), Z: center.Z + radius*float32(math.Sin(t0))}
			p1 = rl.Vector3{X: center.X, Y: center.Y + radius*float32(math.Cos(t1)), Z: center.Z + radius*float32(math.Sin(t1))}
		case 1: // Y - rotate in XZ plane
			p0 = rl.Vector3{X: center.X + radius*float32(math.Cos(t0)), Y: center.Y, Z: center.Z + radius*float32(math.Sin(t0))}
			p1 = rl.Vector3{X: center.X + radius*float32(math.Cos(t1)), Y: center.Y, Z: center.Z + radius*float32(math.Sin(t1))}
		case 2: // Z - rotate in XY plane
			p0 = rl.Vector3{X: center.X + radius*float32(math.Cos(t0)), Y: center.Y + radius*float32(math.Sin(t0)), Z: center.Z}
			p1 = rl.Vector3{X: center.X + radius*float32(math.Cos(t1)), Y: center.Y + radius*float32(math.Sin(t1)), Z: center.Z}
		}
		rl.DrawCylinderEx(p0, p1, gizmoThickness*0.7, gizmoThickness*0.7, 6, color)
	}
}
