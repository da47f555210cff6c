package tool

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/geom"
	"voltool/internal/host"
)

const (
	gizmoLength     float32 = 2.0
	gizmoHitDist    float32 = 0.3
	gizmoRingRadius float32 = gizmoLength * 0.8
	gizmoRingHit    float32 = 0.4
	uniformHitDist  float32 = 0.25

	// minDragStep is the host's minimum-drag-difference granularity;
	// gridStep is used while incremental snapping is held.
	minDragStep float32 = 0.001
	gridStep    float32 = 0.5
)

var gizmoAxes = [3]rl.Vector3{
	{X: 1}, // X - red
	{Y: 1}, // Y - green
	{Z: 1}, // Z - blue
}

type dragKind int

const (
	dragMove dragKind = iota
	dragRotate
	dragScale
	dragRectResize
	dragRectMove
)

// dragState is one in-flight handle gesture. Every field that feeds delta
// math is captured at pointer-down so the gesture is relative to its start.
type dragState struct {
	volume  *Volume
	kind    dragKind
	axisIdx int // 0..2, or 3 for the uniform scale handle
	axis    rl.Vector3

	anchor      rl.Vector3
	planeNormal rl.Vector3
	startT      float32
	startVec    rl.Vector3

	startPivotWorld rl.Vector3
	startRotWorld   rl.Quaternion
	startScale      rl.Vector3

	// rect gesture extras
	upWorld      rl.Vector3
	fixedCorner  rl.Vector3
	frameRight   rl.Vector3
	frameForward rl.Vector3
	startHit     rl.Vector3
}

func (t *Tool) updateEdit(visible []*Volume, f host.Frame) {
	ev := f.Event

	if ev.Cancel {
		t.abortDrag()
		return
	}

	if t.drag != nil {
		switch ev.Type {
		case host.PointerRelease:
			t.endDrag()
		case host.PointerDrag, host.PointerHover:
			t.updateDrag(ev)
		}
		return
	}

	active := t.volumes.ActiveVolume()

	// Hover feedback for the axis gizmo.
	t.hoveredAxis = -1
	if active != nil && t.handleTool != ToolRect {
		t.hoveredAxis = pickGizmoAxis(ev.Ray, active.PivotPosition(), t.handleTool)
	}

	if ev.Type != host.PointerPress || ev.Button != host.ButtonLeft {
		return
	}

	if active != nil {
		if active.InheritsSkew() {
			t.warn("non-uniform parent scale", ev.Screen)
			return
		}
		switch t.handleTool {
		case ToolRect:
			if t.tryStartRectResize(active, ev, f) {
				return
			}
		default:
			if axis := pickGizmoAxis(ev.Ray, active.PivotPosition(), t.handleTool); axis >= 0 {
				t.startAxisDrag(active, axis, ev, f)
				return
			}
		}
	}

	// No handle owns the event yet: arbitrate by closest surface hit,
	// breaking exact ties by most-recently-active.
	hit, _, ok := closestVolumeHit(ev.Ray, visible, t.settings.Pivot)
	if !ok {
		t.volumes.SetActive(nil, f.Time)
		return
	}
	if hit.InheritsSkew() {
		t.warn("non-uniform parent scale", ev.Screen)
		return
	}
	t.volumes.SetActive(hit, f.Time)
	if t.handleTool == ToolRect {
		t.startRectMove(hit, ev, f)
	}
}

// pickGizmoAxis returns the index of the gizmo axis closest to the pointer
// ray, 3 for the uniform scale handle, or -1.
func pickGizmoAxis(ray rl.Ray, center rl.Vector3, tool HandleTool) int {
	bestDist := float32(999.0)
	bestAxis := -1

	if tool == ToolRotate {
		for i, axis := range gizmoAxes {
			pt, ok := geom.RayPlane(ray.Position, ray.Direction, center, axis)
			if !ok {
				continue
			}
			distFromCenter := rl.Vector3Length(rl.Vector3Subtract(pt, center))
			distFromRing := math32.Abs(distFromCenter - gizmoRingRadius)
			if distFromRing < gizmoRingHit && distFromRing < bestDist {
				bestDist = distFromRing
				bestAxis = i
			}
		}
		return bestAxis
	}

	if tool == ToolScale {
		// Center cube scales all three axes uniformly.
		toAnchor := rl.Vector3Subtract(center, ray.Position)
		along := rl.Vector3DotProduct(toAnchor, ray.Direction)
		if along > 0 {
			closest := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, along))
			if rl.Vector3Length(rl.Vector3Subtract(closest, center)) < uniformHitDist {
				return 3
			}
		}
	}

	for i, axis := range gizmoAxes {
		_, t2, dist := geom.ClosestPointBetweenRays(ray.Position, ray.Direction, center, axis)
		if t2 > 0 && t2 < gizmoLength && dist < gizmoHitDist {
			if dist < bestDist {
				bestDist = dist
				bestAxis = i
			}
		}
	}
	return bestAxis
}

func (t *Tool) startAxisDrag(v *Volume, axisIdx int, ev host.PointerEvent, f host.Frame) {
	anchor := v.PivotPosition()
	axis := rl.Vector3{Y: 1}
	if axisIdx < 3 {
		axis = gizmoAxes[axisIdx]
	}

	d := &dragState{
		volume:          v,
		axisIdx:         axisIdx,
		axis:            axis,
		anchor:          anchor,
		startPivotWorld: anchor,
		startRotWorld:   v.Obj.WorldRotation(),
		startScale:      v.Obj.Transform.Scale,
	}

	switch t.handleTool {
	case ToolRotate:
		d.kind = dragRotate
		d.planeNormal = axis
		pt, ok := geom.RayPlane(ev.Ray.Position, ev.Ray.Direction, anchor, axis)
		if !ok {
			return
		}
		d.startVec = rl.Vector3Normalize(rl.Vector3Subtract(pt, anchor))
	case ToolScale:
		d.kind = dragScale
		d.planeNormal = axisDragPlane(anchor, axis, f.Camera.Position)
		if pt, ok := geom.RayPlane(ev.Ray.Position, ev.Ray.Direction, anchor, d.planeNormal); ok {
			d.startT = rl.Vector3DotProduct(rl.Vector3Subtract(pt, anchor), axis)
		}
	default:
		d.kind = dragMove
		d.planeNormal = axisDragPlane(anchor, axis, f.Camera.Position)
		if pt, ok := geom.RayPlane(ev.Ray.Position, ev.Ray.Direction, anchor, d.planeNormal); ok {
			d.startT = rl.Vector3DotProduct(rl.Vector3Subtract(pt, anchor), axis)
		}
	}

	t.beginGesture(v, "Edit Volume")
	t.drag = d
}

// axisDragPlane builds a plane that contains the drag axis and faces the
// camera, so cursor movement maps stably onto the axis.
func axisDragPlane(anchor, axis, camPos rl.Vector3) rl.Vector3 {
	viewDir := rl.Vector3Normalize(rl.Vector3Subtract(anchor, camPos))
	cross1 := rl.Vector3CrossProduct(viewDir, axis)
	return rl.Vector3Normalize(rl.Vector3CrossProduct(axis, cross1))
}

// beginGesture snapshots every volume and records the pre-change state with
// the host's undo log.
func (t *Tool) beginGesture(v *Volume, description string) {
	for _, h := range t.volumes.All() {
		h.TakeSnapshot()
	}
	if t.undo != nil {
		t.undo.RecordChange(v.Obj, description)
	}
}

func (t *Tool) updateDrag(ev host.PointerEvent) {
	d := t.drag
	if d == nil || d.volume == nil {
		t.drag = nil
		return
	}

	switch d.kind {
	case dragMove:
		pt, ok := geom.RayPlane(ev.Ray.Position, ev.Ray.Direction, d.anchor, d.planeNormal)
		if !ok {
			return
		}
		delta := rl.Vector3DotProduct(rl.Vector3Subtract(pt, d.anchor), d.axis) - d.startT
		delta = geom.RoundTo(delta, dragStep(ev.Mods))
		d.volume.SetPivotPosition(rl.Vector3Add(d.startPivotWorld, rl.Vector3Scale(d.axis, delta)))

	case dragRotate:
		pt, ok := geom.RayPlane(ev.Ray.Position, ev.Ray.Direction, d.anchor, d.planeNormal)
		if !ok {
			return
		}
		cur := rl.Vector3Subtract(pt, d.anchor)
		if rl.Vector3Length(cur) < geom.Epsilon {
			return
		}
		cur = rl.Vector3Normalize(cur)
		angle := signedAngle(d.startVec, cur, d.axis)
		// Minimal angle/axis delta applied around the pivot point: the
		// stored position is the pivot, so it stays fixed by construction.
		q := rl.QuaternionFromAxisAngle(d.axis, angle)
		t.setWorldRotation(d.volume, rl.QuaternionMultiply(q, d.startRotWorld))

	case dragScale:
		pt, ok := geom.RayPlane(ev.Ray.Position, ev.Ray.Direction, d.anchor, d.planeNormal)
		if !ok {
			return
		}
		delta := rl.Vector3DotProduct(rl.Vector3Subtract(pt, d.anchor), d.axis) - d.startT
		factor := 1.0 + delta*0.5
		if factor < 0.1 {
			factor = 0.1
		}
		s := d.startScale
		if d.axisIdx == 3 {
			// Uniform multi-axis scaling is always valid on this platform.
			d.volume.SetScaleAxis(0, s.X*factor)
			d.volume.SetScaleAxis(1, s.Y*factor)
			d.volume.SetScaleAxis(2, s.Z*factor)
		} else {
			switch d.axisIdx {
			case 0:
				d.volume.SetScaleAxis(0, s.X*factor)
			case 1:
				d.volume.SetScaleAxis(1, s.Y*factor)
			case 2:
				d.volume.SetScaleAxis(2, s.Z*factor)
			}
		}

	case dragRectResize:
		t.updateRectResize(ev)
	case dragRectMove:
		t.updateRectMove(ev)
	}
}

// dragStep returns the position rounding granularity: the host minimum by
// default, the snap grid while incremental snapping is held.
func dragStep(m host.Modifiers) float32 {
	if m.Ctrl {
		return gridStep
	}
	return minDragStep
}

// setWorldRotation writes a world-space orientation into the local
// transform, inverting the parent rotation when one exists.
func (t *Tool) setWorldRotation(v *Volume, world rl.Quaternion) {
	parent := v.Obj.Parent
	if parent == nil {
		v.Obj.Transform.Rotation = world
		return
	}
	inv := rl.QuaternionInvert(parent.WorldRotation())
	v.Obj.Transform.Rotation = rl.QuaternionMultiply(inv, world)
}

// signedAngle returns the angle from a to b around the given axis, in
// radians.
func signedAngle(a, b, axis rl.Vector3) float32 {
	cross := rl.Vector3CrossProduct(a, b)
	return math32.Atan2(rl.Vector3DotProduct(cross, axis), rl.Vector3DotProduct(a, b))
}

func (t *Tool) endDrag() {
	if t.drag != nil {
		for _, h := range t.volumes.All() {
			h.ClearSnapshot()
		}
	}
	t.drag = nil
}

// abortDrag restores the gesture-start snapshot, supporting Escape as a
// cancel for handle gestures.
func (t *Tool) abortDrag() {
	if t.drag == nil {
		return
	}
	t.drag.volume.RestoreSnapshot()
	t.endDrag()
}
