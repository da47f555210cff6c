package tool

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/engine"
	"voltool/internal/geom"
	"voltool/internal/host"
)

// createStage is the sub-state of Create mode. A volume exists only from
// stageSetLength onward.
type createStage int

const (
	stagePending createStage = iota
	stageSetLength
	stageSetWidth
	stageSetHeight
)

// fallbackDistance places the construction point when neither a reference
// plane nor world geometry is under the cursor.
const fallbackDistance float32 = 10.0

// planeBasis is an orthonormal frame for a construction plane: Up is the
// plane normal, Right and Forward its cardinal axes.
type planeBasis struct {
	Up      rl.Vector3
	Right   rl.Vector3
	Forward rl.Vector3
}

// referencePlane is the optional user-placed construction plane that
// overrides world-geometry raycasting during placement.
type referencePlane struct {
	Active bool
	Center rl.Vector3
	Basis  planeBasis
}

// creationSession is the transient state of an in-progress, not yet
// finalized volume. Destroyed on stage reset, mode change or cancel.
type creationSession struct {
	volume        *Volume
	basis         planeBasis
	clickedPoint  rl.Vector3
	previousPoint rl.Vector3

	lengthDir      rl.Vector3
	measuredLength float32
	lengthCenter   rl.Vector3
	widthCenter    rl.Vector3
}

// alignmentBasis derives the construction plane frame for the chosen
// alignment. surfaceNormal is used only by AlignSurface; pass a zero vector
// when none is available.
func alignmentBasis(a Alignment, surfaceNormal rl.Vector3) planeBasis {
	var up rl.Vector3
	switch a {
	case AlignX:
		up = rl.Vector3{X: 1}
	case AlignZ:
		up = rl.Vector3{Z: 1}
	case AlignSurface:
		if rl.Vector3Length(surfaceNormal) > geom.Epsilon {
			up = rl.Vector3Normalize(surfaceNormal)
		} else {
			up = rl.Vector3{Y: 1}
		}
	default:
		up = rl.Vector3{Y: 1}
	}

	fwd := geom.FlattenOntoPlane(rl.Vector3{Z: 1}, up)
	if rl.Vector3Length(fwd) < geom.Epsilon {
		fwd = geom.FlattenOntoPlane(rl.Vector3{X: 1}, up)
	}
	fwd = rl.Vector3Normalize(fwd)
	return planeBasis{Up: up, Right: rl.Vector3CrossProduct(up, fwd), Forward: fwd}
}

// resolveHit finds the construction point under the cursor: reference plane
// first, then world geometry, then a fixed distance along the ray.
func (t *Tool) resolveHit(ray rl.Ray) (rl.Vector3, planeBasis, bool) {
	if t.refPlane.Active {
		pt, ok := geom.RayPlane(ray.Position, ray.Direction, t.refPlane.Center, t.refPlane.Basis.Up)
		return pt, t.refPlane.Basis, ok
	}
	if t.raycaster != nil {
		if pt, normal, ok := t.raycaster.RaycastWorldGeometry(ray); ok {
			return pt, alignmentBasis(t.settings.Alignment, normal), true
		}
	}
	pt := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, fallbackDistance))
	return pt, alignmentBasis(t.settings.Alignment, rl.Vector3{}), true
}

func (t *Tool) updateCreate(f host.Frame) {
	ev := f.Event
	if ev.Cancel || (ev.Type == host.PointerPress && ev.Button == host.ButtonRight) {
		if t.session != nil {
			t.cancelCreation()
		} else {
			t.refPlane.Active = false
		}
		return
	}

	switch t.stage {
	case stagePending:
		t.updatePending(f)
	case stageSetLength:
		t.updateSetLength(f)
	case stageSetWidth:
		t.updateSetWidth(f)
	case stageSetHeight:
		t.updateSetHeight(f)
	}
}

func (t *Tool) updatePending(f host.Frame) {
	ev := f.Event
	point, basis, ok := t.resolveHit(ev.Ray)
	t.hoverPoint, t.hoverBasis, t.hoverValid = point, basis, ok
	if !ok {
		return
	}

	if ev.Type != host.PointerPress || ev.Button != host.ButtonLeft {
		return
	}
	if ev.Mods.Ctrl {
		if t.refPlane.Active {
			t.refPlane.Active = false
		} else {
			t.refPlane = referencePlane{Active: true, Center: point, Basis: basis}
		}
		return
	}
	t.beginVolume(point, basis)
}

// beginVolume instantiates a zero-scale volume at the construction point and
// enters the length stage.
func (t *Tool) beginVolume(point rl.Vector3, basis planeBasis) {
	obj := engine.NewGameObject("Volume")
	obj.Transform.Scale = rl.Vector3{}
	obj.Transform.Rotation = geom.LookRotation(basis.Forward, basis.Up)

	v := t.volumes.Add(obj)
	v.BeingCreated = true
	v.SetPivotPosition(point)

	t.session = &creationSession{
		volume:       v,
		basis:        basis,
		clickedPoint: point,
		lengthCenter: point,
	}
	t.stage = stageSetLength
}

func (t *Tool) updateSetLength(f host.Frame) {
	ev := f.Event
	s := t.session
	p, ok := geom.RayPlane(ev.Ray.Position, ev.Ray.Direction, s.clickedPoint, s.basis.Up)
	if !ok {
		return
	}

	d := rl.Vector3Subtract(p, s.clickedPoint)
	if t.settings.SnapAxes || ev.Mods.Alt {
		d = geom.SnapToPlaneAxis(d, s.basis.Right, s.basis.Forward)
	}

	length := rl.Vector3Length(d)
	s.measuredLength = length
	if length >= geom.Epsilon {
		dir := rl.Vector3Scale(d, 1/length)
		s.lengthDir = dir
		s.volume.Obj.Transform.Rotation = geom.LookRotation(dir, s.basis.Up)

		center := s.clickedPoint
		if ev.Mods.Shift {
			s.volume.SetScaleAxis(2, 2*length)
		} else {
			s.volume.SetScaleAxis(2, length)
			center = rl.Vector3Add(center, rl.Vector3Scale(dir, length/2))
		}
		s.lengthCenter = center
		s.volume.SetCenter(center, t.settings.Pivot)
	} else {
		s.volume.SetScaleAxis(2, 0)
		s.lengthCenter = s.clickedPoint
		s.volume.SetCenter(s.clickedPoint, t.settings.Pivot)
	}

	if ev.Type == host.PointerPress && ev.Button == host.ButtonLeft {
		if s.measuredLength < geom.Epsilon {
			t.cancelCreation()
			return
		}
		s.previousPoint = p
		t.stage = stageSetWidth
	}
}

func (t *Tool) updateSetWidth(f host.Frame) {
	ev := f.Event
	s := t.session
	p, ok := geom.RayPlane(ev.Ray.Position, ev.Ray.Direction, s.previousPoint, s.basis.Up)
	if !ok {
		return
	}

	right := s.volume.Right()
	w := rl.Vector3DotProduct(rl.Vector3Subtract(p, s.previousPoint), right)

	center := s.lengthCenter
	if ev.Mods.Shift {
		s.volume.SetScaleAxis(0, 2*w)
	} else {
		s.volume.SetScaleAxis(0, w)
		center = rl.Vector3Add(center, rl.Vector3Scale(right, w/2))
	}
	s.widthCenter = center
	s.volume.SetCenter(center, t.settings.Pivot)

	if ev.Type == host.PointerPress && ev.Button == host.ButtonLeft {
		s.previousPoint = p
		t.stage = stageSetHeight
	}
}

// heightPlaneNormal prefers the camera's forward direction flattened onto
// the alignment plane. A top-down orthographic view would leave the cursor
// ray parallel to any such plane, so the plane is tilted toward the volume's
// up axis instead of risking a near-infinite scale solution.
func heightPlaneNormal(cam host.CameraInfo, up, volumeForward rl.Vector3) rl.Vector3 {
	flat := geom.FlattenOntoPlane(cam.Forward, up)
	if cam.Orthographic && rl.Vector3Length(flat) < 0.25 {
		return rl.Vector3Normalize(rl.Vector3Add(volumeForward, rl.Vector3Scale(up, 0.5)))
	}
	if rl.Vector3Length(flat) >= geom.Epsilon {
		return rl.Vector3Normalize(flat)
	}
	return volumeForward
}

func (t *Tool) updateSetHeight(f host.Frame) {
	ev := f.Event
	s := t.session
	up := s.basis.Up
	n := heightPlaneNormal(f.Camera, up, s.volume.Forward())

	p, ok := geom.RayPlane(ev.Ray.Position, ev.Ray.Direction, s.previousPoint, n)
	if !ok {
		return
	}
	h := rl.Vector3DotProduct(rl.Vector3Subtract(p, s.previousPoint), up)

	center := s.widthCenter
	if ev.Mods.Shift {
		s.volume.SetScaleAxis(1, 2*h)
	} else {
		s.volume.SetScaleAxis(1, h)
		center = rl.Vector3Add(center, rl.Vector3Scale(up, h/2))
	}
	s.volume.SetCenter(center, t.settings.Pivot)

	if ev.Type == host.PointerPress && ev.Button == host.ButtonLeft {
		t.finalizeVolume(f.Time)
	}
}

// finalizeVolume registers the finished volume with the undo log and resets
// the state machine for the next placement.
func (t *Tool) finalizeVolume(now float64) {
	v := t.session.volume
	v.BeingCreated = false
	if t.undo != nil {
		t.undo.RegisterCreated(v.Obj)
	}
	t.volumes.SetActive(v, now)
	t.session = nil
	t.stage = stagePending
}

// cancelCreation destroys the in-progress volume, if any, leaving the volume
// set exactly as before the gesture began.
func (t *Tool) cancelCreation() {
	if t.session != nil {
		t.volumes.Remove(t.session.volume)
		t.session = nil
	}
	t.stage = stagePending
}
