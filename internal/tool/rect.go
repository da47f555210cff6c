package tool

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/geom"
	"voltool/internal/host"
)

const rectCornerHitDist float32 = 0.3

// canonicalFrames are the 24 right-handed orthonormal frames whose axes are
// signed permutations of the world axes. The rect handle re-aligns drag
// deltas to the frame closest to the volume's rotation so footprint axes
// stay correctly labeled after arbitrary rotations.
var canonicalFrames = buildCanonicalFrames()

func buildCanonicalFrames() [][3]rl.Vector3 {
	units := []rl.Vector3{
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: 1}, {Z: -1},
	}
	frames := make([][3]rl.Vector3, 0, 24)
	for _, fwd := range units {
		for _, up := range units {
			if math32.Abs(rl.Vector3DotProduct(fwd, up)) > 0.5 {
				continue // parallel or anti-parallel
			}
			right := rl.Vector3CrossProduct(up, fwd)
			frames = append(frames, [3]rl.Vector3{right, up, fwd})
		}
	}
	return frames
}

// nearestCanonicalFrame picks the frame whose axes best match the given
// orientation, maximizing the minimum absolute dot product across the three
// primary axes.
func nearestCanonicalFrame(rot rl.Quaternion) [3]rl.Vector3 {
	basis := [3]rl.Vector3{
		rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, rot),
		rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, rot),
		rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, rot),
	}
	best := canonicalFrames[0]
	bestScore := float32(-1)
	for _, frame := range canonicalFrames {
		score := math32.Inf(1)
		for i := 0; i < 3; i++ {
			d := math32.Abs(rl.Vector3DotProduct(basis[i], frame[i]))
			if d < score {
				score = d
			}
		}
		if score > bestScore {
			bestScore = score
			best = frame
		}
	}
	return best
}

// BaseCorners returns the four corners of the volume's base face.
func (v *Volume) BaseCorners(p Pivot) [4]rl.Vector3 {
	size := v.WorldSize()
	up := v.Up()
	right := rl.Vector3Scale(v.Right(), size.X/2)
	fwd := rl.Vector3Scale(v.Forward(), size.Z/2)
	base := rl.Vector3Subtract(v.Center(p), rl.Vector3Scale(up, size.Y/2))

	return [4]rl.Vector3{
		rl.Vector3Subtract(rl.Vector3Subtract(base, right), fwd),
		rl.Vector3Subtract(rl.Vector3Add(base, right), fwd),
		rl.Vector3Add(rl.Vector3Add(base, right), fwd),
		rl.Vector3Add(rl.Vector3Subtract(base, right), fwd),
	}
}

// tryStartRectResize begins a footprint resize if the pointer grabbed one of
// the base corners. Returns whether the gesture started.
func (t *Tool) tryStartRectResize(v *Volume, ev host.PointerEvent, f host.Frame) bool {
	corners := v.BaseCorners(t.settings.Pivot)
	grabbed := -1
	bestDist := rectCornerHitDist
	for i, c := range corners {
		toCorner := rl.Vector3Subtract(c, ev.Ray.Position)
		along := rl.Vector3DotProduct(toCorner, ev.Ray.Direction)
		if along <= 0 {
			continue
		}
		closest := rl.Vector3Add(ev.Ray.Position, rl.Vector3Scale(ev.Ray.Direction, along))
		dist := rl.Vector3Length(rl.Vector3Subtract(closest, c))
		if dist < bestDist {
			bestDist = dist
			grabbed = i
		}
	}
	if grabbed < 0 {
		return false
	}

	frame := nearestCanonicalFrame(v.Obj.WorldRotation())
	t.beginGesture(v, "Resize Volume")
	t.drag = &dragState{
		volume:          v,
		kind:            dragRectResize,
		anchor:          v.PivotPosition(),
		startPivotWorld: v.PivotPosition(),
		startRotWorld:   v.Obj.WorldRotation(),
		startScale:      v.Obj.Transform.Scale,
		upWorld:         v.Up(),
		fixedCorner:     corners[(grabbed+2)%4], // diagonally opposite
		frameRight:      frame[0],
		frameForward:    frame[2],
	}
	return true
}

// updateRectResize scales the 2D footprint about the fixed corner and moves
// the center accordingly, with deltas expressed in the canonical frame.
func (t *Tool) updateRectResize(ev host.PointerEvent) {
	d := t.drag
	p, ok := geom.RayPlane(ev.Ray.Position, ev.Ray.Direction, d.fixedCorner, d.upWorld)
	if !ok {
		return
	}
	delta := rl.Vector3Subtract(p, d.fixedCorner)
	w := rl.Vector3DotProduct(delta, d.frameRight)
	l := rl.Vector3DotProduct(delta, d.frameForward)

	d.volume.SetScaleAxis(0, w)
	d.volume.SetScaleAxis(2, l)

	base := d.fixedCorner
	base = rl.Vector3Add(base, rl.Vector3Scale(d.frameRight, w/2))
	base = rl.Vector3Add(base, rl.Vector3Scale(d.frameForward, l/2))
	height := math32.Abs(d.startScale.Y)
	center := rl.Vector3Add(base, rl.Vector3Scale(d.upWorld, height/2))
	d.volume.SetCenter(center, t.settings.Pivot)
}

// startRectMove begins dragging the whole volume on its base plane.
func (t *Tool) startRectMove(v *Volume, ev host.PointerEvent, f host.Frame) {
	anchor := v.PivotPosition()
	up := v.Up()
	hit, ok := geom.RayPlane(ev.Ray.Position, ev.Ray.Direction, anchor, up)
	if !ok {
		return
	}
	t.beginGesture(v, "Move Volume")
	t.drag = &dragState{
		volume:          v,
		kind:            dragRectMove,
		anchor:          anchor,
		startPivotWorld: anchor,
		startRotWorld:   v.Obj.WorldRotation(),
		startScale:      v.Obj.Transform.Scale,
		upWorld:         up,
		startHit:        hit,
	}
}

func (t *Tool) updateRectMove(ev host.PointerEvent) {
	d := t.drag
	p, ok := geom.RayPlane(ev.Ray.Position, ev.Ray.Direction, d.anchor, d.upWorld)
	if !ok {
		return
	}
	delta := rl.Vector3Subtract(p, d.startHit)
	step := dragStep(ev.Mods)
	delta = rl.Vector3{
		X: geom.RoundTo(delta.X, step),
		Y: geom.RoundTo(delta.Y, step),
		Z: geom.RoundTo(delta.Z, step),
	}
	d.volume.SetPivotPosition(rl.Vector3Add(d.startPivotWorld, delta))
}
