package tool

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/engine"
	"voltool/internal/geom"
)

// Snapshot is a volume's transform captured at gesture start. All drag math
// is computed relative to it, never frame-to-frame.
type Snapshot struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
	Valid    bool
}

// Volume wraps one authored box volume with its transient authoring state.
// The wrapped GameObject is owned by the host scene; the handle owns nothing
// beyond that reference.
type Volume struct {
	Obj          *engine.GameObject
	Active       bool
	BeingCreated bool
	LastActive   float64
	Snap         Snapshot
}

func newVolume(obj *engine.GameObject) *Volume {
	return &Volume{Obj: obj}
}

// TakeSnapshot records the current transform as the gesture baseline.
func (v *Volume) TakeSnapshot() {
	v.Snap = Snapshot{
		Position: v.Obj.Transform.Position,
		Rotation: v.Obj.Transform.Rotation,
		Scale:    v.Obj.Transform.Scale,
		Valid:    true,
	}
}

// RestoreSnapshot puts the transform back to the gesture baseline.
func (v *Volume) RestoreSnapshot() {
	if !v.Snap.Valid {
		return
	}
	v.Obj.Transform.Position = v.Snap.Position
	v.Obj.Transform.Rotation = v.Snap.Rotation
	v.Obj.Transform.Scale = v.Snap.Scale
}

// ClearSnapshot marks the gesture as finished.
func (v *Volume) ClearSnapshot() {
	v.Snap.Valid = false
}

// Up returns the world direction of the volume's height axis.
func (v *Volume) Up() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, v.Obj.WorldRotation())
}

// Right returns the world direction of the volume's width axis.
func (v *Volume) Right() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, v.Obj.WorldRotation())
}

// Forward returns the world direction of the volume's length axis.
func (v *Volume) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, v.Obj.WorldRotation())
}

// WorldSize returns the absolute world-space extents of the volume.
func (v *Volume) WorldSize() rl.Vector3 {
	return geom.AbsV(v.Obj.WorldScale())
}

// pivotOffset is the world vector from the stored position to the geometric
// center under the given convention.
func (v *Volume) pivotOffset(p Pivot) rl.Vector3 {
	if p == PivotCenter {
		return rl.Vector3{}
	}
	return rl.Vector3Scale(v.Up(), v.WorldSize().Y/2)
}

// PivotPosition is the world position the stored position refers to: the
// geometric center or the base-face center, per convention.
func (v *Volume) PivotPosition() rl.Vector3 {
	return v.Obj.WorldPosition()
}

// Center returns the world-space geometric center under the convention.
func (v *Volume) Center(p Pivot) rl.Vector3 {
	return rl.Vector3Add(v.Obj.WorldPosition(), v.pivotOffset(p))
}

// SetCenter moves the volume so its geometric center lands on c, writing the
// stored position according to the convention.
func (v *Volume) SetCenter(c rl.Vector3, p Pivot) {
	v.setWorldPosition(rl.Vector3Subtract(c, v.pivotOffset(p)))
}

// SetPivotPosition writes the stored (pivot-dependent) position directly.
func (v *Volume) SetPivotPosition(pos rl.Vector3) {
	v.setWorldPosition(pos)
}

// setWorldPosition writes a world position into the local transform,
// inverting the parent transform when one exists.
func (v *Volume) setWorldPosition(world rl.Vector3) {
	parent := v.Obj.Parent
	if parent == nil {
		v.Obj.Transform.Position = world
		return
	}
	rel := rl.Vector3Subtract(world, parent.WorldPosition())
	rel = rl.Vector3RotateByQuaternion(rel, rl.QuaternionInvert(parent.WorldRotation()))
	ps := parent.WorldScale()
	if math32.Abs(ps.X) > geom.Epsilon {
		rel.X /= ps.X
	}
	if math32.Abs(ps.Y) > geom.Epsilon {
		rel.Y /= ps.Y
	}
	if math32.Abs(ps.Z) > geom.Epsilon {
		rel.Z /= ps.Z
	}
	v.Obj.Transform.Position = rel
}

// SetScaleAxis writes one extent, normalizing sign to absolute value.
func (v *Volume) SetScaleAxis(axis int, val float32) {
	val = math32.Abs(val)
	switch axis {
	case 0:
		v.Obj.Transform.Scale.X = val
	case 1:
		v.Obj.Transform.Scale.Y = val
	case 2:
		v.Obj.Transform.Scale.Z = val
	}
}

// OBB returns the volume's oriented box in world space.
func (v *Volume) OBB(p Pivot) geom.OBB {
	return geom.NewOBB(v.Center(p), v.WorldSize(), v.Obj.WorldRotation())
}

// BoundingCubeSide is the side of the conservative axis-aligned cube used
// for frustum culling: the largest extent on any axis.
func (v *Volume) BoundingCubeSide() float32 {
	return geom.MaxComponent(v.WorldSize())
}

// InheritsSkew reports whether an ancestor carries a non-uniform scale, in
// which case handle math would produce incorrect geometry and the tool
// refuses to operate on this volume.
func (v *Volume) InheritsSkew() bool {
	if v.Obj.Parent == nil {
		return false
	}
	return !geom.IsUniform(v.Obj.Parent.WorldScale())
}

// convertPivot rewrites the stored position so that the same world geometry
// is described under the new convention. The volume itself does not move.
func (v *Volume) convertPivot(from, to Pivot) {
	if from == to {
		return
	}
	center := v.Center(from)
	v.SetCenter(center, to)
}
