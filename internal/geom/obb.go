package geom

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an oriented bounding box.
type OBB struct {
	Center   rl.Vector3    // world-space center
	HalfSize rl.Vector3    // half-extents along local axes
	Axes     [3]rl.Vector3 // local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from a world center, full size and orientation.
func NewOBB(center, size rl.Vector3, rot rl.Quaternion) OBB {
	size = AbsV(size)
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2},
		Axes: [3]rl.Vector3{
			rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, rot),
			rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, rot),
			rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, rot),
		},
	}
}

// RayOBB intersects a ray with the box surface using the slab method in the
// box's local frame. Returns the distance to the nearest surface point along
// the ray.
func RayOBB(origin, dir rl.Vector3, box OBB) (float32, bool) {
	// Transform the ray into box-local coordinates.
	rel := rl.Vector3Subtract(origin, box.Center)
	var lo, ld [3]float32
	for i := 0; i < 3; i++ {
		lo[i] = rl.Vector3DotProduct(rel, box.Axes[i])
		ld[i] = rl.Vector3DotProduct(dir, box.Axes[i])
	}
	half := [3]float32{box.HalfSize.X, box.HalfSize.Y, box.HalfSize.Z}

	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)
	for i := 0; i < 3; i++ {
		if math32.Abs(ld[i]) < 1e-8 {
			if lo[i] < -half[i] || lo[i] > half[i] {
				return 0, false
			}
			continue
		}
		t1 := (-half[i] - lo[i]) / ld[i]
		t2 := (half[i] - lo[i]) / ld[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	t := tmin
	if t < 0 {
		t = tmax
	}
	return t, true
}

// ClosestPointOnOBB returns the closest point on the box surface or volume to
// the given point.
func ClosestPointOnOBB(box OBB, point rl.Vector3) rl.Vector3 {
	local := rl.Vector3Subtract(point, box.Center)
	result := box.Center
	half := [3]float32{box.HalfSize.X, box.HalfSize.Y, box.HalfSize.Z}
	for i := 0; i < 3; i++ {
		d := rl.Vector3DotProduct(local, box.Axes[i])
		if d > half[i] {
			d = half[i]
		}
		if d < -half[i] {
			d = -half[i]
		}
		result = rl.Vector3Add(result, rl.Vector3Scale(box.Axes[i], d))
	}
	return result
}

// Corners returns the 8 world-space corners of the box. Order: the four
// bottom corners counter-clockwise, then the four top corners above them.
func (b OBB) Corners() [8]rl.Vector3 {
	ex := rl.Vector3Scale(b.Axes[0], b.HalfSize.X)
	ey := rl.Vector3Scale(b.Axes[1], b.HalfSize.Y)
	ez := rl.Vector3Scale(b.Axes[2], b.HalfSize.Z)

	var out [8]rl.Vector3
	signs := [8][3]float32{
		{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1},
		{-1, 1, -1}, {1, 1, -1}, {1, 1, 1}, {-1, 1, 1},
	}
	for i, s := range signs {
		p := b.Center
		p = rl.Vector3Add(p, rl.Vector3Scale(ex, s[0]))
		p = rl.Vector3Add(p, rl.Vector3Scale(ey, s[1]))
		p = rl.Vector3Add(p, rl.Vector3Scale(ez, s[2]))
		out[i] = p
	}
	return out
}
