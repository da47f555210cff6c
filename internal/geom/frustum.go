package geom

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling.
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0).
type Plane struct {
	Normal   rl.Vector3
	Distance float32
}

// NewFrustum builds a frustum directly from 6 planes.
func NewFrustum(planes [6]Plane) Frustum {
	var f Frustum
	for i, p := range planes {
		f.planes[i] = normalizePlane(p)
	}
	return f
}

// FrustumFromMatrix extracts frustum planes from a combined view-projection
// matrix using the Gribb/Hartmann method.
func FrustumFromMatrix(vp rl.Matrix) Frustum {
	var f Frustum

	// Left plane: row4 + row1
	f.planes[0] = normalizePlane(Plane{
		Normal:   rl.Vector3{X: vp.M3 + vp.M0, Y: vp.M7 + vp.M4, Z: vp.M11 + vp.M8},
		Distance: vp.M15 + vp.M12,
	})
	// Right plane: row4 - row1
	f.planes[1] = normalizePlane(Plane{
		Normal:   rl.Vector3{X: vp.M3 - vp.M0, Y: vp.M7 - vp.M4, Z: vp.M11 - vp.M8},
		Distance: vp.M15 - vp.M12,
	})
	// Bottom plane: row4 + row2
	f.planes[2] = normalizePlane(Plane{
		Normal:   rl.Vector3{X: vp.M3 + vp.M1, Y: vp.M7 + vp.M5, Z: vp.M11 + vp.M9},
		Distance: vp.M15 + vp.M13,
	})
	// Top plane: row4 - row2
	f.planes[3] = normalizePlane(Plane{
		Normal:   rl.Vector3{X: vp.M3 - vp.M1, Y: vp.M7 - vp.M5, Z: vp.M11 - vp.M9},
		Distance: vp.M15 - vp.M13,
	})
	// Near plane: row4 + row3
	f.planes[4] = normalizePlane(Plane{
		Normal:   rl.Vector3{X: vp.M3 + vp.M2, Y: vp.M7 + vp.M6, Z: vp.M11 + vp.M10},
		Distance: vp.M15 + vp.M14,
	})
	// Far plane: row4 - row3
	f.planes[5] = normalizePlane(Plane{
		Normal:   rl.Vector3{X: vp.M3 - vp.M2, Y: vp.M7 - vp.M6, Z: vp.M11 - vp.M10},
		Distance: vp.M15 - vp.M14,
	})

	return f
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.Normal)
	if length == 0 {
		return p
	}
	return Plane{
		Normal:   rl.Vector3Scale(p.Normal, 1.0/length),
		Distance: p.Distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].Normal, center) + f.planes[i].Distance
		if dist < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum.
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].Normal, point) + f.planes[i].Distance
		if dist < 0 {
			return false
		}
	}
	return true
}

// ContainsCube tests an axis-aligned cube of the given side length centered
// at center. Conservative: it may report a cube as visible when only its
// bounding sphere intersects the frustum, but never culls a visible cube.
func (f *Frustum) ContainsCube(center rl.Vector3, side float32) bool {
	// Radius of the cube's bounding sphere: side/2 * sqrt(3) < side * 0.867.
	return f.ContainsSphere(center, side*0.867)
}
