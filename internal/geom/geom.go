package geom

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Epsilon is the minimum meaningful extent for construction math. Lengths
// below this are treated as degenerate.
const Epsilon float32 = 0.001

// RayPlane returns where a ray hits a plane defined by a point and a normal.
func RayPlane(rayOrigin, rayDir, planePoint, planeNormal rl.Vector3) (rl.Vector3, bool) {
	denom := rl.Vector3DotProduct(rayDir, planeNormal)
	if math32.Abs(denom) < 1e-6 {
		return rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(planePoint, rayOrigin), planeNormal) / denom
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(rayOrigin, rl.Vector3Scale(rayDir, t)), true
}

// FlattenOntoPlane removes the component of v along the plane normal.
func FlattenOntoPlane(v, normal rl.Vector3) rl.Vector3 {
	d := rl.Vector3DotProduct(v, normal)
	return rl.Vector3Subtract(v, rl.Vector3Scale(normal, d))
}

// SnapToPlaneAxis rounds v to the nearest of the plane's two cardinal axes by
// comparing squared projections and keeping the longest one. The returned
// vector preserves the projected length along the winning axis.
func SnapToPlaneAxis(v, axisA, axisB rl.Vector3) rl.Vector3 {
	da := rl.Vector3DotProduct(v, axisA)
	db := rl.Vector3DotProduct(v, axisB)
	if da*da >= db*db {
		return rl.Vector3Scale(axisA, da)
	}
	return rl.Vector3Scale(axisB, db)
}

// ClosestPointBetweenRays finds the closest approach between two rays.
// Returns (t1, t2, distance) where t1/t2 are parameters along each ray.
func ClosestPointBetweenRays(a, u, b, v rl.Vector3) (t1, t2, dist float32) {
	w := rl.Vector3Subtract(a, b)
	uu := rl.Vector3DotProduct(u, u)
	uv := rl.Vector3DotProduct(u, v)
	vv := rl.Vector3DotProduct(v, v)
	uw := rl.Vector3DotProduct(u, w)
	vw := rl.Vector3DotProduct(v, w)

	denom := uu*vv - uv*uv
	if denom < 1e-6 {
		return 0, 0, 999
	}

	t1 = (uv*vw - vv*uw) / denom
	t2 = (uu*vw - uv*uw) / denom

	p1 := rl.Vector3Add(a, rl.Vector3Scale(u, t1))
	p2 := rl.Vector3Add(b, rl.Vector3Scale(v, t2))
	dist = rl.Vector3Length(rl.Vector3Subtract(p1, p2))
	return
}

// IsUniform reports whether a scale vector is uniform within tolerance.
// Handle math on a non-uniformly scaled parent would produce skewed results.
func IsUniform(s rl.Vector3) bool {
	const tol = 1e-4
	return math32.Abs(s.X-s.Y) < tol && math32.Abs(s.Y-s.Z) < tol
}

// AbsV returns the component-wise absolute value of v.
func AbsV(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: math32.Abs(v.X), Y: math32.Abs(v.Y), Z: math32.Abs(v.Z)}
}

// MaxComponent returns the largest component of v.
func MaxComponent(v rl.Vector3) float32 {
	m := v.X
	if v.Y > m {
		m = v.Y
	}
	if v.Z > m {
		m = v.Z
	}
	return m
}

// RoundTo rounds v to the nearest multiple of step. A step of zero returns v
// unchanged.
func RoundTo(v, step float32) float32 {
	if step == 0 {
		return v
	}
	return math32.Round(v/step) * step
}

// LookRotation builds the quaternion whose forward axis is the given
// direction and whose up axis is as close to the given up as possible.
// Falls back to identity for degenerate input.
func LookRotation(forward, up rl.Vector3) rl.Quaternion {
	f := rl.Vector3Normalize(forward)
	if rl.Vector3Length(forward) < Epsilon {
		return rl.QuaternionIdentity()
	}
	r := rl.Vector3CrossProduct(up, f)
	if rl.Vector3Length(r) < Epsilon {
		// Forward is parallel to up, pick any perpendicular right axis.
		r = rl.Vector3CrossProduct(rl.Vector3{X: 1}, f)
		if rl.Vector3Length(r) < Epsilon {
			r = rl.Vector3CrossProduct(rl.Vector3{Z: 1}, f)
		}
	}
	r = rl.Vector3Normalize(r)
	u := rl.Vector3CrossProduct(f, r)

	m := rl.MatrixIdentity()
	m.M0, m.M1, m.M2 = r.X, r.Y, r.Z
	m.M4, m.M5, m.M6 = u.X, u.Y, u.Z
	m.M8, m.M9, m.M10 = f.X, f.Y, f.Z
	return rl.QuaternionFromMatrix(m)
}
