package geom

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// testFrustum builds the frustum of a camera at the origin looking down +Z.
func testFrustum() Frustum {
	view := rl.MatrixLookAt(rl.Vector3{}, rl.Vector3{Z: 1}, rl.Vector3{Y: 1})
	proj := rl.MatrixPerspective(60*rl.Deg2rad, 16.0/9.0, 0.1, 100.0)
	return FrustumFromMatrix(rl.MatrixMultiply(view, proj))
}

func TestFrustumContainsPoint(t *testing.T) {
	f := testFrustum()

	if !f.ContainsPoint(rl.Vector3{Z: 10}) {
		t.Error("Point straight ahead should be inside")
	}
	if f.ContainsPoint(rl.Vector3{Z: -10}) {
		t.Error("Point behind the camera should be outside")
	}
	if f.ContainsPoint(rl.Vector3{X: 100, Z: 10}) {
		t.Error("Point far to the side should be outside")
	}
	if f.ContainsPoint(rl.Vector3{Z: 200}) {
		t.Error("Point past the far plane should be outside")
	}
}

func TestFrustumContainsSphere(t *testing.T) {
	f := testFrustum()

	// Center outside the left plane but the sphere pokes in.
	center := rl.Vector3{X: -7, Z: 5}
	if f.ContainsPoint(center) {
		t.Fatal("Test center should be outside the frustum")
	}
	if !f.ContainsSphere(center, 5) {
		t.Error("Large sphere overlapping the frustum should be visible")
	}
	if f.ContainsSphere(center, 0.1) {
		t.Error("Small sphere fully outside should be culled")
	}
}

func TestFrustumContainsCube(t *testing.T) {
	f := testFrustum()

	if !f.ContainsCube(rl.Vector3{Z: 10}, 1) {
		t.Error("Cube straight ahead should be visible")
	}
	if f.ContainsCube(rl.Vector3{Z: -10}, 1) {
		t.Error("Cube behind the camera should be culled")
	}
	// Conservative test: a cube whose corner may clip the frustum edge is
	// kept even if its center is just outside.
	if !f.ContainsCube(rl.Vector3{X: -12, Z: 10}, 4) {
		t.Error("Cube clipping the frustum edge should be visible")
	}
}
