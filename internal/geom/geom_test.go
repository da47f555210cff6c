package geom

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func vecNear(a, b rl.Vector3, eps float32) bool {
	return rl.Vector3Length(rl.Vector3Subtract(a, b)) < eps
}

func TestRayPlaneHit(t *testing.T) {
	origin := rl.Vector3{X: 0, Y: 5, Z: 0}
	dir := rl.Vector3{X: 0, Y: -1, Z: 0}

	pt, ok := RayPlane(origin, dir, rl.Vector3{}, rl.Vector3{Y: 1})
	if !ok {
		t.Fatal("Ray pointing at plane should hit")
	}
	if !vecNear(pt, rl.Vector3{}, 1e-5) {
		t.Errorf("Expected hit at origin, got %v", pt)
	}
}

func TestRayPlaneParallel(t *testing.T) {
	origin := rl.Vector3{X: 0, Y: 5, Z: 0}
	dir := rl.Vector3{X: 1, Y: 0, Z: 0}

	if _, ok := RayPlane(origin, dir, rl.Vector3{}, rl.Vector3{Y: 1}); ok {
		t.Error("Parallel ray should not hit")
	}
}

func TestRayPlaneBehind(t *testing.T) {
	origin := rl.Vector3{X: 0, Y: 5, Z: 0}
	dir := rl.Vector3{X: 0, Y: 1, Z: 0}

	if _, ok := RayPlane(origin, dir, rl.Vector3{}, rl.Vector3{Y: 1}); ok {
		t.Error("Plane behind ray origin should not hit")
	}
}

func TestFlattenOntoPlane(t *testing.T) {
	v := rl.Vector3{X: 1, Y: 2, Z: 3}
	flat := FlattenOntoPlane(v, rl.Vector3{Y: 1})
	want := rl.Vector3{X: 1, Y: 0, Z: 3}
	if !vecNear(flat, want, 1e-5) {
		t.Errorf("Expected %v, got %v", want, flat)
	}
}

func TestSnapToPlaneAxis(t *testing.T) {
	axisA := rl.Vector3{X: 1}
	axisB := rl.Vector3{Z: 1}

	// Mostly along X: snaps to X, keeping the projected length.
	v := rl.Vector3{X: 3, Y: 0, Z: 1}
	got := SnapToPlaneAxis(v, axisA, axisB)
	if !vecNear(got, rl.Vector3{X: 3}, 1e-5) {
		t.Errorf("Expected snap to X axis, got %v", got)
	}

	// Mostly along -Z: snaps to Z with negative length.
	v = rl.Vector3{X: 1, Y: 0, Z: -4}
	got = SnapToPlaneAxis(v, axisA, axisB)
	if !vecNear(got, rl.Vector3{Z: -4}, 1e-5) {
		t.Errorf("Expected snap to -Z, got %v", got)
	}
}

func TestClosestPointBetweenRays(t *testing.T) {
	// Two perpendicular rays passing 1 unit apart.
	a := rl.Vector3{X: 0, Y: 0, Z: 0}
	u := rl.Vector3{X: 1, Y: 0, Z: 0}
	b := rl.Vector3{X: 0, Y: 1, Z: -5}
	v := rl.Vector3{X: 0, Y: 0, Z: 1}

	t1, t2, dist := ClosestPointBetweenRays(a, u, b, v)
	if math32.Abs(dist-1.0) > 1e-4 {
		t.Errorf("Expected distance 1, got %f", dist)
	}
	if math32.Abs(t1) > 1e-4 {
		t.Errorf("Expected t1 0, got %f", t1)
	}
	if math32.Abs(t2-5) > 1e-4 {
		t.Errorf("Expected t2 5, got %f", t2)
	}
}

func TestClosestPointBetweenRaysParallel(t *testing.T) {
	u := rl.Vector3{X: 1}
	_, _, dist := ClosestPointBetweenRays(rl.Vector3{}, u, rl.Vector3{Y: 1}, u)
	if dist < 100 {
		t.Errorf("Parallel rays should report a sentinel distance, got %f", dist)
	}
}

func TestIsUniform(t *testing.T) {
	if !IsUniform(rl.Vector3{X: 2, Y: 2, Z: 2}) {
		t.Error("Uniform scale reported as non-uniform")
	}
	if IsUniform(rl.Vector3{X: 1, Y: 2, Z: 1}) {
		t.Error("Non-uniform scale reported as uniform")
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(1.26, 0.5); math32.Abs(got-1.5) > 1e-5 {
		t.Errorf("Expected 1.5, got %f", got)
	}
	if got := RoundTo(-0.74, 0.5); math32.Abs(got+0.5) > 1e-5 {
		t.Errorf("Expected -0.5, got %f", got)
	}
	if got := RoundTo(3.14, 0); got != 3.14 {
		t.Errorf("Zero step should pass values through, got %f", got)
	}
}

func TestMaxComponent(t *testing.T) {
	if got := MaxComponent(rl.Vector3{X: 1, Y: 7, Z: 3}); got != 7 {
		t.Errorf("Expected 7, got %f", got)
	}
}

func TestLookRotationForward(t *testing.T) {
	dir := rl.Vector3Normalize(rl.Vector3{X: 1, Y: 0, Z: 1})
	q := LookRotation(dir, rl.Vector3{Y: 1})

	fwd := rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, q)
	if !vecNear(fwd, dir, 1e-4) {
		t.Errorf("Rotated forward %v should match %v", fwd, dir)
	}

	up := rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, q)
	if !vecNear(up, rl.Vector3{Y: 1}, 1e-4) {
		t.Errorf("Up should stay world up for a horizontal forward, got %v", up)
	}
}

func TestLookRotationParallelUp(t *testing.T) {
	// Forward straight up: must still produce a valid orthonormal frame.
	q := LookRotation(rl.Vector3{Y: 1}, rl.Vector3{Y: 1})

	fwd := rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, q)
	if !vecNear(fwd, rl.Vector3{Y: 1}, 1e-4) {
		t.Errorf("Forward should point up, got %v", fwd)
	}
}

func TestLookRotationDegenerate(t *testing.T) {
	q := LookRotation(rl.Vector3{}, rl.Vector3{Y: 1})
	id := rl.QuaternionIdentity()
	if q != id {
		t.Errorf("Zero forward should yield identity, got %v", q)
	}
}
