package geom

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRayOBBAxisAlignedHit(t *testing.T) {
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.QuaternionIdentity())

	dist, ok := RayOBB(rl.Vector3{Z: -5}, rl.Vector3{Z: 1}, box)
	if !ok {
		t.Fatal("Ray through box center should hit")
	}
	// Near face is at z=-1, 4 units from the origin of the ray.
	if math32.Abs(dist-4) > 1e-4 {
		t.Errorf("Expected distance 4, got %f", dist)
	}
}

func TestRayOBBMiss(t *testing.T) {
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.QuaternionIdentity())

	if _, ok := RayOBB(rl.Vector3{X: 5, Z: -5}, rl.Vector3{Z: 1}, box); ok {
		t.Error("Ray passing beside the box should miss")
	}
}

func TestRayOBBBehind(t *testing.T) {
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.QuaternionIdentity())

	if _, ok := RayOBB(rl.Vector3{Z: 5}, rl.Vector3{Z: 1}, box); ok {
		t.Error("Box behind the ray should miss")
	}
}

func TestRayOBBFromInside(t *testing.T) {
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.QuaternionIdentity())

	dist, ok := RayOBB(rl.Vector3{}, rl.Vector3{Z: 1}, box)
	if !ok {
		t.Fatal("Ray starting inside should hit the exit face")
	}
	if math32.Abs(dist-1) > 1e-4 {
		t.Errorf("Expected exit distance 1, got %f", dist)
	}
}

func TestRayOBBRotated(t *testing.T) {
	// A thin slab yawed 45 degrees: a ray straight down its diagonal hits.
	rot := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math.Pi/4)
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: 4, Y: 1, Z: 0.2}, rot)

	if _, ok := RayOBB(rl.Vector3{X: 1, Z: -5}, rl.Vector3{Z: 1}, box); !ok {
		t.Error("Ray should hit the rotated slab")
	}
	if _, ok := RayOBB(rl.Vector3{X: 3, Z: -5}, rl.Vector3{Z: 1}, box); ok {
		t.Error("Ray outside the rotated slab should miss")
	}
}

func TestRayOBBNegativeSize(t *testing.T) {
	// Negative extents come from mirrored scales and must behave like their
	// absolute value.
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: -2, Y: 2, Z: -2}, rl.QuaternionIdentity())

	dist, ok := RayOBB(rl.Vector3{Z: -5}, rl.Vector3{Z: 1}, box)
	if !ok {
		t.Fatal("Mirrored box should still hit")
	}
	if math32.Abs(dist-4) > 1e-4 {
		t.Errorf("Expected distance 4, got %f", dist)
	}
}

func TestClosestPointOnOBB(t *testing.T) {
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.QuaternionIdentity())

	got := ClosestPointOnOBB(box, rl.Vector3{X: 5, Y: 0, Z: 0})
	want := rl.Vector3{X: 1, Y: 0, Z: 0}
	if !vecNear(got, want, 1e-5) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Inside the box the point is unchanged.
	inside := rl.Vector3{X: 0.5, Y: -0.2, Z: 0.1}
	got = ClosestPointOnOBB(box, inside)
	if !vecNear(got, inside, 1e-5) {
		t.Errorf("Interior point should map to itself, got %v", got)
	}
}

func TestOBBCorners(t *testing.T) {
	box := NewOBB(rl.Vector3{X: 1, Y: 2, Z: 3}, rl.Vector3{X: 2, Y: 4, Z: 6}, rl.QuaternionIdentity())
	corners := box.Corners()

	// First four corners form the bottom face.
	for i := 0; i < 4; i++ {
		if math32.Abs(corners[i].Y-0) > 1e-5 {
			t.Errorf("Bottom corner %d should have Y=0, got %f", i, corners[i].Y)
		}
	}
	// Last four are directly above the first four.
	for i := 0; i < 4; i++ {
		top := corners[i+4]
		bottom := corners[i]
		if math32.Abs(top.X-bottom.X) > 1e-5 || math32.Abs(top.Z-bottom.Z) > 1e-5 {
			t.Errorf("Top corner %d should sit above bottom corner %d", i+4, i)
		}
		if math32.Abs(top.Y-4) > 1e-5 {
			t.Errorf("Top corner %d should have Y=4, got %f", i+4, top.Y)
		}
	}
}
