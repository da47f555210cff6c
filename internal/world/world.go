package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/engine"
	"voltool/internal/geom"
)

const FloorSize float32 = 60.0

// World owns the host scene graph the tool authors into: a scene, the
// authority root whose children are the volumes, and the ground plane used
// as world geometry for placement raycasts.
type World struct {
	Scene      *engine.Scene
	VolumeRoot *engine.GameObject
}

func New() *World {
	w := &World{
		Scene: engine.NewScene("Main"),
	}
	w.VolumeRoot = engine.NewGameObject("Volumes")
	w.Scene.AddGameObject(w.VolumeRoot)
	return w
}

// RaycastWorldGeometry intersects the picking ray with the ground plane.
func (w *World) RaycastWorldGeometry(ray rl.Ray) (rl.Vector3, rl.Vector3, bool) {
	up := rl.Vector3{Y: 1}
	pt, ok := geom.RayPlane(ray.Position, ray.Direction, rl.Vector3{}, up)
	if !ok {
		return rl.Vector3{}, rl.Vector3{}, false
	}
	if pt.X < -FloorSize/2 || pt.X > FloorSize/2 || pt.Z < -FloorSize/2 || pt.Z > FloorSize/2 {
		return rl.Vector3{}, rl.Vector3{}, false
	}
	return pt, up, true
}

// ExtractFrustum builds the culling frustum for the active camera from its
// view and projection matrices.
func ExtractFrustum(camera rl.Camera3D) geom.Frustum {
	view := rl.GetCameraMatrix(camera)

	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, 0.1, 1000.0)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, 0.1, 1000.0)
	}

	return geom.FrustumFromMatrix(rl.MatrixMultiply(view, proj))
}
