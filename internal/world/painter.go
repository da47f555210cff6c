package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/host"
)

// Painter draws the tool's translucent feedback geometry with raylib's
// immediate mode calls. Must be used inside BeginMode3D/EndMode3D.
type Painter struct{}

func NewPainter() *Painter { return &Painter{} }

func (p *Painter) Triangles(verts []rl.Vector3, color rl.Color, depth host.DepthMode) {
	begin(depth)
	rl.DisableBackfaceCulling()
	for i := 0; i+2 < len(verts); i += 3 {
		rl.DrawTriangle3D(verts[i], verts[i+1], verts[i+2], color)
	}
	rl.DrawRenderBatchActive()
	rl.EnableBackfaceCulling()
	end(depth)
}

func (p *Painter) Lines(segments [][2]rl.Vector3, color rl.Color, depth host.DepthMode) {
	begin(depth)
	for _, s := range segments {
		rl.DrawLine3D(s[0], s[1], color)
	}
	end(depth)
}

func begin(depth host.DepthMode) {
	if depth != host.DepthTest {
		// Flush batched geometry before changing depth state.
		rl.DrawRenderBatchActive()
		rl.DisableDepthTest()
	}
}

func end(depth host.DepthMode) {
	if depth != host.DepthTest {
		rl.DrawRenderBatchActive()
		rl.EnableDepthTest()
	}
}
