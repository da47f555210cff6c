package tool

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/geom"
	"voltool/internal/host"
)

const (
	gridCells   = 4
	gridSpacing float32 = 1.0
	arrowLength float32 = 1.5
	arrowHead   float32 = 0.2
)

var (
	fillColor      = rl.Fade(rl.SkyBlue, 0.35)
	deleteColor    = rl.Fade(rl.Red, 0.45)
	outlineColor   = rl.Fade(rl.Green, 0.9)
	gridFrontTint  = rl.Fade(rl.RayWhite, 0.6)
	gridBehindTint = rl.Fade(rl.RayWhite, 0.15)

	axisColors = [3]rl.Color{rl.Red, rl.Green, rl.Blue}
)

// drawFeedback paints translucent volume fills, outlines, alignment
// gridlines and placement gizmos for the current frame.
func (t *Tool) drawFeedback(visible []*Volume, f host.Frame) {
	if t.painter == nil {
		return
	}

	// Surface outlines, then fills.
	if !t.settings.FullVolume || t.settings.Pivot == PivotCenter {
		for _, v := range visible {
			t.drawBaseOutline(v)
		}
	}

	for _, v := range visible {
		color := fillColor
		if t.settings.Mode == ModeDelete && v == t.hoverDelete {
			color = deleteColor
		}
		if t.settings.FullVolume {
			t.drawCuboid(v, color)
		} else {
			t.drawBaseFill(v, color)
		}
	}

	if t.settings.Mode != ModeCreate {
		return
	}
	switch t.stage {
	case stagePending:
		if t.hoverValid {
			t.drawAxisArrows(t.hoverPoint, t.hoverBasis)
		}
	case stageSetLength:
		s := t.session
		t.drawAlignmentGrid(s.clickedPoint, s.basis)
		t.drawAxisArrows(s.clickedPoint, planeBasis{
			Up:      s.volume.Up(),
			Right:   s.volume.Right(),
			Forward: s.volume.Forward(),
		})
	}
}

func (t *Tool) drawBaseOutline(v *Volume) {
	c := v.BaseCorners(t.settings.Pivot)
	segs := [][2]rl.Vector3{
		{c[0], c[1]}, {c[1], c[2]}, {c[2], c[3]}, {c[3], c[0]},
	}
	t.painter.Lines(segs, outlineColor, host.DepthTest)
}

func (t *Tool) drawBaseFill(v *Volume, color rl.Color) {
	c := v.BaseCorners(t.settings.Pivot)
	verts := []rl.Vector3{
		c[0], c[1], c[2],
		c[0], c[2], c[3],
	}
	t.painter.Triangles(verts, color, host.DepthTest)
}

// drawCuboid paints the full translucent box, depth tested less-or-equal,
// no lighting.
func (t *Tool) drawCuboid(v *Volume, color rl.Color) {
	c := v.OBB(t.settings.Pivot).Corners()
	quads := [6][4]int{
		{0, 1, 2, 3}, // bottom
		{4, 7, 6, 5}, // top
		{0, 4, 5, 1}, // -Z side
		{3, 2, 6, 7}, // +Z side
		{0, 3, 7, 4}, // -X side
		{1, 5, 6, 2}, // +X side
	}
	verts := make([]rl.Vector3, 0, 36)
	for _, q := range quads {
		verts = append(verts,
			c[q[0]], c[q[1]], c[q[2]],
			c[q[0]], c[q[2]], c[q[3]],
		)
	}
	t.painter.Triangles(verts, color, host.DepthTest)
}

// drawAlignmentGrid paints the 4x4 construction-plane grid in two passes: a
// faint tint where geometry occludes it and a brighter tint in front, which
// communicates occlusion without z-fighting.
func (t *Tool) drawAlignmentGrid(center rl.Vector3, basis planeBasis) {
	half := float32(gridCells) / 2 * gridSpacing
	segs := make([][2]rl.Vector3, 0, (gridCells+1)*2)
	for i := 0; i <= gridCells; i++ {
		off := -half + float32(i)*gridSpacing
		ro := rl.Vector3Scale(basis.Right, off)
		fo := rl.Vector3Scale(basis.Forward, off)
		segs = append(segs,
			[2]rl.Vector3{
				rl.Vector3Add(rl.Vector3Add(center, ro), rl.Vector3Scale(basis.Forward, -half)),
				rl.Vector3Add(rl.Vector3Add(center, ro), rl.Vector3Scale(basis.Forward, half)),
			},
			[2]rl.Vector3{
				rl.Vector3Add(rl.Vector3Add(center, fo), rl.Vector3Scale(basis.Right, -half)),
				rl.Vector3Add(rl.Vector3Add(center, fo), rl.Vector3Scale(basis.Right, half)),
			},
		)
	}
	t.painter.Lines(segs, gridBehindTint, host.DepthBehind)
	t.painter.Lines(segs, gridFrontTint, host.DepthTest)
}

// drawAxisArrows paints colored arrow gizmos for the three local axes at the
// placement point.
func (t *Tool) drawAxisArrows(at rl.Vector3, basis planeBasis) {
	axes := [3]rl.Vector3{basis.Right, basis.Up, basis.Forward}
	for i, axis := range axes {
		tip := rl.Vector3Add(at, rl.Vector3Scale(axis, arrowLength))
		// A cheap arrowhead: two short strokes angled back from the tip.
		side := rl.Vector3CrossProduct(axis, axes[(i+1)%3])
		if rl.Vector3Length(side) < geom.Epsilon {
			side = rl.Vector3CrossProduct(axis, axes[(i+2)%3])
		}
		side = rl.Vector3Scale(rl.Vector3Normalize(side), arrowHead)
		back := rl.Vector3Scale(axis, -arrowHead)
		segs := [][2]rl.Vector3{
			{at, tip},
			{tip, rl.Vector3Add(rl.Vector3Add(tip, back), side)},
			{tip, rl.Vector3Subtract(rl.Vector3Add(tip, back), side)},
		}
		t.painter.Lines(segs, axisColors[i], host.DepthIgnore)
	}
}
