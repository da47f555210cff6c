package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/tool"
)

// Theme colors - dark with a slight blue tint.
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255) // Top bar bg
	colorBgPanel   = rl.NewColor(18, 18, 24, 245) // Panel backgrounds
	colorBgElement = rl.NewColor(28, 28, 38, 255) // Buttons
	colorBgHover   = rl.NewColor(38, 38, 52, 255) // Hover state

	colorAccent      = rl.NewColor(108, 99, 255, 255)  // Primary indigo
	colorAccentLight = rl.NewColor(167, 139, 250, 255) // Light purple

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)

	colorBorder = rl.NewColor(255, 255, 255, 13)
)

const (
	topBarHeight    = 36
	propsPanelWidth = 230
)

var rayguiStyled bool

// initRayguiStyle applies the dark indigo theme to raygui controls.
func initRayguiStyle() {
	if rayguiStyled {
		return
	}
	rayguiStyled = true

	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// drawUI draws the 2D overlay: top bar, properties panel and the cursor
// warning. Call outside BeginMode3D.
func (g *Game) drawUI() {
	initRayguiStyle()

	g.drawTopBar()
	if g.tool.Settings().ShowProperties {
		g.drawPropertiesPanel()
	}
	g.drawWarning()
}

func (g *Game) drawTopBar() {
	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), topBarHeight, colorBgDark)
	rl.DrawRectangle(0, topBarHeight-1, int32(rl.GetScreenWidth()), 1, colorBorder)

	rl.DrawText("VOLUMES", 12, 9, 20, colorAccent)

	// Mode buttons
	modes := [4]tool.Mode{tool.ModeNone, tool.ModeCreate, tool.ModeEdit, tool.ModeDelete}
	mouse := rl.GetMousePosition()
	for i, m := range modes {
		x := int32(130 + i*78)
		w := int32(70)
		hovered := mouse.X >= float32(x) && mouse.X <= float32(x+w) &&
			mouse.Y >= 6 && mouse.Y <= 30

		btnColor := colorBgElement
		textColor := colorTextMuted
		if m == g.tool.Settings().Mode {
			btnColor = colorAccent
			textColor = colorTextPrimary
		} else if hovered {
			btnColor = colorBgHover
			textColor = colorTextSecondary
		}
		rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: 6, Width: float32(w), Height: 24}, 0.4, 8, btnColor)
		label := m.String()
		rl.DrawText(label, x+(w-rl.MeasureText(label, 15))/2, 11, 15, textColor)

		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			g.tool.SetMode(m)
		}
	}

	// Handle tool indicator, only meaningful in Edit mode
	if g.tool.Settings().Mode == tool.ModeEdit {
		toolNames := [4]string{"[W] Move", "[E] Rotate", "[R] Scale", "[T] Rect"}
		for i, name := range toolNames {
			x := int32(460 + i*92)
			color := colorTextMuted
			if tool.HandleTool(i) == g.tool.HandleTool() {
				color = colorAccentLight
			}
			rl.DrawText(name, x, 10, 15, color)
		}
	}

	rl.DrawText(fmt.Sprintf("Speed: %.0f", g.camera.MoveSpeed),
		int32(rl.GetScreenWidth())-250, 10, 15, colorTextMuted)

	// Properties panel toggle - pill shaped
	btnW := int32(90)
	btnX := int32(rl.GetScreenWidth()) - btnW - 12
	hovered := mouse.X >= float32(btnX) && mouse.X <= float32(btnX+btnW) &&
		mouse.Y >= 6 && mouse.Y <= 30

	btnColor := colorBgElement
	textColor := colorTextSecondary
	if g.tool.Settings().ShowProperties {
		btnColor = colorAccent
		textColor = colorTextPrimary
	} else if hovered {
		btnColor = colorBgHover
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(btnX), Y: 6, Width: float32(btnW), Height: 24}, 0.5, 8, btnColor)
	rl.DrawText("Properties", btnX+10, 11, 15, textColor)

	if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		g.tool.Settings().SetShowProperties(!g.tool.Settings().ShowProperties)
	}
}

func (g *Game) drawPropertiesPanel() {
	panelX := int32(rl.GetScreenWidth()) - propsPanelWidth
	panelY := int32(topBarHeight)
	panelH := int32(rl.GetScreenHeight()) - panelY

	rl.DrawRectangle(panelX, panelY, propsPanelWidth, panelH, colorBgPanel)
	rl.DrawRectangle(panelX, panelY, 2, panelH, colorBorder)

	rl.DrawText("Properties", panelX+12, panelY+10, 18, colorTextSecondary)

	s := g.tool.Settings()
	x := float32(panelX + 14)
	y := float32(panelY + 44)

	full := gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 18, Height: 18}, "Full Volume", s.FullVolume)
	if full != s.FullVolume {
		s.SetFullVolume(full)
	}
	y += 30

	snap := gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 18, Height: 18}, "Snap Axes", s.SnapAxes)
	if snap != s.SnapAxes {
		s.SetSnapAxes(snap)
	}
	y += 30

	surface := gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 18, Height: 18}, "Surface Pivot", s.Pivot == tool.PivotSurface)
	if surface != (s.Pivot == tool.PivotSurface) {
		p := tool.PivotCenter
		if surface {
			p = tool.PivotSurface
		}
		g.tool.SetPivot(p)
	}
	y += 40

	// Creation alignment selector
	rl.DrawText("Alignment", int32(x), int32(y), 15, colorTextMuted)
	y += 24
	aligns := [4]tool.Alignment{tool.AlignY, tool.AlignX, tool.AlignZ, tool.AlignSurface}
	labels := [4]string{"Y", "X", "Z", "Surf"}
	mouse := rl.GetMousePosition()
	bx := x
	for i, a := range aligns {
		w := float32(38)
		if a == tool.AlignSurface {
			w = 52
		}
		hovered := mouse.X >= bx && mouse.X <= bx+w &&
			mouse.Y >= y && mouse.Y <= y+24

		btnColor := colorBgElement
		textColor := colorTextMuted
		if a == s.Alignment {
			btnColor = colorAccent
			textColor = colorTextPrimary
		} else if hovered {
			btnColor = colorBgHover
			textColor = colorTextSecondary
		}
		rl.DrawRectangleRounded(rl.Rectangle{X: bx, Y: y, Width: w, Height: 24}, 0.3, 6, btnColor)
		lw := rl.MeasureText(labels[i], 15)
		rl.DrawText(labels[i], int32(bx)+(int32(w)-lw)/2, int32(y)+5, 15, textColor)

		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			s.SetAlignment(a)
		}
		bx += w + 6
	}
	y += 44

	count := len(g.tool.Volumes().All())
	rl.DrawText(fmt.Sprintf("Volumes: %d", count), int32(x), int32(y), 15, colorTextMuted)
	y += 30

	help := [...]string{
		"Tab: cycle mode",
		"Esc: cancel",
		"Ctrl+Z: undo",
		"Shift: symmetric",
		"Ctrl: grid snap",
		"RMB: fly camera",
	}
	for _, line := range help {
		rl.DrawText(line, int32(x), int32(y), 13, colorTextMuted)
		y += 20
	}
}

// drawWarning flashes tool warnings next to the cursor for a short time.
func (g *Game) drawWarning() {
	msg, at, ok := g.tool.Warning()
	if !ok {
		return
	}
	width := rl.MeasureText(msg, 14)
	x := int32(at.X) + 16
	y := int32(at.Y) - 8
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(x - 8), Y: float32(y - 5), Width: float32(width + 16), Height: 24}, 0.3, 6, rl.NewColor(200, 60, 60, 230))
	rl.DrawText(msg, x, y, 14, colorTextPrimary)
}

// mouseInPanel reports whether the pointer is over UI chrome rather than the
// 3D viewport.
func (g *Game) mouseInPanel(m rl.Vector2) bool {
	if m.Y <= topBarHeight {
		return true
	}
	if g.tool.Settings().ShowProperties &&
		m.X >= float32(rl.GetScreenWidth()-propsPanelWidth) {
		return true
	}
	return false
}
