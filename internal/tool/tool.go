package tool

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/engine"
	"voltool/internal/geom"
	"voltool/internal/host"
)

// Tool is the interactive volume authoring tool. All methods run on the
// host's frame callback; nothing here is safe for concurrent use.
type Tool struct {
	settings  *Settings
	volumes   *VolumeSet
	undo      host.UndoLog
	raycaster host.WorldRaycaster
	painter   host.Painter

	handleTool HandleTool

	// Create mode.
	stage      createStage
	session    *creationSession
	refPlane   referencePlane
	hoverPoint rl.Vector3
	hoverBasis planeBasis
	hoverValid bool

	// Edit mode.
	drag        *dragState
	hoveredAxis int

	// Delete mode.
	hoverDelete       *Volume
	continuousRepaint bool

	now         float64
	warning     string
	warningAt   rl.Vector2
	warningTime float64
}

// warningDuration is how long a raised warning stays visible.
const warningDuration = 2.0

// New wires the tool to its host capabilities. raycaster and painter may be
// nil; dependent steps are skipped per frame.
func New(settings *Settings, root *engine.GameObject, undo host.UndoLog, raycaster host.WorldRaycaster, painter host.Painter) *Tool {
	t := &Tool{
		settings:    settings,
		volumes:     NewVolumeSet(root),
		undo:        undo,
		raycaster:   raycaster,
		painter:     painter,
		hoveredAxis: -1,
	}
	t.continuousRepaint = settings.Mode == ModeDelete
	return t
}

func (t *Tool) Settings() *Settings { return t.settings }

func (t *Tool) Volumes() *VolumeSet { return t.volumes }

func (t *Tool) HandleTool() HandleTool { return t.handleTool }

// HoveredAxis is the gizmo axis under the cursor in Edit mode: 0..2, 3 for
// the uniform scale handle, -1 for none.
func (t *Tool) HoveredAxis() int { return t.hoveredAxis }

// DraggingAxis reports the axis of an in-flight axis-handle gesture.
func (t *Tool) DraggingAxis() (int, bool) {
	if t.drag == nil {
		return -1, false
	}
	switch t.drag.kind {
	case dragMove, dragRotate, dragScale:
		return t.drag.axisIdx, true
	}
	return -1, true
}

// Creating reports whether a creation gesture is in progress.
func (t *Tool) Creating() bool { return t.session != nil }

// WantsContinuousRepaint reports whether the host should repaint on cursor
// movement alone (Delete-mode hover highlighting needs it).
func (t *Tool) WantsContinuousRepaint() bool {
	return t.continuousRepaint
}

// Warning returns the screen-space warning to surface near the cursor.
// Warnings expire on their own a couple of seconds after being raised.
func (t *Tool) Warning() (string, rl.Vector2, bool) {
	return t.warning, t.warningAt, t.warning != ""
}

func (t *Tool) warn(msg string, at rl.Vector2) {
	t.warning = msg
	t.warningAt = at
	t.warningTime = t.now
}

// SetMode switches the top-level mode. Any in-progress creation is canceled
// and destroyed; entering or leaving Delete toggles continuous repaint.
func (t *Tool) SetMode(m Mode) {
	if m == t.settings.Mode {
		return
	}
	t.cancelCreation()
	t.endDrag()
	t.settings.setMode(m)
	t.continuousRepaint = m == ModeDelete
	t.hoverDelete = nil
	t.hoveredAxis = -1
}

// CycleMode advances the mode with wraparound None→Create→Edit→Delete→None.
func (t *Tool) CycleMode() {
	t.SetMode((t.settings.Mode + 1) % modeCount)
}

// SetHandleTool selects the Edit-mode handle family.
func (t *Tool) SetHandleTool(h HandleTool) {
	if t.drag == nil {
		t.handleTool = h
	}
}

// SetPivot switches the pivot convention for every volume at once. Stored
// positions are rewritten so no volume moves.
func (t *Tool) SetPivot(p Pivot) {
	if p == t.settings.Pivot {
		return
	}
	t.volumes.ConvertPivot(t.settings.Pivot, p)
	t.settings.setPivot(p)
}

// Frame runs one frame of the tool: input interpretation, visibility
// culling, visual feedback, mode interaction, active-volume bookkeeping.
func (t *Tool) Frame(f host.Frame) {
	t.now = f.Time
	if t.warning != "" && t.now-t.warningTime > warningDuration {
		t.warning = ""
	}

	if f.Event.CycleMode {
		t.CycleMode()
	}

	if t.undo != nil {
		t.volumes.SyncIfChanged(t.undo.Version())
	} else {
		t.volumes.SyncIfChanged(0)
	}

	var visible []*Volume
	if f.Frustum != nil {
		visible = t.volumes.Visible(f.Frustum, t.settings.Pivot)
	}

	t.drawFeedback(visible, f)

	switch t.settings.Mode {
	case ModeCreate:
		t.updateCreate(f)
	case ModeEdit:
		if f.Frustum != nil {
			t.updateEdit(visible, f)
		}
	case ModeDelete:
		if f.Frustum != nil {
			t.updateDelete(visible, f)
		}
	}
}

// closestVolumeHit raycasts the surfaces of the given volumes and returns
// the closest hit. Exact distance ties go to the most recently active
// volume. Volumes under construction never participate.
func closestVolumeHit(ray rl.Ray, vols []*Volume, p Pivot) (*Volume, float32, bool) {
	var best *Volume
	var bestDist float32
	for _, v := range vols {
		if v.BeingCreated {
			continue
		}
		d, ok := geom.RayOBB(ray.Position, ray.Direction, v.OBB(p))
		if !ok {
			continue
		}
		switch {
		case best == nil, d < bestDist:
			best, bestDist = v, d
		case d == bestDist && v.LastActive > best.LastActive:
			best = v
		}
	}
	return best, bestDist, best != nil
}
