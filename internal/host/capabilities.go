package host

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/engine"
)

// WorldRaycaster resolves a picking ray against the host's world geometry.
type WorldRaycaster interface {
	RaycastWorldGeometry(ray rl.Ray) (point, normal rl.Vector3, ok bool)
}

// UndoLog is the host's undo/redo command log. Version increases on every
// recorded or undone change; the tool rebuilds its volume set when it moves.
type UndoLog interface {
	RecordChange(obj *engine.GameObject, description string)
	RegisterCreated(obj *engine.GameObject)
	DestroyWithUndo(obj *engine.GameObject)
	Version() uint64
}

// SettingsStore persists tool preferences across sessions, keyed by string
// identifiers such as "Mode", "Pivot", "Volume", "CreationAlignment".
type SettingsStore interface {
	ReadInt(key string, def int) int
	WriteInt(key string, v int)
	ReadBool(key string, def bool) bool
	WriteBool(key string, v bool)
}

// DepthMode selects how painted geometry interacts with the depth buffer.
type DepthMode int

const (
	// DepthTest draws with the usual less-or-equal depth test.
	DepthTest DepthMode = iota
	// DepthIgnore draws on top of everything.
	DepthIgnore
	// DepthBehind tints geometry that is occluded by the scene.
	DepthBehind
)

// Painter is the host's immediate-mode translucent drawing surface.
// Triangles are given as consecutive vertex triples, lines as point pairs.
type Painter interface {
	Triangles(verts []rl.Vector3, color rl.Color, depth DepthMode)
	Lines(segments [][2]rl.Vector3, color rl.Color, depth DepthMode)
}
