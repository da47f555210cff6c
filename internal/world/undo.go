package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/engine"
)

const maxUndoStack = 50

type undoActionType int

const (
	undoTransform undoActionType = iota
	undoCreate
	undoDelete
)

// undoState captures enough of a change to reverse it.
type undoState struct {
	action      undoActionType
	description string
	object      *engine.GameObject

	position rl.Vector3
	rotation rl.Quaternion
	scale    rl.Vector3

	deletedParent *engine.GameObject
}

// UndoLog is a bounded stack of reversible changes. Version increases on
// every mutation so readers can cheaply detect that the log fired.
type UndoLog struct {
	scene   *engine.Scene
	stack   []undoState
	version uint64
}

func NewUndoLog(scene *engine.Scene) *UndoLog {
	return &UndoLog{
		scene: scene,
		stack: make([]undoState, 0, maxUndoStack),
	}
}

func (u *UndoLog) Version() uint64 { return u.version }

func (u *UndoLog) push(state undoState) {
	if len(u.stack) >= maxUndoStack {
		u.stack = u.stack[1:]
	}
	u.stack = append(u.stack, state)
	u.version++
}

// RecordChange saves the object's current transform before a modification.
func (u *UndoLog) RecordChange(obj *engine.GameObject, description string) {
	u.push(undoState{
		action:      undoTransform,
		description: description,
		object:      obj,
		position:    obj.Transform.Position,
		rotation:    obj.Transform.Rotation,
		scale:       obj.Transform.Scale,
	})
}

// RegisterCreated records a newly created object so undo can remove it.
func (u *UndoLog) RegisterCreated(obj *engine.GameObject) {
	u.push(undoState{
		action:      undoCreate,
		description: "Create " + obj.Name,
		object:      obj,
	})
}

// DestroyWithUndo detaches the object from its parent and scene, keeping
// enough state to restore it.
func (u *UndoLog) DestroyWithUndo(obj *engine.GameObject) {
	state := undoState{
		action:        undoDelete,
		description:   "Delete " + obj.Name,
		object:        obj,
		deletedParent: obj.Parent,
		position:      obj.Transform.Position,
		rotation:      obj.Transform.Rotation,
		scale:         obj.Transform.Scale,
	}
	if obj.Parent != nil {
		obj.Parent.RemoveChild(obj)
	}
	u.scene.RemoveGameObject(obj)
	u.push(state)
}

// Undo reverses the most recent change. Returns false when the stack is
// empty.
func (u *UndoLog) Undo() bool {
	if len(u.stack) == 0 {
		return false
	}
	state := u.stack[len(u.stack)-1]
	u.stack = u.stack[:len(u.stack)-1]
	u.version++

	switch state.action {
	case undoTransform:
		state.object.Transform.Position = state.position
		state.object.Transform.Rotation = state.rotation
		state.object.Transform.Scale = state.scale

	case undoCreate:
		if state.object.Parent != nil {
			state.object.Parent.RemoveChild(state.object)
		}
		u.scene.RemoveGameObject(state.object)

	case undoDelete:
		state.object.Transform.Position = state.position
		state.object.Transform.Rotation = state.rotation
		state.object.Transform.Scale = state.scale
		if state.deletedParent != nil {
			state.deletedParent.AddChild(state.object)
		}
		u.scene.AddGameObject(state.object)
	}
	return true
}
