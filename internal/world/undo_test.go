package world

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/engine"
)

func TestUndoTransform(t *testing.T) {
	w := New()
	u := NewUndoLog(w.Scene)

	obj := engine.NewGameObject("Volume")
	w.VolumeRoot.AddChild(obj)
	w.Scene.AddGameObject(obj)

	obj.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	u.RecordChange(obj, "Move Volume")
	obj.Transform.Position = rl.Vector3{X: 9, Y: 9, Z: 9}

	if !u.Undo() {
		t.Fatal("Undo should succeed")
	}
	if obj.Transform.Position != (rl.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Position not restored, got %v", obj.Transform.Position)
	}
}

func TestUndoCreateRemovesObject(t *testing.T) {
	w := New()
	u := NewUndoLog(w.Scene)

	obj := engine.NewGameObject("Volume")
	w.VolumeRoot.AddChild(obj)
	w.Scene.AddGameObject(obj)
	u.RegisterCreated(obj)

	if !u.Undo() {
		t.Fatal("Undo should succeed")
	}
	if len(w.VolumeRoot.Children) != 0 {
		t.Error("Undoing a create should detach the object from its parent")
	}
	if w.Scene.FindByUID(obj.UID) != nil {
		t.Error("Undoing a create should remove the object from the scene")
	}
}

func TestUndoDeleteRestoresObject(t *testing.T) {
	w := New()
	u := NewUndoLog(w.Scene)

	obj := engine.NewGameObject("Volume")
	obj.Transform.Position = rl.Vector3{X: 5}
	w.VolumeRoot.AddChild(obj)
	w.Scene.AddGameObject(obj)

	u.DestroyWithUndo(obj)

	if len(w.VolumeRoot.Children) != 0 {
		t.Fatal("DestroyWithUndo should detach the object")
	}
	if w.Scene.FindByUID(obj.UID) != nil {
		t.Fatal("DestroyWithUndo should remove the object from the scene")
	}

	if !u.Undo() {
		t.Fatal("Undo should succeed")
	}
	if len(w.VolumeRoot.Children) != 1 || w.VolumeRoot.Children[0] != obj {
		t.Error("Undoing a delete should reattach the object to its parent")
	}
	if obj.Transform.Position != (rl.Vector3{X: 5}) {
		t.Errorf("Transform not restored, got %v", obj.Transform.Position)
	}
}

func TestUndoEmptyStack(t *testing.T) {
	u := NewUndoLog(engine.NewScene("Test"))
	if u.Undo() {
		t.Error("Undo on an empty stack should report false")
	}
}

func TestUndoVersionAdvances(t *testing.T) {
	w := New()
	u := NewUndoLog(w.Scene)

	obj := engine.NewGameObject("Volume")
	w.VolumeRoot.AddChild(obj)
	w.Scene.AddGameObject(obj)

	v0 := u.Version()
	u.RecordChange(obj, "Move Volume")
	if u.Version() == v0 {
		t.Error("Recording should advance the version")
	}
	v1 := u.Version()
	u.Undo()
	if u.Version() == v1 {
		t.Error("Undoing should advance the version")
	}
}

func TestUndoStackBounded(t *testing.T) {
	w := New()
	u := NewUndoLog(w.Scene)

	obj := engine.NewGameObject("Volume")
	w.VolumeRoot.AddChild(obj)
	w.Scene.AddGameObject(obj)

	for i := 0; i < maxUndoStack+10; i++ {
		u.RecordChange(obj, "Move Volume")
	}

	undone := 0
	for u.Undo() {
		undone++
	}
	if undone != maxUndoStack {
		t.Errorf("Expected %d undoable entries, got %d", maxUndoStack, undone)
	}
}

func TestRaycastWorldGeometry(t *testing.T) {
	w := New()

	pt, normal, ok := w.RaycastWorldGeometry(rl.Ray{
		Position:  rl.Vector3{X: 3, Y: 10, Z: -2},
		Direction: rl.Vector3{Y: -1},
	})
	if !ok {
		t.Fatal("Ray pointing at the ground should hit")
	}
	if pt != (rl.Vector3{X: 3, Y: 0, Z: -2}) {
		t.Errorf("Expected hit at (3,0,-2), got %v", pt)
	}
	if normal != (rl.Vector3{Y: 1}) {
		t.Errorf("Expected up normal, got %v", normal)
	}

	// Outside the floor bounds.
	_, _, ok = w.RaycastWorldGeometry(rl.Ray{
		Position:  rl.Vector3{X: 500, Y: 10},
		Direction: rl.Vector3{Y: -1},
	})
	if ok {
		t.Error("Ray outside the floor should miss")
	}
}
