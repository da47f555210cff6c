package tool

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voltool/internal/engine"
	"voltool/internal/geom"
	"voltool/internal/host"
)

// memStore is an in-memory SettingsStore for tests.
type memStore struct {
	ints map[string]int
}

func newMemStore() *memStore {
	return &memStore{ints: make(map[string]int)}
}

func (m *memStore) ReadInt(key string, def int) int {
	if v, ok := m.ints[key]; ok {
		return v
	}
	return def
}

func (m *memStore) WriteInt(key string, v int) {
	m.ints[key] = v
}

func (m *memStore) ReadBool(key string, def bool) bool {
	if v, ok := m.ints[key]; ok {
		return v != 0
	}
	return def
}

func (m *memStore) WriteBool(key string, v bool) {
	if v {
		m.ints[key] = 1
	} else {
		m.ints[key] = 0
	}
}

// fakeUndo records capability calls without a real command stack.
type fakeUndo struct {
	version   uint64
	changes   []string
	created   []*engine.GameObject
	destroyed []*engine.GameObject
}

func (u *fakeUndo) RecordChange(obj *engine.GameObject, description string) {
	u.changes = append(u.changes, description)
	u.version++
}

func (u *fakeUndo) RegisterCreated(obj *engine.GameObject) {
	u.created = append(u.created, obj)
	u.version++
}

func (u *fakeUndo) DestroyWithUndo(obj *engine.GameObject) {
	if obj.Parent != nil {
		obj.Parent.RemoveChild(obj)
	}
	u.destroyed = append(u.destroyed, obj)
	u.version++
}

func (u *fakeUndo) Version() uint64 { return u.version }

// groundRaycaster hits an infinite y=0 plane.
type groundRaycaster struct{}

func (groundRaycaster) RaycastWorldGeometry(ray rl.Ray) (rl.Vector3, rl.Vector3, bool) {
	up := rl.Vector3{Y: 1}
	pt, ok := geom.RayPlane(ray.Position, ray.Direction, rl.Vector3{}, up)
	return pt, up, ok
}

func newTestTool() (*Tool, *fakeUndo, *memStore) {
	store := newMemStore()
	settings := LoadSettings(store)
	scene := engine.NewScene("Test")
	root := engine.NewGameObject("Volumes")
	scene.AddGameObject(root)
	undo := &fakeUndo{}
	return New(settings, root, undo, groundRaycaster{}, nil), undo, store
}

var testCamPos = rl.Vector3{X: 0, Y: 2, Z: -10}

func testCamera() host.CameraInfo {
	return host.CameraInfo{
		Position: testCamPos,
		Forward:  rl.Vector3Normalize(rl.Vector3{Y: -0.2, Z: 1}),
		Up:       rl.Vector3{Y: 1},
	}
}

// rayThrough aims a picking ray from the test camera at a world point.
func rayThrough(target rl.Vector3) rl.Ray {
	return rl.Ray{
		Position:  testCamPos,
		Direction: rl.Vector3Normalize(rl.Vector3Subtract(target, testCamPos)),
	}
}

func hoverAt(target rl.Vector3) host.Frame {
	return host.Frame{
		Event:  host.PointerEvent{Type: host.PointerHover, Ray: rayThrough(target)},
		Camera: testCamera(),
	}
}

func pressAt(target rl.Vector3) host.Frame {
	return host.Frame{
		Event: host.PointerEvent{
			Type:   host.PointerPress,
			Button: host.ButtonLeft,
			Ray:    rayThrough(target),
		},
		Camera: testCamera(),
	}
}

func vecNear(a, b rl.Vector3, eps float32) bool {
	return rl.Vector3Length(rl.Vector3Subtract(a, b)) < eps
}

func TestModeCycleWraparound(t *testing.T) {
	tool, _, _ := newTestTool()

	want := []Mode{ModeCreate, ModeEdit, ModeDelete, ModeNone}
	for i, m := range want {
		tool.CycleMode()
		if tool.Settings().Mode != m {
			t.Fatalf("Cycle %d: expected mode %v, got %v", i+1, m, tool.Settings().Mode)
		}
	}
}

func TestModeCycleViaFrameEvent(t *testing.T) {
	tool, _, _ := newTestTool()

	f := hoverAt(rl.Vector3{})
	f.Event.CycleMode = true
	tool.Frame(f)

	if tool.Settings().Mode != ModeCreate {
		t.Errorf("Expected ModeCreate after cycle event, got %v", tool.Settings().Mode)
	}
}

func TestSetModeCancelsCreation(t *testing.T) {
	tool, _, _ := newTestTool()
	tool.SetMode(ModeCreate)

	tool.Frame(pressAt(rl.Vector3{}))
	if !tool.Creating() {
		t.Fatal("Creation should be in progress")
	}

	tool.SetMode(ModeEdit)
	if tool.Creating() {
		t.Error("Switching modes should cancel the creation gesture")
	}
	if len(tool.Volumes().All()) != 0 {
		t.Error("Canceled creation should leave no volume behind")
	}
}

func TestSettingsWriteThrough(t *testing.T) {
	tool, _, store := newTestTool()

	tool.SetMode(ModeEdit)
	tool.Settings().SetFullVolume(true)
	tool.Settings().SetSnapAxes(true)
	tool.SetPivot(PivotSurface)

	reloaded := LoadSettings(store)
	if reloaded.Mode != ModeEdit {
		t.Errorf("Expected persisted mode Edit, got %v", reloaded.Mode)
	}
	if !reloaded.FullVolume {
		t.Error("Expected persisted FullVolume true")
	}
	if !reloaded.SnapAxes {
		t.Error("Expected persisted SnapAxes true")
	}
	if reloaded.Pivot != PivotSurface {
		t.Errorf("Expected persisted pivot Surface, got %v", reloaded.Pivot)
	}
}

func TestLoadSettingsClampsBadMode(t *testing.T) {
	store := newMemStore()
	store.WriteInt("Mode", 99)

	s := LoadSettings(store)
	if s.Mode != ModeNone {
		t.Errorf("Out-of-range stored mode should fall back to None, got %v", s.Mode)
	}
}

func TestWantsContinuousRepaint(t *testing.T) {
	tool, _, _ := newTestTool()

	if tool.WantsContinuousRepaint() {
		t.Error("None mode should not need continuous repaint")
	}
	tool.SetMode(ModeDelete)
	if !tool.WantsContinuousRepaint() {
		t.Error("Delete mode needs continuous repaint for hover highlighting")
	}
	tool.SetMode(ModeNone)
	if tool.WantsContinuousRepaint() {
		t.Error("Leaving Delete should stop continuous repaint")
	}
}

func TestWarningExpires(t *testing.T) {
	tool, _, _ := newTestTool()

	tool.now = 10
	tool.warn("test warning", rl.Vector2{X: 5, Y: 5})

	if msg, _, ok := tool.Warning(); !ok || msg != "test warning" {
		t.Fatal("Warning should be visible right after being raised")
	}

	f := hoverAt(rl.Vector3{})
	f.Time = 10.5
	tool.Frame(f)
	if _, _, ok := tool.Warning(); !ok {
		t.Error("Warning should persist within its lifetime")
	}

	f.Time = 13
	tool.Frame(f)
	if _, _, ok := tool.Warning(); ok {
		t.Error("Warning should expire after its lifetime")
	}
}
