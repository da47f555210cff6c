package tool

import (
	"voltool/internal/engine"
	"voltool/internal/geom"
)

// VolumeSet tracks every volume under the tool's authority: the children of
// a designated root object. Handles persist across rebuilds so transient
// authoring state (activity, timestamps) survives undo-triggered refreshes.
type VolumeSet struct {
	Root *engine.GameObject

	handles map[*engine.GameObject]*Volume
	order   []*Volume

	lastUndoVersion uint64
}

func NewVolumeSet(root *engine.GameObject) *VolumeSet {
	s := &VolumeSet{
		Root:    root,
		handles: make(map[*engine.GameObject]*Volume),
	}
	s.Rebuild()
	return s
}

// Rebuild resyncs handles with the root's current children, keeping existing
// handles and dropping ones whose object is gone.
func (s *VolumeSet) Rebuild() {
	seen := make(map[*engine.GameObject]bool, len(s.Root.Children))
	s.order = s.order[:0]
	for _, child := range s.Root.Children {
		seen[child] = true
		h, ok := s.handles[child]
		if !ok {
			h = newVolume(child)
			s.handles[child] = h
		}
		s.order = append(s.order, h)
	}
	for obj := range s.handles {
		if !seen[obj] {
			delete(s.handles, obj)
		}
	}
}

// SyncIfChanged rebuilds when the undo log fired or the child list changed.
func (s *VolumeSet) SyncIfChanged(undoVersion uint64) {
	if undoVersion != s.lastUndoVersion || len(s.Root.Children) != len(s.order) {
		s.lastUndoVersion = undoVersion
		s.Rebuild()
	}
}

// All returns the handles in scene order.
func (s *VolumeSet) All() []*Volume {
	return s.order
}

// Handle returns the handle wrapping obj, or nil.
func (s *VolumeSet) Handle(obj *engine.GameObject) *Volume {
	return s.handles[obj]
}

// Add parents a new object under the root and returns its handle.
func (s *VolumeSet) Add(obj *engine.GameObject) *Volume {
	s.Root.AddChild(obj)
	if s.Root.Scene != nil {
		s.Root.Scene.AddGameObject(obj)
	}
	h := newVolume(obj)
	s.handles[obj] = h
	s.order = append(s.order, h)
	return h
}

// Remove detaches a volume from the root (and scene) and drops its handle.
func (s *VolumeSet) Remove(v *Volume) {
	s.Root.RemoveChild(v.Obj)
	if v.Obj.Scene != nil {
		v.Obj.Scene.RemoveGameObject(v.Obj)
	}
	delete(s.handles, v.Obj)
	for i, h := range s.order {
		if h == v {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Visible returns the subset of volumes whose conservative bounding cube
// intersects the frustum.
func (s *VolumeSet) Visible(f *geom.Frustum, p Pivot) []*Volume {
	out := make([]*Volume, 0, len(s.order))
	for _, v := range s.order {
		if f.ContainsCube(v.Center(p), v.BoundingCubeSide()) {
			out = append(out, v)
		}
	}
	return out
}

// ConvertPivot rewrites every volume's stored position for the new
// convention without moving any volume.
func (s *VolumeSet) ConvertPivot(from, to Pivot) {
	for _, v := range s.order {
		v.convertPivot(from, to)
	}
}

// SetActive marks one volume as the active handle, clearing the others, and
// stamps its last interaction time.
func (s *VolumeSet) SetActive(v *Volume, now float64) {
	for _, h := range s.order {
		h.Active = h == v
	}
	if v != nil {
		v.LastActive = now
	}
}

// ActiveVolume returns the volume currently marked active, or nil.
func (s *VolumeSet) ActiveVolume() *Volume {
	for _, h := range s.order {
		if h.Active {
			return h
		}
	}
	return nil
}
