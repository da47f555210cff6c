package tool

import (
	"voltool/internal/host"
)

// updateDelete hovers the closest volume under the cursor and destroys it on
// click through the host's destructive-undo capability. Volumes under
// construction are never candidates.
func (t *Tool) updateDelete(visible []*Volume, f host.Frame) {
	ev := f.Event

	hit, _, ok := closestVolumeHit(ev.Ray, visible, t.settings.Pivot)
	if !ok {
		t.hoverDelete = nil
		return
	}
	t.hoverDelete = hit

	if ev.Type != host.PointerPress || ev.Button != host.ButtonLeft {
		return
	}

	if t.undo != nil {
		t.undo.DestroyWithUndo(hit.Obj)
	}
	t.volumes.Remove(hit)
	t.hoverDelete = nil
}
