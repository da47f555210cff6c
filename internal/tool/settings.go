package tool

import (
	"voltool/internal/host"
)

// Mode is the tool's top-level operating mode.
type Mode int

const (
	ModeNone Mode = iota
	ModeCreate
	ModeEdit
	ModeDelete

	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "Create"
	case ModeEdit:
		return "Edit"
	case ModeDelete:
		return "Delete"
	}
	return "None"
}

// Pivot selects which point a volume's stored position refers to.
type Pivot int

const (
	// PivotCenter: stored position is the geometric center.
	PivotCenter Pivot = iota
	// PivotSurface: stored position is the center of the base face.
	PivotSurface
)

// Alignment selects the construction plane normal used while creating.
type Alignment int

const (
	AlignY Alignment = iota // ground plane, the default
	AlignX
	AlignZ
	AlignSurface // use the normal of the surface under the cursor
)

// HandleTool is the active manipulation handle family in Edit mode.
type HandleTool int

const (
	ToolMove HandleTool = iota
	ToolRotate
	ToolScale
	ToolRect
)

// Persisted setting keys.
const (
	keyMode           = "Mode"
	keyFullVolume     = "Volume"
	keyPivot          = "Pivot"
	keyAlignment      = "CreationAlignment"
	keyShowProperties = "ShowProperties"
	keySnapAxes       = "SnapAxes"
)

// Settings holds the process-wide tool preferences. Values are loaded from
// the store at start and written back through the setters on every change.
type Settings struct {
	store host.SettingsStore

	Mode           Mode
	FullVolume     bool // draw full translucent cuboids instead of base fill
	Pivot          Pivot
	Alignment      Alignment
	SnapAxes       bool // snap the length direction to plane cardinal axes
	ShowProperties bool
}

// LoadSettings reads all preferences from the store. A nil store yields
// defaults and setters become memory-only.
func LoadSettings(store host.SettingsStore) *Settings {
	s := &Settings{
		store:          store,
		Mode:           ModeNone,
		Pivot:          PivotCenter,
		Alignment:      AlignY,
		ShowProperties: true,
	}
	if store != nil {
		s.Mode = Mode(store.ReadInt(keyMode, int(ModeNone)))
		if s.Mode < ModeNone || s.Mode >= modeCount {
			s.Mode = ModeNone
		}
		s.FullVolume = store.ReadBool(keyFullVolume, false)
		s.Pivot = Pivot(store.ReadInt(keyPivot, int(PivotCenter)))
		s.Alignment = Alignment(store.ReadInt(keyAlignment, int(AlignY)))
		s.SnapAxes = store.ReadBool(keySnapAxes, false)
		s.ShowProperties = store.ReadBool(keyShowProperties, true)
	}
	return s
}

func (s *Settings) setMode(m Mode) {
	s.Mode = m
	if s.store != nil {
		s.store.WriteInt(keyMode, int(m))
	}
}

func (s *Settings) SetFullVolume(v bool) {
	s.FullVolume = v
	if s.store != nil {
		s.store.WriteBool(keyFullVolume, v)
	}
}

func (s *Settings) setPivot(p Pivot) {
	s.Pivot = p
	if s.store != nil {
		s.store.WriteInt(keyPivot, int(p))
	}
}

func (s *Settings) SetAlignment(a Alignment) {
	s.Alignment = a
	if s.store != nil {
		s.store.WriteInt(keyAlignment, int(a))
	}
}

func (s *Settings) SetSnapAxes(v bool) {
	s.SnapAxes = v
	if s.store != nil {
		s.store.WriteBool(keySnapAxes, v)
	}
}

func (s *Settings) SetShowProperties(v bool) {
	s.ShowProperties = v
	if s.store != nil {
		s.store.WriteBool(keyShowProperties, v)
	}
}
