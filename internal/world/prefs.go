package world

import (
	"encoding/json"
	"fmt"
	"os"
)

// PrefsFile is the default location of persisted tool preferences.
const PrefsFile = ".voltool_prefs.json"

// Prefs is a JSON-file settings store persisting tool preferences across
// sessions, keyed by string identifiers. Every write saves to disk.
type Prefs struct {
	path   string
	values map[string]json.Number
}

// LoadPrefs reads the prefs file at path. A missing or unparsable file
// yields an empty store.
func LoadPrefs(path string) *Prefs {
	p := &Prefs{
		path:   path,
		values: make(map[string]json.Number),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(data, &p.values); err != nil {
		fmt.Printf("Failed to parse prefs: %v\n", err)
		p.values = make(map[string]json.Number)
	}
	return p
}

func (p *Prefs) save() {
	data, err := json.MarshalIndent(p.values, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(p.path, data, 0644); err != nil {
		fmt.Printf("Failed to save prefs: %v\n", err)
	}
}

func (p *Prefs) ReadInt(key string, def int) int {
	if n, ok := p.values[key]; ok {
		if v, err := n.Int64(); err == nil {
			return int(v)
		}
	}
	return def
}

func (p *Prefs) WriteInt(key string, v int) {
	p.values[key] = json.Number(fmt.Sprintf("%d", v))
	p.save()
}

func (p *Prefs) ReadBool(key string, def bool) bool {
	if n, ok := p.values[key]; ok {
		if v, err := n.Int64(); err == nil {
			return v != 0
		}
	}
	return def
}

func (p *Prefs) WriteBool(key string, v bool) {
	if v {
		p.WriteInt(key, 1)
	} else {
		p.WriteInt(key, 0)
	}
}
