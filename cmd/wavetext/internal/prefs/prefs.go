// Package prefs remembers window host preferences between launches.
package prefs

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application name; it picks the storage directory.
const AppName = "wavetext"

const (
	prefsObject   = "prefs"
	prefsProperty = "window"
)

// Prefs holds the persisted preferences.
type Prefs struct {
	// Paused is true when the user stopped the wave before closing.
	Paused bool `yaml:"paused"`
}

// Manager loads and saves Prefs. A Manager without storage keeps
// preferences in memory only.
type Manager struct {
	store *gdata.Manager
	prefs Prefs
}

// Open opens the default per-user storage for appName and loads any saved
// preferences. Storage failures degrade to a memory-only manager.
func Open(appName string) *Manager {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[prefs] storage unavailable, preferences will not persist: %v", err)
		store = nil
	}
	return NewManager(store)
}

// NewManager returns a manager backed by store, which may be nil.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store}
	if err := m.Load(); err != nil {
		log.Printf("[prefs] %v (using defaults)", err)
	}
	return m
}

// Persistent reports whether preferences survive a restart.
func (m *Manager) Persistent() bool { return m.store != nil }

// Load replaces the in-memory preferences with the stored ones. Missing
// data resets to defaults without error.
func (m *Manager) Load() error {
	m.prefs = Prefs{}
	if m.store == nil || !m.store.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	data, err := m.store.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}
	m.prefs = p
	return nil
}

// Save writes the preferences. It is a no-op without storage.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := m.store.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Prefs returns a copy of the current preferences.
func (m *Manager) Prefs() Prefs { return m.prefs }

// Paused reports the remembered paused state.
func (m *Manager) Paused() bool { return m.prefs.Paused }

// SetPaused records the paused state and saves it.
func (m *Manager) SetPaused(paused bool) error {
	m.prefs.Paused = paused
	return m.Save()
}
