package prefs

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openStore(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	store, err := gdata.Open(gdata.Config{AppName: "wavetext_test"})
	if err != nil {
		t.Fatalf("open gdata: %v", err)
	}
	return store
}

func TestManager_MemoryOnly(t *testing.T) {
	m := NewManager(nil)
	if m.Persistent() {
		t.Error("nil store should not be persistent")
	}
	if m.Paused() {
		t.Error("default should not be paused")
	}
	if err := m.SetPaused(true); err != nil {
		t.Fatalf("SetPaused: %v", err)
	}
	if !m.Paused() {
		t.Error("expected paused in memory")
	}
	if err := m.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Paused() {
		t.Error("Load without storage should reset to defaults")
	}
}

func TestManager_PersistsAcrossManagers(t *testing.T) {
	store := openStore(t)

	first := NewManager(store)
	if first.Paused() {
		t.Fatal("fresh store should not be paused")
	}
	if err := first.SetPaused(true); err != nil {
		t.Fatalf("SetPaused: %v", err)
	}

	second := NewManager(store)
	if !second.Paused() {
		t.Error("expected paused state to persist")
	}
	if got := second.Prefs(); got != (Prefs{Paused: true}) {
		t.Errorf("Prefs() = %+v", got)
	}
}

func TestManager_CorruptDataFallsBack(t *testing.T) {
	store := openStore(t)
	if err := store.SaveObjectProp(prefsObject, prefsProperty, []byte("paused: [")); err != nil {
		t.Fatal(err)
	}
	m := NewManager(store)
	if m.Paused() {
		t.Error("corrupt data should fall back to defaults")
	}
	if err := m.Load(); err == nil {
		t.Error("expected parse error")
	}
}
