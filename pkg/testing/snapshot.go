package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-drift/wavetext/pkg/widgets"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot records the per-character sizes of an animated text over a
// number of ticks.
type Snapshot struct {
	Text     string  `json:"text"`
	Baseline float64 `json:"baseline"`
	Frames   []Frame `json:"frames"`
}

// Frame holds the span sizes after one tick.
type Frame struct {
	Tick  int   `json:"tick"`
	Sizes []int `json:"sizes"`
}

// CaptureTrace pumps ticks on h and records w's span sizes after each one.
// It stops early if w stops animating.
func CaptureTrace(h *Harness, w *widgets.AnimatedText, ticks int) *Snapshot {
	snap := &Snapshot{Text: w.Text(), Baseline: w.Baseline()}
	for i := 0; i < ticks && w.IsAnimating(); i++ {
		h.Step()
		spans := w.Spans()
		frame := Frame{Tick: i, Sizes: make([]int, len(spans))}
		for j, span := range spans {
			frame.Sizes[j] = span.Size()
		}
		snap.Frames = append(snap.Frames, frame)
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When WAVETEXT_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("WAVETEXT_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: WAVETEXT_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: WAVETEXT_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff describes how s differs from want, frame by frame. It returns ""
// when they match.
func (s *Snapshot) Diff(want *Snapshot) string {
	var b strings.Builder
	if s.Text != want.Text {
		fmt.Fprintf(&b, "text: got %q, want %q\n", s.Text, want.Text)
	}
	if s.Baseline != want.Baseline {
		fmt.Fprintf(&b, "baseline: got %v, want %v\n", s.Baseline, want.Baseline)
	}
	n := max(len(s.Frames), len(want.Frames))
	for i := 0; i < n; i++ {
		switch {
		case i >= len(s.Frames):
			fmt.Fprintf(&b, "tick %d: missing, want %v\n", want.Frames[i].Tick, want.Frames[i].Sizes)
		case i >= len(want.Frames):
			fmt.Fprintf(&b, "tick %d: unexpected %v\n", s.Frames[i].Tick, s.Frames[i].Sizes)
		case !slices.Equal(s.Frames[i].Sizes, want.Frames[i].Sizes) || s.Frames[i].Tick != want.Frames[i].Tick:
			fmt.Fprintf(&b, "tick %d: got %v, want %v\n", want.Frames[i].Tick, s.Frames[i].Sizes, want.Frames[i].Sizes)
		}
	}
	return b.String()
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
