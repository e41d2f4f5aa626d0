// Package testing provides deterministic test tooling for wavetext.
//
// # Quick Start
//
// Create a harness, build a widget on its scheduler, and pump ticks:
//
//	func TestWave(t *testing.T) {
//	    h := wavetest.NewHarnessWithT(t)
//	    w := widgets.NewAnimatedText(h.Scheduler(), "AB")
//
//	    h.PumpTicks(3)
//
//	    if w.Spans()[0].Size() == 0 {
//	        t.Error("expected sized spans")
//	    }
//	}
//
// # Snapshot Testing
//
// Record per-tick sizes and compare them with a golden file:
//
//	snap := wavetest.CaptureTrace(h, w, 10)
//	snap.MatchesFile(t, "testdata/wave.snapshot.json")
//
// Update snapshots with:
//
//	WAVETEXT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import wavetest "github.com/go-drift/wavetext/pkg/testing"
package testing
