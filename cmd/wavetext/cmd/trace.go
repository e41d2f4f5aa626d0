package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	wavetest "github.com/go-drift/wavetext/pkg/testing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "trace",
		Short: "Print per-character sizes for each tick",
		Long: `Run the animation headless and print the phase and the size of every
character after each tick.

Flags:
  --ticks N          Ticks to trace (default: 30)
  --text TEXT        Override the configured text
  --json             Print a JSON snapshot instead of a table`,
		Usage: "wavetext trace [--ticks N] [--text TEXT] [--json]",
		Run:   runTrace,
	})
}

func runTrace(args []string) error {
	opts, err := parseHeadless("trace", args)
	if err != nil {
		return err
	}
	if opts.out != "" {
		return fmt.Errorf("trace: --out is not supported")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.text != nil {
		cfg.Text = *opts.text
	}

	h := wavetest.NewHarness()
	defer h.Cleanup()
	w := newWidget(cfg, h.Scheduler(), cfg.Text)

	if opts.json {
		data, err := json.MarshalIndent(wavetest.CaptureTrace(h, w, opts.ticks), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}

	if !w.IsAnimating() {
		fmt.Fprintln(stdout, "nothing to animate")
		return nil
	}
	lo, hi := w.Wave().SizeBounds(w.Baseline())
	fmt.Fprintf(stdout, "text %q baseline %.1f sizes %d..%d\n", w.Text(), w.Baseline(), lo, hi)
	for i := 0; i < opts.ticks; i++ {
		h.Step()
		sizes := make([]string, 0, len(w.Spans()))
		for _, span := range w.Spans() {
			sizes = append(sizes, fmt.Sprintf("%3d", span.Size()))
		}
		fmt.Fprintf(stdout, "%4d %8.2f %s\n", i, w.Phase(), strings.Join(sizes, " "))
	}
	return nil
}
