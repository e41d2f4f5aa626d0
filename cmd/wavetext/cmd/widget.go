package cmd

import (
	"github.com/go-drift/wavetext/cmd/wavetext/internal/config"
	"github.com/go-drift/wavetext/pkg/animation"
	"github.com/go-drift/wavetext/pkg/widgets"
)

// newWidget builds the animated text described by cfg.
func newWidget(cfg *config.Resolved, scheduler animation.Scheduler, text string, extra ...widgets.Option) *widgets.AnimatedText {
	opts := []widgets.Option{
		widgets.WithTextSize(cfg.TextSize),
		widgets.WithDensity(cfg.Density),
		widgets.WithDip(cfg.Dip),
		widgets.WithWave(cfg.Wave),
		widgets.WithColor(cfg.Color),
	}
	return widgets.NewAnimatedText(scheduler, text, append(opts, extra...)...)
}
