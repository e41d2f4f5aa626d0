package cmd

import (
	"fmt"
	"log"

	"github.com/go-drift/wavetext/cmd/wavetext/internal/prefs"
	"github.com/go-drift/wavetext/pkg/animation"
	"github.com/go-drift/wavetext/pkg/ebitenhost"
	"github.com/go-drift/wavetext/pkg/rendering"
)

func init() {
	RegisterCommand(&Command{
		Name:  "window",
		Short: "Open the animation in a desktop window",
		Long: `Open a desktop window showing the animated text.

Click, tap or press space to pause and resume the wave. The animation stops
while the window is unfocused. The paused state is remembered between
launches.

Flags:
  --text TEXT        Override the configured text
  --fresh            Ignore the remembered paused state`,
		Usage: "wavetext window [--text TEXT] [--fresh]",
		Run:   runWindow,
	})
}

func runWindow(args []string) error {
	var text *string
	fresh := false
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--text":
			if i+1 >= len(args) {
				return fmt.Errorf("--text requires a value")
			}
			text = &args[i+1]
			i++
		case "--fresh":
			fresh = true
		default:
			return fmt.Errorf("window: unknown flag %q", args[i])
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if text != nil {
		cfg.Text = *text
	}
	// Scale to the monitor unless the config pins a density.
	if cfg.Density == 1 {
		cfg.Density = ebitenhost.DeviceScale()
	}

	renderer, err := rendering.Default()
	if err != nil {
		return err
	}

	store := prefs.Open(prefs.AppName)
	paused := store.Paused() && !fresh

	scheduler := animation.NewQueueScheduler()
	w := newWidget(cfg, scheduler, cfg.Text)
	game := ebitenhost.NewGame(w, scheduler, renderer, ebitenhost.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Title:      cfg.Title,
		Background: cfg.Background,
		Paused:     paused,
		OnToggle: func(animating bool) {
			if err := store.SetPaused(!animating); err != nil {
				log.Printf("[window] %v", err)
			}
		},
	})
	return ebitenhost.Run(game)
}
