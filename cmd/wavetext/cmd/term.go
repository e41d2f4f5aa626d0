package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/wavetext/pkg/animation"
	"github.com/go-drift/wavetext/pkg/termhost"
	"github.com/go-drift/wavetext/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "term",
		Short: "Preview the animation in the terminal",
		Long: `Draw the animation in the terminal.

Terminals have a single font size, so each character is drawn under a bar
whose height follows its current size.

Keys:
  space              Pause or resume
  v                  Hide or show (the wave restarts when shown)
  q, Esc, Ctrl-C     Quit

Flags:
  --text TEXT        Override the configured text`,
		Usage: "wavetext term [--text TEXT]",
		Run:   runTerm,
	})
}

func runTerm(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--text":
			if i+1 >= len(args) {
				return fmt.Errorf("--text requires a value")
			}
			cfg.Text = args[i+1]
			i++
		default:
			return fmt.Errorf("term: unknown flag %q", args[i])
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := animation.NewLoopScheduler(0)
	host := termhost.New(screen, loop)
	w := newWidget(cfg, loop, cfg.Text, widgets.OnRedraw(host.Redraw))
	return host.Run(ctx, w)
}
