// Package config loads the optional wavetext.yaml file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/wavetext/pkg/animation"
	werrors "github.com/go-drift/wavetext/pkg/errors"
	"github.com/go-drift/wavetext/pkg/graphics"
)

// FileName is the configuration file looked up in the config directory.
const FileName = "wavetext.yaml"

// SupportedMajor is the newest schema major version this build reads.
const SupportedMajor = "v1"

// Defaults used when wavetext.yaml omits a field.
const (
	DefaultText     = "Hello, wave!"
	DefaultTextSize = 32
	DefaultWidth    = 640
	DefaultHeight   = 160
	DefaultTitle    = "wavetext"
)

// Config represents the optional wavetext.yaml configuration.
// Pointer fields distinguish an explicit zero from an omitted value.
type Config struct {
	Version    string       `yaml:"version,omitempty"`
	Text       *string      `yaml:"text,omitempty"`
	TextSize   float64      `yaml:"text_size,omitempty"`
	Density    float64      `yaml:"density,omitempty"`
	Dip        bool         `yaml:"dip,omitempty"`
	Color      string       `yaml:"color,omitempty"`
	Background string       `yaml:"background,omitempty"`
	Wave       WaveConfig   `yaml:"wave,omitempty"`
	Window     WindowConfig `yaml:"window,omitempty"`
}

// WaveConfig overrides individual wave parameters.
type WaveConfig struct {
	TicksPerSecond    int     `yaml:"ticks_per_second,omitempty"`
	CyclesPerSecond   float64 `yaml:"cycles_per_second,omitempty"`
	SpeedMultiplier   float64 `yaml:"speed_multiplier,omitempty"`
	MinSizeMultiplier float64 `yaml:"min_size_multiplier,omitempty"`
	MaxSizeMultiplier float64 `yaml:"max_size_multiplier,omitempty"`
	Period            float64 `yaml:"period,omitempty"`
}

// WindowConfig contains desktop window settings.
type WindowConfig struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Title  string `yaml:"title,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	Path       string
	Loaded     bool
	Version    string
	Text       string
	TextSize   float64
	Density    float64
	Dip        bool
	Color      graphics.Color
	Background graphics.Color
	Wave       animation.Wave
	Width      int
	Height     int
	Title      string
}

// LoadOptional reads wavetext.yaml from dir if present. A missing file
// yields an empty Config and loaded == false.
func LoadOptional(dir string) (cfg *Config, loaded bool, err error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, false, nil
		}
		return nil, false, werrors.New("config.Load", werrors.KindConfig, "failed to read %s: %v", FileName, err)
	}

	cfg = &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, false, werrors.New("config.Load", werrors.KindConfig, "failed to parse %s: %v", FileName, err)
	}
	return cfg, true, nil
}

// Resolve loads wavetext.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, loaded, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	version, err := checkVersion(cfg.Version)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Root:     dir,
		Path:     filepath.Join(dir, FileName),
		Loaded:   loaded,
		Version:  version,
		Text:     DefaultText,
		TextSize: orDefault(cfg.TextSize, DefaultTextSize),
		Density:  orDefault(cfg.Density, 1),
		Dip:      cfg.Dip,
		Wave:     cfg.Wave.apply(animation.DefaultWave()),
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Title:    strings.TrimSpace(cfg.Window.Title),
	}
	if cfg.Text != nil {
		r.Text = *cfg.Text
	}
	if r.Color, err = parseColor("color", cfg.Color, graphics.ColorBlack); err != nil {
		return nil, err
	}
	if r.Background, err = parseColor("background", cfg.Background, graphics.ColorWhite); err != nil {
		return nil, err
	}
	if r.Width <= 0 {
		r.Width = DefaultWidth
	}
	if r.Height <= 0 {
		r.Height = DefaultHeight
	}
	if r.Title == "" {
		r.Title = DefaultTitle
	}

	if r.TextSize < 0 || r.Density < 0 {
		return nil, werrors.New("config.Resolve", werrors.KindConfig,
			"text_size and density must be positive, got %v and %v", r.TextSize, r.Density)
	}
	if err := r.Wave.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func checkVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return SupportedMajor + ".0.0", nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", werrors.New("config.Resolve", werrors.KindConfig, "invalid schema version %q", v)
	}
	if semver.Compare(semver.Major(v), SupportedMajor) > 0 {
		return "", werrors.New("config.Resolve", werrors.KindConfig,
			"schema version %s is newer than supported %s", v, SupportedMajor)
	}
	return semver.Canonical(v), nil
}

func parseColor(field, v string, def graphics.Color) (graphics.Color, error) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "#")
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil || (len(v) != 6 && len(v) != 8) {
		return 0, werrors.New("config.Resolve", werrors.KindConfig, "%s: want #RRGGBB or #RRGGBBAA, got %q", field, v)
	}
	if len(v) == 6 {
		return graphics.RGB(uint8(n>>16), uint8(n>>8), uint8(n)), nil
	}
	return graphics.RGB(uint8(n>>24), uint8(n>>16), uint8(n>>8)).WithAlpha8(uint8(n)), nil
}

func (c WaveConfig) apply(w animation.Wave) animation.Wave {
	if c.TicksPerSecond != 0 {
		w.TicksPerSecond = c.TicksPerSecond
	}
	w.CyclesPerSecond = orDefault(c.CyclesPerSecond, w.CyclesPerSecond)
	w.SpeedMultiplier = orDefault(c.SpeedMultiplier, w.SpeedMultiplier)
	w.MinSizeMultiplier = orDefault(c.MinSizeMultiplier, w.MinSizeMultiplier)
	w.MaxSizeMultiplier = orDefault(c.MaxSizeMultiplier, w.MaxSizeMultiplier)
	w.Period = orDefault(c.Period, w.Period)
	return w
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
