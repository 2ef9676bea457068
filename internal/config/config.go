package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"lifeboard/internal/core"
	"lifeboard/internal/render"
)

type Config struct {
	Engine   string        `toml:"engine" yaml:"engine"`
	Width    int           `toml:"width" yaml:"width"`
	Height   int           `toml:"height" yaml:"height"`
	Seed     int64         `toml:"seed" yaml:"seed"`
	CellSize int           `toml:"cell_size" yaml:"cell_size"`
	Debounce time.Duration `toml:"debounce" yaml:"debounce"` // quiet period before a dimension edit applies
	FPS      int           `toml:"fps" yaml:"fps"`           // generations per second while playing
	Scale    int           `toml:"scale" yaml:"scale"`       // window pixels per surface pixel
	Autoplay bool          `toml:"autoplay" yaml:"autoplay"`
	Colors   ColorConfig   `toml:"colors" yaml:"colors"`
	Logging  LoggingConfig `toml:"logging" yaml:"logging"`
}

type ColorConfig struct {
	Grid  string `toml:"grid" yaml:"grid"`
	Dead  string `toml:"dead" yaml:"dead"`
	Alive string `toml:"alive" yaml:"alive"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Engine:   "life",
		Width:    64,
		Height:   64,
		CellSize: 5,
		Debounce: 500 * time.Millisecond,
		FPS:      60,
		Scale:    1,
		Autoplay: true,
		Colors: ColorConfig{
			Grid:  "#CCCCCC",
			Dead:  "#FFFFFF",
			Alive: "#000000",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML or YAML file over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Bind registers flags that override the loaded values. Call it before the
// flag set is parsed; values already in c become the flag defaults.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Engine, "engine", c.Engine, "simulation engine")
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "board seed (0 uses the engine's default pattern)")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell edge in pixels")
	fs.DurationVar(&c.Debounce, "debounce", c.Debounce, "quiet period before a size edit applies")
	fs.IntVar(&c.FPS, "fps", c.FPS, "generations per second while playing")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixels per surface pixel")
	fs.BoolVar(&c.Autoplay, "autoplay", c.Autoplay, "start playing on launch")
	fs.StringVar(&c.Colors.Grid, "grid-color", c.Colors.Grid, "gridline color")
	fs.StringVar(&c.Colors.Dead, "dead-color", c.Colors.Dead, "dead cell color")
	fs.StringVar(&c.Colors.Alive, "alive-color", c.Colors.Alive, "live cell color")
	fs.StringVar(&c.Logging.Level, "log-level", c.Logging.Level, "log level")
	fs.StringVar(&c.Logging.Format, "log-format", c.Logging.Format, "log format (console or json)")
}

// ApplyFlags copies every flag changed on fs onto c, so explicit flags win
// over values loaded from a file.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	own := pflag.NewFlagSet("config", pflag.ContinueOnError)
	c.Bind(own)
	var errs []error
	fs.Visit(func(f *pflag.Flag) {
		if own.Lookup(f.Name) == nil {
			return
		}
		if err := own.Set(f.Name, f.Value.String()); err != nil {
			errs = append(errs, fmt.Errorf("flag --%s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("board size %dx%d: must not be negative", c.Width, c.Height))
	}
	if c.Width > core.MaxDimension || c.Height > core.MaxDimension {
		errs = append(errs, fmt.Errorf("board size %dx%d: exceeds %d", c.Width, c.Height, core.MaxDimension))
	}
	if c.CellSize < 1 {
		errs = append(errs, fmt.Errorf("cell_size %d: must be at least 1", c.CellSize))
	}
	if c.FPS < 1 {
		errs = append(errs, fmt.Errorf("fps %d: must be at least 1", c.FPS))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale %d: must be at least 1", c.Scale))
	}
	if c.Debounce < 0 {
		errs = append(errs, fmt.Errorf("debounce %s: must not be negative", c.Debounce))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Palette parses the configured colors.
func (c *Config) Palette() (render.Palette, error) {
	grid, err := colorful.Hex(c.Colors.Grid)
	if err != nil {
		return render.Palette{}, fmt.Errorf("grid color %q: %w", c.Colors.Grid, err)
	}
	dead, err := colorful.Hex(c.Colors.Dead)
	if err != nil {
		return render.Palette{}, fmt.Errorf("dead color %q: %w", c.Colors.Dead, err)
	}
	alive, err := colorful.Hex(c.Colors.Alive)
	if err != nil {
		return render.Palette{}, fmt.Errorf("alive color %q: %w", c.Colors.Alive, err)
	}
	return render.NewPalette(grid, dead, alive), nil
}

// EngineParams returns the map handed to the engine factory.
func (c *Config) EngineParams() map[string]string {
	return map[string]string{
		"w": strconv.Itoa(c.Width),
		"h": strconv.Itoa(c.Height),
	}
}
