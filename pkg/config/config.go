// Package config loads lovewall settings from TOML or YAML files.
//
// A file only needs the keys it changes; everything else keeps its
// [Default] value:
//
//	[wall]
//	preset = "classic"
//	seed = 7
//
//	[orbit]
//	reset_duration = "1.5s"
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/lovewall/pkg/errors"
	"github.com/matzehuels/lovewall/pkg/gallery"
	"github.com/matzehuels/lovewall/pkg/lovedays"
	"github.com/matzehuels/lovewall/pkg/share"
	"github.com/matzehuels/lovewall/pkg/wall/layout"
	"github.com/matzehuels/lovewall/pkg/wall/orbit"
)

// FileNames are looked up, in order, inside a config directory.
var FileNames = []string{"config.toml", "config.yaml", "config.yml"}

// Config is the full settings tree.
type Config struct {
	Wall   WallConfig   `toml:"wall" yaml:"wall"`
	Orbit  OrbitConfig  `toml:"orbit" yaml:"orbit"`
	Share  ShareConfig  `toml:"share" yaml:"share"`
	Couple CoupleConfig `toml:"couple" yaml:"couple"`
}

// WallConfig selects the layout family and collection limits.
type WallConfig struct {
	Preset    string `toml:"preset" yaml:"preset"`
	Seed      uint64 `toml:"seed" yaml:"seed"`
	MinImages int    `toml:"min_images" yaml:"min_images"`
	MaxImages int    `toml:"max_images" yaml:"max_images"`
}

// OrbitConfig tunes drag rotation.
type OrbitConfig struct {
	Sensitivity   float64  `toml:"sensitivity" yaml:"sensitivity"`
	ResetDuration Duration `toml:"reset_duration" yaml:"reset_duration"`
}

// ShareConfig sets the share image output.
type ShareConfig struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Format string `toml:"format" yaml:"format"`
}

// CoupleConfig holds defaults for the days counter.
type CoupleConfig struct {
	Name1 string `toml:"name1" yaml:"name1"`
	Name2 string `toml:"name2" yaml:"name2"`
	Since string `toml:"since" yaml:"since"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Wall: WallConfig{
			Preset:    layout.Tiered.Name,
			Seed:      layout.DefaultSeed,
			MinImages: gallery.DefaultLimits.Min,
			MaxImages: gallery.DefaultLimits.Max,
		},
		Orbit: OrbitConfig{
			Sensitivity:   orbit.DefaultSensitivity,
			ResetDuration: Duration(orbit.DefaultResetDuration),
		},
		Share: ShareConfig{
			Width:  share.DefaultWidth,
			Height: share.DefaultHeight,
			Format: string(share.FormatPNG),
		},
	}
}

// Load reads path over the defaults. The decoder is chosen by extension;
// unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, errors.New(errors.ErrCodeInvalidInput, "%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
		}
	default:
		return Config{}, errors.New(errors.ErrCodeInvalidFormat, "config %s: use .toml, .yaml or .yml", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve loads explicit when set. Otherwise it loads the first of
// FileNames found in dir, falling back to the defaults. The path that was
// loaded is returned, empty for defaults.
func Resolve(explicit, dir string) (Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	if dir != "" {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				return cfg, path, err
			}
		}
	}
	return Default(), "", nil
}

// Validate rejects values the wall, orbit, or share code cannot use.
func (c Config) Validate() error {
	if _, err := layout.PresetByName(c.Wall.Preset); err != nil {
		return err
	}
	if err := c.Limits().Validate(); err != nil {
		return err
	}
	if c.Orbit.Sensitivity <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "sensitivity must be positive, got %g", c.Orbit.Sensitivity)
	}
	if c.Orbit.ResetDuration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "reset_duration must not be negative")
	}
	if c.Share.Width < share.MinSide || c.Share.Width > share.MaxSide ||
		c.Share.Height < share.MinSide || c.Share.Height > share.MaxSide {
		return errors.New(errors.ErrCodeInvalidInput, "share size %dx%d outside [%d, %d]",
			c.Share.Width, c.Share.Height, share.MinSide, share.MaxSide)
	}
	if _, err := share.ParseFormat(c.Share.Format); err != nil {
		return err
	}
	if c.Couple.Since != "" {
		if _, err := lovedays.ParseDate(c.Couple.Since); err != nil {
			return err
		}
	}
	return nil
}

// Limits returns the collection thresholds.
func (c Config) Limits() gallery.Limits {
	return gallery.Limits{Min: c.Wall.MinImages, Max: c.Wall.MaxImages}
}

// Duration is a time.Duration written as "1s" or "250ms" in files.
type Duration time.Duration

// Std returns the standard library value.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

// UnmarshalText parses a Go duration string, used by the TOML decoder.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid duration %q", text)
	}
	*d = Duration(v)
	return nil
}

// MarshalText writes the duration string.
func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	return d.UnmarshalText([]byte(n.Value))
}
