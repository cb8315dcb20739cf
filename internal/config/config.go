package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/flavioheleno/ssd1306"
	"gopkg.in/yaml.v3"
)

// Config is the demo shell configuration.
type Config struct {
	// Bus is the periph.io I²C bus name. Empty selects the first bus found.
	Bus string `yaml:"bus"`

	// Panel size in pixels: 128x32, 128x64 or 96x16.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Address is the 7-bit I²C address, usually 0x3C or 0x3D.
	Address uint16 `yaml:"address"`

	LineSpacing   int `yaml:"line_spacing"`
	LetterSpacing int `yaml:"letter_spacing"`

	// Busy polling budget, e.g. "500us" and "250ms".
	PollInterval time.Duration `yaml:"poll_interval"`
	PollTimeout  time.Duration `yaml:"poll_timeout"`
	MaxPolls     int           `yaml:"max_polls"`

	// LogLevel is one of "debug", "info" or "error".
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Width:         ssd1306.DefaultOpts.W,
		Height:        ssd1306.DefaultOpts.H,
		Address:       ssd1306.DefaultOpts.Addr,
		LineSpacing:   ssd1306.DefaultOpts.LineSpacing,
		LetterSpacing: ssd1306.DefaultOpts.LetterSpacing,
		PollInterval:  ssd1306.DefaultPollInterval,
		PollTimeout:   ssd1306.DefaultPollTimeout,
		MaxPolls:      ssd1306.DefaultMaxPolls,
		LogLevel:      "info",
	}
}

// Normalize fills zero values with defaults so partially written files still
// work. Spacing is left alone since zero is a valid choice there.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.Width == 0 && c.Height == 0 {
		c.Width, c.Height = d.Width, d.Height
	}
	if c.Address == 0 {
		c.Address = d.Address
	}
	if c.PollInterval <= 0 {
		c.PollInterval = d.PollInterval
	}
	if c.PollTimeout <= 0 {
		c.PollTimeout = d.PollTimeout
	}
	if c.MaxPolls <= 0 {
		c.MaxPolls = d.MaxPolls
	}
	switch c.LogLevel {
	case "debug", "info", "error":
	default:
		c.LogLevel = d.LogLevel
	}
}

// Opts converts the configuration into driver options.
func (c *Config) Opts() *ssd1306.Opts {
	return &ssd1306.Opts{
		W:             c.Width,
		H:             c.Height,
		Addr:          c.Address,
		LineSpacing:   c.LineSpacing,
		LetterSpacing: c.LetterSpacing,
		PollInterval:  c.PollInterval,
		PollTimeout:   c.PollTimeout,
		MaxPolls:      c.MaxPolls,
	}
}

// Load reads the YAML configuration at path.
//
// A missing file is not an error: the defaults are returned and nothing is
// written, so the demo can run on a read-only system.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes cfg to path atomically with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".ssd1306-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save writes c to path. See the package-level Save.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
