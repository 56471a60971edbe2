// Package config resolves lunaris settings from, in increasing priority,
// built-in defaults, an optional YAML file, LUNARIS_* environment variables
// and explicitly set command-line flags.
package config

import (
	"math"
	"runtime"
	"time"

	"golang.org/x/text/language"

	apperrors "github.com/agbru/lunaris/internal/errors"
	"github.com/agbru/lunaris/internal/logging"
	"github.com/agbru/lunaris/internal/lunar"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "LUNARIS_"

// Render modes for the watch view.
const (
	ModeBlocks  = "blocks"
	ModeBraille = "braille"
)

// AppConfig is the resolved configuration shared by every command.
type AppConfig struct {
	// TimeZone is an IANA name, "Local" or "UTC". Dates and calendar
	// controls are interpreted in it.
	TimeZone string `yaml:"timezone" env:"TIMEZONE"`
	// Language selects phase labels and date formats (en or zh).
	Language string `yaml:"language" env:"LANGUAGE"`
	Theme    string `yaml:"theme" env:"THEME"`
	NoColor  bool   `yaml:"no_color" env:"NO_COLOR"`

	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFile     string `yaml:"log_file" env:"LOG_FILE"`
	MetricsFile string `yaml:"metrics_file" env:"METRICS_FILE"`

	// Size is the side of exported SVG documents in user units.
	Size    int    `yaml:"size" env:"SIZE"`
	Texture string `yaml:"texture" env:"TEXTURE"`

	FPS        int     `yaml:"fps" env:"FPS"`
	Speed      float64 `yaml:"speed" env:"SPEED"`
	Smoothing  float64 `yaml:"smoothing" env:"SMOOTHING"`
	RenderMode string  `yaml:"render_mode" env:"RENDER_MODE"`

	Workers int           `yaml:"workers" env:"WORKERS"`
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		TimeZone:   "Local",
		Language:   "en",
		Theme:      "night",
		LogLevel:   "info",
		Size:       320,
		FPS:        30,
		Speed:      2,
		Smoothing:  0.1,
		RenderMode: ModeBlocks,
		Workers:    runtime.NumCPU(),
		Timeout:    5 * time.Minute,
	}
}

// Validate checks every field and returns the first problem as a ConfigError.
func (c AppConfig) Validate() error {
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return apperrors.NewConfigError("unknown time zone %q: %v", c.TimeZone, err)
	}
	if _, err := language.Parse(c.Language); err != nil {
		return apperrors.NewConfigError("invalid language %q", c.Language)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if c.Size <= 0 || c.Size > 8192 {
		return apperrors.NewConfigError("size must be between 1 and 8192, got %d", c.Size)
	}
	if c.FPS < 1 || c.FPS > 120 {
		return apperrors.NewConfigError("fps must be between 1 and 120, got %d", c.FPS)
	}
	if math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) {
		return apperrors.NewConfigError("speed must be finite, got %v", c.Speed)
	}
	if !(c.Smoothing > 0 && c.Smoothing <= 1) {
		return apperrors.NewConfigError("smoothing must be in (0, 1], got %v", c.Smoothing)
	}
	if c.RenderMode != ModeBlocks && c.RenderMode != ModeBraille {
		return apperrors.NewConfigError("render mode must be %q or %q, got %q", ModeBlocks, ModeBraille, c.RenderMode)
	}
	if c.Workers < 1 {
		return apperrors.NewConfigError("workers must be at least 1, got %d", c.Workers)
	}
	if c.Timeout < 0 {
		return apperrors.NewConfigError("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// Location loads the configured time zone.
func (c AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, apperrors.NewConfigError("unknown time zone %q: %v", c.TimeZone, err)
	}
	return loc, nil
}

// LanguageTag returns the supported label language closest to Language.
func (c AppConfig) LanguageTag() language.Tag {
	return lunar.MatchLanguage(c.Language)
}
