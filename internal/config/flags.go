package config

import (
	"github.com/spf13/pflag"
)

// Flags holds the values bound to the global command-line flags. Only flags
// the user actually set are applied over the file and environment layers.
type Flags struct {
	ConfigFile string
	values     AppConfig
	fs         *pflag.FlagSet
}

// RegisterFlags binds the global flags on fs, with defaults for help output.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	d := Default()
	f := &Flags{fs: fs}
	v := &f.values
	fs.StringVar(&f.ConfigFile, "config", "", "YAML configuration file")
	fs.StringVar(&v.TimeZone, "tz", d.TimeZone, "time zone for dates and calendar controls (IANA name)")
	fs.StringVar(&v.Language, "lang", d.Language, "label language (en, zh)")
	fs.StringVar(&v.Theme, "theme", d.Theme, "color theme (night, day, none)")
	fs.BoolVar(&v.NoColor, "no-color", d.NoColor, "disable colors")
	fs.StringVar(&v.LogLevel, "log-level", d.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&v.LogFile, "log-file", d.LogFile, "write logs to this file")
	fs.StringVar(&v.MetricsFile, "metrics-file", d.MetricsFile, "write Prometheus metrics to this file on exit")
	fs.IntVar(&v.Workers, "workers", d.Workers, "parallel workers for export")
	fs.DurationVar(&v.Timeout, "timeout", d.Timeout, "abort long-running commands after this duration")
	return f
}

// RegisterRenderFlags binds the flags of commands that draw the disk.
func (f *Flags) RegisterRenderFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.IntVar(&f.values.Size, "size", d.Size, "SVG canvas size")
	fs.StringVar(&f.values.Texture, "texture", d.Texture, "surface image href for SVG output")
}

// RegisterWatchFlags binds the flags of the interactive view.
func (f *Flags) RegisterWatchFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.IntVar(&f.values.FPS, "fps", d.FPS, "frames per second")
	fs.Float64Var(&f.values.Speed, "speed", d.Speed, "playback speed in days per second")
	fs.Float64Var(&f.values.Smoothing, "smoothing", d.Smoothing, "fraction of the gap closed per 60 Hz frame")
	fs.StringVar(&f.values.RenderMode, "mode", d.RenderMode, "disk rendering (blocks, braille)")
}

// flagOverride maps a flag name to the field it sets.
type flagOverride struct {
	flag  string
	apply func(dst *AppConfig, src AppConfig)
}

var flagOverrides = []flagOverride{
	{"tz", func(d *AppConfig, s AppConfig) { d.TimeZone = s.TimeZone }},
	{"lang", func(d *AppConfig, s AppConfig) { d.Language = s.Language }},
	{"theme", func(d *AppConfig, s AppConfig) { d.Theme = s.Theme }},
	{"no-color", func(d *AppConfig, s AppConfig) { d.NoColor = s.NoColor }},
	{"log-level", func(d *AppConfig, s AppConfig) { d.LogLevel = s.LogLevel }},
	{"log-file", func(d *AppConfig, s AppConfig) { d.LogFile = s.LogFile }},
	{"metrics-file", func(d *AppConfig, s AppConfig) { d.MetricsFile = s.MetricsFile }},
	{"workers", func(d *AppConfig, s AppConfig) { d.Workers = s.Workers }},
	{"timeout", func(d *AppConfig, s AppConfig) { d.Timeout = s.Timeout }},
	{"size", func(d *AppConfig, s AppConfig) { d.Size = s.Size }},
	{"texture", func(d *AppConfig, s AppConfig) { d.Texture = s.Texture }},
	{"fps", func(d *AppConfig, s AppConfig) { d.FPS = s.FPS }},
	{"speed", func(d *AppConfig, s AppConfig) { d.Speed = s.Speed }},
	{"smoothing", func(d *AppConfig, s AppConfig) { d.Smoothing = s.Smoothing }},
	{"mode", func(d *AppConfig, s AppConfig) { d.RenderMode = s.RenderMode }},
}

// Resolve builds the effective configuration. cmdFlags is the flag set of
// the command being run, which includes inherited persistent flags; nil
// means only the global set is consulted.
func (f *Flags) Resolve(cmdFlags *pflag.FlagSet) (AppConfig, error) {
	return f.resolve(cmdFlags, nil)
}

func (f *Flags) resolve(cmdFlags *pflag.FlagSet, environment map[string]string) (AppConfig, error) {
	cfg := Default()
	if f.ConfigFile != "" {
		if err := LoadFile(f.ConfigFile, &cfg); err != nil {
			return AppConfig{}, err
		}
	}
	if err := applyEnv(&cfg, environment); err != nil {
		return AppConfig{}, err
	}
	for _, o := range flagOverrides {
		if isFlagSet(f.fs, o.flag) || isFlagSet(cmdFlags, o.flag) {
			o.apply(&cfg, f.values)
		}
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func isFlagSet(fs *pflag.FlagSet, name string) bool {
	if fs == nil {
		return false
	}
	fl := fs.Lookup(name)
	return fl != nil && fl.Changed
}
