package config

import (
	"github.com/caarlos0/env/v11"

	apperrors "github.com/agbru/lunaris/internal/errors"
)

// applyEnv overlays LUNARIS_* environment variables onto cfg. Variables that
// are unset leave the corresponding field alone; malformed values are a
// ConfigError. The process environment is read when environment is nil.
func applyEnv(cfg *AppConfig, environment map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return apperrors.NewConfigError("parsing environment: %v", err)
	}
	return nil
}
