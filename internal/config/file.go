package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/lunaris/internal/errors"
)

// LoadFile overlays the YAML document at path onto cfg. Keys absent from the
// file leave cfg untouched; unknown keys are an error.
func LoadFile(path string, cfg *AppConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.NewConfigError("reading config file: %v", err)
	}
	return decodeYAML(data, path, cfg)
}

func decodeYAML(data []byte, name string, cfg *AppConfig) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.NewConfigError("parsing %s: %v", name, err)
	}
	return nil
}

// Marshal renders cfg as YAML, in the same shape LoadFile accepts.
func Marshal(cfg AppConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
