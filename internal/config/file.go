package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads a TOML file and overlays it on the defaults. Keys missing from
// the file keep their default value; unknown keys are rejected.
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	s := Default()
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return clamp(s), nil
}

// LoadAndApply loads path and makes it the active configuration.
// A missing file is not an error; the defaults stay active.
func LoadAndApply(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	s, err := Load(path)
	if err != nil {
		return err
	}
	Set(s)
	return nil
}
