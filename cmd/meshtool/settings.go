package main

import (
	"os"

	"github.com/ghodss/yaml"
)

// Settings obtained from the optional YAML settings file.
type Settings struct {
	Tolerance float64 `yaml:"Tolerance"`
	MaxAngle  float64 `yaml:"MaxAngle"`
}

// DefaultSettings are used when no settings file is given.
func DefaultSettings() Settings {
	return Settings{Tolerance: 0.001, MaxAngle: 0}
}

func (s *Settings) Parse(data []byte) error {
	return yaml.Unmarshal(data, s)
}

// loadSettings reads the settings file at path, or returns the defaults
// when path is empty.
func loadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := s.Parse(data); err != nil {
		return s, err
	}

	return s, nil
}
