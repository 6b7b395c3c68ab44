package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/neurokit/neuroimport/internal/dsp"
)

const defaultDatabaseFile = "recordings.sqlite"

// Config represents the main application configuration
type Config struct {
	Settings Settings       `yaml:"settings"`
	Importer ImporterConfig `yaml:"importer"`
	Notch    NotchConfig    `yaml:"notch"`
	Storage  StorageConfig  `yaml:"storage"`
}

// Settings represents global application settings
type Settings struct {
	LogLevel string `yaml:"logLevel"`
}

// ImporterConfig represents format importer settings
type ImporterConfig struct {
	// Converter is the external RHS converter binary. Empty uses the
	// importer default.
	Converter string `yaml:"converter"`
}

// NotchConfig represents mains-interference notch filter settings. When
// Frequency is unset, the notch frequency stored in each recording's header
// is used; zero disables filtering.
type NotchConfig struct {
	Frequency *float64 `yaml:"frequency"` // Hz
	Bandwidth float64  `yaml:"bandwidth"` // Hz, 3 dB bandwidth
}

// StorageConfig represents storage settings
type StorageConfig struct {
	DataDirectory string `yaml:"dataDirectory"`
	DatabaseFile  string `yaml:"databaseFile"`
}

// LoadConfig reads and parses a yaml configuration file.
func LoadConfig(path string) (*Config, error) {
	p, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file: %w", err)
	}

	config := Config{
		Notch: NotchConfig{Bandwidth: dsp.DefaultNotchBandwidth},
	}
	if err = yaml.Unmarshal(p, &config); err != nil {
		return nil, fmt.Errorf("parsing configuration file: %w", err)
	}

	if config.Notch.Bandwidth <= 0 {
		config.Notch.Bandwidth = dsp.DefaultNotchBandwidth
	}
	if config.Storage.DatabaseFile == "" {
		config.Storage.DatabaseFile = defaultDatabaseFile
	}

	return &config, nil
}
