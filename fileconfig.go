package openpanel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML representation of a tracker configuration.
//
// Example file:
//
//	track_url: https://api.openpanel.dev/track
//	client_id: op_client_xxx
//	client_secret: op_secret_xxx
//	global_properties:
//	  app_version: 1.4.2
//	headers:
//	  user-agent: my-app/1.4.2
type FileConfig struct {
	TrackURL         string            `yaml:"track_url"`
	ClientID         string            `yaml:"client_id"`
	ClientSecret     string            `yaml:"client_secret"`
	Disabled         bool              `yaml:"disabled"`
	Headers          map[string]string `yaml:"headers"`
	GlobalProperties map[string]string `yaml:"global_properties"`
}

// Config converts the file representation into a Config.
func (fc *FileConfig) Config() *Config {
	return &Config{
		TrackURL:         fc.TrackURL,
		ClientID:         fc.ClientID,
		ClientSecret:     fc.ClientSecret,
		Disabled:         fc.Disabled,
		Headers:          fc.Headers,
		GlobalProperties: Properties(fc.GlobalProperties),
	}
}

// LoadFileConfig reads and parses a YAML tracker configuration.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Field: path, Message: err.Error()}
	}

	fc := &FileConfig{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, &ConfigError{Field: path, Message: fmt.Sprintf("invalid YAML: %v", err)}
	}

	return fc, nil
}

// NewFromConfigFile creates a new tracker from a YAML config file.
// Options are applied on top of the file's values.
//
// Example:
//
//	tracker, err := openpanel.NewFromConfigFile("openpanel.yaml",
//	    openpanel.WithDebug(true),
//	)
func NewFromConfigFile(path string, opts ...ConfigOption) (*Tracker, error) {
	fc, err := LoadFileConfig(path)
	if err != nil {
		return nil, err
	}

	cfg := fc.Config()
	for _, opt := range opts {
		opt(cfg)
	}

	return NewWithConfig(cfg)
}
