package main

import (
	"os"

	"github.com/spf13/viper"

	openpanel "github.com/openpanel-dev/openpanel-go"
)

// cfgFile is set by the persistent -c flag.
var cfgFile string

// conf mirrors the keys of the SDK's YAML config file.
type conf struct {
	TrackURL         string            `mapstructure:"track_url"`
	ClientID         string            `mapstructure:"client_id"`
	ClientSecret     string            `mapstructure:"client_secret"`
	Disabled         bool              `mapstructure:"disabled"`
	Headers          map[string]string `mapstructure:"headers"`
	GlobalProperties map[string]string `mapstructure:"global_properties"`
}

// loadConf opens and parses a configuration file.
func loadConf(file string) (*conf, error) {
	if _, err := os.Stat(file); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	c := &conf{}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}

	return c, nil
}

// newTracker builds a tracker from the config file when one was given,
// falling back to the environment otherwise. Default headers are always
// attached.
func newTracker() (*openpanel.Tracker, error) {
	if cfgFile == "" {
		tracker, err := openpanel.NewFromEnv()
		if err != nil {
			return nil, err
		}
		return tracker.WithDefaultHeaders(), nil
	}

	c, err := loadConf(cfgFile)
	if err != nil {
		return nil, err
	}

	tracker, err := openpanel.NewWithConfig(&openpanel.Config{
		TrackURL:         c.TrackURL,
		ClientID:         c.ClientID,
		ClientSecret:     c.ClientSecret,
		Disabled:         c.Disabled,
		Headers:          c.Headers,
		GlobalProperties: openpanel.Properties(c.GlobalProperties),
	})
	if err != nil {
		return nil, err
	}

	return tracker.WithDefaultHeaders(), nil
}
