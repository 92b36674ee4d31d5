// Package config loads the server configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level YAML structure for the HTTP daemon.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	CitiesFile string `yaml:"cities_file"`
	RoadsFile  string `yaml:"roads_file"`
	LogFile    string `yaml:"log_file"`
	WatchData  bool   `yaml:"watch_data"`
}

// Defaults applied when a field is left empty.
const (
	DefaultListenAddr = ":8080"
	DefaultCitiesFile = "data/cities.csv"
	DefaultRoadsFile  = "data/roads.csv"
	DefaultLogFile    = "data/operations.log"
)

// Default returns a Config with every field set to its default.
func Default() *Config {
	return &Config{
		ListenAddr: DefaultListenAddr,
		CitiesFile: DefaultCitiesFile,
		RoadsFile:  DefaultRoadsFile,
		LogFile:    DefaultLogFile,
	}
}

// Load reads and parses the YAML file at path, applies defaults, and
// validates the result. An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.CitiesFile == "" {
		c.CitiesFile = DefaultCitiesFile
	}
	if c.RoadsFile == "" {
		c.RoadsFile = DefaultRoadsFile
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
}

// Validate checks the listen address shape and that the data file paths
// are distinct.
func (c *Config) Validate() error {
	var errs []string
	if !strings.Contains(c.ListenAddr, ":") {
		errs = append(errs, fmt.Sprintf("listen_addr %q must contain a port", c.ListenAddr))
	}
	if c.CitiesFile == c.RoadsFile {
		errs = append(errs, "cities_file and roads_file must differ")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
