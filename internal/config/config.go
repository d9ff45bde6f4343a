package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	LogLevel    string `yaml:"log_level"`
	LogJSON     bool   `yaml:"log_json"`
	Snapshot    string `yaml:"snapshot"`     // path to a board snapshot file
	MetricsAddr string `yaml:"metrics_addr"` // empty disables the /metrics listener
}

func Default() *Config {
	return &Config{LogLevel: "info"}
}

// MustLoad reads the YAML config at configPath, panicking on a missing or
// malformed file. Unset keys keep their defaults.
func MustLoad(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(configFile, cfg); err != nil {
		panic("can't unmarshal config file")
	}
	return cfg
}
