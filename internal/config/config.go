package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the service configuration, read from config.yaml.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Auth struct {
		Secret string `yaml:"secret"`
	} `yaml:"auth"`

	Data struct {
		Dir   string `yaml:"dir"`
		Watch bool   `yaml:"watch"`
	} `yaml:"data"`

	DB struct {
		Path string `yaml:"path"`
	} `yaml:"db"`
}

// Load reads and validates the YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}
	if cfg.DB.Path == "" {
		cfg.DB.Path = "dashboard.db"
	}
	if v := os.Getenv("DASHBOARD_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("auth.secret is required (or set DASHBOARD_SECRET)")
	}

	return &cfg, nil
}
