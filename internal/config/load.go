// internal/config/load.go
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Env override names. The env layer exists so gateway deployments can
// rebind the serial port and the Redis endpoint without editing the
// config file.
const (
	envFilePathVar   = "OMRONPOLL_ENV_PATH"
	envDeviceVar     = "OMRONPOLL_DEVICE"
	envRedisEndpoint = "OMRONPOLL_REDIS_ENDPOINT"
)

// Load reads the yaml config file and applies env overrides on top.
// It performs no validation; call Validate and then Normalize.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	applyEnv(&cfg)
	return &cfg, nil
}

// applyEnv overlays process env (and an optional env file) onto the
// loaded config. Missing env file is not an error.
func applyEnv(cfg *Config) {
	if path := os.Getenv(envFilePathVar); path != "" {
		_ = godotenv.Load(path)
	}

	if v := os.Getenv(envDeviceVar); v != "" {
		cfg.Poller.Link.Device = v
	}
	if v := os.Getenv(envRedisEndpoint); v != "" {
		cfg.Poller.Sink.Redis.Endpoint = v
	}
}
