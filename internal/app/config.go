package app

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/chirp-backend/internal/pkg/envutil"
	"github.com/yungbote/chirp-backend/internal/pkg/logger"
)

type Config struct {
	ServiceName string `yaml:"service_name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
	HTTPAddr    string `yaml:"http_addr"`

	RedisAddr    string `yaml:"redis_addr"`
	RedisChannel string `yaml:"redis_channel"`
}

// LoadConfig reads environment variables first, then overlays the YAML file
// named by CHIRP_CONFIG_FILE when one is set. File values win over env so a
// deployment can pin its config without scrubbing the environment.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		ServiceName:  envutil.String("SERVICE_NAME", "chirp"),
		Environment:  envutil.String("ENVIRONMENT", "development"),
		Version:      envutil.String("SERVICE_VERSION", "dev"),
		HTTPAddr:     envutil.String("HTTP_ADDR", ":8080"),
		RedisAddr:    envutil.String("REDIS_ADDR", ""),
		RedisChannel: envutil.String("REDIS_CHANNEL", "assessment-events"),
	}

	path := strings.TrimSpace(os.Getenv("CHIRP_CONFIG_FILE"))
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	log.Info("config file loaded", "path", path)
	return cfg, nil
}
