package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/skillsenselab/parakeet-gateway/logger"
)

// Load reads configuration in increasing order of precedence:
//
//  1. defaults
//  2. YAML config file (path argument, else ./config.yml when present)
//  3. .env file in the working directory
//  4. process environment
//
// Two bare environment variables are honored for compatibility with earlier
// deployments: PARAKEET_MODEL (transcription.model) and PORT (server.port).
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Debug("No .env file loaded", map[string]interface{}{
			"error": err.Error(),
		})
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix("GATEWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Compatibility aliases.
	_ = v.BindEnv("transcription.model", "GATEWAY_TRANSCRIPTION_MODEL", "PARAKEET_MODEL")
	_ = v.BindEnv("server.port", "GATEWAY_SERVER_PORT", "PORT")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
