package config

import (
	"github.com/skillsenselab/parakeet-gateway/logger"
	"github.com/skillsenselab/parakeet-gateway/observability"
	"github.com/skillsenselab/parakeet-gateway/server"
	"github.com/skillsenselab/parakeet-gateway/server/middleware"
	"github.com/skillsenselab/parakeet-gateway/transcription"
	"github.com/skillsenselab/parakeet-gateway/validation"
)

// Config is the root configuration for the gateway.
type Config struct {
	Name          string               `yaml:"name" mapstructure:"name"`
	Environment   string               `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	ScratchDir    string               `yaml:"scratch_dir" mapstructure:"scratch_dir"`
	StaticDir     string               `yaml:"static_dir" mapstructure:"static_dir"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Transcription transcription.Config `yaml:"transcription" mapstructure:"transcription"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
	Auth          middleware.AuthConfig `yaml:"auth" mapstructure:"auth"`
}

// ApplyDefaults fills in default values for all sections.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "parakeet-gateway"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	c.Server.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Transcription.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate checks the configuration after defaults have been applied.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}
