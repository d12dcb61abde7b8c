package transcription

// DefaultModel is used when neither config nor environment names a model.
const DefaultModel = "mlx-community/parakeet-tdt-0.6b-v3"

// BackendAuto selects the first registered backend that reports available.
const BackendAuto = "auto"

// Config holds transcription service configuration.
type Config struct {
	// Backend selects the provider to load (parakeet, whisper, openai, auto).
	Backend string `yaml:"backend" mapstructure:"backend" validate:"omitempty,oneof=parakeet whisper openai auto"`
	// Model is the model identifier passed to the backend.
	Model string `yaml:"model" mapstructure:"model"`
	// Language is the hint sent with every transcription call. Backends that
	// reject it are retried once without it.
	Language string `yaml:"language" mapstructure:"language"`
	// Options carries backend-specific settings, passed to the factory.
	Options map[string]any `yaml:"options" mapstructure:"options"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Backend == "" {
		c.Backend = "parakeet"
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Language == "" {
		c.Language = "de"
	}
}
