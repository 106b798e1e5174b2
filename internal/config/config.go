package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	ProviderNone        = "none"
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
)

// Config is the application configuration read from resume-skills.yaml, the environment and flags.
type Config struct {
	Preset      string     `mapstructure:"preset" json:"preset" validate:"oneof=default fast accurate cpu"`
	Model       Model      `mapstructure:"model" json:"model"`
	Classifier  Classifier `mapstructure:"classifier" json:"classifier"`
	Skills      Skills     `mapstructure:"skills" json:"skills"`
	ExcludeFile string     `mapstructure:"exclude-file" json:"exclude_file"`
	Store       Store      `mapstructure:"store" json:"store"`
	Server      Server     `mapstructure:"server" json:"server"`
}

// Classifier selects and configures the zero-shot backend.
type Classifier struct {
	Provider          string  `mapstructure:"provider" json:"provider" validate:"oneof=none huggingface gemini"`
	BaseURL           string  `mapstructure:"base-url" json:"base_url" validate:"omitempty,url"`
	Token             string  `mapstructure:"token" json:"-"`
	TokenFile         string  `mapstructure:"token-file" json:"token_file"`
	TokenEnv          string  `mapstructure:"token-env" json:"token_env"`
	RequestsPerSecond float64 `mapstructure:"requests-per-second" json:"requests_per_second" validate:"gte=0"`
	MaxRetries        int     `mapstructure:"max-retries" json:"max_retries" validate:"gte=0"`
	MaxLogLength      int     `mapstructure:"max-log-length" json:"max_log_length" validate:"gte=0"`
}

// Skills customizes the vocabulary.
type Skills struct {
	Custom            map[string][]string `mapstructure:"custom" json:"custom"`
	ExcludeCategories []string            `mapstructure:"exclude-categories" json:"exclude_categories"`
}

// Store configures result persistence. An empty DSN disables it.
type Store struct {
	DSN string `mapstructure:"dsn" json:"-"`
}

// Server configures the HTTP API.
type Server struct {
	Addr         string        `mapstructure:"addr" json:"addr" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout" json:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write-timeout" json:"write_timeout"`
	MaxUploadMB  int64         `mapstructure:"max-upload-mb" json:"max_upload_mb" validate:"gte=1"`
}

// New returns the configuration of the named preset with every other section defaulted.
func New(preset string) (*Config, error) {
	model, err := Preset(preset)
	if err != nil {
		return nil, err
	}
	if preset = strings.ToLower(strings.TrimSpace(preset)); preset == "" {
		preset = PresetDefault
	}

	return &Config{
		Preset: preset,
		Model:  model,
		Classifier: Classifier{
			Provider:          ProviderNone,
			RequestsPerSecond: 5,
			MaxRetries:        3,
			MaxLogLength:      200,
		},
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 5 * time.Minute,
			MaxUploadMB:  10,
		},
	}, nil
}

// Load starts from the preset named by the "preset" key and overlays every key set in v.
func Load(v *viper.Viper) (*Config, error) {
	cfg, err := New(v.GetString("preset"))
	if err != nil {
		return nil, err
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Preset = strings.ToLower(strings.TrimSpace(cfg.Preset))
	cfg.Classifier.Provider = strings.ToLower(strings.TrimSpace(cfg.Classifier.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks ranges and enumerations of the whole configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate checks a model configuration on its own.
func (m Model) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("invalid model config: %w", err)
	}
	return nil
}
