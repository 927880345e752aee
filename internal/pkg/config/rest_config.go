package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ServerSettings holds HTTP server configuration
type ServerSettings struct {
	Port            string `mapstructure:"port" validate:"required,numeric"`
	MaxUploadSizeMB int64  `mapstructure:"max_upload_size_mb" validate:"required,min=1,max=64"`
}

// Validate checks that all fields in ServerSettings are valid
func (s *ServerSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}
	return nil
}

// AuthSettings holds session and OTP configuration
type AuthSettings struct {
	SessionSecret     string `mapstructure:"session_secret" validate:"required,min=32"`
	Issuer            string `mapstructure:"issuer" validate:"required"`
	Audience          string `mapstructure:"audience" validate:"required"`
	SessionTTLMinutes int    `mapstructure:"session_ttl_minutes" validate:"required,min=5,max=1440"`
	OtpTTLSeconds     int    `mapstructure:"otp_ttl_seconds" validate:"required,min=30,max=900"`
	// ExposeOtp echoes the one-time code in the login response. Local development only.
	ExposeOtp bool `mapstructure:"expose_otp"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	return nil
}

// StorageSettings holds the document store configuration
type StorageSettings struct {
	UploadDir string `mapstructure:"upload_dir" validate:"required"`
}

// Validate checks that all fields in StorageSettings are valid
func (s *StorageSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StorageSettings: %w", err)
	}
	return nil
}

// RestConfig aggregates all settings required by the REST application
type RestConfig struct {
	Server   ServerSettings   `mapstructure:"server"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Auth     AuthSettings     `mapstructure:"auth"`
	Storage  StorageSettings  `mapstructure:"storage"`
}

// Validate checks every settings section
func (c *RestConfig) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig reads the YAML config file at path, applies
// CLAIM_GUARD_* environment overrides and returns the validated config.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("CLAIM_GUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
