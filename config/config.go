package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Site         Site         `json:"site" yaml:"site" mapstructure:"site"`
	Storage      Storage      `json:"storage" yaml:"storage" mapstructure:"storage"`
	Manager      Manager      `json:"manager" yaml:"manager" mapstructure:"manager"`
	Transmission Transmission `json:"transmission" yaml:"transmission" mapstructure:"transmission"`
	OnNewEpisode []Action     `json:"on_new_episode" yaml:"on_new_episode" mapstructure:"on_new_episode" validate:"dive"`
}

// Site describes the listing site that is searched for new episodes
type Site struct {
	Implementation string        `json:"implementation" yaml:"implementation" mapstructure:"implementation" validate:"required"`
	URI            string        `json:"uri" yaml:"uri" mapstructure:"uri" validate:"required,url"`
	Filter         string        `json:"filter" yaml:"filter" mapstructure:"filter"`
	Category       string        `json:"category" yaml:"category" mapstructure:"category"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
	BaseBackoff    time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries     int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries" validate:"gte=0"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath" validate:"required"`
}

// Manager houses configuration related to refreshing tracked shows
type Manager struct {
	RefreshInterval time.Duration `json:"refreshInterval" yaml:"refreshInterval" mapstructure:"refreshInterval"`
	LockFile        string        `json:"lockFile" yaml:"lockFile" mapstructure:"lockFile"`
}

type Transmission struct {
	URI         string `json:"uri" yaml:"uri" mapstructure:"uri" validate:"omitempty,url"`
	DownloadDir string `json:"downloadDir" yaml:"downloadDir" mapstructure:"downloadDir"`
}

// Action is a command that is started whenever a new episode is found.
// Args may reference $title, $episode and $url.
type Action struct {
	Command string   `json:"command" yaml:"command" mapstructure:"command" validate:"required"`
	Args    []string `json:"args" yaml:"args" mapstructure:"args"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

// Validate checks the configuration for missing or malformed values
func (c Config) Validate() error {
	return validator.New().Struct(c)
}
