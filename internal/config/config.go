package config

import (
	"os"

	"github.com/spf13/viper"

	apperrors "github.com/abdullahfazal969-alt/News-agent/internal/errors"
)

const (
	defaultConfigName = ".newsagent"
	defaultConfigType = "yaml"
)

// Manager loads agent configuration with the priority
// CLI flags > environment variables > settings file > defaults.
// Flags participate when the CLI binds them onto Viper() before Load.
type Manager struct {
	configPath string
	viper      *viper.Viper
	config     Config
}

// NewManager creates a configuration manager. configPath may be empty, in
// which case $HOME/.newsagent.yaml and ./.newsagent.yaml are searched; a
// missing settings file is not an error.
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		viper:      viper.New(),
	}
}

// Viper exposes the underlying viper instance so the CLI can bind flags
// before Load runs.
func (m *Manager) Viper() *viper.Viper {
	return m.viper
}

// Load reads the settings file (if any), applies environment overrides and
// returns the resulting configuration. Unrecognized keys are ignored.
func (m *Manager) Load() (Config, error) {
	m.setDefaults()

	if m.configPath != "" {
		m.viper.SetConfigFile(m.configPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			m.viper.AddConfigPath(home)
		}
		m.viper.AddConfigPath(".")
		m.viper.SetConfigName(defaultConfigName)
		m.viper.SetConfigType(defaultConfigType)
	}

	m.viper.SetEnvPrefix(EnvPrefix)
	m.viper.AutomaticEnv()

	if err := m.viper.ReadInConfig(); err != nil {
		// A missing settings file falls back to env + defaults. An explicit
		// --config path that does not exist is still an error.
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !(m.configPath == "" && os.IsNotExist(err)) {
			return Config{}, apperrors.WrapError(err, "failed to read settings file")
		}
	}

	if err := m.viper.Unmarshal(&m.config); err != nil {
		return Config{}, apperrors.WrapError(err, "failed to parse settings")
	}

	return m.config, nil
}

// ConfigFileUsed reports the settings file Load read, or "" when none was found.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// setDefaults registers every known key with its default value. Registration
// also makes the keys visible to AutomaticEnv, so NEWSAGENT_* variables are
// honored even without a settings file.
func (m *Manager) setDefaults() {
	m.viper.SetDefault(KeyMaxWorkers, DefaultMaxWorkers)
	m.viper.SetDefault(KeyFetchLatency, DefaultFetchLatency)
	m.viper.SetDefault(KeyProcessingLatency, DefaultProcessingLatency)
	m.viper.SetDefault(KeyCallTimeout, DefaultCallTimeout)
	m.viper.SetDefault(KeyLogLevel, DefaultLogLevel)
	m.viper.SetDefault(KeyLogFormat, DefaultLogFormat)
	m.viper.SetDefault(KeyNoColor, false)
	m.viper.SetDefault(KeyOutput, DefaultOutput)
}
