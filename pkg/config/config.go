package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// ConfigFile pairs a .env file with the struct it is decoded into.
// Config must be a pointer to a struct with envconfig tags.
type ConfigFile struct {
	Path   string
	Config interface{}
}

// LoadConfigFiles loads every file into the environment and then decodes
// the environment into the paired struct. An empty Path skips the file.
// A missing file is an error.
func LoadConfigFiles(configFiles ...*ConfigFile) error {
	for _, configFile := range configFiles {
		if configFile.Path != "" {
			if err := godotenv.Load(configFile.Path); err != nil {
				return err
			}
		}

		if err := envconfig.Process("", configFile.Config); err != nil {
			return err
		}
	}
	return nil
}

// LoadConfigs decodes the process environment into every given struct.
func LoadConfigs(config ...interface{}) error {
	for _, cfg := range config {
		if err := envconfig.Process("", cfg); err != nil {
			return err
		}
	}
	return nil
}

// LoadEnv is LoadConfigFiles for deployments where the .env file is
// optional: a missing file is logged and the environment is used as is.
// Variables already set in the environment win over the file.
func LoadEnv(path string, cfg interface{}, logger *zap.Logger) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			logger.Info("no .env file found, using environment variables", zap.String("path", path))
		}
	}
	return envconfig.Process("", cfg)
}
