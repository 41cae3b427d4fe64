// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

var (
	// ErrConfigParsing is returned when a configuration file cannot be decoded.
	ErrConfigParsing = errors.New("error parsing logging configuration")
	// ErrConfigNotValid is returned when a configuration cannot be used to boot a Service.
	ErrConfigNotValid = errors.New("logging configuration not valid")
)

// Config holds the logging service configuration. LogPath is the only
// recognized option: the destination of the file sink.
type Config struct {
	LogPath string `env:"LOG_PATH" envDefault:"logs/duolog.log" json:"logPath" yaml:"logPath"`
}

// FromEnv builds a Config from the process environment.
func FromEnv() (Config, error) {
	config, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigNotValid, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// NewConfigFromFile parses the YAML file at path into a Config. Unknown keys
// are rejected.
func NewConfigFromFile(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var config Config
	if err := decoder.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("%w %q: empty configuration file", ErrConfigParsing, path)
		}
		return Config{}, fmt.Errorf("%w %q: %w", ErrConfigParsing, path, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate returns an error when the configuration cannot be used to boot
// the service.
func (c Config) Validate() error {
	if c.LogPath == "" {
		return fmt.Errorf("%w: logPath must not be empty", ErrConfigNotValid)
	}

	return nil
}
