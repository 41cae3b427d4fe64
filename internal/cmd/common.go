// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mia-platform/duolog/logger"
)

const (
	configPathFlagName  = "config"
	configPathFlagShort = "c"
	configPathFlagUsage = "Path to a YAML file with the logging configuration. Takes precedence over --log-path."

	logPathFlagName  = "log-path"
	logPathFlagShort = "l"
	logPathFlagUsage = "Destination file for the persisted log lines"
)

// flags collects the CLI options shared by the emit and serve commands.
type flags struct {
	configPath string
	logPath    string
}

// addFlags registers the cli flags on cmd.
func (f *flags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, configPathFlagName, configPathFlagShort, "", configPathFlagUsage)
	cmd.Flags().StringVarP(&f.logPath, logPathFlagName, logPathFlagShort, "", logPathFlagUsage)
}

// resolveConfig builds the logging configuration from the parsed flags: a
// configuration file wins over an explicit log path, and with neither the
// process environment is used.
func (f *flags) resolveConfig() (logger.Config, error) {
	switch {
	case f.configPath != "":
		return logger.NewConfigFromFile(f.configPath)
	case f.logPath != "":
		config := logger.Config{LogPath: f.logPath}
		return config, config.Validate()
	default:
		return logger.FromEnv()
	}
}

// bootService creates the parent directory of the configured log file and
// boots a service writing its console stream to console. Directory creation
// stays app side: the service itself only ever opens the file.
func bootService(config logger.Config, console io.Writer) (*logger.Service, error) {
	if dir := filepath.Dir(config.LogPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	service := logger.NewWithConsole(config, console)
	if err := service.Boot(); err != nil {
		return nil, err
	}

	return service, nil
}
