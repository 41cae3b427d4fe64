// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mia-platform/duolog/logger"
)

const (
	messageFlagName  = "message"
	messageFlagShort = "m"
	messageFlagUsage = "Text of the emitted test lines"
	defaultMessage   = "duolog test line"

	consoleFlagName  = "console"
	consoleFlagUsage = "If set, also writes an unformatted line directly to the console stream"
)

// emitFlags holds the flags for the "emit" command.
type emitFlags struct {
	flags

	message     string
	withConsole bool
}

// addFlags adds the cli flags to the cobra command.
func (f *emitFlags) addFlags(cmd *cobra.Command) {
	f.flags.addFlags(cmd)

	cmd.Flags().StringVarP(&f.message, messageFlagName, messageFlagShort, defaultMessage, messageFlagUsage)
	cmd.Flags().BoolVar(&f.withConsole, consoleFlagName, false, consoleFlagUsage)
}

// toOptions converts the emit flags to emitOptions enriching it with the passed arguments.
func (f *emitFlags) toOptions(cmd *cobra.Command, args []string) (*emitOptions, error) {
	config, err := f.resolveConfig()
	if err != nil {
		return nil, err
	}

	return &emitOptions{
		config:      config,
		console:     cmd.OutOrStdout(),
		message:     f.message,
		withConsole: f.withConsole,
		severities:  args,
	}, nil
}

// emitOptions configures one run of the emit command.
type emitOptions struct {
	config      logger.Config
	console     io.Writer
	message     string
	withConsole bool
	severities  []string
}

// validate checks the requested severity names and reports unknown ones.
func (o *emitOptions) validate() error {
	for _, name := range o.severities {
		level := logger.LevelFromString(name)
		if !strings.EqualFold(level.String(), name) {
			return fmt.Errorf("%w: %s", errUnknownSeverity, name)
		}
	}

	return nil
}

// execute boots the service and writes one line per requested severity,
// every severity when none was requested.
func (o *emitOptions) execute() error {
	service, err := bootService(o.config, o.console)
	if err != nil {
		return err
	}

	for _, level := range o.levels() {
		service.Log(level, o.message)
	}

	if o.withConsole {
		service.Console(o.message)
	}

	return nil
}

// levels resolves the requested severity names, defaulting to all of them.
func (o *emitOptions) levels() []logger.Level {
	if len(o.severities) == 0 {
		return logger.AllLevels
	}

	levels := make([]logger.Level, 0, len(o.severities))
	for _, name := range o.severities {
		levels = append(levels, logger.LevelFromString(name))
	}

	return levels
}
