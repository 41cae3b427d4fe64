// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mia-platform/duolog/logger"
)

const (
	emitCmdUsageTemplate = "emit [%s...]"
	emitCmdShort         = "write one test line per requested severity"
	emitCmdLong          = `Write one formatted test line per requested severity through the logging
	service, to both the console stream and the configured log file.

	When no severity is provided a line is written for every one of them.
	Severities below the fixed info minimum (debug, verbose) are accepted
	and discarded by the backend.`

	emitCmdExample = `# Write a line for every severity to the configured log file
	duolog emit

	# Write a single error line to a custom file
	duolog emit error --log-path /tmp/duolog.log`

	serveCmdUsage = "serve"
	serveCmdShort = "expose the logging service over HTTP"
	serveCmdLong  = `Boot the logging service and expose it over HTTP: every request is logged
	through it, POST /log drives one line through the pipeline remotely, and
	liveness and readiness probes are available under /-/.

	The server listens on HTTP_HOST:HTTP_PORT and stops gracefully on
	SIGINT or SIGTERM.`

	serveCmdExample = `# Serve the logging pipeline on the default port
	duolog serve --log-path /var/log/duolog.log`
)

var errUnknownSeverity = errors.New("unknown severity provided")

// EmitCmd returns the Cobra command that writes test lines through the
// logging service.
func EmitCmd() *cobra.Command {
	flags := &emitFlags{}
	cmd := &cobra.Command{
		Use:     emitCmdUsage(),
		Short:   heredoc.Doc(emitCmdShort),
		Long:    heredoc.Doc(emitCmdLong),
		Example: heredoc.Doc(emitCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: severityArgsFunc,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// ServeCmd returns the Cobra command that runs the logging HTTP server.
func ServeCmd() *cobra.Command {
	flags := &serveFlags{}
	cmd := &cobra.Command{
		Use:     serveCmdUsage,
		Short:   heredoc.Doc(serveCmdShort),
		Long:    heredoc.Doc(serveCmdLong),
		Example: heredoc.Doc(serveCmdExample),

		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// handleError will do custom print error handling based on the type of error received.
// It will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errUnknownSeverity):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

// emitCmdUsage renders the emit usage line with every accepted severity name.
func emitCmdUsage() string {
	names := make([]string, 0, len(logger.AllLevels))
	for _, level := range logger.AllLevels {
		names = append(names, strings.ToLower(level.String()))
	}

	return fmt.Sprintf(emitCmdUsageTemplate, strings.Join(names, "|"))
}

// severityArgsFunc completes positional arguments with the severity names.
func severityArgsFunc(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var comps []string
	for _, level := range logger.AllLevels {
		name := strings.ToLower(level.String())
		if strings.HasPrefix(name, strings.ToLower(toComplete)) {
			comps = append(comps, name)
		}
	}

	return comps, cobra.ShellCompDirectiveNoFileComp
}
