// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mia-platform/duolog/internal/server"
	"github.com/mia-platform/duolog/logger"
)

// serveFlags holds the flags for the "serve" command.
type serveFlags struct {
	flags
}

// toOptions converts the serve flags to serveOptions.
func (f *serveFlags) toOptions(cmd *cobra.Command, _ []string) (*serveOptions, error) {
	config, err := f.resolveConfig()
	if err != nil {
		return nil, err
	}

	return &serveOptions{
		config:  config,
		console: cmd.OutOrStdout(),
	}, nil
}

// serveOptions configures one run of the serve command.
type serveOptions struct {
	config  logger.Config
	console io.Writer
}

// validate checks the configured values and reports invalid setups.
func (o *serveOptions) validate() error {
	return o.config.Validate()
}

// execute boots the service and runs the HTTP server until ctx is cancelled
// or a termination signal arrives, then shuts it down gracefully.
func (o *serveOptions) execute(ctx context.Context) error {
	service, err := bootService(o.config, o.console)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.NewServer(logger.WithContext(ctx, service))
	if err != nil {
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	if err := srv.Stop(); err != nil {
		return err
	}

	return <-errChan
}
