// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/duolog/internal/info"
	"github.com/mia-platform/duolog/logger"
	"github.com/mia-platform/duolog/middleware"
)

type Server interface {
	App() *fiber.App
	Start() error
	Stop() error
}

type impServer struct {
	config

	app *fiber.App
}

var (
	ErrServerListen   = errors.New("server listen error")
	ErrServerShutdown = errors.New("server shutdown error")
)

// NewServer builds the fiber application with the log emission endpoint and
// the status probes registered, logging every request through the service
// stored in ctx.
func NewServer(ctx context.Context) (Server, error) {
	cfg, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               info.AppName,
		DisableStartupMessage: cfg.DisableStartupMessage,
	})

	service := logger.FromContext(ctx)
	app.Use(middleware.RequestLogger(service, []string{statusRoutePrefix}))

	statusRoutes(app, info.AppName, info.Version)
	logRoutes(app)

	return &impServer{
		app:    app,
		config: *cfg,
	}, nil
}

func (s *impServer) App() *fiber.App {
	return s.app
}

func (s *impServer) Start() error {
	if err := s.app.Listen(fmt.Sprintf("%s:%d", s.HTTPHost, s.HTTPPort)); err != nil {
		return fmt.Errorf("%w: %w", ErrServerListen, err)
	}
	return nil
}

func (s *impServer) Stop() error {
	if err := s.app.Shutdown(); err != nil {
		return fmt.Errorf("%w: %w", ErrServerShutdown, err)
	}
	return nil
}
