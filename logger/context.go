// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// nullService is an already booted service that discards every line routed
// through it.
var nullService = newNullService()

// newNullService builds the fallback returned by FromContext when no service
// was stored in the context.
func newNullService() *Service {
	backend := logrus.New()
	backend.SetLevel(minimumSeverity.backendLevel())
	backend.SetFormatter(&LineFormatter{})
	backend.SetOutput(io.Discard)

	return &Service{
		console: io.Discard,
		log:     backend,
	}
}

// WithContext returns a new context with the provided service.
func WithContext(ctx context.Context, service *Service) context.Context {
	return context.WithValue(ctx, contextKey, service)
}

// FromContext retrieves the service stored in the context. If no service is
// found, a shared null service that discards all lines is returned.
func FromContext(ctx context.Context) *Service {
	if ctx != nil {
		if service, ok := ctx.Value(contextKey).(*Service); ok {
			return service
		}
	}

	return nullService
}

// Unexported new type so that our context key never collides with another.
type contextKeyType struct{}

// contextKey is the key used for the context to store the service.
var contextKey = contextKeyType{}
