// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"github.com/gofiber/fiber/v2"
)

const statusRoutePrefix = "/-/"

// statusResponse is the payload returned by the liveness and readiness probes.
type statusResponse struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

// statusRoutes registers the probe routes. They live under the prefix the
// request logger excludes, so probes never reach the log sinks.
func statusRoutes(app *fiber.App, name, version string) {
	handler := func(c *fiber.Ctx) error {
		return c.JSON(statusResponse{
			Name:    name,
			Status:  "OK",
			Version: version,
		})
	}

	app.Get(statusRoutePrefix+"healthz", handler)
	app.Get(statusRoutePrefix+"ready", handler)
}
