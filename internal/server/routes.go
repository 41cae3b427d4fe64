// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/duolog/logger"
)

const logRoutePath = "/log"

// logRequest is the payload accepted by the log emission endpoint. Severity
// is optional and defaults to info.
type logRequest struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// logRoutes registers the endpoint that drives one line through the logging
// service stored in the request user context.
func logRoutes(app *fiber.App) {
	app.Post(logRoutePath, func(c *fiber.Ctx) error {
		payload := new(logRequest)
		if err := c.BodyParser(payload); err != nil {
			return statusError(c, http.StatusBadRequest, "cannot parse request body")
		}

		level := logger.INFO
		if payload.Severity != "" {
			level = logger.LevelFromString(payload.Severity)
			if !strings.EqualFold(level.String(), payload.Severity) {
				return statusError(c, http.StatusBadRequest, fmt.Sprintf("unknown severity %q", payload.Severity))
			}
		}

		logger.FromContext(c.UserContext()).Log(level, payload.Message)
		return c.SendStatus(http.StatusNoContent)
	})
}

// statusError renders the error payload shared by every route.
func statusError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"statusCode": statusCode,
		"error":      http.StatusText(statusCode),
		"message":    message,
	})
}
