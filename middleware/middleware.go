// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mia-platform/duolog/logger"
)

const (
	forwardedForHeaderKey = "x-forwarded-for"
	requestIDHeaderName   = "x-request-id"

	IncomingRequestMessage  = "incoming request"
	RequestCompletedMessage = "request completed"
)

// RequestLogger returns a fiber middleware that routes request lines through
// service: one at arrival (VERBOSE severity, discarded by the fixed minimum)
// and one at completion (INFO severity) carrying method, path, status code,
// body size and latency. Handler errors are additionally reported through
// service.Exception. Requests whose path matches one of excludedPrefixes are
// not logged at all.
//
// The middleware also stores service in the request user context, so
// handlers can retrieve it with logger.FromContext.
func RequestLogger(service *logger.Service, excludedPrefixes []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc := &requestContext{c: c}

		for _, prefix := range excludedPrefixes {
			if strings.HasPrefix(rc.uri(), prefix) {
				return c.Next()
			}
		}

		start := time.Now()
		requestID := requestIDFrom(c)

		c.SetUserContext(logger.WithContext(c.UserContext(), service))

		service.Verbose(IncomingRequestMessage, requestID, c.Method(), rc.uri(), clientIP(c))

		err := c.Next()
		rc.err = err
		if err != nil {
			service.Exception(err)
		}

		service.Info(RequestCompletedMessage, requestID, c.Method(), rc.uri(),
			rc.statusCode(), rc.bodySize(), time.Since(start))

		return err
	}
}

// requestIDFrom returns the x-request-id header value, or a fresh random
// uuid when the caller did not provide one.
func requestIDFrom(c *fiber.Ctx) string {
	if requestID := c.Get(requestIDHeaderName); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// clientIP returns the forwarded-for address when a proxy provided one, the
// remote address otherwise.
func clientIP(c *fiber.Ctx) string {
	if ip := c.Get(forwardedForHeaderKey); ip != "" {
		return ip
	}

	return c.IP()
}

// requestContext tracks the handler outcome, so that the completion line
// reports what fiber will actually send when the chain returned an error.
type requestContext struct {
	c   *fiber.Ctx
	err error
}

func (rc *requestContext) uri() string {
	return string(rc.c.Request().URI().RequestURI())
}

func (rc *requestContext) fiberError() *fiber.Error {
	if fiberErr, ok := rc.err.(*fiber.Error); rc.err != nil && ok {
		return fiberErr
	}

	return nil
}

func (rc *requestContext) statusCode() int {
	if fiberErr := rc.fiberError(); fiberErr != nil {
		return fiberErr.Code
	}

	return rc.c.Response().StatusCode()
}

func (rc *requestContext) bodySize() int {
	if fiberErr := rc.fiberError(); fiberErr != nil {
		return len(fiberErr.Error())
	}

	if content := rc.c.GetRespHeader(fiber.HeaderContentLength); content != "" {
		if length, err := strconv.Atoi(content); err == nil {
			return length
		}
	}

	return len(rc.c.Response().Body())
}
