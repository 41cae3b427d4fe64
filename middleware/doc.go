// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package middleware provides a fiber request logger built on the duolog
// logging service. Every request emits an arrival line at VERBOSE severity
// and a completion line at INFO severity, handler errors are reported
// through the service exception channel, and the service itself is stored
// in the request user context for the handlers downstream.
package middleware
