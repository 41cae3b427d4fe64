// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package server exposes the HTTP surface of the duolog serve command: a log
// emission endpoint driving lines through the shared logging service, plus
// the liveness and readiness probes. Every request outside the probe prefix
// is logged by the request middleware.
package server
