// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger implements the duolog logging service: a thin facade over
// the backend logger that writes leveled, timestamped lines to the console
// and to a configured file.
//
// A Service is constructed with New and starts unbooted: Boot builds the
// backend exactly once, later calls are no-ops. The leveled methods gather
// their arguments into a single slice and forward it to the backend, while
// Console bypasses the backend and writes straight to standard output.
package logger
