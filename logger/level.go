// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Severities exposed by the Service, ordered from most to least severe.
const (
	ERROR Level = iota
	WARN
	HELP
	DATA
	INFO
	DEBUG
	VERBOSE
)

// minimumSeverity is the fixed threshold the backend is booted with. Lines
// below it (DEBUG, VERBOSE) are accepted and silently discarded.
const minimumSeverity = INFO

// AllLevels lists every severity the Service exposes, ordered from most to
// least severe.
var AllLevels = []Level{ERROR, WARN, HELP, DATA, INFO, DEBUG, VERBOSE}

// Level identifies one of the severities accepted by the Service.
type Level int

// LevelFromString converts a severity name to its Level, ignoring case.
// Unknown names fall back to INFO.
func LevelFromString(level string) Level {
	switch strings.ToUpper(level) {
	case "ERROR":
		return ERROR
	case "WARN":
		return WARN
	case "HELP":
		return HELP
	case "DATA":
		return DATA
	case "INFO":
		return INFO
	case "DEBUG":
		return DEBUG
	case "VERBOSE":
		return VERBOSE
	default:
		return INFO
	}
}

// String returns the upper-case name of the level, as rendered between
// square brackets on every log line.
func (l Level) String() string {
	switch l {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case HELP:
		return "HELP"
	case DATA:
		return "DATA"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case VERBOSE:
		return "VERBOSE"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// backendLevel maps the severity to the logrus level used for threshold
// filtering. HELP and DATA have no backend counterpart and ride on the info
// level so that the fixed minimum severity lets them through.
func (l Level) backendLevel() logrus.Level {
	switch l {
	case ERROR:
		return logrus.ErrorLevel
	case WARN:
		return logrus.WarnLevel
	case HELP, DATA, INFO:
		return logrus.InfoLevel
	case DEBUG:
		return logrus.DebugLevel
	case VERBOSE:
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}
