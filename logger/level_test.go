// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLevelStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ERROR", ERROR.String())
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "HELP", HELP.String())
	assert.Equal(t, "DATA", DATA.String())
	assert.Equal(t, "INFO", INFO.String())
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "VERBOSE", VERBOSE.String())
	assert.Equal(t, "Level(999)", Level(999).String())

	assert.Equal(t, ERROR, LevelFromString("error"))
	assert.Equal(t, WARN, LevelFromString("Warn"))
	assert.Equal(t, HELP, LevelFromString("HELP"))
	assert.Equal(t, DATA, LevelFromString("data"))
	assert.Equal(t, INFO, LevelFromString("info"))
	assert.Equal(t, DEBUG, LevelFromString("debug"))
	assert.Equal(t, VERBOSE, LevelFromString("verbose"))
	assert.Equal(t, INFO, LevelFromString("INVALID"))
	assert.Equal(t, INFO, LevelFromString(""))
}

func TestBackendLevels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, logrus.ErrorLevel, ERROR.backendLevel())
	assert.Equal(t, logrus.WarnLevel, WARN.backendLevel())
	assert.Equal(t, logrus.InfoLevel, HELP.backendLevel())
	assert.Equal(t, logrus.InfoLevel, DATA.backendLevel())
	assert.Equal(t, logrus.InfoLevel, INFO.backendLevel())
	assert.Equal(t, logrus.DebugLevel, DEBUG.backendLevel())
	assert.Equal(t, logrus.TraceLevel, VERBOSE.backendLevel())
	assert.Equal(t, logrus.InfoLevel, Level(999).backendLevel())
}
