// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootIdempotence(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "duolog.log")
	service := New(Config{LogPath: logPath})

	assert.Nil(t, service.Logger())

	require.NoError(t, service.Boot())
	handle := service.Logger()
	require.NotNil(t, handle)

	require.NoError(t, service.Boot())
	assert.Same(t, handle, service.Logger())
}

func TestBootError(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "missing", "duolog.log")
	service := New(Config{LogPath: logPath})

	err := service.Boot()
	assert.ErrorIs(t, err, ErrBackendBoot)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, service.Logger())
}

func TestLeveledMethods(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		log             func(*Service, ...any)
		severity        Level
		expectedBackend logrus.Level
		filtered        bool
	}{
		"info":    {log: (*Service).Info, severity: INFO, expectedBackend: logrus.InfoLevel},
		"warn":    {log: (*Service).Warn, severity: WARN, expectedBackend: logrus.WarnLevel},
		"error":   {log: (*Service).Error, severity: ERROR, expectedBackend: logrus.ErrorLevel},
		"help":    {log: (*Service).Help, severity: HELP, expectedBackend: logrus.InfoLevel},
		"data":    {log: (*Service).Data, severity: DATA, expectedBackend: logrus.InfoLevel},
		"debug":   {log: (*Service).Debug, severity: DEBUG, filtered: true},
		"verbose": {log: (*Service).Verbose, severity: VERBOSE, filtered: true},
	}

	for testName, testCase := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			service, hook, console := bootedService(t)
			testCase.log(service, "one", 2, nil)

			if testCase.filtered {
				assert.Nil(t, hook.LastEntry())
				assert.Empty(t, console.String())
				return
			}

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, testCase.expectedBackend, entry.Level)
			assert.Equal(t, testCase.severity, entry.Data[severityKey])
			assert.Equal(t, fmt.Sprint([]any{"one", 2, nil}), entry.Message)
			assert.Contains(t, console.String(), "["+testCase.severity.String()+"]: ")
		})
	}
}

func TestLogForwarding(t *testing.T) {
	t.Parallel()

	t.Run("arguments are forwarded as a single sequence", func(t *testing.T) {
		t.Parallel()

		service, hook, _ := bootedService(t)
		service.Log(WARN, "disk", "almost", "full", 93.5)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, fmt.Sprint([]any{"disk", "almost", "full", 93.5}), entry.Message)
	})

	t.Run("no arguments still log one line", func(t *testing.T) {
		t.Parallel()

		service, hook, _ := bootedService(t)
		service.Info()

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "[]", entry.Message)
	})

	t.Run("many calls keep their order", func(t *testing.T) {
		t.Parallel()

		service, hook, _ := bootedService(t)
		service.Info("first")
		service.Warn("second")
		service.Error("third")

		entries := hook.AllEntries()
		require.Len(t, entries, 3)
		assert.Equal(t, "[first]", entries[0].Message)
		assert.Equal(t, "[second]", entries[1].Message)
		assert.Equal(t, "[third]", entries[2].Message)
	})
}

func TestSinks(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "test.log")
	console := new(bytes.Buffer)
	service := NewWithConsole(Config{LogPath: logPath}, console)
	require.NoError(t, service.Boot())

	service.Error("a", "b")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[ERROR\]: \[a b\]\n$`, string(contents))
	assert.Equal(t, console.String(), string(contents))

	assert.Equal(t, logrus.InfoLevel, service.Logger().GetLevel())
}

func TestFileSinkAppends(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(logPath, []byte("previous run\n"), 0o644))

	service := NewWithConsole(Config{LogPath: logPath}, new(bytes.Buffer))
	require.NoError(t, service.Boot())
	service.Info("current run")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(contents, []byte("previous run\n")))
	assert.Contains(t, string(contents), "[INFO]: [current run]")
}

func TestUseBeforeBoot(t *testing.T) {
	t.Parallel()

	service := New(Config{LogPath: filepath.Join(t.TempDir(), "duolog.log")})

	assert.Panics(t, func() { service.Info("too early") })
	assert.Panics(t, func() { service.Log(WARN, "too early") })
	assert.Panics(t, func() { service.Exception(assert.AnError) })
}

func TestConsole(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "duolog.log")
	console := new(bytes.Buffer)
	service := NewWithConsole(Config{LogPath: logPath}, console)

	t.Run("works before boot", func(t *testing.T) {
		service.Console("a", "b")
		assert.Equal(t, "[a b]\n", console.String())
	})

	t.Run("bypasses the backend after boot", func(t *testing.T) {
		require.NoError(t, service.Boot())
		console.Reset()

		service.Console(1, nil)
		assert.Equal(t, "[1 <nil>]\n", console.String())

		contents, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Empty(t, contents)
	})

	t.Run("no arguments write an empty sequence", func(t *testing.T) {
		console.Reset()

		service.Console()
		assert.Equal(t, "[]\n", console.String())
	})
}

func TestException(t *testing.T) {
	t.Parallel()

	t.Run("error without a stack trace", func(t *testing.T) {
		t.Parallel()

		service, hook, _ := bootedService(t)
		service.Exception(errors.New("boom"))

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
		assert.Equal(t, ERROR, entry.Data[severityKey])
		assert.Equal(t, fmt.Sprint([]any{"boom", nil}), entry.Message)
	})

	t.Run("error with a stack trace", func(t *testing.T) {
		t.Parallel()

		service, hook, _ := bootedService(t)
		service.Exception(pkgerrors.New("kaboom"))

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
		assert.Contains(t, entry.Message, "kaboom")
		assert.Contains(t, entry.Message, "service_test.go")
	})
}

// bootedService returns a service booted against a throwaway file, with the
// console stream captured in the returned buffer and a hook recording every
// entry accepted by the backend.
func bootedService(tb testing.TB) (*Service, *logrustest.Hook, *bytes.Buffer) {
	tb.Helper()

	console := new(bytes.Buffer)
	service := NewWithConsole(Config{LogPath: filepath.Join(tb.TempDir(), "duolog.log")}, console)
	require.NoError(tb, service.Boot())

	return service, logrustest.NewLocal(service.Logger()), console
}
