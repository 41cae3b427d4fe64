// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"bytes"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// TimestampLayout is the time layout rendered at the start of every
	// log line.
	TimestampLayout = "2006-01-02 15:04:05"

	// severityKey is the entry field carrying the facade severity. The
	// backend has no levels named like HELP or DATA, so the name to render
	// travels with the entry instead of being derived from its level.
	severityKey = "severity"
)

// LineFormatter renders entries as "<timestamp> [<SEVERITY>]: <message>".
// The layout must stay stable: the files written by the file sink are parsed
// by downstream tooling.
type LineFormatter struct{}

// Format implements the logrus.Formatter interface.
func (f *LineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	buffer := entry.Buffer
	if buffer == nil {
		buffer = new(bytes.Buffer)
	}

	buffer.WriteString(entry.Time.Format(TimestampLayout))
	buffer.WriteString(" [")
	buffer.WriteString(severityName(entry))
	buffer.WriteString("]: ")
	buffer.WriteString(entry.Message)
	buffer.WriteByte('\n')

	return buffer.Bytes(), nil
}

// severityName returns the facade severity carried by the entry, falling
// back to the backend level name for entries logged on the backend directly.
func severityName(entry *logrus.Entry) string {
	if level, ok := entry.Data[severityKey].(Level); ok {
		return level.String()
	}

	return strings.ToUpper(entry.Level.String())
}
