// Copyright 2026 The DYOD Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package kernellog wraps logrus with the structured field conventions
// used across the storage kernel: every call site logs a short event name
// plus a Fields map, never an interpolated message string.
package kernellog

import (
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// Fields is an alias for logrus.Fields so call sites don't need to import
// logrus directly.
type Fields = logrus.Fields

var logger = logrus.New()

func init() {
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// SetLevel configures the package-wide log level, by name ("debug",
// "info", "warn", "error"). An unrecognized name leaves the level
// unchanged.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}
	logger.SetLevel(lvl)
}

// Logger returns the shared *logrus.Logger, for callers that need to
// attach hooks or change output.
func Logger() *logrus.Logger { return logger }

func Debug(event string, fields Fields) {
	logger.WithFields(fields).Debug(event)
}

func Info(event string, fields Fields) {
	logger.WithFields(fields).Info(event)
}

// Warn logs a failure without altering or wrapping the error it reports.
func Warn(event string, err error, fields Fields) {
	f := logrus.Fields{}
	for k, v := range fields {
		f[k] = v
	}
	f["error"] = err
	logger.WithFields(f).Warn(event)
}

// TableFields builds the common field set attached to table-level events,
// humanizing the row count the way an operator log line would.
func TableFields(tableID string, rowCount int) Fields {
	return Fields{
		"table":     tableID,
		"row_count": humanize.Comma(int64(rowCount)),
	}
}

// ChunkFields builds the common field set attached to chunk-level events.
func ChunkFields(tableID string, chunkID uint32, size int) Fields {
	return Fields{
		"table": tableID,
		"chunk": chunkID,
		"size":  humanize.Comma(int64(size)),
	}
}
