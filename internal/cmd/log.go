// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

const logFilePerm = 0o644

// setupLogging sets the default logger. Text output goes to writer. If
// logFile is not empty, all records including debug level are additionally
// appended to it as JSON. The returned function closes the log file.
func setupLogging(writer io.Writer, debug bool, logFile string) (func() error, error) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler = slog.NewTextHandler(
		writer,
		&slog.HandlerOptions{
			Level: level,
		},
	)

	closeFn := func() error { return nil }

	if logFile != "" {
		file, err := os.OpenFile(
			logFile,
			os.O_CREATE|os.O_APPEND|os.O_WRONLY,
			logFilePerm,
		)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}

		handler = slogmulti.Fanout(
			handler,
			slog.NewJSONHandler(file, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
		closeFn = file.Close
	}

	slog.SetDefault(slog.New(handler))

	return closeFn, nil
}
