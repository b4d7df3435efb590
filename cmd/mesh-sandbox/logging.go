package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/vi-mesh/parameter"
)

const (
	logDir      = parameter.SandboxLogDir
	logFileName = parameter.SandboxLogFile
	maxLogSize  = 10 << 20
)

// setupLogging routes slog and the standard logger to the debug log file
// Returns nil and discards all output when debug is off; the terminal is never written to
func setupLogging(debug bool) *os.File {
	if !debug {
		discard()
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		discard()
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("vi-mesh-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		discard()
		return nil
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f
}

func discard() {
	slog.SetDefault(slog.New(slog.DiscardHandler))
	log.SetOutput(io.Discard)
}
