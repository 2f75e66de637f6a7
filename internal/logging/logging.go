// Package logging builds the zap logger shared by the sandbox.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/toxichemicals/GO/glsandbox/internal/config"
)

// TimestampLayout is used for log file names and entry timestamps.
const TimestampLayout = "20060102-150405"

// Output selects the log destinations.
type Output string

const (
	Console Output = "console"
	File    Output = "file"
	Both    Output = "both"
)

func (o Output) console() bool { return o == Console || o == Both }
func (o Output) file() bool    { return o == File || o == Both }

func (o Output) String() string {
	switch o {
	case Console:
		return "console"
	case File:
		return "file"
	default:
		return "console and file"
	}
}

// FileName returns the log file for a base path opened at t.
func FileName(base string, t time.Time) string {
	return base + t.Format(TimestampLayout) + ".log"
}

// New builds a logger from cfg. The returned func flushes and closes any log
// file and must be called before exit.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, func(), error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(TimestampLayout)
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewConsoleEncoder(encCfg)

	out := Output(cfg.Output)
	var cores []zapcore.Core
	closeFile := func() {}
	if out.console() {
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(os.Stdout), level))
	}
	if out.file() {
		name := FileName(cfg.Path, time.Now())
		if dir := filepath.Dir(name); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		ws, closer, err := zap.Open(name)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		closeFile = closer
		cores = append(cores, zapcore.NewCore(enc.Clone(), ws, level))
	}
	if len(cores) == 0 {
		return nil, nil, fmt.Errorf("unknown log output %q", cfg.Output)
	}

	logger := zap.New(zapcore.NewTee(cores...))
	logger.Info("Logging to " + out.String())

	cleanup := func() {
		_ = logger.Sync()
		closeFile()
	}
	return logger, cleanup, nil
}
