// Package logger holds the process-wide zap logger used by the command layer.
// Library packages take a *zap.Logger option instead of reaching for this
// global; the command passes them Base().
package logger

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global sugared logger. It is a no-op until Initialize.
	Logger *zap.SugaredLogger
	// JSONOutput records whether Initialize selected JSON encoding.
	JSONOutput bool
)

func init() {
	Logger = nopSugar()
}

// Initialize replaces the global logger. JSON output uses zap's production
// encoder; otherwise a compact console encoder is used. Both write to stderr
// so that reports on stdout stay machine-readable.
func Initialize(jsonOutput bool, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "logger: level %q", level)
	}
	JSONOutput = jsonOutput

	var zl *zap.Logger
	if jsonOutput {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		cfg.OutputPaths = []string{"stderr"}
		if zl, err = cfg.Build(); err != nil {
			return errors.Wrap(err, "logger: build")
		}
	} else {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zl = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(enc),
			zapcore.Lock(os.Stderr),
			lvl,
		))
	}

	Logger = zl.Sugar()
	return nil
}

// Base returns the desugared global logger.
func Base() *zap.Logger {
	return Logger.Desugar()
}

// Sync flushes buffered entries; errors from syncing a terminal are ignored.
func Sync() {
	_ = Logger.Sync()
}

func nopSugar() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
