package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide sugared logger. It starts as a no-op so
// packages can log during early startup and tests without wiring;
// Initialize swaps in the real logger.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize builds the JSON production logger at the given level and
// installs it as Log. Level accepts zap's names (debug, info, warn,
// error). Entries carry ISO8601 timestamps and a service field so the
// dashboard's logs are separable when aggregated.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.Fields(zap.String("service", "dashboard-api")))
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}

// Sync flushes any buffered log entries. Safe to defer from main.
func Sync() {
	_ = Log.Sync()
}
