package common

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the process-wide logger. It is a no-op logger until
// SetLogger is called.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the process-wide logger. A nil logger restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// NewLogger builds a console logger for development runs or a JSON logger
// otherwise.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
		return cfg.Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableCaller = true
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
