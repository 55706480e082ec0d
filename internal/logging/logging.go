// Package logging provides structured logging with zap.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mdf-science/mdfzip/internal/config"
)

var (
	globalLogger *zap.Logger
	globalLevel  zap.AtomicLevel
)

// Init initializes the global logger from the run settings. Console format
// uses zap's development encoder; JSON uses the production encoder. Verbose
// lowers the level to debug.
func Init(cfg config.Settings) error {
	level := zapcore.InfoLevel
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}

	var zcfg zap.Config
	if cfg.LogFormat == config.FormatConsole {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	globalLevel = zap.NewAtomicLevelAt(level)
	zcfg.Level = globalLevel
	zcfg.DisableStacktrace = true

	logger, err := zcfg.Build()
	if err != nil {
		return err
	}

	globalLogger = logger
	initColor(cfg.LogFormat == config.FormatConsole)
	return nil
}

// InitDefault initializes with default production settings.
func InitDefault() {
	logger, _ := zap.NewProduction()
	globalLogger = logger
}

// Sync flushes any buffered log entries.
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// L returns the global logger.
func L() *zap.Logger {
	if globalLogger == nil {
		InitDefault()
	}
	return globalLogger
}

// S returns the global sugared logger.
func S() *zap.SugaredLogger {
	return L().Sugar()
}
