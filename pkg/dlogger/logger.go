// Package dlogger builds the zap logger shared by sync runs, with named
// log levels
package dlogger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogLevelInfo sets the log level to info, the default for sync runs
	LogLevelInfo = "info"

	// LogLevelWarn limits logging to per-file anomalies and failures
	LogLevelWarn = "warn"

	// LogLevelDebug adds per-file detail such as parsed entry counts
	LogLevelDebug = "debug"

	// LogLevelNone sets logger to no logging
	LogLevelNone = "none"
)

// GetLogger returns a zap logger with the specified level. An empty level
// means LogLevelInfo; LogLevelNone silences logging entirely.
func GetLogger(logLevel string) (*zap.Logger, error) {
	switch logLevel {
	case LogLevelNone:
		return zap.NewNop(), nil
	case "":
		logLevel = LogLevelInfo
	}
	var lvl zapcore.Level
	err := lvl.UnmarshalText([]byte(logLevel))
	if err != nil {
		return nil, err
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	// sync runs log for humans watching a terminal, not a log collector
	zapConfig.Encoding = "console"
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapConfig.Build()
}

// MustGetLogger returns a zap logger with the specified level or panics
func MustGetLogger(logLevel string) *zap.Logger {
	l, err := GetLogger(logLevel)
	if err != nil {
		panic(err)
	}
	return l
}
