package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerClient is a thin wrapper around Uber's Zap logger exposing the
// message/error/fields calling convention used throughout this module.
type LoggerClient struct {
	// Zap is the underlying zap.Logger instance, exposed for direct
	// access to Zap-specific functionality when needed.
	Zap *zap.Logger
}

// Logger is the logging contract consumed by the other packages of this
// module. Consumers that need a mock define their own local copy of this
// interface next to a mockgen directive, per the package conventions.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// NewLoggerClient builds a configured Zap logger with JSON encoding,
// ISO 8601 timestamps, capital level names and caller information,
// writing to stderr. The process ID and service name are attached to
// every entry.
//
// If initialization fails the process terminates; a service without a
// logger is not worth starting.
func NewLoggerClient(cfg Config) *LoggerClient {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel
	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	zapLogger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		log.Fatal(err)
	}

	return &LoggerClient{Zap: zapLogger}
}

// Debug logs a message at debug level.
func (l *LoggerClient) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, zapFields(err, fields)...)
}

// Info logs a message at info level.
func (l *LoggerClient) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, zapFields(err, fields)...)
}

// Warn logs a message at warning level.
func (l *LoggerClient) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, zapFields(err, fields)...)
}

// Error logs a message at error level.
func (l *LoggerClient) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, zapFields(err, fields)...)
}

// Fatal logs a message at fatal level and terminates the process.
func (l *LoggerClient) Fatal(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Fatal(msg, zapFields(err, fields)...)
}

// zapFields flattens the optional error and field maps into zap fields.
func zapFields(err error, fieldMaps []map[string]interface{}) []zap.Field {
	var out []zap.Field
	if err != nil {
		out = append(out, zap.Error(err))
	}
	for _, fields := range fieldMaps {
		for key, value := range fields {
			out = append(out, zap.Any(key, value))
		}
	}
	return out
}
