package oteladapters

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log"

	"github.com/AntonStoeckl/typed-container-go/container"
)

// NewSlogBridgeLogger returns a *slog.Logger whose records go to the global OpenTelemetry LoggerProvider.
// The result satisfies container.Logger and can be passed to container.WithLogger.
func NewSlogBridgeLogger(name string) *slog.Logger {
	return otelslog.NewLogger(name)
}

// NewSlogBridgeLoggerWithProvider is NewSlogBridgeLogger with an explicit LoggerProvider.
func NewSlogBridgeLoggerWithProvider(name string, provider log.LoggerProvider) *slog.Logger {
	return otelslog.NewLogger(name, otelslog.WithLoggerProvider(provider))
}

// OTelLogger implements container.Logger on top of the OpenTelemetry logs API.
// Use it when log records should be built without going through log/slog.
type OTelLogger struct {
	logger log.Logger
}

// NewOTelLogger creates a new OTelLogger emitting to logger.
func NewOTelLogger(logger log.Logger) *OTelLogger {
	return &OTelLogger{logger: logger}
}

// Debug emits a record with debug severity.
func (l *OTelLogger) Debug(msg string, args ...any) {
	l.emit(log.SeverityDebug, msg, args...)
}

// Info emits a record with info severity.
func (l *OTelLogger) Info(msg string, args ...any) {
	l.emit(log.SeverityInfo, msg, args...)
}

// Warn emits a record with warn severity.
func (l *OTelLogger) Warn(msg string, args ...any) {
	l.emit(log.SeverityWarn, msg, args...)
}

// Error emits a record with error severity.
func (l *OTelLogger) Error(msg string, args ...any) {
	l.emit(log.SeverityError, msg, args...)
}

func (l *OTelLogger) emit(severity log.Severity, msg string, args ...any) {
	record := log.Record{}
	record.SetSeverity(severity)
	record.SetBody(log.StringValue(msg))
	record.AddAttributes(toLogAttributes(args)...)

	l.logger.Emit(context.Background(), record)
}

// toLogAttributes converts slog style key-value pairs. Pairs without a string key are dropped.
func toLogAttributes(args []any) []log.KeyValue {
	attrs := make([]log.KeyValue, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}

		attrs = append(attrs, toLogAttribute(key, args[i+1]))
	}

	return attrs
}

func toLogAttribute(key string, value any) log.KeyValue {
	switch v := value.(type) {
	case string:
		return log.String(key, v)
	case int:
		return log.Int(key, v)
	case int64:
		return log.Int64(key, v)
	case float64:
		return log.Float64(key, v)
	case bool:
		return log.Bool(key, v)
	default:
		return log.String(key, slog.AnyValue(v).String())
	}
}

// Ensure OTelLogger implements container.Logger.
var _ container.Logger = (*OTelLogger)(nil)

// Ensure the slog bridge result implements container.Logger.
var _ container.Logger = (*slog.Logger)(nil)
