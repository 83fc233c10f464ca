// Package oteladapters provides OpenTelemetry adapters for the container observability interfaces.
//
// MetricsCollector maps container metrics onto OpenTelemetry instruments, and the loggers route
// container diagnostics through the OpenTelemetry logs pipeline, either via the slog bridge or
// via the logs API directly.
package oteladapters
