// Package containertest provides test doubles for the container observability interfaces.
//
// It contains a slog.Handler spy for capturing and inspecting log records and a
// MetricsCollector spy for capturing metric calls.
package containertest
